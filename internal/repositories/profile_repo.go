package repositories

import (
	"context"

	"luxride/internal/domain/models"
	"luxride/internal/storage"
)

// ProfileRepository reads and writes the driver profile documents.
// Each document is a singleton; writes replace it entirely.
type ProfileRepository struct {
	Store storage.Store
}

func (r ProfileRepository) GetProfile(ctx context.Context) (models.DriverProfile, bool, error) {
	var p models.DriverProfile
	ok, err := storage.GetJSON(ctx, r.Store, storage.KeyProfileDoc, &p)
	return p, ok, err
}

func (r ProfileRepository) SaveProfile(ctx context.Context, p models.DriverProfile) error {
	return storage.PutJSON(ctx, r.Store, storage.KeyProfileDoc, p)
}

func (r ProfileRepository) GetPhoto(ctx context.Context) (models.DriverPhoto, bool, error) {
	var p models.DriverPhoto
	ok, err := storage.GetJSON(ctx, r.Store, storage.KeyPhotoDoc, &p)
	return p, ok, err
}

func (r ProfileRepository) SavePhoto(ctx context.Context, p models.DriverPhoto) error {
	return storage.PutJSON(ctx, r.Store, storage.KeyPhotoDoc, p)
}

func (r ProfileRepository) GetFullProfile(ctx context.Context) (models.FullProfile, bool, error) {
	var p models.FullProfile
	ok, err := storage.GetJSON(ctx, r.Store, storage.KeyFullProfileDoc, &p)
	return p, ok, err
}

func (r ProfileRepository) SaveFullProfile(ctx context.Context, p models.FullProfile) error {
	return storage.PutJSON(ctx, r.Store, storage.KeyFullProfileDoc, p)
}

func (r ProfileRepository) GetAccount(ctx context.Context) (models.DriverAccount, bool, error) {
	var a models.DriverAccount
	ok, err := storage.GetJSON(ctx, r.Store, storage.KeyDriverProfile, &a)
	return a, ok, err
}

func (r ProfileRepository) SaveAccount(ctx context.Context, a models.DriverAccount) error {
	return storage.PutJSON(ctx, r.Store, storage.KeyDriverProfile, a)
}
