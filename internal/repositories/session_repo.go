package repositories

import (
	"context"

	"luxride/internal/domain/models"
	"luxride/internal/storage"
)

// SessionRepository holds the signed-in user and the user type flag.
type SessionRepository struct {
	Store storage.Store
}

func (r SessionRepository) Get(ctx context.Context) (models.Session, error) {
	var out models.Session
	var user models.User
	ok, err := storage.GetJSON(ctx, r.Store, storage.KeyUser, &user)
	if err != nil {
		return out, err
	}
	if ok {
		out.User = &user
	}
	if _, err := storage.GetJSON(ctx, r.Store, storage.KeyUserType, &out.UserType); err != nil {
		return out, err
	}
	return out, nil
}

func (r SessionRepository) Save(ctx context.Context, s models.Session) error {
	if err := storage.PutJSON(ctx, r.Store, storage.KeyUser, s.User); err != nil {
		return err
	}
	return storage.PutJSON(ctx, r.Store, storage.KeyUserType, s.UserType)
}

func (r SessionRepository) SaveUser(ctx context.Context, u models.User) error {
	return storage.PutJSON(ctx, r.Store, storage.KeyUser, u)
}

// Clear stores JSON null under both keys.
func (r SessionRepository) Clear(ctx context.Context) error {
	if err := storage.PutJSON(ctx, r.Store, storage.KeyUser, nil); err != nil {
		return err
	}
	return storage.PutJSON(ctx, r.Store, storage.KeyUserType, nil)
}
