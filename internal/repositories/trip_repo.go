package repositories

import (
	"context"

	"luxride/internal/domain/models"
	"luxride/internal/storage"
)

type TripRepository struct {
	col *collection[models.Trip]
}

func NewTripRepository(store storage.Store) *TripRepository {
	return &TripRepository{col: &collection[models.Trip]{store: store, key: storage.KeyTrips}}
}

func (r *TripRepository) List(ctx context.Context) ([]models.Trip, error) {
	return r.col.list(ctx)
}

func (r *TripRepository) Replace(ctx context.Context, trips []models.Trip) error {
	return r.col.replace(ctx, trips)
}

type RatingRepository struct {
	col *collection[models.Rating]
}

func NewRatingRepository(store storage.Store) *RatingRepository {
	return &RatingRepository{col: &collection[models.Rating]{store: store, key: storage.KeyRatings}}
}

func (r *RatingRepository) List(ctx context.Context) ([]models.Rating, error) {
	return r.col.list(ctx)
}

func (r *RatingRepository) Append(ctx context.Context, rating models.Rating) error {
	_, err := r.col.update(ctx, func(items []models.Rating) ([]models.Rating, error) {
		return append(items, rating), nil
	})
	return err
}
