package repositories

import (
	"context"
	"errors"

	"luxride/internal/domain/models"
	"luxride/internal/storage"
)

var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository persists the shared "bookings" collection.
type BookingRepository struct {
	col *collection[models.Booking]
}

func NewBookingRepository(store storage.Store) *BookingRepository {
	return &BookingRepository{col: &collection[models.Booking]{store: store, key: storage.KeyBookings}}
}

func (r *BookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	return r.col.list(ctx)
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (models.Booking, error) {
	items, err := r.col.list(ctx)
	if err != nil {
		return models.Booking{}, err
	}
	for _, b := range items {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, ErrBookingNotFound
}

func (r *BookingRepository) Append(ctx context.Context, b models.Booking) error {
	_, err := r.col.update(ctx, func(items []models.Booking) ([]models.Booking, error) {
		return append(items, b), nil
	})
	return err
}

// Mutate applies fn to the booking with id and rewrites the collection.
// fn receives a copy; returning an error aborts the write.
func (r *BookingRepository) Mutate(ctx context.Context, id string, fn func(*models.Booking) error) (models.Booking, error) {
	var updated models.Booking
	_, err := r.col.update(ctx, func(items []models.Booking) ([]models.Booking, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			b := items[i]
			if err := fn(&b); err != nil {
				return nil, err
			}
			items[i] = b
			updated = b
			return items, nil
		}
		return nil, ErrBookingNotFound
	})
	return updated, err
}

// Replace overwrites the whole collection (used by seeding).
func (r *BookingRepository) Replace(ctx context.Context, items []models.Booking) error {
	return r.col.replace(ctx, items)
}
