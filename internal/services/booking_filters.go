package services

import (
	"luxride/internal/domain"
	"luxride/internal/domain/models"
)

// FilterByStatus keeps stored order. An empty status keeps everything.
func FilterByStatus(items []models.Booking, status domain.BookingStatus) []models.Booking {
	out := []models.Booking{}
	for _, b := range items {
		if status == "" || b.Status == status {
			out = append(out, b)
		}
	}
	return out
}

// PartitionOrders builds the order board. Cancelled bookings appear in no column.
func PartitionOrders(items []models.Booking) models.Orders {
	out := models.Orders{
		Requested: []models.Booking{},
		Accepted:  []models.Booking{},
		Completed: []models.Booking{},
	}
	for _, b := range items {
		switch {
		case b.Status == domain.StatusRequested:
			out.Requested = append(out.Requested, b)
		case b.Status.Active():
			out.Accepted = append(out.Accepted, b)
		case b.Status == domain.StatusCompleted:
			out.Completed = append(out.Completed, b)
		}
	}
	return out
}

// FirstRequested returns up to n requested bookings in stored order.
func FirstRequested(items []models.Booking, n int) []models.Booking {
	out := []models.Booking{}
	for _, b := range items {
		if len(out) >= n {
			break
		}
		if b.Status == domain.StatusRequested {
			out = append(out, b)
		}
	}
	return out
}
