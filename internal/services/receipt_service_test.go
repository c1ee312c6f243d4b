package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"luxride/internal/domain"
	"luxride/internal/domain/models"
	"luxride/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReceiptService(t *testing.T, bookings []models.Booking, trips []models.Trip) ReceiptService {
	store := newTestStore(t)
	tripRepo := repositories.NewTripRepository(store)
	require.NoError(t, tripRepo.Replace(context.Background(), trips))
	return ReceiptService{
		Bookings: seedBookings(t, store, bookings...),
		Trips:    tripRepo,
		Ratings:  repositories.NewRatingRepository(store),
		Location: time.UTC,
		Now:      clock,
	}
}

func TestBookingFromTrip(t *testing.T) {
	b := BookingFromTrip(models.Trip{
		ID:     "t1",
		Route:  "Airport to Grand Hotel",
		Date:   "2026-01-04T10:00",
		Type:   "Premium Sedan XL",
		Price:  55,
		Status: "Completed",
	})
	assert.Equal(t, "Airport", b.Pickup)
	assert.Equal(t, "Grand Hotel", b.Destination)
	assert.Equal(t, "premium-sedan xl", b.VehicleType)
	assert.Equal(t, "Premium Sedan XL", b.VehicleName)
	assert.Equal(t, domain.StatusCompleted, b.Status)
	assert.Equal(t, "2026-01-04T10:00", b.When())

	odd := BookingFromTrip(models.Trip{ID: "t2", Route: "Somewhere"})
	assert.Equal(t, "Somewhere", odd.Pickup)
	assert.Equal(t, "Somewhere", odd.Destination)
}

func TestListTripsMergesCompletedBookings(t *testing.T) {
	svc := newReceiptService(t,
		[]models.Booking{
			{ID: "t1", Pickup: "A", Destination: "B", Status: domain.StatusCompleted, Price: 5},
			{ID: "b2", Pickup: "C", Destination: "D", VehicleName: "Luxury", Status: domain.StatusCompleted, Price: 9},
			{ID: "b3", Pickup: "E", Destination: "F", Status: domain.StatusRequested},
		},
		[]models.Trip{{ID: "t1", Route: "Old to Route", Status: "completed"}},
	)

	trips, err := svc.ListTrips(context.Background())
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "Old to Route", trips[0].Route)
	assert.Equal(t, "b2", trips[1].ID)
	assert.Equal(t, "C to D", trips[1].Route)
	assert.Equal(t, "Luxury", trips[1].Type)
}

func TestFindFallsBackToTrip(t *testing.T) {
	svc := newReceiptService(t, nil, []models.Trip{{ID: "t9", Route: "X to Y", Status: "COMPLETED"}})

	b, err := svc.Find(context.Background(), "t9")
	require.NoError(t, err)
	assert.Equal(t, "X", b.Pickup)

	_, err = svc.Find(context.Background(), "nope")
	assert.True(t, domain.IsNotFound(err))
}

func TestReceiptText(t *testing.T) {
	dist := 12.5
	svc := newReceiptService(t, []models.Booking{{
		ID:          "b1",
		Pickup:      "Airport",
		Destination: "Downtown",
		Datetime:    "2026-03-02T09:05",
		VehicleName: "Luxury Sedan",
		Price:       1234.5,
		Status:      domain.StatusCompleted,
		Distance:    &dist,
	}}, nil)

	data, filename, err := svc.Text(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "luxride-receipt-b1.txt", filename)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "LUXRIDE RECEIPT\n"))
	for _, want := range []string{
		"Booking ID: b1",
		"Date: Mar 2, 2026 9:05 AM",
		"Status: COMPLETED",
		"PICKUP LOCATION\nAirport",
		"DESTINATION\nDowntown",
		"VEHICLE\nLuxury Sedan",
		"Base Fare: $10.00",
		"Distance: 12.5 km",
		"Time: 0 min",
		"TOTAL: $1,234.50",
		"Payment Method: Cash/Card",
		"Driver: Assigned Driver",
		"Thank you for choosing Luxride!",
	} {
		assert.Contains(t, text, want)
	}
}

func TestReceiptPDF(t *testing.T) {
	svc := newReceiptService(t, []models.Booking{{ID: "b1", Pickup: "A", Destination: "B", Status: domain.StatusCompleted, Driver: "Sam"}}, nil)

	data, filename, err := svc.PDF(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "luxride-receipt-b1.pdf", filename)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRate(t *testing.T) {
	ctx := context.Background()
	svc := newReceiptService(t, []models.Booking{
		{ID: "done", Status: domain.StatusCompleted},
		{ID: "open", Status: domain.StatusAccepted},
	}, nil)

	_, err := svc.Rate(ctx, "done", 6)
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Rate(ctx, "open", 4)
	assert.True(t, domain.IsConflict(err))

	_, err = svc.Rate(ctx, "ghost", 4)
	assert.True(t, domain.IsNotFound(err))

	r, err := svc.Rate(ctx, "done", 4)
	require.NoError(t, err)
	assert.Equal(t, "done", r.BookingID)

	ratings, err := svc.Ratings.List(ctx)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, 4, ratings[0].Rating)
}
