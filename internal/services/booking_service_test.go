package services

import (
	"context"
	"errors"
	"testing"

	"luxride/internal/domain"
	"luxride/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBookings() []models.Booking {
	return []models.Booking{
		{ID: "b1", Pickup: "Airport", Destination: "Downtown", Status: domain.StatusRequested, Price: 45},
		{ID: "b2", Pickup: "Hotel", Destination: "Station", Status: domain.StatusAccepted, Price: 20},
		{ID: "b3", Pickup: "Mall", Destination: "Park", Status: domain.StatusInProgress, Price: 15},
		{ID: "b4", Pickup: "Office", Destination: "Home", Status: domain.StatusCompleted, Price: 30},
		{ID: "b5", Pickup: "Gym", Destination: "Cafe", Status: domain.StatusCancelled, Price: 12},
		{ID: "b6", Pickup: "Bar", Destination: "Club", Status: domain.StatusRequested, Price: 9},
	}
}

func TestAcceptPublishesEvent(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc := BookingService{Bookings: seedBookings(t, newTestStore(t), sampleBookings()...), Publisher: pub, Now: clock}

	b, err := svc.Accept(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, b.Status)

	stored, err := svc.Get(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, stored.Status)

	require.Len(t, pub.events, 1)
	assert.Equal(t, "booking.accepted", pub.events[0].Type)
	assert.Equal(t, "requested", pub.events[0].FromStatus)
	assert.Equal(t, "accepted", pub.events[0].ToStatus)
}

func TestDriverActionsMapToStatuses(t *testing.T) {
	ctx := context.Background()
	svc := BookingService{Bookings: seedBookings(t, newTestStore(t), sampleBookings()...), Publisher: &recordingPublisher{}}

	b, err := svc.Reject(ctx, "b6")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, b.Status)

	b, err = svc.Start(ctx, "b2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, b.Status)

	b, err = svc.Complete(ctx, "b2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, b.Status)
}

func TestSetStatusPermissiveByDefault(t *testing.T) {
	svc := BookingService{Bookings: seedBookings(t, newTestStore(t), sampleBookings()...), Publisher: &recordingPublisher{}}

	b, err := svc.Accept(context.Background(), "b4")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, b.Status)
}

func TestSetStatusStrictRejectsIllegalMove(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc := BookingService{Bookings: seedBookings(t, newTestStore(t), sampleBookings()...), Publisher: pub, Strict: true}

	_, err := svc.Accept(ctx, "b4")
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.Empty(t, pub.events)

	stored, err := svc.Get(ctx, "b4")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, stored.Status)
}

func TestSetStatusErrors(t *testing.T) {
	svc := BookingService{Bookings: seedBookings(t, newTestStore(t), sampleBookings()...), Publisher: &recordingPublisher{}}

	_, err := svc.SetStatus(context.Background(), "b1", "flying")
	assert.True(t, domain.IsValidation(err))

	_, err = svc.SetStatus(context.Background(), "", "accepted")
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Accept(context.Background(), "missing")
	assert.True(t, domain.IsNotFound(err))
}

func TestPublishFailureDoesNotFailTransition(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := BookingService{Bookings: seedBookings(t, newTestStore(t), sampleBookings()...), Publisher: pub}

	b, err := svc.Complete(context.Background(), "b3")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, b.Status)
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	svc := BookingService{Bookings: seedBookings(t, newTestStore(t), sampleBookings()...)}

	all, err := svc.List(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, all, 6)

	requested, err := svc.List(ctx, "Requested")
	require.NoError(t, err)
	require.Len(t, requested, 2)
	assert.Equal(t, "b1", requested[0].ID)
	assert.Equal(t, "b6", requested[1].ID)

	_, err = svc.List(ctx, "unknown")
	assert.True(t, domain.IsValidation(err))
}

func TestOrdersPartition(t *testing.T) {
	orders, err := BookingService{Bookings: seedBookings(t, newTestStore(t), sampleBookings()...)}.Orders(context.Background())
	require.NoError(t, err)

	ids := func(items []models.Booking) []string {
		out := []string{}
		for _, b := range items {
			out = append(out, b.ID)
		}
		return out
	}
	assert.Equal(t, []string{"b1", "b6"}, ids(orders.Requested))
	assert.Equal(t, []string{"b2", "b3"}, ids(orders.Accepted))
	assert.Equal(t, []string{"b4"}, ids(orders.Completed))
}

func TestRecentRequestsLimit(t *testing.T) {
	var items []models.Booking
	for _, id := range []string{"r1", "r2", "r3", "r4", "r5", "r6", "r7"} {
		items = append(items, models.Booking{ID: id, Status: domain.StatusRequested})
	}
	items = append([]models.Booking{{ID: "c0", Status: domain.StatusCompleted}}, items...)

	recent, err := BookingService{Bookings: seedBookings(t, newTestStore(t), items...)}.RecentRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "r1", recent[0].ID)
	assert.Equal(t, "r5", recent[4].ID)
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	svc := BookingService{Bookings: seedBookings(t, newTestStore(t)), Now: clock}

	b, err := svc.Create(ctx, models.BookingInput{
		Pickup:      "  Airport  Terminal 2 ",
		Destination: "Downtown",
		Date:        "2026-03-20",
		Time:        "09:15",
		VehicleType: "Luxury",
		Price:       88.456,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "Airport Terminal 2", b.Pickup)
	assert.Equal(t, "2026-03-20T09:15", b.Datetime)
	assert.Equal(t, "luxury", b.VehicleType)
	assert.Equal(t, 88.46, b.Price)
	assert.Equal(t, domain.StatusRequested, b.Status)
	assert.Equal(t, "2026-03-15T10:30:00.000Z", b.Timestamp)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.Create(ctx, models.BookingInput{Pickup: "A"})
	assert.True(t, domain.IsValidation(err))
	_, err = svc.Create(ctx, models.BookingInput{Pickup: "A", Destination: "B", Price: -1})
	assert.True(t, domain.IsValidation(err))
}

func TestSeedFillsIDs(t *testing.T) {
	ctx := context.Background()
	svc := BookingService{Bookings: seedBookings(t, newTestStore(t), sampleBookings()...)}

	n, err := svc.Seed(ctx, []models.Booking{{Pickup: "A", Destination: "B"}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := svc.List(ctx, "all")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.NotEmpty(t, all[0].ID)
	assert.Equal(t, domain.StatusRequested, all[0].Status)
}
