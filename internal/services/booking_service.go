package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"luxride/internal/domain"
	"luxride/internal/domain/models"
	"luxride/internal/events"
	"luxride/internal/metrics"
	"luxride/internal/repositories"
	"luxride/internal/utils"

	"github.com/google/uuid"
)

const recentRequestsLimit = 5

// BookingService applies driver actions to the shared bookings collection.
// With Strict unset any status may overwrite any other.
type BookingService struct {
	Bookings  *repositories.BookingRepository
	Publisher events.Publisher
	Strict    bool
	Now       func() time.Time
	RequestID string
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s BookingService) publisher() events.Publisher {
	if s.Publisher != nil {
		return s.Publisher
	}
	return events.LogPublisher{}
}

func (s BookingService) Accept(ctx context.Context, id string) (models.Booking, error) {
	return s.SetStatus(ctx, id, string(domain.StatusAccepted))
}

func (s BookingService) Reject(ctx context.Context, id string) (models.Booking, error) {
	return s.SetStatus(ctx, id, string(domain.StatusCancelled))
}

func (s BookingService) Start(ctx context.Context, id string) (models.Booking, error) {
	return s.SetStatus(ctx, id, string(domain.StatusInProgress))
}

func (s BookingService) Complete(ctx context.Context, id string) (models.Booking, error) {
	return s.SetStatus(ctx, id, string(domain.StatusCompleted))
}

// SetStatus moves booking id to status.
func (s BookingService) SetStatus(ctx context.Context, id, status string) (models.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "booking id is required"}
	}
	target, ok := domain.ParseBookingStatus(status)
	if !ok {
		return models.Booking{}, domain.ValidationError{Field: "status", Msg: fmt.Sprintf("unknown status %q", status)}
	}

	var from domain.BookingStatus
	updated, err := s.Bookings.Mutate(ctx, id, func(b *models.Booking) error {
		from = b.Status
		if s.Strict && !domain.CanTransition(from, target) {
			return domain.ConflictError{Resource: "booking", Msg: fmt.Sprintf("cannot move from %s to %s", from, target)}
		}
		b.Status = target
		return nil
	})
	if err != nil {
		return models.Booking{}, mapRepoErr(err)
	}

	metrics.IncBookingTransition(string(target))
	utils.LogEvent(s.RequestID, "bookings", "set_status", fmt.Sprintf("booking_id=%s from=%s to=%s", id, from, target))
	ev := events.NewBookingEvent(id, string(from), string(target), updated.DriverID, s.now())
	if err := s.publisher().Publish(ctx, ev); err != nil {
		utils.LogEvent(s.RequestID, "bookings", "publish_failed", fmt.Sprintf("booking_id=%s err=%v", id, err))
	}
	return updated, nil
}

// Create stores a new requested booking from the rider flow.
func (s BookingService) Create(ctx context.Context, in models.BookingInput) (models.Booking, error) {
	pickup := utils.NormalizeSpace(in.Pickup)
	destination := utils.NormalizeSpace(in.Destination)
	if pickup == "" || destination == "" {
		return models.Booking{}, domain.ValidationError{Field: "route", Msg: "pickup and destination are required"}
	}
	if in.Price < 0 {
		return models.Booking{}, domain.ValidationError{Field: "price", Msg: "price must not be negative"}
	}

	vehicleType := strings.ToLower(utils.TrimOrEmpty(in.VehicleType))
	if vehicleType == "" {
		vehicleType = "standard"
	}
	date, clock := utils.TrimOrEmpty(in.Date), utils.TrimOrEmpty(in.Time)
	datetime := date
	if date != "" && clock != "" {
		datetime = date + "T" + clock
	}

	b := models.Booking{
		ID:          uuid.NewString(),
		Pickup:      pickup,
		Destination: destination,
		Date:        date,
		Time:        clock,
		Datetime:    datetime,
		VehicleType: vehicleType,
		VehicleName: utils.FirstNonEmpty(utils.TrimOrEmpty(in.VehicleName), vehicleType),
		Price:       utils.RoundMoney(in.Price),
		Status:      domain.StatusRequested,
		RiderID:     utils.TrimOrEmpty(in.RiderID),
		Distance:    in.Distance,
		Duration:    in.Duration,
		Timestamp:   utils.NowISO(s.now()),
	}
	if err := s.Bookings.Append(ctx, b); err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to save booking", Err: err}
	}

	metrics.IncBookingCreated()
	utils.LogEvent(s.RequestID, "bookings", "create", "booking_id="+b.ID)
	return b, nil
}

func (s BookingService) Get(ctx context.Context, id string) (models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return models.Booking{}, mapRepoErr(err)
	}
	return b, nil
}

// List accepts "all", "" or any booking status.
func (s BookingService) List(ctx context.Context, filter string) ([]models.Booking, error) {
	var status domain.BookingStatus
	if f := strings.TrimSpace(filter); f != "" && !strings.EqualFold(f, "all") {
		st, ok := domain.ParseBookingStatus(f)
		if !ok {
			return nil, domain.ValidationError{Field: "status", Msg: fmt.Sprintf("unknown filter %q", filter)}
		}
		status = st
	}
	items, err := s.Bookings.List(ctx)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load bookings", Err: err}
	}
	return FilterByStatus(items, status), nil
}

func (s BookingService) Orders(ctx context.Context) (models.Orders, error) {
	items, err := s.Bookings.List(ctx)
	if err != nil {
		return models.Orders{}, domain.InternalError{Msg: "failed to load bookings", Err: err}
	}
	return PartitionOrders(items), nil
}

func (s BookingService) RecentRequests(ctx context.Context) ([]models.Booking, error) {
	items, err := s.Bookings.List(ctx)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load bookings", Err: err}
	}
	return FirstRequested(items, recentRequestsLimit), nil
}

// Seed replaces the collection; ids are generated for records without one.
func (s BookingService) Seed(ctx context.Context, items []models.Booking) (int, error) {
	for i := range items {
		if strings.TrimSpace(items[i].ID) == "" {
			items[i].ID = uuid.NewString()
		}
		if items[i].Status == "" {
			items[i].Status = domain.StatusRequested
		}
	}
	if err := s.Bookings.Replace(ctx, items); err != nil {
		return 0, domain.InternalError{Msg: "failed to seed bookings", Err: err}
	}
	return len(items), nil
}

func mapRepoErr(err error) error {
	switch {
	case errors.Is(err, repositories.ErrBookingNotFound):
		return domain.NotFoundError{Resource: "booking", Err: err}
	case domain.IsConflict(err), domain.IsValidation(err):
		return err
	default:
		return domain.InternalError{Msg: "failed to update booking", Err: err}
	}
}
