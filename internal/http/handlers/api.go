package handlers

import (
	"time"

	"luxride/internal/events"
	"luxride/internal/http/middleware"
	"luxride/internal/repositories"
	"luxride/internal/services"
	"luxride/internal/storage"

	"github.com/gin-gonic/gin"
)

// API carries the shared dependencies; services are built per request so
// each one logs with the caller's request id.
type API struct {
	Store     storage.Store
	Bookings  *repositories.BookingRepository
	Trips     *repositories.TripRepository
	Ratings   *repositories.RatingRepository
	Publisher events.Publisher
	Strict    bool
	Location  *time.Location
	DriverID  func(time.Time) string
	Now       func() time.Time
}

func NewAPI(store storage.Store, pub events.Publisher) *API {
	return &API{
		Store:     store,
		Bookings:  repositories.NewBookingRepository(store),
		Trips:     repositories.NewTripRepository(store),
		Ratings:   repositories.NewRatingRepository(store),
		Publisher: pub,
		Location:  time.Local,
	}
}

func (a *API) bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		Bookings:  a.Bookings,
		Publisher: a.Publisher,
		Strict:    a.Strict,
		Now:       a.Now,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a *API) earningsService(c *gin.Context) services.EarningsService {
	return services.EarningsService{
		Bookings:  a.Bookings,
		Ratings:   a.Ratings,
		Location:  a.Location,
		Now:       a.Now,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a *API) profileService(c *gin.Context) services.ProfileService {
	return services.ProfileService{
		Repo:      repositories.ProfileRepository{Store: a.Store},
		Sessions:  repositories.SessionRepository{Store: a.Store},
		DriverID:  a.DriverID,
		Now:       a.Now,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a *API) receiptService(c *gin.Context) services.ReceiptService {
	return services.ReceiptService{
		Bookings:  a.Bookings,
		Trips:     a.Trips,
		Ratings:   a.Ratings,
		Location:  a.Location,
		Now:       a.Now,
		RequestID: middleware.GetRequestID(c),
	}
}

// SessionService is exported for the RequireDriver middleware.
func (a *API) SessionService(requestID string) services.SessionService {
	return services.SessionService{
		Repo:      repositories.SessionRepository{Store: a.Store},
		RequestID: requestID,
	}
}
