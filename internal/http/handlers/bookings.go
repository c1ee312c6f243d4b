package handlers

import (
	"net/http"

	"luxride/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// ListBookings supports ?status=all|requested|accepted|in-progress|completed|cancelled.
func (a *API) ListBookings(c *gin.Context) {
	items, err := a.bookingService(c).List(c.Request.Context(), c.Query("status"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items, "count": len(items)})
}

func (a *API) GetBooking(c *gin.Context) {
	b, err := a.bookingService(c).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": b})
}

func (a *API) CreateBooking(c *gin.Context) {
	var in models.BookingInput
	if !BindJSONOrError(c, &in) {
		return
	}
	b, err := a.bookingService(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": b})
}

func (a *API) AcceptBooking(c *gin.Context) {
	a.transition(c, "accepted")
}

func (a *API) RejectBooking(c *gin.Context) {
	a.transition(c, "cancelled")
}

func (a *API) StartBooking(c *gin.Context) {
	a.transition(c, "in-progress")
}

func (a *API) CompleteBooking(c *gin.Context) {
	a.transition(c, "completed")
}

type statusPayload struct {
	Status string `json:"status"`
}

// UpdateBookingStatus is the generic form used by the rides page.
func (a *API) UpdateBookingStatus(c *gin.Context) {
	var in statusPayload
	if !BindJSONOrError(c, &in) {
		return
	}
	a.transition(c, in.Status)
}

func (a *API) transition(c *gin.Context, status string) {
	b, err := a.bookingService(c).SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking " + string(b.Status), "data": b})
}

func (a *API) Orders(c *gin.Context) {
	orders, err := a.bookingService(c).Orders(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func (a *API) RecentRequests(c *gin.Context) {
	items, err := a.bookingService(c).RecentRequests(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}
