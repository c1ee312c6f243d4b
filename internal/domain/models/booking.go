package models

import "luxride/internal/domain"

// Booking is a ride request record as stored under the "bookings" key.
type Booking struct {
	ID          string               `json:"id"`
	Pickup      string               `json:"pickup"`
	Destination string               `json:"destination"`
	Date        string               `json:"date,omitempty"`
	Time        string               `json:"time,omitempty"`
	Datetime    string               `json:"datetime,omitempty"`
	VehicleType string               `json:"vehicleType"`
	VehicleName string               `json:"vehicleName"`
	Price       float64              `json:"price"`
	Status      domain.BookingStatus `json:"status"`
	RiderID     string               `json:"riderId,omitempty"`
	DriverID    string               `json:"driverId,omitempty"`
	Driver      string               `json:"driver,omitempty"`
	Distance    *float64             `json:"distance,omitempty"`
	Duration    *float64             `json:"duration,omitempty"`
	Timestamp   string               `json:"timestamp"`
	PaymentID   string               `json:"paymentId,omitempty"`
	Archived    bool                 `json:"archived,omitempty"`
}

// When returns the raw instant used for bucketing: datetime, falling back to timestamp.
func (b Booking) When() string {
	if b.Datetime != "" {
		return b.Datetime
	}
	return b.Timestamp
}

// BookingInput is the rider-side payload that creates a booking.
type BookingInput struct {
	Pickup      string   `json:"pickup"`
	Destination string   `json:"destination"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	VehicleType string   `json:"vehicleType"`
	VehicleName string   `json:"vehicleName"`
	Price       float64  `json:"price"`
	RiderID     string   `json:"riderId"`
	Distance    *float64 `json:"distance"`
	Duration    *float64 `json:"duration"`
}

// Orders is the driver's order board.
type Orders struct {
	Requested []Booking `json:"requested"`
	Accepted  []Booking `json:"accepted"`
	Completed []Booking `json:"completed"`
}

// VehicleTypes lists the fleet classes offered to riders.
var VehicleTypes = []string{"standard", "premium", "luxury", "xl"}
