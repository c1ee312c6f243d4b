package models

// Trip is a display-only historical record of a ride.
type Trip struct {
	ID     string  `json:"id"`
	Route  string  `json:"route"`
	Date   string  `json:"date"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
}

// Rating is a rider's star rating for a completed ride.
type Rating struct {
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating"`
	Timestamp string `json:"timestamp"`
}
