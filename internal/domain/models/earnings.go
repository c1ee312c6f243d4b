package models

// EarningsData is one month of the earnings chart.
type EarningsData struct {
	Month    string  `json:"month"`
	Earnings float64 `json:"earnings"`
	Rides    int     `json:"rides"`
}

type EarningsSummary struct {
	Total     float64 `json:"total"`
	ThisMonth float64 `json:"thisMonth"`
	LastMonth float64 `json:"lastMonth"`
	Rides     int     `json:"rides"`
}

// DashboardStats feeds the driver dashboard cards.
type DashboardStats struct {
	TotalRides    int       `json:"totalRides"`
	TotalEarnings float64   `json:"totalEarnings"`
	Rating        float64   `json:"rating"`
	ActiveRides   int       `json:"activeRides"`
	TodayRides    int       `json:"todayRides"`
	TodayEarnings float64   `json:"todayEarnings"`
	Recent        []Booking `json:"recentBookings"`
}
