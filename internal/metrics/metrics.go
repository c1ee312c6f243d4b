package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "luxride",
			Name:      "booking_transitions_total",
			Help:      "Count of booking status changes by target status.",
		},
		[]string{"status"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "luxride",
			Name:      "bookings_created_total",
			Help:      "Count of bookings created by riders.",
		},
	)

	profileWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "luxride",
			Name:      "profile_writes_total",
			Help:      "Count of driver profile documents written by kind.",
		},
		[]string{"kind"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "luxride",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingTransitions, bookingsCreated, profileWrites, httpDuration)
	})
}

func IncBookingTransition(status string) {
	bookingTransitions.WithLabelValues(status).Inc()
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncProfileWrite(kind string) {
	profileWrites.WithLabelValues(kind).Inc()
}

func ObserveHTTP(method, route, status string, seconds float64) {
	httpDuration.WithLabelValues(method, route, status).Observe(seconds)
}
