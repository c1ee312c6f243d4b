// Package events publishes booking lifecycle changes.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"luxride/internal/utils"

	"github.com/segmentio/kafka-go"
)

// BookingEvent is emitted whenever a booking changes status.
type BookingEvent struct {
	Type       string `json:"type"`
	BookingID  string `json:"booking_id"`
	FromStatus string `json:"from_status,omitempty"`
	ToStatus   string `json:"to_status"`
	DriverID   string `json:"driver_id,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

func NewBookingEvent(bookingID, from, to, driverID string, at time.Time) BookingEvent {
	return BookingEvent{
		Type:       "booking." + to,
		BookingID:  bookingID,
		FromStatus: from,
		ToStatus:   to,
		DriverID:   driverID,
		OccurredAt: at.UTC().Format(time.RFC3339),
	}
}

type Publisher interface {
	Publish(ctx context.Context, ev BookingEvent) error
	Close() error
}

// LogPublisher writes events to the structured log. Used when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, ev BookingEvent) error {
	utils.LogEvent("", "events", ev.Type, fmt.Sprintf("booking_id=%s from=%s to=%s", ev.BookingID, ev.FromStatus, ev.ToStatus))
	return nil
}

func (LogPublisher) Close() error { return nil }

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// DefaultPublishTimeout bounds one publish; the booking change is already stored by then.
const DefaultPublishTimeout = 3 * time.Second

// KafkaPublisher sends events keyed by booking id so one booking stays on one partition.
type KafkaPublisher struct {
	w       messageWriter
	timeout time.Duration
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{w: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		MaxAttempts:  3,
	}, timeout: DefaultPublishTimeout}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev BookingEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.BookingID),
		Value: payload,
	})
}

func (p *KafkaPublisher) Close() error { return p.w.Close() }

// NewPublisher picks Kafka when brokers are configured.
func NewPublisher(brokers []string, topic string) Publisher {
	if len(brokers) == 0 {
		return LogPublisher{}
	}
	return NewKafkaPublisher(brokers, topic)
}
