// Package events publishes booking lifecycle events to Kafka. Publishing
// is best-effort: callers fire it from detached goroutines and a lost
// event never fails the booking itself.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"

	"barberia/config"
	"barberia/infras/kafka"
	"barberia/infras/otel"
	"barberia/shared/constant"
	"barberia/shared/timezone"
)

const (
	TypeBookingConfirmed = "booking.confirmed"
	TypeBookingCancelled = "booking.cancelled"
)

// BookingEvent is the wire payload for a booking lifecycle change. It
// carries everything the notifier needs so consumers never have to call
// back into the service.
type BookingEvent struct {
	Type        string   `json:"type"`
	BookingID   string   `json:"booking_id"`
	BarberID    string   `json:"barber_id"`
	BarberName  string   `json:"barber_name"`
	ClientName  string   `json:"client_name"`
	ClientPhone string   `json:"client_phone"`
	BookingDate string   `json:"booking_date"`
	SlotTime    string   `json:"slot_time"`
	Services    []string `json:"services"`
	TotalPrice  int64    `json:"total_price"`
	OccurredAt  string   `json:"occurred_at"`
}

type Publisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent) error
}

type publisherImpl struct {
	cfg    *config.Config
	client kafka.Client
	otel   otel.Otel
}

func NewPublisher(cfg *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	return &publisherImpl{
		cfg:    cfg,
		client: client,
		otel:   otel,
	}
}

func (p *publisherImpl) PublishBookingEvent(ctx context.Context, event BookingEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishBookingEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"event.type":       event.Type,
		"event.booking_id": event.BookingID,
	})

	if event.OccurredAt == "" {
		event.OccurredAt = timezone.Format(timezone.Now(), constant.DateFormat)
	}

	message := kafka.Message{
		Key:   event.BookingID,
		Value: event,
	}

	if err = p.client.SendMessages(ctx, p.cfg.Kafka.BookingTopic, message); err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}
