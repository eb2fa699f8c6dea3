// Package events publishes booking lifecycle events to RabbitMQ. Publishing
// is best-effort: errors are logged and returned so callers can ignore them
// without failing the request.
package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"staybook/internal/domain"
)

const bookingQueue = "booking.events"

type Publisher struct{ url string }

func New(url string) *Publisher { return &Publisher{url: url} }

func (p *Publisher) PublishBookingEvent(ctx context.Context, e domain.BookingEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// idempotent; durable so messages survive broker restarts
	if _, err := ch.QueueDeclare(bookingQueue, true, false, false, false, nil); err != nil {
		log.Warn().Err(err).Msg("rabbitmq queue declare failed")
		return err
	}

	body, err := json.Marshal(e)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         e.Type,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", bookingQueue, false, false, pub); err != nil {
		log.Warn().Err(err).Str("type", e.Type).Msg("rabbitmq publish failed")
		return err
	}
	return nil
}
