// Package events publishes domain events for placed orders and new
// reservations to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"restaurant-bot/models"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	EntityOrder       = "order"
	EntityReservation = "reservation"

	ActionPlaced  = "placed"
	ActionCreated = "created"
)

// Event is the envelope written as the Kafka message value
type Event struct {
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId"`
	Topic      string            `json:"topic"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data"`
	Timestamp  time.Time         `json:"timestamp"`
}

func OrderPlaced(o *models.Order) Event {
	return Event{
		Entity:     EntityOrder,
		Action:     ActionPlaced,
		ResourceID: o.ID,
		Topic:      EntityOrder + "." + ActionPlaced,
		Metadata: map[string]string{
			"restaurantId": o.RestaurantID,
			"deliveryType": string(o.DeliveryType),
		},
		Data:      o,
		Timestamp: time.Now().UTC(),
	}
}

func ReservationCreated(r *models.Reservation) Event {
	return Event{
		Entity:     EntityReservation,
		Action:     ActionCreated,
		ResourceID: r.ID,
		Topic:      EntityReservation + "." + ActionCreated,
		Metadata: map[string]string{
			"restaurantId": r.RestaurantID,
			"date":         r.Date.Format(models.DateLayout),
		},
		Data:      r,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher hands events to the broker. Callers treat failures as non-fatal.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	msg, err := encode(e)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", e.Topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// encode keys messages by resource id so events for one record stay ordered
func encode(e Event) (kafka.Message, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode %s event: %w", e.Topic, err)
	}
	return kafka.Message{
		Key:   []byte(e.ResourceID),
		Value: value,
		Time:  e.Timestamp,
		Headers: []kafka.Header{
			{Key: "entity", Value: []byte(e.Entity)},
			{Key: "action", Value: []byte(e.Action)},
		},
	}, nil
}

// Logged wraps a publisher so failures are logged and swallowed.
type Logged struct {
	Publisher Publisher
	Log       *zap.SugaredLogger
}

func (l Logged) Publish(ctx context.Context, e Event) error {
	if err := l.Publisher.Publish(ctx, e); err != nil {
		l.Log.Warnw("event publish failed", "topic", e.Topic, "resource_id", e.ResourceID, "error", err)
	}
	return nil
}

func (l Logged) Close() error {
	return l.Publisher.Close()
}
