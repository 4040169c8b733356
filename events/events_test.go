package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"restaurant-bot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type failingPublisher struct{ calls int }

func (f *failingPublisher) Publish(context.Context, Event) error {
	f.calls++
	return errors.New("broker down")
}

func (f *failingPublisher) Close() error { return nil }

func TestOrderPlaced(t *testing.T) {
	o := &models.Order{ID: "o-1", RestaurantID: "r-1", DeliveryType: models.DeliveryTypePickup, TotalAmount: 263}

	e := OrderPlaced(o)
	assert.Equal(t, "order.placed", e.Topic)
	assert.Equal(t, "o-1", e.ResourceID)
	assert.Equal(t, "pickup", e.Metadata["deliveryType"])
	assert.Equal(t, "r-1", e.Metadata["restaurantId"])
}

func TestReservationCreated(t *testing.T) {
	r := &models.Reservation{ID: "res-1", RestaurantID: "r-1", Date: time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)}

	e := ReservationCreated(r)
	assert.Equal(t, "reservation.created", e.Topic)
	assert.Equal(t, "2030-01-02", e.Metadata["date"])
}

func TestEncode(t *testing.T) {
	o := &models.Order{ID: "o-1", RestaurantID: "r-1", TotalAmount: 313}
	msg, err := encode(OrderPlaced(o))
	require.NoError(t, err)

	assert.Equal(t, []byte("o-1"), msg.Key)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "entity", msg.Headers[0].Key)
	assert.Equal(t, []byte("order"), msg.Headers[0].Value)

	var decoded struct {
		Entity string `json:"entity"`
		Action string `json:"action"`
		Data   struct {
			TotalAmount int64 `json:"totalAmount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "order", decoded.Entity)
	assert.Equal(t, "placed", decoded.Action)
	assert.Equal(t, int64(313), decoded.Data.TotalAmount)
}

func TestNoop(t *testing.T) {
	var p Publisher = Noop{}
	assert.NoError(t, p.Publish(context.Background(), Event{}))
	assert.NoError(t, p.Close())
}

func TestLoggedSwallowsErrors(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	inner := &failingPublisher{}
	p := Logged{Publisher: inner, Log: zap.New(core).Sugar()}

	err := p.Publish(context.Background(), OrderPlaced(&models.Order{ID: "o-1"}))
	assert.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "event publish failed", logs.All()[0].Message)
}
