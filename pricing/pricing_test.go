package pricing

import (
	"math"
	"testing"

	"restaurant-bot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(pairs ...int64) []models.OrderItem {
	var out []models.OrderItem
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, models.OrderItem{Price: pairs[i], Quantity: int(pairs[i+1])})
	}
	return out
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name         string
		lines        []models.OrderItem
		deliveryType models.DeliveryType
		want         Quote
	}{
		{
			name:         "two of A and one of B delivered",
			lines:        items(100, 2, 50, 1),
			deliveryType: models.DeliveryTypeDelivery,
			want:         Quote{Subtotal: 250, DeliveryFee: 50, Tax: 13, Total: 313},
		},
		{
			name:         "same cart picked up",
			lines:        items(100, 2, 50, 1),
			deliveryType: models.DeliveryTypePickup,
			want:         Quote{Subtotal: 250, DeliveryFee: 0, Tax: 13, Total: 263},
		},
		{
			name:         "empty delivery type defaults to delivery",
			lines:        items(280, 1),
			deliveryType: "",
			want:         Quote{Subtotal: 280, DeliveryFee: 50, Tax: 14, Total: 344},
		},
		{
			name:         "empty cart still pays delivery",
			lines:        nil,
			deliveryType: models.DeliveryTypeDelivery,
			want:         Quote{Subtotal: 0, DeliveryFee: 50, Tax: 0, Total: 50},
		},
		{
			name:         "tax rounds down below half",
			lines:        items(49, 1),
			deliveryType: models.DeliveryTypePickup,
			want:         Quote{Subtotal: 49, DeliveryFee: 0, Tax: 2, Total: 51},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Calculate(tt.lines, tt.deliveryType))
		})
	}
}

func TestTax(t *testing.T) {
	cases := map[int64]int64{
		0:   0,
		9:   0,  // 0.45
		10:  1,  // 0.5
		29:  1,  // 1.45
		30:  2,  // 1.5
		250: 13, // 12.5
		251: 13, // 12.55
		270: 14, // 13.5
	}
	for subtotal, want := range cases {
		assert.Equal(t, want, Tax(subtotal), "subtotal %d", subtotal)
	}
}

func TestSubtotalIsAdditive(t *testing.T) {
	a := items(120, 3)
	b := items(45, 2, 80, 1)
	joined := append(append([]models.OrderItem{}, a...), b...)

	got := Calculate(joined, models.DeliveryTypePickup).Subtotal
	assert.Equal(t, Calculate(a, models.DeliveryTypePickup).Subtotal+Calculate(b, models.DeliveryTypePickup).Subtotal, got)
}

func TestTotalIsSumOfParts(t *testing.T) {
	for _, dt := range []models.DeliveryType{models.DeliveryTypeDelivery, models.DeliveryTypePickup} {
		q := Calculate(items(333, 3, 17, 4), dt)
		assert.Equal(t, q.Subtotal+q.DeliveryFee+q.Tax, q.Total)
		assert.Equal(t, dt == models.DeliveryTypePickup, q.DeliveryFee == 0)
	}
}

func TestAddLine(t *testing.T) {
	sum, ok := AddLine(250, 100, 3)
	require.True(t, ok)
	assert.Equal(t, int64(550), sum)

	sum, ok = AddLine(0, 0, math.MaxInt32)
	require.True(t, ok)
	assert.Zero(t, sum)

	sum, ok = AddLine(0, MaxSubtotal, 1)
	require.True(t, ok)
	assert.Equal(t, MaxSubtotal, sum)
	q := Calculate(items(MaxSubtotal, 1), models.DeliveryTypeDelivery)
	assert.Positive(t, q.Total)
	assert.Equal(t, q.Subtotal+q.DeliveryFee+q.Tax, q.Total)

	_, ok = AddLine(1, MaxSubtotal, 1)
	assert.False(t, ok)
	_, ok = AddLine(0, math.MaxInt64/2, 3)
	assert.False(t, ok)
}
