// Package pricing computes order quotes. The same function backs the client
// preview and the server's authoritative total.
package pricing

import (
	"math"

	"restaurant-bot/models"
)

const (
	// DeliveryFee is charged on every delivery order, in whole currency units
	DeliveryFee int64 = 50
	// TaxPercent is applied to the subtotal
	TaxPercent int64 = 5
)

// MaxSubtotal is the largest subtotal whose tax and total still fit in int64
const MaxSubtotal = (math.MaxInt64 - 100) / TaxPercent

// AddLine returns subtotal plus price*quantity. ok is false when the sum would
// pass MaxSubtotal; inputs are expected to be non-negative.
func AddLine(subtotal, price int64, quantity int) (sum int64, ok bool) {
	if price != 0 && int64(quantity) > (MaxSubtotal-subtotal)/price {
		return subtotal, false
	}
	return subtotal + price*int64(quantity), true
}

// Line is anything that carries a unit price and a quantity
type Line interface {
	UnitPrice() int64
	Count() int
}

type Quote struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`
}

// Calculate prices lines for the given delivery type. An empty delivery type
// is treated as delivery.
func Calculate[L Line](lines []L, deliveryType models.DeliveryType) Quote {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.UnitPrice() * int64(l.Count())
	}

	fee := DeliveryFee
	if deliveryType.Normalize() == models.DeliveryTypePickup {
		fee = 0
	}

	tax := Tax(subtotal)
	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal + fee + tax,
	}
}

// Tax rounds half up on whole units: 250 -> 12.5 -> 13. Amounts are never negative.
func Tax(subtotal int64) int64 {
	return (subtotal*TaxPercent + 50) / 100
}
