package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"restaurant-bot/models"
	"restaurant-bot/orders"
	"restaurant-bot/store"

	"github.com/stretchr/testify/assert"
)

func TestErrorMapper(t *testing.T) {
	m := errorMapper("Failed to place order", restaurantNotFound...)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "nil", err: nil, status: http.StatusOK},
		{name: "validation", err: fmt.Errorf("wrapped: %w", models.Invalid("Address is required for delivery orders")), status: http.StatusBadRequest, message: "Address is required for delivery orders"},
		{name: "store not found", err: fmt.Errorf("get: %w", store.ErrNotFound), status: http.StatusNotFound, message: "Restaurant not found"},
		{name: "service not found", err: orders.ErrRestaurantNotFound, status: http.StatusNotFound, message: "Restaurant not found"},
		{name: "deadline", err: context.DeadlineExceeded, status: http.StatusGatewayTimeout, message: "request timeout"},
		{name: "other", err: errors.New("disk full"), status: http.StatusInternalServerError, message: "Failed to place order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := m.Map(tt.err)
			assert.Equal(t, tt.status, info.Status)
			assert.Equal(t, tt.message, info.Message)
		})
	}
}

func TestErrorMapperDefault(t *testing.T) {
	info := NewErrorMapper().Map(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, info.Status)
	assert.Equal(t, "Something went wrong!", info.Message)
}
