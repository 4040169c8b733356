package statemachine

import (
	"testing"

	"restaurant-bot/models"

	"github.com/stretchr/testify/assert"
)

func TestValidTransitionsFrom(t *testing.T) {
	tests := []struct {
		from models.OrderStatus
		want []models.OrderStatus
	}{
		{models.StatusPending, []models.OrderStatus{models.StatusConfirmed, models.StatusCancelled}},
		{models.StatusConfirmed, []models.OrderStatus{models.StatusPreparing, models.StatusCancelled}},
		{models.StatusPreparing, []models.OrderStatus{models.StatusDelivered}},
		{models.StatusDelivered, nil},
		{models.StatusCancelled, nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidTransitionsFrom(tt.from), "from %s", tt.from)
		assert.Equal(t, tt.want == nil, IsTerminal(tt.from), "terminal %s", tt.from)
	}
}

func TestDescribe(t *testing.T) {
	info := Describe()
	assert.Equal(t, models.StatusPending, info.Initial)
	assert.Equal(t, models.OrderStatuses, info.Statuses)
	assert.ElementsMatch(t, []models.OrderStatus{models.StatusDelivered, models.StatusCancelled}, info.TerminalStates)
	assert.NotEmpty(t, info.Transitions)
}
