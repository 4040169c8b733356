package handlers

import (
	"context"
	"errors"
	"net/http"

	"restaurant-bot/models"
	"restaurant-bot/orders"
	"restaurant-bot/reservations"
	"restaurant-bot/store"
)

// HTTPErrorInfo is the status and client-facing message for an error
type HTTPErrorInfo struct {
	Status  int
	Message string
}

type ErrorMapping struct {
	Error   error
	Status  int
	Message string
}

// ErrorMapper maps domain errors to HTTP responses. Validation errors always
// map to 400 with their own reason.
type ErrorMapper struct {
	mappings       []ErrorMapping
	defaultStatus  int
	defaultMessage string
}

func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{
		defaultStatus:  http.StatusInternalServerError,
		defaultMessage: "Something went wrong!",
	}
}

func (m *ErrorMapper) WithMapping(err error, status int, message string) *ErrorMapper {
	m.mappings = append(m.mappings, ErrorMapping{Error: err, Status: status, Message: message})
	return m
}

func (m *ErrorMapper) WithDefault(status int, message string) *ErrorMapper {
	m.defaultStatus = status
	m.defaultMessage = message
	return m
}

func (m *ErrorMapper) Map(err error) HTTPErrorInfo {
	if err == nil {
		return HTTPErrorInfo{Status: http.StatusOK}
	}

	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return HTTPErrorInfo{Status: http.StatusBadRequest, Message: ve.Reason}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return HTTPErrorInfo{Status: http.StatusGatewayTimeout, Message: "request timeout"}
	}
	if errors.Is(err, context.Canceled) {
		return HTTPErrorInfo{Status: http.StatusServiceUnavailable, Message: "request cancelled"}
	}

	for _, mapping := range m.mappings {
		if errors.Is(err, mapping.Error) {
			return HTTPErrorInfo{Status: mapping.Status, Message: mapping.Message}
		}
	}
	return HTTPErrorInfo{Status: m.defaultStatus, Message: m.defaultMessage}
}

// errorMapper builds the mapper for one endpoint; fallback is its 500 message
func errorMapper(fallback string, mappings ...ErrorMapping) *ErrorMapper {
	m := NewErrorMapper().WithDefault(http.StatusInternalServerError, fallback)
	for _, mapping := range mappings {
		m.WithMapping(mapping.Error, mapping.Status, mapping.Message)
	}
	return m
}

var (
	restaurantNotFound = []ErrorMapping{
		{Error: store.ErrNotFound, Status: http.StatusNotFound, Message: "Restaurant not found"},
		{Error: orders.ErrRestaurantNotFound, Status: http.StatusNotFound, Message: "Restaurant not found"},
		{Error: reservations.ErrRestaurantNotFound, Status: http.StatusNotFound, Message: "Restaurant not found"},
	}
	menuItemNotFound = []ErrorMapping{
		{Error: store.ErrNotFound, Status: http.StatusNotFound, Message: "Menu item not found"},
	}
)
