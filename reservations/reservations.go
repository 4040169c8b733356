// Package reservations books tables and lists bookings by email.
package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-bot/events"
	"restaurant-bot/metrics"
	"restaurant-bot/models"
	"restaurant-bot/store"

	"go.uber.org/zap"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

type Request struct {
	CustomerName    string `json:"customerName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	RestaurantID    string `json:"restaurantId"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

type Service struct {
	catalog      store.Catalog
	reservations store.Reservations
	publisher    events.Publisher
	metrics      *metrics.Metrics
	logger       *zap.SugaredLogger
	now          func() time.Time
}

func NewService(catalog store.Catalog, reservations store.Reservations, publisher events.Publisher, m *metrics.Metrics, logger *zap.SugaredLogger) *Service {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &Service{
		catalog:      catalog,
		reservations: reservations,
		publisher:    publisher,
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock replaces the clock used for the not-in-the-past check
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ParseDate accepts a calendar date in the clock's location or an RFC 3339 timestamp
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if d, err := time.ParseInLocation(models.DateLayout, value, loc); err == nil {
		return d, nil
	}
	if d, err := time.Parse(time.RFC3339, value); err == nil {
		return d, nil
	}
	return time.Time{}, models.Invalid("date must be YYYY-MM-DD")
}

// StartOfDay is local midnight of t's calendar day
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Validate trims the request and returns the parsed reservation date
func (r *Request) Validate(now time.Time) (time.Time, error) {
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.RestaurantID = strings.TrimSpace(r.RestaurantID)
	r.Time = strings.TrimSpace(r.Time)
	r.SpecialRequests = strings.TrimSpace(r.SpecialRequests)

	if r.CustomerName == "" || r.Email == "" || r.Phone == "" || r.RestaurantID == "" ||
		strings.TrimSpace(r.Date) == "" || r.Time == "" || r.Guests == 0 {
		return time.Time{}, models.Invalid(models.MsgRequiredFields)
	}
	if r.Guests < 1 {
		return time.Time{}, models.Invalid("Number of guests must be at least 1")
	}

	date, err := ParseDate(r.Date, now.Location())
	if err != nil {
		return time.Time{}, err
	}
	if date.Before(StartOfDay(now)) {
		return time.Time{}, models.Invalid("Reservation date must be today or in the future")
	}
	return date, nil
}

// Create validates and stores a reservation, then publishes reservation.created
func (s *Service) Create(ctx context.Context, req Request) (*models.Reservation, error) {
	date, err := req.Validate(s.now())
	if err != nil {
		return nil, err
	}

	if _, err := s.catalog.GetRestaurant(ctx, req.RestaurantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	reservation := &models.Reservation{
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Phone:           req.Phone,
		RestaurantID:    req.RestaurantID,
		Date:            date,
		Time:            req.Time,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	}
	if err := s.reservations.CreateReservation(ctx, reservation); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.logger.Infow("reservation created",
		"reservation_id", reservation.ID,
		"restaurant_id", reservation.RestaurantID,
		"date", reservation.Date.Format(models.DateLayout),
		"guests", reservation.Guests,
	)
	if s.metrics != nil {
		s.metrics.ReservationsCreated.Inc()
		s.metrics.ReservationGuests.Observe(float64(reservation.Guests))
	}
	if err := s.publisher.Publish(ctx, events.ReservationCreated(reservation)); err != nil {
		s.logger.Warnw("failed to publish reservation event", "reservation_id", reservation.ID, "error", err)
	}
	return reservation, nil
}

// ByEmail lists reservations for an email, latest date first
func (s *Service) ByEmail(ctx context.Context, email string) ([]models.Reservation, error) {
	return s.reservations.ReservationsByEmail(ctx, strings.TrimSpace(email))
}
