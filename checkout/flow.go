package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restaurant-bot/cart"
	"restaurant-bot/client"
	"restaurant-bot/models"
	"restaurant-bot/orders"
	"restaurant-bot/pricing"
	"restaurant-bot/reservations"

	"go.uber.org/zap"
)

var (
	ErrEmptyCart    = errors.New("your cart is empty")
	ErrNoRestaurant = errors.New("restaurant information is missing, select items from a menu first")
)

// Submitter is the subset of the API client the flow needs
type Submitter interface {
	PlaceOrder(ctx context.Context, req orders.Request) (*client.OrderResponse, error)
	CreateReservation(ctx context.Context, req reservations.Request) (*client.ReservationResponse, error)
}

type Flow struct {
	api     Submitter
	session *cart.Session
	delay   time.Duration
	now     func() time.Time
	logger  *zap.SugaredLogger
}

func NewFlow(api Submitter, session *cart.Session, logger *zap.SugaredLogger) *Flow {
	return &Flow{
		api:     api,
		session: session,
		delay:   GatewayDelay,
		now:     time.Now,
		logger:  logger,
	}
}

// WithDelay overrides the simulated gateway delay
func (f *Flow) WithDelay(d time.Duration) *Flow {
	f.delay = d
	return f
}

func (f *Flow) WithClock(now func() time.Time) *Flow {
	f.now = now
	return f
}

// Quote prices the current cart for the chosen delivery type
func (f *Flow) Quote(deliveryType models.DeliveryType) pricing.Quote {
	return f.session.Cart.Quote(deliveryType)
}

// PlaceOrder validates the form, runs the payment step and submits the cart.
// The session is cleared only after the server accepted the order.
func (f *Flow) PlaceOrder(ctx context.Context, details Details, payment Payment) (*models.Order, error) {
	if err := ValidateDetails(&details); err != nil {
		return nil, err
	}
	if f.session.Cart.Empty() {
		return nil, ErrEmptyCart
	}
	if f.session.Restaurant == nil || f.session.Restaurant.ID == "" {
		return nil, ErrNoRestaurant
	}
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	if payment.Type == models.PaymentOnline {
		f.logger.Infow("processing payment", "method", payment.Method)
		if err := SimulateGateway(ctx, f.delay); err != nil {
			return nil, fmt.Errorf("payment interrupted: %w", err)
		}
	}

	res, err := f.api.PlaceOrder(ctx, orders.Request{
		CustomerName:  details.CustomerName,
		Email:         details.Email,
		Phone:         details.Phone,
		Address:       details.Address,
		RestaurantID:  f.session.Restaurant.ID,
		Items:         f.session.Cart.OrderItems(),
		DeliveryType:  details.DeliveryType,
		PaymentType:   payment.Type,
		PaymentMethod: payment.Annotation(),
	})
	if err != nil {
		return nil, err
	}

	if err := f.session.Clear(); err != nil {
		f.logger.Warnw("order placed but cart could not be cleared", "order_id", res.Order.ID, "error", err)
	}
	return res.Order, nil
}

// Reserve validates the booking form and submits it
func (f *Flow) Reserve(ctx context.Context, req reservations.Request) (*models.Reservation, error) {
	if err := ValidateReservation(&req, f.now()); err != nil {
		return nil, err
	}
	res, err := f.api.CreateReservation(ctx, req)
	if err != nil {
		return nil, err
	}
	return res.Reservation, nil
}
