// Package orders places orders against the catalog and lists them by email.
package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-bot/events"
	"restaurant-bot/metrics"
	"restaurant-bot/models"
	"restaurant-bot/pricing"
	"restaurant-bot/store"

	"go.uber.org/zap"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

// Request is an order submission. Item prices are taken as submitted.
type Request struct {
	CustomerName  string              `json:"customerName"`
	Email         string              `json:"email"`
	Phone         string              `json:"phone"`
	Address       string              `json:"address"`
	RestaurantID  string              `json:"restaurantId"`
	Items         []models.OrderItem  `json:"items"`
	DeliveryType  models.DeliveryType `json:"deliveryType"`
	PaymentType   models.PaymentType  `json:"paymentType,omitempty"`
	PaymentMethod string              `json:"paymentMethod,omitempty"`
}

type Service struct {
	catalog   store.Catalog
	orders    store.Orders
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    *zap.SugaredLogger
}

func NewService(catalog store.Catalog, orders store.Orders, publisher events.Publisher, m *metrics.Metrics, logger *zap.SugaredLogger) *Service {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &Service{
		catalog:   catalog,
		orders:    orders,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// Validate trims the request in place and checks required fields and items
func (r *Request) Validate() error {
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	r.RestaurantID = strings.TrimSpace(r.RestaurantID)
	r.DeliveryType = r.DeliveryType.Normalize()

	if r.CustomerName == "" || r.Email == "" || r.Phone == "" || r.RestaurantID == "" || len(r.Items) == 0 {
		return models.Invalid(models.MsgRequiredFields)
	}
	if !r.DeliveryType.Valid() {
		return models.Invalid("deliveryType must be %q or %q", models.DeliveryTypeDelivery, models.DeliveryTypePickup)
	}
	if r.DeliveryType == models.DeliveryTypeDelivery && r.Address == "" {
		return models.Invalid("Address is required for delivery orders")
	}
	switch r.PaymentType {
	case "", models.PaymentCashOnDelivery, models.PaymentOnline:
	default:
		return models.Invalid("paymentType must be %q or %q", models.PaymentCashOnDelivery, models.PaymentOnline)
	}
	var subtotal int64
	for i, item := range r.Items {
		if strings.TrimSpace(item.MenuItemID) == "" || strings.TrimSpace(item.Name) == "" {
			return models.Invalid("item %d: menuItemId and name are required", i+1)
		}
		if item.Quantity < 1 {
			return models.Invalid("item %d: quantity must be at least 1", i+1)
		}
		if item.Price < 0 {
			return models.Invalid("item %d: price must not be negative", i+1)
		}
		var ok bool
		if subtotal, ok = pricing.AddLine(subtotal, item.Price, item.Quantity); !ok {
			return models.Invalid("item %d: order amount is too large", i+1)
		}
	}
	return nil
}

// Place validates, prices and stores the order, then publishes order.placed
func (s *Service) Place(ctx context.Context, req Request) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.catalog.GetRestaurant(ctx, req.RestaurantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	items := make([]models.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.OrderItem{
			MenuItemID: strings.TrimSpace(item.MenuItemID),
			Name:       strings.TrimSpace(item.Name),
			Price:      item.Price,
			Quantity:   item.Quantity,
		}
	}
	quote := pricing.Calculate(items, req.DeliveryType)

	order := &models.Order{
		CustomerName:  req.CustomerName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		RestaurantID:  req.RestaurantID,
		Items:         items,
		Subtotal:      quote.Subtotal,
		DeliveryFee:   quote.DeliveryFee,
		Tax:           quote.Tax,
		TotalAmount:   quote.Total,
		Status:        models.StatusPending,
		DeliveryType:  req.DeliveryType,
		PaymentType:   req.PaymentType,
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
	}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Infow("order placed",
		"order_id", order.ID,
		"restaurant_id", order.RestaurantID,
		"delivery_type", order.DeliveryType,
		"items", len(order.Items),
		"total", order.TotalAmount,
	)
	if s.metrics != nil {
		s.metrics.OrdersPlaced.WithLabelValues(string(order.DeliveryType)).Inc()
		s.metrics.OrderRevenue.WithLabelValues(string(order.DeliveryType)).Add(float64(order.TotalAmount))
	}
	if err := s.publisher.Publish(ctx, events.OrderPlaced(order)); err != nil {
		s.logger.Warnw("failed to publish order event", "order_id", order.ID, "error", err)
	}
	return order, nil
}

// ByEmail lists the orders for an email, newest first
func (s *Service) ByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return s.orders.OrdersByEmail(ctx, strings.TrimSpace(email))
}
