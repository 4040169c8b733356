// Package store defines the persistence contract shared by the SQL and
// document-store backends.
package store

import (
	"context"
	"errors"

	"restaurant-bot/models"
)

var ErrNotFound = errors.New("record not found")

type RestaurantFilter struct {
	// Search matches name, address or description, case-insensitive
	Search string
	// Cuisine matches the cuisine tag, case-insensitive substring
	Cuisine string
}

type MenuFilter struct {
	RestaurantID string
	Category     models.Category
	VegOnly      bool
}

type Catalog interface {
	ListRestaurants(ctx context.Context, f RestaurantFilter) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error)
	ListMenu(ctx context.Context, f MenuFilter) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error)
}

type Orders interface {
	CreateOrder(ctx context.Context, o *models.Order) error
	OrdersByEmail(ctx context.Context, email string) ([]models.Order, error)
}

type Reservations interface {
	CreateReservation(ctx context.Context, r *models.Reservation) error
	ReservationsByEmail(ctx context.Context, email string) ([]models.Reservation, error)
}

// Seeder loads and wipes the catalog
type Seeder interface {
	CountRestaurants(ctx context.Context) (int64, error)
	InsertCatalog(ctx context.Context, restaurants []models.Restaurant, items []models.MenuItem) error
	ClearCatalog(ctx context.Context) error
}

type Store interface {
	Catalog
	Orders
	Reservations
	Seeder
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
