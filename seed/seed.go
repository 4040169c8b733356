// Package seed loads the demo catalog of five Agra/Mathura restaurants.
package seed

import (
	"context"
	"fmt"

	"restaurant-bot/models"
	"restaurant-bot/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Catalog returns fresh copies of the seed restaurants and their menu items
// with identifiers assigned and menu items linked to their restaurant.
func Catalog() ([]models.Restaurant, []models.MenuItem) {
	restaurants := make([]models.Restaurant, 0, len(catalog))
	var items []models.MenuItem
	for _, entry := range catalog {
		r := entry.restaurant
		r.ID = uuid.New().String()
		r.ServiceOptions = append([]string(nil), entry.restaurant.ServiceOptions...)
		r.ApplyDefaults()
		restaurants = append(restaurants, r)

		for _, m := range entry.menu {
			m.RestaurantID = r.ID
			m.ApplyDefaults()
			items = append(items, m)
		}
	}
	return restaurants, items
}

// Run inserts the catalog unless restaurants already exist. It reports whether
// anything was written.
func Run(ctx context.Context, s store.Seeder, log *zap.SugaredLogger) (bool, error) {
	n, err := s.CountRestaurants(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		log.Infow("data already exists, skipping seed", "restaurants", n)
		return false, nil
	}

	restaurants, items := Catalog()
	if err := s.InsertCatalog(ctx, restaurants, items); err != nil {
		return false, fmt.Errorf("seed catalog: %w", err)
	}
	log.Infow("catalog seeded", "restaurants", len(restaurants), "menu_items", len(items))
	return true, nil
}

// Clear removes every restaurant and menu item. Orders and reservations are kept.
func Clear(ctx context.Context, s store.Seeder, log *zap.SugaredLogger) error {
	if err := s.ClearCatalog(ctx); err != nil {
		return fmt.Errorf("clear catalog: %w", err)
	}
	log.Info("catalog cleared")
	return nil
}
