// Package gormstore implements store.Store on GORM with the pure-Go SQLite driver.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-bot/models"
	"restaurant-bot/store"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// Open connects to the SQLite database at path and migrates every model
func Open(path string, logLevel logger.LogLevel) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

// New wraps an already opened connection; the caller owns migration
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ── Catalog ─────────────────────────────────────────────────────────────────

func (s *Store) ListRestaurants(ctx context.Context, f store.RestaurantFilter) ([]models.Restaurant, error) {
	query := s.db.WithContext(ctx)

	if search := strings.TrimSpace(f.Search); search != "" {
		pattern := likePattern(search)
		query = query.Where(
			"LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(address) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern,
		)
	}
	if cuisine := strings.TrimSpace(f.Cuisine); cuisine != "" {
		query = query.Where("LOWER(cuisine) LIKE ? ESCAPE '\\'", likePattern(cuisine))
	}

	restaurants := []models.Restaurant{}
	if err := query.Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *Store) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error; err != nil {
		return nil, wrap(err, "failed to get restaurant")
	}
	return &restaurant, nil
}

func (s *Store) ListMenu(ctx context.Context, f store.MenuFilter) ([]models.MenuItem, error) {
	query := s.db.WithContext(ctx).Where("restaurant_id = ?", f.RestaurantID)

	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.VegOnly {
		query = query.Where("is_veg = ?", true)
	}

	items := []models.MenuItem{}
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	refs, err := s.restaurantRefs(ctx, restaurantIDs(items, func(m models.MenuItem) string { return m.RestaurantID }))
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Restaurant = nameOnly(refs[items[i].RestaurantID])
	}
	return items, nil
}

func (s *Store) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, wrap(err, "failed to get menu item")
	}

	refs, err := s.restaurantRefs(ctx, []string{item.RestaurantID})
	if err != nil {
		return nil, err
	}
	item.Restaurant = nameOnly(refs[item.RestaurantID])
	return &item, nil
}

// ── Orders ──────────────────────────────────────────────────────────────────

// CreateOrder resolves the restaurant reference first so a stored order is
// never reported as failed
func (s *Store) CreateOrder(ctx context.Context, o *models.Order) error {
	refs, err := s.restaurantRefs(ctx, []string{o.RestaurantID})
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	o.Restaurant = refs[o.RestaurantID]
	return nil
}

func (s *Store) OrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Where("email = ?", email).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	refs, err := s.restaurantRefs(ctx, restaurantIDs(orders, func(o models.Order) string { return o.RestaurantID }))
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Restaurant = refs[orders[i].RestaurantID]
	}
	return orders, nil
}

// ── Reservations ────────────────────────────────────────────────────────────

func (s *Store) CreateReservation(ctx context.Context, r *models.Reservation) error {
	refs, err := s.restaurantRefs(ctx, []string{r.RestaurantID})
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	r.Restaurant = nameOnly(refs[r.RestaurantID])
	return nil
}

func (s *Store) ReservationsByEmail(ctx context.Context, email string) ([]models.Reservation, error) {
	reservations := []models.Reservation{}
	err := s.db.WithContext(ctx).
		Where("email = ?", email).
		Order("date desc").
		Order("created_at desc").
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	refs, err := s.restaurantRefs(ctx, restaurantIDs(reservations, func(r models.Reservation) string { return r.RestaurantID }))
	if err != nil {
		return nil, err
	}
	for i := range reservations {
		reservations[i].Restaurant = refs[reservations[i].RestaurantID]
	}
	return reservations, nil
}

// ── Seeding ─────────────────────────────────────────────────────────────────

func (s *Store) CountRestaurants(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Restaurant{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count restaurants: %w", err)
	}
	return n, nil
}

func (s *Store) InsertCatalog(ctx context.Context, restaurants []models.Restaurant, items []models.MenuItem) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(restaurants) > 0 {
			if err := tx.Create(&restaurants).Error; err != nil {
				return fmt.Errorf("failed to insert restaurants: %w", err)
			}
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("failed to insert menu items: %w", err)
			}
		}
		return nil
	})
}

func (s *Store) ClearCatalog(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.MenuItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear menu items: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Restaurant{}).Error; err != nil {
			return fmt.Errorf("failed to clear restaurants: %w", err)
		}
		return nil
	})
}

// ── helpers ─────────────────────────────────────────────────────────────────

func (s *Store) restaurantRefs(ctx context.Context, ids []string) (map[string]*models.RestaurantRef, error) {
	refs := make(map[string]*models.RestaurantRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}
	var restaurants []models.Restaurant
	err := s.db.WithContext(ctx).
		Select("id", "name", "address").
		Where("id IN ?", ids).
		Find(&restaurants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurants: %w", err)
	}
	for _, r := range restaurants {
		refs[r.ID] = r.Ref()
	}
	return refs, nil
}

func restaurantIDs[T any](rows []T, id func(T) string) []string {
	seen := map[string]bool{}
	var ids []string
	for _, row := range rows {
		if v := id(row); v != "" && !seen[v] {
			seen[v] = true
			ids = append(ids, v)
		}
	}
	return ids
}

// menu items and reservations only carry the restaurant name
func nameOnly(ref *models.RestaurantRef) *models.RestaurantRef {
	if ref == nil {
		return nil
	}
	return &models.RestaurantRef{ID: ref.ID, Name: ref.Name}
}

func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}

func wrap(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", msg, store.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
