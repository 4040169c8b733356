// Package mongostore implements store.Store on MongoDB, the document store the
// catalog was originally kept in.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"restaurant-bot/models"
	"restaurant-bot/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collRestaurants  = "restaurants"
	collMenus        = "menus"
	collOrders       = "orders"
	collReservations = "reservations"
)

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type Store struct {
	client   *mongo.Client
	database *mongo.Database
}

var _ store.Store = (*Store)(nil)

func Open(cfg Config) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	s := &Store{client: client, database: client.Database(cfg.Database)}
	if err := s.createIndexes(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) createIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		collMenus: {
			{Keys: bson.D{{Key: "restaurantId", Value: 1}, {Key: "category", Value: 1}}},
		},
		collOrders: {
			{Keys: bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		collReservations: {
			{Keys: bson.D{{Key: "email", Value: 1}, {Key: "date", Value: -1}}},
		},
	}
	for coll, idx := range indexes {
		if _, err := s.database.Collection(coll).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", coll, err)
		}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ── Catalog ─────────────────────────────────────────────────────────────────

func (s *Store) ListRestaurants(ctx context.Context, f store.RestaurantFilter) ([]models.Restaurant, error) {
	cursor, err := s.database.Collection(collRestaurants).Find(ctx, restaurantQuery(f))
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	restaurants := []models.Restaurant{}
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, fmt.Errorf("failed to decode restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *Store) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.database.Collection(collRestaurants).FindOne(ctx, bson.M{"_id": id}).Decode(&restaurant)
	if err != nil {
		return nil, wrap(err, "failed to get restaurant")
	}
	return &restaurant, nil
}

func (s *Store) ListMenu(ctx context.Context, f store.MenuFilter) ([]models.MenuItem, error) {
	cursor, err := s.database.Collection(collMenus).Find(ctx, menuQuery(f))
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.RestaurantID)
	}
	refs, err := s.restaurantRefs(ctx, ids)
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
	err := s.database.Collection(collMenus).FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
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

func (s *Store) CreateOrder(ctx context.Context, o *models.Order) error {
	o.ApplyDefaults()
	now := time.Now()
	o.CreatedAt, o.UpdatedAt = now, now

	refs, err := s.restaurantRefs(ctx, []string{o.RestaurantID})
	if err != nil {
		return err
	}
	if _, err := s.database.Collection(collOrders).InsertOne(ctx, o); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	o.Restaurant = refs[o.RestaurantID]
	return nil
}

func (s *Store) OrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.database.Collection(collOrders).Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.RestaurantID)
	}
	refs, err := s.restaurantRefs(ctx, ids)
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
	r.ApplyDefaults()
	now := time.Now()
	r.CreatedAt, r.UpdatedAt = now, now

	refs, err := s.restaurantRefs(ctx, []string{r.RestaurantID})
	if err != nil {
		return err
	}
	if _, err := s.database.Collection(collReservations).InsertOne(ctx, r); err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	r.Restaurant = nameOnly(refs[r.RestaurantID])
	return nil
}

func (s *Store) ReservationsByEmail(ctx context.Context, email string) ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}})
	cursor, err := s.database.Collection(collReservations).Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	reservations := []models.Reservation{}
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}

	ids := make([]string, 0, len(reservations))
	for _, r := range reservations {
		ids = append(ids, r.RestaurantID)
	}
	refs, err := s.restaurantRefs(ctx, ids)
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
	n, err := s.database.Collection(collRestaurants).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count restaurants: %w", err)
	}
	return n, nil
}

func (s *Store) InsertCatalog(ctx context.Context, restaurants []models.Restaurant, items []models.MenuItem) error {
	now := time.Now()
	if len(restaurants) > 0 {
		docs := make([]any, 0, len(restaurants))
		for i := range restaurants {
			restaurants[i].ApplyDefaults()
			restaurants[i].CreatedAt, restaurants[i].UpdatedAt = now, now
			docs = append(docs, restaurants[i])
		}
		if _, err := s.database.Collection(collRestaurants).InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to insert restaurants: %w", err)
		}
	}
	if len(items) > 0 {
		docs := make([]any, 0, len(items))
		for i := range items {
			items[i].ApplyDefaults()
			items[i].CreatedAt, items[i].UpdatedAt = now, now
			docs = append(docs, items[i])
		}
		if _, err := s.database.Collection(collMenus).InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to insert menu items: %w", err)
		}
	}
	return nil
}

func (s *Store) ClearCatalog(ctx context.Context) error {
	if _, err := s.database.Collection(collRestaurants).DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear restaurants: %w", err)
	}
	if _, err := s.database.Collection(collMenus).DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear menu items: %w", err)
	}
	return nil
}

// ── helpers ─────────────────────────────────────────────────────────────────

func (s *Store) restaurantRefs(ctx context.Context, ids []string) (map[string]*models.RestaurantRef, error) {
	refs := map[string]*models.RestaurantRef{}
	if len(ids) == 0 {
		return refs, nil
	}
	opts := options.Find().SetProjection(bson.M{"_id": 1, "name": 1, "address": 1})
	cursor, err := s.database.Collection(collRestaurants).Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurants: %w", err)
	}
	var restaurants []models.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, fmt.Errorf("failed to decode restaurants: %w", err)
	}
	for _, r := range restaurants {
		refs[r.ID] = r.Ref()
	}
	return refs, nil
}

func restaurantQuery(f store.RestaurantFilter) bson.M {
	query := bson.M{}
	if search := strings.TrimSpace(f.Search); search != "" {
		rx := containsRegex(search)
		query["$or"] = bson.A{
			bson.M{"name": rx},
			bson.M{"address": rx},
			bson.M{"description": rx},
		}
	}
	if cuisine := strings.TrimSpace(f.Cuisine); cuisine != "" {
		query["cuisine"] = containsRegex(cuisine)
	}
	return query
}

func menuQuery(f store.MenuFilter) bson.M {
	query := bson.M{"restaurantId": f.RestaurantID}
	if f.Category != "" {
		query["category"] = string(f.Category)
	}
	if f.VegOnly {
		query["isVeg"] = true
	}
	return query
}

// user input is matched literally, never as a pattern
func containsRegex(s string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
}

func nameOnly(ref *models.RestaurantRef) *models.RestaurantRef {
	if ref == nil {
		return nil
	}
	return &models.RestaurantRef{ID: ref.ID, Name: ref.Name}
}

func wrap(err error, msg string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", msg, store.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
