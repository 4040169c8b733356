package seed

import (
	"context"
	"errors"
	"testing"

	"restaurant-bot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSeeder struct {
	count       int64
	restaurants []models.Restaurant
	items       []models.MenuItem
	cleared     bool
	err         error
}

func (f *fakeSeeder) CountRestaurants(ctx context.Context) (int64, error) {
	return f.count, f.err
}

func (f *fakeSeeder) InsertCatalog(ctx context.Context, restaurants []models.Restaurant, items []models.MenuItem) error {
	f.restaurants = append(f.restaurants, restaurants...)
	f.items = append(f.items, items...)
	f.count += int64(len(restaurants))
	return nil
}

func (f *fakeSeeder) ClearCatalog(ctx context.Context) error {
	f.cleared = true
	f.count = 0
	return f.err
}

func TestCatalog(t *testing.T) {
	restaurants, items := Catalog()
	require.Len(t, restaurants, 5)

	ids := map[string]bool{}
	for _, r := range restaurants {
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, models.DefaultCuisine, r.Cuisine)
		assert.Equal(t, models.DefaultRating, r.Rating)
		assert.NotEmpty(t, r.ServiceOptions)
		ids[r.ID] = true
	}
	assert.Len(t, ids, 5)

	perRestaurant := map[string]int{}
	for _, item := range items {
		assert.True(t, ids[item.RestaurantID], "menu item %q links to an unknown restaurant", item.Name)
		assert.True(t, item.Category.Valid(), "menu item %q has category %q", item.Name, item.Category)
		assert.Positive(t, item.Price)
		perRestaurant[item.RestaurantID]++
	}
	assert.Len(t, perRestaurant, 5)
}

func TestCatalogReturnsFreshCopies(t *testing.T) {
	first, _ := Catalog()
	second, _ := Catalog()
	assert.NotEqual(t, first[0].ID, second[0].ID)

	first[0].ServiceOptions[0] = "changed"
	assert.NotEqual(t, "changed", second[0].ServiceOptions[0])
}

func TestGovindaMenuIsVegetarian(t *testing.T) {
	restaurants, items := Catalog()
	var govinda string
	for _, r := range restaurants {
		if r.Name == "Govinda's Restaurant Mathura" {
			govinda = r.ID
		}
	}
	require.NotEmpty(t, govinda)
	for _, item := range items {
		if item.RestaurantID == govinda {
			assert.True(t, item.IsVeg, item.Name)
		}
	}
}

func TestRun(t *testing.T) {
	log := zap.NewNop().Sugar()
	s := &fakeSeeder{}

	seeded, err := Run(context.Background(), s, log)
	require.NoError(t, err)
	assert.True(t, seeded)
	assert.Len(t, s.restaurants, 5)

	seeded, err = Run(context.Background(), s, log)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Len(t, s.restaurants, 5)
}

func TestRunCountError(t *testing.T) {
	s := &fakeSeeder{err: errors.New("boom")}
	_, err := Run(context.Background(), s, zap.NewNop().Sugar())
	assert.Error(t, err)
	assert.Empty(t, s.restaurants)
}

func TestClear(t *testing.T) {
	s := &fakeSeeder{count: 5}
	require.NoError(t, Clear(context.Background(), s, zap.NewNop().Sugar()))
	assert.True(t, s.cleared)
}
