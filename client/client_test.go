package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"restaurant-bot/chatbot"
	"restaurant-bot/handlers"
	"restaurant-bot/models"
	"restaurant-bot/orders"
	"restaurant-bot/reservations"
	"restaurant-bot/routes"
	"restaurant-bot/seed"
	"restaurant-bot/store"
	"restaurant-bot/store/gormstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := gormstore.Open(filepath.Join(t.TempDir(), "client.db"), logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	log := zap.NewNop().Sugar()
	_, err = seed.Run(context.Background(), s, log)
	require.NoError(t, err)

	h := handlers.New(
		s,
		orders.NewService(s, s, nil, nil, log),
		reservations.NewService(s, s, nil, nil, log),
		chatbot.Default(),
		nil,
		log,
	)
	srv := httptest.NewServer(routes.NewRouter(h, routes.Options{}))
	t.Cleanup(srv.Close)

	return New(srv.URL+"/", 5*time.Second, nil)
}

func findRestaurant(t *testing.T, c *Client, name string) models.Restaurant {
	t.Helper()
	list, err := c.Restaurants(context.Background(), store.RestaurantFilter{Search: name})
	require.NoError(t, err)
	require.Len(t, list, 1)
	return list[0]
}

func TestCatalogEndpoints(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	all, err := c.Restaurants(ctx, store.RestaurantFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	agra, err := c.Restaurants(ctx, store.RestaurantFilter{Search: "agra"})
	require.NoError(t, err)
	assert.Len(t, agra, 4)

	treat := findRestaurant(t, c, "Treat")
	got, err := c.Restaurant(ctx, treat.ID)
	require.NoError(t, err)
	assert.Equal(t, treat.Name, got.Name)

	menu, err := c.Menu(ctx, store.MenuFilter{RestaurantID: treat.ID, Category: models.CategoryBiryani})
	require.NoError(t, err)
	assert.Len(t, menu, 2)

	veg, err := c.Menu(ctx, store.MenuFilter{RestaurantID: treat.ID, VegOnly: true})
	require.NoError(t, err)
	for _, item := range veg {
		assert.True(t, item.IsVeg)
	}

	item, err := c.MenuItem(ctx, menu[0].ID)
	require.NoError(t, err)
	assert.Equal(t, menu[0].Name, item.Name)
}

func TestNotFound(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Restaurant(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Restaurant not found", apiErr.Message)
}

func TestOrderRoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	govinda := findRestaurant(t, c, "Govinda")

	menu, err := c.Menu(ctx, store.MenuFilter{RestaurantID: govinda.ID})
	require.NoError(t, err)
	require.NotEmpty(t, menu)

	res, err := c.PlaceOrder(ctx, orders.Request{
		CustomerName: "Asha",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		RestaurantID: govinda.ID,
		DeliveryType: models.DeliveryTypePickup,
		Items:        []models.OrderItem{{MenuItemID: menu[0].ID, Name: menu[0].Name, Price: menu[0].Price, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Order placed successfully", res.Message)
	assert.Equal(t, menu[0].Price+(menu[0].Price*5+50)/100, res.Order.TotalAmount)

	list, err := c.OrdersByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, res.Order.ID, list[0].ID)

	_, err = c.PlaceOrder(ctx, orders.Request{RestaurantID: govinda.ID})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestReservationRoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	taj := findRestaurant(t, c, "Taj Terrace")

	res, err := c.CreateReservation(ctx, reservations.Request{
		CustomerName: "Ravi",
		Email:        "ravi@example.com",
		Phone:        "9876500000",
		RestaurantID: taj.ID,
		Date:         time.Now().AddDate(0, 0, 7).Format(models.DateLayout),
		Time:         "20:00",
		Guests:       2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Reservation created successfully", res.Message)

	list, err := c.ReservationsByEmail(ctx, "ravi@example.com")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestChat(t *testing.T) {
	c := newTestClient(t)

	reply, err := c.Chat(context.Background(), "hello there")
	require.NoError(t, err)
	assert.Equal(t, chatbot.IntentGreeting, reply.Intent)
}
