package handlers

import (
	"net/http"
	"strconv"

	"restaurant-bot/models"
	"restaurant-bot/statemachine"
	"restaurant-bot/store"

	"github.com/gin-gonic/gin"
)

// ListRestaurants filters by ?search= over name, address and description and by ?cuisine=
func (h *Handler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.store.ListRestaurants(c.Request.Context(), store.RestaurantFilter{
		Search:  c.Query("search"),
		Cuisine: c.Query("cuisine"),
	})
	if err != nil {
		h.fail(c, errorMapper("Failed to fetch restaurants"), err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

func (h *Handler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.store.GetRestaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, errorMapper("Failed to fetch restaurant", restaurantNotFound...), err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// GetMenu lists a restaurant's items, optionally by ?category= and ?veg=true
func (h *Handler) GetMenu(c *gin.Context) {
	filter := store.MenuFilter{
		RestaurantID: c.Param("restaurantId"),
		Category:     models.Category(c.Query("category")),
		VegOnly:      queryBool(c, "veg") || queryBool(c, "is_veg"),
	}
	items, err := h.store.ListMenu(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, errorMapper("Failed to fetch menu items"), err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetMenuItem(c *gin.Context) {
	item, err := h.store.GetMenuItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, errorMapper("Failed to fetch menu item", menuItemNotFound...), err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetOrderStatuses returns the order lifecycle for informational purposes
func (h *Handler) GetOrderStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, statemachine.Describe())
}

func queryBool(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	return err == nil && v
}
