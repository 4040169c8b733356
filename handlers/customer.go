package handlers

import (
	"net/http"

	"restaurant-bot/orders"
	"restaurant-bot/reservations"

	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "Invalid request body"

// PlaceOrder prices and stores an order
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req orders.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	order, err := h.orders.Place(c.Request.Context(), req)
	if err != nil {
		h.fail(c, errorMapper("Failed to place order", restaurantNotFound...), err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetOrdersByEmail lists a customer's orders, newest first
func (h *Handler) GetOrdersByEmail(c *gin.Context) {
	list, err := h.orders.ByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.fail(c, errorMapper("Failed to fetch orders"), err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req reservations.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	reservation, err := h.reservations.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, errorMapper("Failed to create reservation", restaurantNotFound...), err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Reservation created successfully",
		"reservation": reservation,
	})
}

// GetReservationsByEmail lists a customer's reservations, latest date first
func (h *Handler) GetReservationsByEmail(c *gin.Context) {
	list, err := h.reservations.ByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.fail(c, errorMapper("Failed to fetch reservations"), err)
		return
	}
	c.JSON(http.StatusOK, list)
}
