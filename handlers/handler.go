// Package handlers serves the REST API with gin.
package handlers

import (
	"net/http"

	"restaurant-bot/chatbot"
	"restaurant-bot/metrics"
	"restaurant-bot/orders"
	"restaurant-bot/reservations"
	"restaurant-bot/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ServiceName = "Restaurant Bot API"
	Version     = "1.0.0"
)

type Handler struct {
	store        store.Store
	orders       *orders.Service
	reservations *reservations.Service
	bot          *chatbot.Bot
	metrics      *metrics.Metrics
	logger       *zap.SugaredLogger
}

func New(
	s store.Store,
	orderService *orders.Service,
	reservationService *reservations.Service,
	bot *chatbot.Bot,
	m *metrics.Metrics,
	logger *zap.SugaredLogger,
) *Handler {
	return &Handler{
		store:        s,
		orders:       orderService,
		reservations: reservationService,
		bot:          bot,
		metrics:      m,
		logger:       logger,
	}
}

// fail logs err and writes the mapped status with {"error": message}
func (h *Handler) fail(c *gin.Context, mapper *ErrorMapper, err error) {
	info := mapper.Map(err)
	if info.Status >= http.StatusInternalServerError {
		h.logger.Errorw("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	} else {
		h.logger.Debugw("request rejected", "path", c.FullPath(), "status", info.Status, "error", err)
	}
	c.JSON(info.Status, gin.H{"error": info.Message})
}

// Health pings the store
func (h *Handler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.logger.Errorw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": ServiceName,
			"version": Version,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": ServiceName,
		"version": Version,
	})
}

// Welcome is served at / when no static pages are configured
func (h *Handler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "🍛 Welcome to the Indian Restaurant Bot API",
		"health":  "/health",
		"endpoints": []string{
			"/api/restaurants",
			"/api/menu/:restaurantId",
			"/api/orders",
			"/api/reservations",
			"/api/chat",
			"/api/order-statuses",
		},
	})
}
