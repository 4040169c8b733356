package routes

import (
	"net/http"
	"path/filepath"

	"restaurant-bot/handlers"
	"restaurant-bot/metrics"
	"restaurant-bot/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Options struct {
	// StaticDir serves the HTML pages when set; / falls back to the JSON welcome otherwise
	StaticDir string
	Metrics   *metrics.Metrics
	Logger    *zap.SugaredLogger
}

// pages maps each page route to its HTML file
var pages = map[string]string{
	"/":        "index.html",
	"/menu":    "menu.html",
	"/reserve": "reserve.html",
	"/order":   "order.html",
	"/chat":    "chat.html",
}

// NewRouter builds the engine with middleware and every route registered
func NewRouter(h *handlers.Handler, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	r.Use(middleware.CORS())

	SetupRoutes(r, h)
	setupPages(r, h, opts.StaticDir)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	return r
}

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		// Restaurants & menus
		api.GET("/restaurants", h.ListRestaurants)
		api.GET("/restaurants/:id", h.GetRestaurant)
		api.GET("/menu/item/:id", h.GetMenuItem)
		api.GET("/menu/:restaurantId", h.GetMenu)

		// Orders
		api.POST("/orders", h.PlaceOrder)
		api.GET("/orders/customer/:email", h.GetOrdersByEmail)
		api.GET("/order-statuses", h.GetOrderStatuses)

		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/customer/:email", h.GetReservationsByEmail)

		// Chatbot
		api.POST("/chat", h.Chat)
	}
}

func setupPages(r *gin.Engine, h *handlers.Handler, dir string) {
	if dir == "" {
		r.GET("/", h.Welcome)
		return
	}
	for route, file := range pages {
		path := filepath.Join(dir, file)
		r.GET(route, func(c *gin.Context) { c.File(path) })
	}
	for _, sub := range []string{"css", "js", "images"} {
		r.Static("/"+sub, filepath.Join(dir, sub))
	}
}
