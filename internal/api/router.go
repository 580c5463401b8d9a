package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/frontendlab/demo-backend/internal/booking"
	bookingHttp "github.com/frontendlab/demo-backend/internal/booking/http"
	"github.com/frontendlab/demo-backend/internal/cart"
	cartHttp "github.com/frontendlab/demo-backend/internal/cart/http"
	"github.com/frontendlab/demo-backend/internal/dashboard"
	dashboardHttp "github.com/frontendlab/demo-backend/internal/dashboard/http"
	"github.com/frontendlab/demo-backend/internal/feed"
	feedHttp "github.com/frontendlab/demo-backend/internal/feed/http"
	"github.com/frontendlab/demo-backend/internal/hotel"
	hotelHttp "github.com/frontendlab/demo-backend/internal/hotel/http"
	"github.com/frontendlab/demo-backend/internal/order"
	orderHttp "github.com/frontendlab/demo-backend/internal/order/http"
	"github.com/frontendlab/demo-backend/internal/product"
	productHttp "github.com/frontendlab/demo-backend/internal/product/http"
	"github.com/frontendlab/demo-backend/internal/user"
	userHttp "github.com/frontendlab/demo-backend/internal/user/http"
)

// Config carries everything the router needs to assemble the API.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	HotelService     hotel.Service
	BookingService   booking.Service
	ProductService   product.Service
	UserService      user.Service
	OrderService     order.Service
	DashboardService dashboard.Service
	CartService      cart.Service
	FeedService      feed.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, RequestID)
// and registering routes for the feature modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery(), RequestID())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", requestIDHeader}
	r.Use(cors.New(corsConfig))

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	hotelHandler := hotelHttp.NewHandler(cfg.HotelService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	productHandler := productHttp.NewHandler(cfg.ProductService)
	userHandler := userHttp.NewHandler(cfg.UserService)
	orderHandler := orderHttp.NewHandler(cfg.OrderService)
	dashboardHandler := dashboardHttp.NewHandler(cfg.DashboardService)
	cartHandler := cartHttp.NewHandler(cfg.CartService)
	feedHandler := feedHttp.NewHandler(cfg.FeedService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		hotelHttp.RegisterRoutes(v1, hotelHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
		productHttp.RegisterRoutes(v1, productHandler)
		userHttp.RegisterRoutes(v1, userHandler)
		orderHttp.RegisterRoutes(v1, orderHandler)
		dashboardHttp.RegisterRoutes(v1, dashboardHandler)
		cartHttp.RegisterRoutes(v1, cartHandler)
		feedHttp.RegisterRoutes(v1, feedHandler)
	}

	return r
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
