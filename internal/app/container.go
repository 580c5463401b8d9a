package app

import (
	"github.com/gin-gonic/gin"

	"github.com/frontendlab/demo-backend/internal/api"
	"github.com/frontendlab/demo-backend/internal/booking"
	"github.com/frontendlab/demo-backend/internal/cart"
	"github.com/frontendlab/demo-backend/internal/dashboard"
	"github.com/frontendlab/demo-backend/internal/dataset"
	"github.com/frontendlab/demo-backend/internal/feed"
	"github.com/frontendlab/demo-backend/internal/hotel"
	"github.com/frontendlab/demo-backend/internal/order"
	"github.com/frontendlab/demo-backend/internal/pkg/memstore"
	"github.com/frontendlab/demo-backend/internal/product"
	"github.com/frontendlab/demo-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	// Dataset seeds every collection before the router starts serving.
	Dataset *dataset.Document

	// Acting user for the cart and the social feed.
	CurrentUserID   int
	CurrentUserName string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes the in-memory collections, seeds them from the
// dataset, wires all modules and returns the container.
func NewContainer(cfg Config) *Container {
	doc := cfg.Dataset
	if doc == nil {
		doc = dataset.Sample()
	}

	// In-memory collections
	hotels := memstore.NewCollection(
		func(h hotel.Hotel) int { return h.ID },
		func(h hotel.Hotel, id int) hotel.Hotel { h.ID = id; return h },
	)
	bookings := memstore.NewCollection(
		func(b booking.Booking) int { return b.ID },
		func(b booking.Booking, id int) booking.Booking { b.ID = id; return b },
	)
	products := memstore.NewCollection(
		func(p product.Product) int { return p.ID },
		func(p product.Product, id int) product.Product { p.ID = id; return p },
	)
	users := memstore.NewCollection(
		func(u user.User) int { return u.ID },
		func(u user.User, id int) user.User { u.ID = id; return u },
	)
	orders := memstore.NewCollection(
		func(o order.Order) int { return o.ID },
		func(o order.Order, id int) order.Order { o.ID = id; return o },
	)
	cartItems := memstore.NewCollection(
		func(i cart.Item) int { return i.ProductID },
		func(i cart.Item, id int) cart.Item { i.ProductID = id; return i },
	)
	posts := memstore.NewCollection(
		func(p feed.Post) int { return p.ID },
		func(p feed.Post, id int) feed.Post { p.ID = id; return p },
	)
	members := memstore.NewCollection(
		func(m feed.Member) int { return m.ID },
		func(m feed.Member, id int) feed.Member { m.ID = id; return m },
	)

	// Seed from the dataset document. The cart always starts empty.
	hotels.Seed(doc.HotelModels())
	bookings.Seed(doc.BookingModels())
	products.Seed(doc.ProductModels())
	users.Seed(doc.UserModels())
	orders.Seed(doc.OrderModels())
	posts.Seed(doc.PostModels())
	members.Seed(doc.MemberModels())

	// Hotel Module
	hotelService := hotel.NewService(hotel.NewMemRepository(hotels))

	// Booking Module
	bookingService := booking.NewService(booking.NewMemRepository(bookings), hotelService)

	// Product Module
	productService := product.NewService(product.NewMemRepository(products))

	// User Module
	userService := user.NewService(user.NewMemRepository(users))

	// Order Module
	orderService := order.NewService(order.NewMemRepository(orders), userService, productService)

	// Dashboard Module
	dashboardService := dashboard.NewService(productService, userService, orderService)

	// Cart Module
	cartService := cart.NewService(cart.NewMemRepository(cartItems), productService)

	// Feed Module
	feedService := feed.NewService(
		feed.NewMemRepository(posts, members),
		cfg.CurrentUserID,
		cfg.CurrentUserName,
	)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:     cfg.IsProduction,
		ProdOrigins:      cfg.ProdOrigins,
		HotelService:     hotelService,
		BookingService:   bookingService,
		ProductService:   productService,
		UserService:      userService,
		OrderService:     orderService,
		DashboardService: dashboardService,
		CartService:      cartService,
		FeedService:      feedService,
	})

	return &Container{
		Router: router,
	}
}
