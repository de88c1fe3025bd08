package routes

import (
	"net/http"
	"time"

	"huduma/handlers"
	"huduma/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers route registration needs.
type HandlerBundle struct {
	Cart       *handlers.CartHandler
	Checkout   *handlers.CheckoutHandler
	Booking    *handlers.BookingHandler
	Assignment *handlers.AssignmentHandler
	Stats      *handlers.StatsHandler
	Invoice    *handlers.InvoiceHandler
	Catalog    *handlers.CatalogHandler
}

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Catalog.ListServices)
		api.GET("/:serviceId", hb.Catalog.GetService)
	}
	r.GET("/api/providers", hb.Catalog.ListProviders)
}

// RegisterCartRoutes registers cart endpoints. Carts are per customer, so
// every route requires authentication.
func RegisterCartRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.Use(middleware.AuthMiddleware())
		api.GET("", hb.Cart.GetCart)
		api.POST("/items", hb.Cart.AddToCart)
		api.PUT("/items/:serviceId", hb.Cart.UpdateQuantity)
		api.DELETE("/items/:serviceId", hb.Cart.RemoveFromCart)
		api.DELETE("", hb.Cart.ClearCart)
	}
}

// RegisterCheckoutRoutes registers the checkout endpoint.
func RegisterCheckoutRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/checkout")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("", hb.Checkout.Checkout)
	}
}

// RegisterBookingRoutes registers booking reads and the invoice download.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware())
		api.GET("", hb.Booking.ListBookings)
		api.GET("/:bookingId", hb.Booking.GetBooking)
		api.GET("/:bookingId/invoice", hb.Invoice.Download)
		api.PUT("/:bookingId/cancel", hb.Booking.CancelBooking)
	}
}

// RegisterAdminRoutes registers operator-only endpoints: the assignment
// queue, lifecycle actions, and dashboard stats.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminGuard())
		adminGroup.GET("/assignment/queue", hb.Assignment.PendingQueue)
		adminGroup.GET("/assignment/:bookingId/candidates", hb.Assignment.Candidates)
		adminGroup.PUT("/bookings/:bookingId/assign", hb.Assignment.Assign)
		adminGroup.PUT("/bookings/:bookingId/start", hb.Booking.StartBooking)
		adminGroup.PUT("/bookings/:bookingId/complete", hb.Booking.CompleteBooking)
		adminGroup.PUT("/bookings/:bookingId/cancel", hb.Booking.CancelBooking)
		adminGroup.GET("/stats", hb.Stats.Summary)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Huduma"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
