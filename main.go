package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"huduma/config"
	"huduma/database"
	bookingRepoPkg "huduma/database/repository/booking"
	catalogRepoPkg "huduma/database/repository/catalog"
	providerRepoPkg "huduma/database/repository/provider"
	"huduma/handlers"
	"huduma/middleware"
	"huduma/routes"
	"huduma/services/booking"
	"huduma/services/cart"
	"huduma/services/checkout"
	"huduma/services/invoice"
	"huduma/services/stats"
	"huduma/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCartCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	providerRepo := providerRepoPkg.NewMongoProviderRepo()

	// services.
	cartService := &cart.DefaultCartService{
		Store: cart.NewRedisCartStore(),
	}
	checkoutService := &checkout.DefaultCheckoutService{
		CartSvc:     cartService,
		CatalogRepo: catalogRepo,
		BookingRepo: bookingRepo,
	}
	lifecycleService := &booking.DefaultLifecycleService{
		Repo: bookingRepo,
	}
	assignmentService := &booking.DefaultAssignmentService{
		Repo:         bookingRepo,
		CatalogRepo:  catalogRepo,
		ProviderRepo: providerRepo,
	}
	statsService := &stats.DefaultStatsService{
		Repo: bookingRepo,
	}
	invoiceService := &invoice.DefaultInvoiceService{}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Cart:       handlers.NewCartHandler(cartService, catalogRepo),
		Checkout:   handlers.NewCheckoutHandler(checkoutService),
		Booking:    handlers.NewBookingHandler(lifecycleService),
		Assignment: handlers.NewAssignmentHandler(assignmentService),
		Stats:      handlers.NewStatsHandler(statsService),
		Invoice:    handlers.NewInvoiceHandler(lifecycleService, invoiceService),
		Catalog:    handlers.NewCatalogHandler(catalogRepo, providerRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
