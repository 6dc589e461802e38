// File: smartslot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartslot/client"
	"smartslot/config"
	"smartslot/handlers"
	"smartslot/middleware"
	"smartslot/routes"
	"smartslot/services/availability"
	"smartslot/services/ledger"
	"smartslot/services/notification"
	syncsvc "smartslot/services/sync"
	"smartslot/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	// Backend client and snapshot cache.
	backend := client.NewBackendClient(
		config.AppConfig.BackendBaseURL,
		time.Duration(config.AppConfig.BackendTimeoutSec)*time.Second,
	)
	snapshotCache := utils.NewSnapshotCache()

	// Services.
	availabilityService := availability.NewDefaultAvailabilityService()
	ledgerService := ledger.NewDefaultLedgerService()
	notifier := notification.NewDefaultNotifier(50)

	syncService := &syncsvc.DefaultSyncService{
		Backend:      backend,
		Availability: availabilityService,
		Ledger:       ledgerService,
		Notifier:     notifier,
		Cache:        snapshotCache,
	}

	// Initial background load: cached snapshots first, then the backend.
	// Not user-initiated, so failures stay in the logs.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		syncService.WarmStart(ctx)
	}()

	// Handlers and routes.
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, ledgerService, syncService)
	bookingHandler := handlers.NewBookingHandler(ledgerService)

	routes.RegisterHealthRoute(router)
	routes.RegisterAdminRoutes(router, availabilityHandler)
	routes.RegisterBookingRoutes(router, bookingHandler)

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
