// File: wellbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"wellbook/config"
	bookingRepo "wellbook/database/repository/booking"
	clientRepo "wellbook/database/repository/client"
	providerRepo "wellbook/database/repository/provider"
	"wellbook/database/roster"
	"wellbook/handlers"
	"wellbook/middleware"
	"wellbook/routes"
	"wellbook/services/booking"
	"wellbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	clock := utils.RealClock{}

	// Owned state: constructed once here, handed to the service by reference.
	registry := providerRepo.NewMemoryRegistry()
	ledger := bookingRepo.NewMemoryLedger()
	clients := clientRepo.NewMemoryRepo()

	// The core serves nothing until the roster is in.
	count, err := roster.LoadProviders(config.AppConfig.ProviderRosterPath, registry, clock)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load provider roster: %v", err)
	}
	logger.Sugar().Infof("Loaded %d providers from %s", count, config.AppConfig.ProviderRosterPath)

	if n, err := roster.LoadClients(config.AppConfig.ClientRosterPath, clients); err != nil {
		logger.Sugar().Warnf("main: no client roster (%v), seeding defaults", err)
		for _, cl := range roster.DefaultClients() {
			if err := clients.Register(cl); err != nil {
				logger.Sugar().Fatalf("main: failed to seed default clients: %v", err)
			}
		}
	} else {
		logger.Sugar().Infof("Loaded %d clients from %s", n, config.AppConfig.ClientRosterPath)
	}

	if utils.CacheEnabled() {
		utils.InitCache()
		utils.StartHealthMonitor(utils.GetCacheClient())
	} else {
		utils.StartHealthMonitor(nil)
	}

	reservationService := &booking.DefaultReservationService{
		Registry: registry,
		Ledger:   ledger,
		Clients:  clients,
		Clock:    clock,
	}
	reservationHandler := handlers.NewReservationHandler(reservationService, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, reservationHandler)

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
