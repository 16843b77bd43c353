package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/catalodge/roomboard/internal/adminapi"
	"github.com/catalodge/roomboard/internal/api"
	"github.com/catalodge/roomboard/internal/config"
	"github.com/catalodge/roomboard/internal/metrics"
	"github.com/catalodge/roomboard/internal/payment"
	"github.com/catalodge/roomboard/internal/repository"
	"github.com/catalodge/roomboard/internal/service"
	"github.com/catalodge/roomboard/internal/web"
)

func main() {
	// A .env file is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	adminCfg := config.GetAdminAPIConfig()
	paymentCfg := config.GetPaymentConfig()
	redisCfg := config.GetRedisConfig()
	pollCfg := config.GetPollConfig()
	serverCfg := config.GetServerConfig()

	// Initialize the repository using the factory
	repo, err := repository.NewRepository(redisCfg)
	if err != nil {
		log.Fatalf("Failed to initialize repository: %v", err)
	}

	// Check if we're using a Redis repository, and if so, close it properly on exit
	if redisRepo, ok := repo.(interface{ Close() error }); ok {
		defer func() {
			if err := redisRepo.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()
	}

	adminClient := adminapi.NewClient(adminCfg.BaseURL, adminCfg.Timeout)
	gateway := payment.NewClient(paymentCfg.BaseURL, paymentCfg.SecretKey, paymentCfg.Timeout)

	// Initialize the service layer
	rosterService := service.NewRosterService(adminClient, repo, adminCfg.RoomTypeID, adminCfg.PricePerNight)
	bookingService := service.NewBookingService(rosterService, adminClient, gateway)
	cartService := service.NewCartService(repo, gateway)

	m := metrics.New("roomboard")

	// Register the SSE update callback with the roster service
	broadcaster := web.NewBroadcaster(rosterService, m)
	rosterService.RegisterUpdateCallback(broadcaster.NotifyUpdate)

	// Load the roster up front so the first page render has rooms to show.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), adminCfg.Timeout)
	if err := rosterService.LoadRoster(loadCtx); err != nil {
		log.Printf("Initial roster load failed: %v", err)
	}
	loadCancel()

	poller := service.NewOccupancyPoller(rosterService, pollCfg.OccupancyInterval, m)
	if err := poller.Start(); err != nil {
		log.Fatalf("Failed to start occupancy poller: %v", err)
	}

	router := api.SetupRoutes(rosterService, bookingService, cartService, m, broadcaster.Server())

	// Configure the HTTP server
	server := &http.Server{
		Addr:         ":" + serverCfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disable write timeout for SSE connections
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Printf("Starting roomboard server on port %s", serverCfg.Port)
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until a signal is received or an error occurs
	select {
	case err := <-serverErrors:
		log.Fatalf("Error starting server: %v", err)

	case <-shutdown:
		log.Println("Shutting down server...")

		poller.Stop()

		// Close SSE connections before the listener so clients drop cleanly.
		broadcaster.Shutdown()

		// Create a deadline to wait for
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// Doesn't block if there are no connections, but will otherwise
		// wait until the timeout deadline.
		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			log.Fatalf("Error shutting down server: %v", err)
		}

		log.Println("Server gracefully stopped")
	}
}
