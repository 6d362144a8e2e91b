package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"room-booking-portal/config"
	"room-booking-portal/internal/api"
	"room-booking-portal/internal/db"
	"room-booking-portal/internal/session"
	"room-booking-portal/internal/upstream"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "booking-portal ", log.LstdFlags)

	// .env is optional; real deployments configure through the environment.
	if err := godotenv.Load(); err == nil {
		logger.Println("loaded environment from .env")
	}

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	if cfg.Upstream.BaseURL == "" {
		logger.Fatalf("upstream.base_url must be configured (or set UPSTREAM_API_URL)")
	}

	// Initialize session database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := session.NewGormStore(gormDB)
	logger.Println("session store initialized")

	up := upstream.New(&cfg.Upstream)
	staff := session.NewStaff(store, up)
	visitors := session.NewVisitor(store, up)

	// Sweep expired sessions in the background
	sweeper := session.NewSweeper(store, cfg.Session.SweepInterval)
	go sweeper.Run(ctx)

	// Initialize router
	router := api.NewRouter(cfg, store, staff, visitors, up)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	// Create a deadline to wait for.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
