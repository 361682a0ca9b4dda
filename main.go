package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"neuroad-server/config"
	"neuroad-server/middleware"
	"neuroad-server/pkg/cache"
	"neuroad-server/pkg/database"
	"neuroad-server/pkg/logger"
	"neuroad-server/pkg/queue"
	"neuroad-server/routes"
)

// @title NeuroAd Server API
// @version 1.0
// @description AI-powered neuromarketing content generation backend

// @host localhost:8080
// @BasePath /api

func main() {
	// Load configuration
	if err := config.LoadConfig(); err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	cfg := config.AppConfig

	// Initialize logger
	logger.InitLogger(cfg)
	logger.Info("Starting NeuroAd Server...")

	// Ensure storage directories exist
	if err := ensureStorageDirs(cfg); err != nil {
		logger.Fatalf("Failed to create storage directories: %v", err)
	}

	// Initialize database
	if err := database.InitDatabase(cfg); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Redis cache
	if err := cache.InitRedis(cfg); err != nil {
		logger.Fatalf("Failed to initialize Redis: %v", err)
	}

	// Initialize RabbitMQ
	if err := queue.InitRabbitMQ(cfg); err != nil {
		logger.Fatalf("Failed to initialize RabbitMQ: %v", err)
	}

	// Start background workers
	startBackgroundWorkers()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Create Gin router
	r := gin.New()

	// Add global middleware
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.APIRateLimit())

	// Setup routes
	routes.SetupRoutes(r)

	// Create HTTP server
	srv := &http.Server{
		Addr:           ":" + cfg.Server.Port,
		Handler:        r,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	cleanup()

	logger.Info("Server stopped")
}

func ensureStorageDirs(cfg *config.Config) error {
	for _, dir := range []string{cfg.Storage.UploadPath, cfg.Storage.GeneratedPath} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

func startBackgroundWorkers() {
	logger.Info("Starting background workers...")

	// Consume project lifecycle events into the audit log
	go func() {
		if err := queue.Queue.ConsumeEvents(queue.ProjectEventsQueue, queue.EventLogHandler, 1); err != nil {
			logger.Errorf("Failed to start project event workers: %v", err)
		}
	}()

	logger.Info("Background workers started")
}

func cleanup() {
	logger.Info("Cleaning up resources...")

	// Close RabbitMQ connection
	if err := queue.Queue.Close(); err != nil {
		logger.Errorf("Failed to close RabbitMQ connection: %v", err)
	}

	// Close Redis connection
	if err := cache.Cache.Close(); err != nil {
		logger.Errorf("Failed to close Redis connection: %v", err)
	}

	// Database connections are pooled and closed by GORM automatically
	logger.Info("Cleanup completed")
}
