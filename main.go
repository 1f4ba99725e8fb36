package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lumenops/vendor-extract-service/common/config"
	"github.com/lumenops/vendor-extract-service/common/logger"
	"github.com/lumenops/vendor-extract-service/common/messaging"
	"github.com/lumenops/vendor-extract-service/common/redis"
	"github.com/lumenops/vendor-extract-service/extractor"
	"github.com/lumenops/vendor-extract-service/search"

	"github.com/rs/zerolog/log"

	"github.com/joho/godotenv"

	_ "github.com/lumenops/vendor-extract-service/docs"
)

// @title          Vendor Extract Service API
// @version        1.0
// @description    Paginated extraction of active vendor records from the host platform's record search

// @host     localhost:8080
// @BasePath /v1
// @schemes  http https

func main() {
	// INITIATE CONFIGURATION
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("Error loading .env file, using environment variables")
	}

	cfg := config.DefaultConfig()
	cfg.LoadFromEnv()

	logger.Setup(cfg.Log.Level, cfg.Log.Pretty)

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// INITIATE RESULT CACHE
	var cache *redis.ResultCache
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to setup Redis client")
		}
		defer redisClient.Close()

		cache = redis.NewResultCache(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		log.Info().Uint("ttl_seconds", cfg.Redis.TTLSeconds).Msg("Result cache enabled")
	}

	// INITIATE NATS BROKER
	broker, err := messaging.SetupNatsBroker(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to setup NATS broker")
	}
	defer broker.Close()

	// INITIATE RECORD SEARCH CLIENT
	searchClient := search.NewClient(
		cfg.Search.BaseURL,
		cfg.Search.APIKey,
		time.Duration(cfg.Search.TimeoutSeconds)*time.Second,
	)

	vendorExtractor := extractor.New(searchClient, log.Logger)

	// INITIATE SERVER
	server, err := NewAppHttpServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create the server")
	}

	// Inject dependencies
	server.SetExtractor(vendorExtractor)
	server.SetCache(cache)
	server.SetBroker(broker)

	// Setup routes
	server.setupRoute()

	// Start server in a goroutine
	go func() {
		if err := server.start(); err != nil {
			log.Error().Err(err).Msg("Server error")
			shutdown <- syscall.SIGTERM
		}
	}()

	log.Info().Str("address", cfg.Listen.Addr()).Msg("Server started successfully")
	log.Info().Str("swagger", fmt.Sprintf("http://%s/swagger/index.html", cfg.Listen.Addr())).Msg("Swagger documentation available at")

	// Wait for shutdown signal
	<-shutdown
	log.Info().Msg("Shutdown signal received")

	// Create a timeout context for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Server gracefully stopped")
}
