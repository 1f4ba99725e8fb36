package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/lumenops/vendor-extract-service/common/config"
	"github.com/lumenops/vendor-extract-service/common/messaging"
	"github.com/lumenops/vendor-extract-service/common/redis"
	"github.com/lumenops/vendor-extract-service/extractor"
	"github.com/lumenops/vendor-extract-service/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type AppHttpServer struct {
	router    *chi.Mux
	cfg       config.Config
	server    *http.Server
	extractor *extractor.PagedRecordExtractor
	cache     *redis.ResultCache
	broker    *messaging.NatsBroker
}

func NewAppHttpServer(cfg config.Config) (*AppHttpServer, error) {
	r := chi.NewRouter()

	// Basic CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-KEY"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(2 * time.Minute))

	server := &AppHttpServer{
		router: r,
		cfg:    cfg,
	}
	return server, nil
}

// SetExtractor sets the extractor dependency
func (s *AppHttpServer) SetExtractor(ex *extractor.PagedRecordExtractor) {
	s.extractor = ex
}

// SetCache sets the optional result cache dependency
func (s *AppHttpServer) SetCache(cache *redis.ResultCache) {
	s.cache = cache
}

// SetBroker sets the optional NATS broker dependency
func (s *AppHttpServer) SetBroker(broker *messaging.NatsBroker) {
	s.broker = broker
}

func (s *AppHttpServer) setupRoute() {
	r := s.router

	if s.extractor == nil {
		log.Warn().Msg("Extractor dependency not set")
	}

	// API Documentation with Swagger
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // The URL pointing to API definition
	))

	// Public health endpoint (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","service":"vendor-extract-service"}`))
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		// Handlers
		vendorHandler := handler.NewVendorHandler(s.extractor, s.cache, s.broker)
		healthHandler := handler.NewHealthHandler()

		r.Mount("/vendors", vendorHandler.Router())
		r.Mount("/health", healthHandler.Router())
	})
}

func (s *AppHttpServer) start() error {
	r := s.router
	cfg := s.cfg
	log.Info().Msg("Starting up server...")

	s.server = &http.Server{
		Addr:         cfg.Listen.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// This starts the server in a goroutine from main
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// stop gracefully shuts down the server
func (s *AppHttpServer) stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
