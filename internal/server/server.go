// Package server defines the core Server struct that composes the app's main dependencies.
//
// It contains the initialization logic to spin up the HTTP server
// and handles graceful shutdowns.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - the document store (MongoDB or PostgreSQL, chosen by database.driver)
//   - redis client and the search result cache
//   - background job worker server (asynq)
//   - prometheus registry
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/deppfellow/dictionary-api/internal/cache"
	"github.com/deppfellow/dictionary-api/internal/config"
	"github.com/deppfellow/dictionary-api/internal/database"
	"github.com/deppfellow/dictionary-api/internal/lib/job"
	loggerPkg "github.com/deppfellow/dictionary-api/internal/logger"
)

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself. Exactly one of DB and Mongo is set,
// depending on the configured driver.
type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService

	// DB holds the PostgreSQL pool wrapper when database.driver is "postgres".
	DB *database.Database

	// Mongo holds the MongoDB client when database.driver is "mongo".
	Mongo *database.Mongo

	Redis *redis.Client
	Cache *cache.Cache

	// Metrics is the registry served on /metrics.
	Metrics *prometheus.Registry

	// Job runs background workers (Asynq server) and provides a client for enqueueing.
	Job *job.JobService

	httpServer *http.Server
}

// New constructs a Server and initializes core dependencies.
//
// It does NOT start the HTTP server. That is done in SetupHTTPServer + Start.
// A Redis connection failure does not block startup: searches fall back to
// the database. A failing document store or job server does.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	server := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
	}

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.New(cfg, logger, loggerService)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		server.DB = db
	default:
		mongo, err := database.NewMongo(cfg, logger, loggerService)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mongo: %w", err)
		}
		server.Mongo = mongo
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Instrument Redis commands when New Relic is enabled.
	if loggerService.GetApplication() != nil {
		redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Msg("Failed to connect to Redis, continuing without cache hits")
	}

	server.Redis = redisClient
	server.Metrics = prometheus.NewRegistry()
	server.Metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	server.Cache = cache.New(redisClient, cfg.Cache.Expiration, cache.NewMetrics(server.Metrics), logger)

	jobService := job.NewJobService(logger, cfg)
	jobService.InitHandlers(cfg, logger, server.Cache)
	if err := jobService.Start(); err != nil {
		return nil, err
	}
	server.Job = jobService

	return server, nil
}

// SetupHTTPServer configures the internal net/http server.
// Config timeouts are interpreted as seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Str("driver", s.Config.Database.Driver).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, the job workers and every
// connection the server owns.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	if s.Mongo != nil {
		if err := s.Mongo.Close(ctx); err != nil {
			return fmt.Errorf("failed to close mongo connection: %w", err)
		}
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			return fmt.Errorf("failed to close redis connection: %w", err)
		}
	}

	return nil
}
