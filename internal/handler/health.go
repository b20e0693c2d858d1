package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deppfellow/dictionary-api/internal/middleware"
	"github.com/deppfellow/dictionary-api/internal/server"
)

// Pinger is a dependency the status endpoint can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the service and its dependencies are
// reachable. The document store is required; Redis only degrades caching,
// so a failing Redis is reported without failing the check.
type HealthHandler struct {
	Handler
	store Pinger
}

func NewHealthHandler(s *server.Server, store Pinger) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		store:   store,
	}
}

// CheckHealth answers 200 when healthy and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]interface{}{}
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"driver":      h.server.Config.Database.Driver,
		"checks":      checks,
	}

	isHealthy := true
	obs := h.server.Config.Observability

	if obs.HealthCheckEnabled("database") {
		if !h.probe(c.Request().Context(), &logger, checks, "database", h.store.Ping) {
			isHealthy = false
		}
	}

	if obs.HealthCheckEnabled("redis") && h.server.Redis != nil {
		h.probe(c.Request().Context(), &logger, checks, "redis", func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordError(map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		h.recordError(map[string]interface{}{
			"check_type":    "response",
			"operation":     "health_check",
			"error_type":    "json_response_error",
			"error_message": err.Error(),
		})
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// probe runs one check within the configured timeout and records its
// outcome in checks.
func (h *HealthHandler) probe(
	parent context.Context,
	logger *zerolog.Logger,
	checks map[string]interface{},
	name string,
	ping func(ctx context.Context) error,
) bool {
	timeout := h.server.Config.Observability.HealthChecks.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	checkStart := time.Now()
	if err := ping(ctx); err != nil {
		checks[name] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": time.Since(checkStart).String(),
			"error":         err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(checkStart)).
			Msgf("%s health check failed", name)

		h.recordError(map[string]interface{}{
			"check_type":       name,
			"operation":        "health_check",
			"error_type":       name + "_unhealthy",
			"response_time_ms": time.Since(checkStart).Milliseconds(),
			"error_message":    err.Error(),
		})
		return false
	}

	checks[name] = map[string]interface{}{
		"status":        "healthy",
		"response_time": time.Since(checkStart).String(),
	}

	logger.Debug().
		Dur("response_time", time.Since(checkStart)).
		Msgf("%s health check passed", name)
	return true
}

func (h *HealthHandler) recordError(attributes map[string]interface{}) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", attributes)
	}
}
