package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/deppfellow/dictionary-api/internal/server"
)

// MetricsHandler exposes the server's Prometheus registry.
type MetricsHandler struct {
	Handler
}

func NewMetricsHandler(s *server.Server) *MetricsHandler {
	return &MetricsHandler{
		Handler: NewHandler(s),
	}
}

func (h *MetricsHandler) Serve() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(h.server.Metrics, promhttp.HandlerOpts{
		Registry: h.server.Metrics,
	}))
}
