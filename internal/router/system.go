package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/dictionary-api/internal/handler"
)

// registerSystemRoutes registers the endpoints that are not part of the
// dictionary API: health, metrics and documentation.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/metrics", h.Metrics.Serve())

	r.Static("/static", "static")
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
