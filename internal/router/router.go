// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/dictionary-api/internal/handler"
	"github.com/deppfellow/dictionary-api/internal/middleware"
	"github.com/deppfellow/dictionary-api/internal/server"
)

// NewRouter builds the echo instance.
//
// Middleware order matters: the request id and the main key flag are
// resolved before the context logger is built, and the rate limiter reads
// the main key flag.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.APIKey.DetectMainKey(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1")
	registerWordRoutes(v1, h, middlewares.Auth)
	registerExampleRoutes(v1, h, middlewares.Auth)
	registerSearchRoutes(v1, h)

	return router
}
