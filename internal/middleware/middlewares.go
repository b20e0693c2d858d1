package middleware

import (
	"github.com/deppfellow/dictionary-api/internal/server"
)

// Middlewares groups every middleware component, built once and reused
// during router setup.
type Middlewares struct {
	Global          *GlobalMiddlewares
	Auth            *AuthMiddleware
	APIKey          *APIKeyMiddleware
	ContextEnhancer *ContextEnhancer
	Tracing         *TracingMiddleware
	RateLimit       *RateLimitMiddleware
}

func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s),
		APIKey:          NewAPIKeyMiddleware(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
