package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/dictionary-api/internal/server"
)

const (
	// APIKeyHeader carries the client's API key.
	APIKeyHeader = "X-API-Key"

	// MainKeyKey marks requests presenting the main key.
	MainKeyKey = "is_using_main_key"
)

// APIKeyMiddleware recognises the privileged main key. It never rejects a
// request; it only marks it.
type APIKeyMiddleware struct {
	server *server.Server
}

func NewAPIKeyMiddleware(s *server.Server) *APIKeyMiddleware {
	return &APIKeyMiddleware{server: s}
}

func (a *APIKeyMiddleware) DetectMainKey() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(MainKeyKey, a.isMainKey(c.Request().Header.Get(APIKeyHeader)))
			return next(c)
		}
	}
}

func (a *APIKeyMiddleware) isMainKey(key string) bool {
	mainKey := a.server.Config.Auth.MainKey
	if mainKey == "" || key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(mainKey)) == 1
}

// IsUsingMainKey reports whether DetectMainKey marked the request.
func IsUsingMainKey(c echo.Context) bool {
	using, _ := c.Get(MainKeyKey).(bool)
	return using
}
