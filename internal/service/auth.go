package service

import (
	"github.com/clerk/clerk-sdk-go/v2"

	"github.com/deppfellow/dictionary-api/internal/server"
)

// AuthService configures Clerk with the secret key. Session verification
// happens in the auth middleware on write routes.
type AuthService struct {
	server *server.Server
}

func NewAuthService(s *server.Server) *AuthService {
	clerk.SetKey(s.Config.Auth.SecretKey)
	return &AuthService{
		server: s,
	}
}
