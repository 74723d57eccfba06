package ports

import (
	"context"

	"github.com/carewell/hospital-system/internal/core/domain"
)

// AuthService authenticates users and issues signed session tokens.
type AuthService interface {
	// Login verifies the username/password pair and returns a signed
	// session token on success. A wrong password and an unknown username
	// are indistinguishable to the caller: both yield
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
