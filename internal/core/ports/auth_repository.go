package ports

import (
	"context"

	"github.com/carewell/hospital-system/internal/core/domain"
)

// AuthRepository provides read access to stored user credentials.
type AuthRepository interface {
	// FindByUsername returns domain.ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
}
