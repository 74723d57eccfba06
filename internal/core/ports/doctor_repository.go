package ports

import (
	"context"

	"github.com/carewell/hospital-system/internal/core/domain"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]domain.Doctor, error)
	// FindByID returns domain.ErrDoctorNotFound when the id is absent.
	FindByID(ctx context.Context, id int) (*domain.Doctor, error)
	Create(ctx context.Context, doctor *domain.Doctor) error
	Update(ctx context.Context, doctor *domain.Doctor) error
	Delete(ctx context.Context, id int) error
}
