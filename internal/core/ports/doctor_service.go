package ports

import (
	"context"

	"github.com/carewell/hospital-system/internal/core/domain"
)

// DoctorInput is the raw form submission for creating or editing a doctor.
type DoctorInput struct {
	Name      string
	Specialty string
	Phone     string
	Email     string
	Fee       string
}

type DoctorService interface {
	List(ctx context.Context) ([]domain.Doctor, error)
	Get(ctx context.Context, id int) (*domain.Doctor, error)
	Create(ctx context.Context, input DoctorInput) error
	Update(ctx context.Context, id int, input DoctorInput) error
	// Delete removes the doctor row. Role gating happens at the route
	// level, not here.
	Delete(ctx context.Context, id int) error
}
