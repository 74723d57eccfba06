package ports

import (
	"context"

	"github.com/carewell/hospital-system/internal/core/domain"
)

// ListPatientsFilter carries the listing query parameters.
// Query is a substring match on name; empty means no filter.
type ListPatientsFilter struct {
	Query  string
	Limit  int
	Offset int
}

type PatientRepository interface {
	List(ctx context.Context, filter ListPatientsFilter) ([]domain.Patient, error)
	Count(ctx context.Context, query string) (int64, error)
	// FindAll returns every patient in store order, for the CSV export.
	FindAll(ctx context.Context) ([]domain.Patient, error)
	// FindByID returns domain.ErrPatientNotFound when the id is absent.
	FindByID(ctx context.Context, id int) (*domain.Patient, error)
	Create(ctx context.Context, patient *domain.Patient) error
	Update(ctx context.Context, patient *domain.Patient) error
	Delete(ctx context.Context, id int) error
}
