package ports

import (
	"context"

	"github.com/carewell/hospital-system/internal/core/domain"
)

// PatientInput is the raw form submission for creating or editing a
// patient. Numeric fields stay strings so the service can distinguish
// "left blank" (stored as NULL) from "not a number" (rejected).
type PatientInput struct {
	Name    string
	Age     string
	Gender  string
	Disease string
}

// PatientPage is one page of the searchable patient listing.
type PatientPage struct {
	Patients   []domain.Patient
	Query      string
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
}

type PatientService interface {
	// List returns page `page` (1-based; anything below 1 is clamped) of
	// patients whose name contains query. A page past the end returns an
	// empty page, not an error.
	List(ctx context.Context, query string, page int) (*PatientPage, error)
	Export(ctx context.Context) ([]domain.Patient, error)
	Get(ctx context.Context, id int) (*domain.Patient, error)
	Create(ctx context.Context, input PatientInput) error
	Update(ctx context.Context, id int, input PatientInput) error
	Delete(ctx context.Context, id int) error
}
