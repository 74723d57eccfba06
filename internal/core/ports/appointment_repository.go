package ports

import (
	"context"

	"github.com/carewell/hospital-system/internal/core/domain"
)

type AppointmentRepository interface {
	// ListDetailed returns appointments joined with patient and doctor
	// names (LEFT JOIN, so a dangling reference yields a nil name),
	// newest date/time first.
	ListDetailed(ctx context.Context) ([]domain.AppointmentDetail, error)
	Create(ctx context.Context, appointment *domain.Appointment) error
	// UpdateStatus flips the status of an appointment. Updating an absent
	// id is a no-op, not an error.
	UpdateStatus(ctx context.Context, id int, status string) error
}
