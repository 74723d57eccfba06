package ports

import (
	"context"

	"github.com/carewell/hospital-system/internal/core/domain"
)

// ScheduleAppointmentInput is the raw scheduling form. PatientID and
// DoctorID stay strings; they are form select values and are stored
// without referential checks, matching the permissive store layout.
type ScheduleAppointmentInput struct {
	PatientID string
	DoctorID  string
	Date      string
	Time      string
	Notes     string
}

type AppointmentService interface {
	List(ctx context.Context) ([]domain.AppointmentDetail, error)
	// Schedule creates an appointment with status Scheduled. All of
	// patient, doctor, date and time are required; a missing field aborts
	// the whole creation with domain.ErrMissingFields.
	Schedule(ctx context.Context, input ScheduleAppointmentInput) error
	// Cancel flips the status to Cancelled. Appointments are never
	// physically deleted.
	Cancel(ctx context.Context, id int) error
}
