package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/carewell/hospital-system/internal/core/domain"
	"github.com/carewell/hospital-system/internal/core/ports"
)

// AppointmentService schedules and cancels appointments. Cancellation is a
// status flip; appointment rows are never removed.
type AppointmentService struct {
	repo ports.AppointmentRepository
}

func NewAppointmentService(repo ports.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repo: repo}
}

func (s *AppointmentService) List(ctx context.Context) ([]domain.AppointmentDetail, error) {
	return s.repo.ListDetailed(ctx)
}

func (s *AppointmentService) Schedule(ctx context.Context, input ports.ScheduleAppointmentInput) error {
	patientID := strings.TrimSpace(input.PatientID)
	doctorID := strings.TrimSpace(input.DoctorID)
	date := strings.TrimSpace(input.Date)
	timeOfDay := strings.TrimSpace(input.Time)

	if patientID == "" || doctorID == "" || date == "" || timeOfDay == "" {
		return domain.ErrMissingFields
	}

	// The ids come from form selects; a non-numeric value means a
	// hand-crafted request, rejected the same way as a missing field.
	pid, err := strconv.Atoi(patientID)
	if err != nil {
		return domain.ErrMissingFields
	}
	did, err := strconv.Atoi(doctorID)
	if err != nil {
		return domain.ErrMissingFields
	}

	return s.repo.Create(ctx, &domain.Appointment{
		PatientID: &pid,
		DoctorID:  &did,
		Date:      date,
		Time:      timeOfDay,
		Status:    domain.AppointmentScheduled,
		Notes:     strings.TrimSpace(input.Notes),
	})
}

func (s *AppointmentService) Cancel(ctx context.Context, id int) error {
	return s.repo.UpdateStatus(ctx, id, domain.AppointmentCancelled)
}
