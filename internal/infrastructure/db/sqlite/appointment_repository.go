package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/carewell/hospital-system/internal/core/domain"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// ListDetailed left-joins patient and doctor names so a dangling
// reference scans as a nil name instead of dropping the row.
func (r *AppointmentRepository) ListDetailed(ctx context.Context) ([]domain.AppointmentDetail, error) {
	var rows []domain.AppointmentDetail
	err := r.db.WithContext(ctx).
		Table("appointments AS a").
		Select("a.id, p.name AS patient_name, d.name AS doctor_name, a.date, a.time, a.status").
		Joins("LEFT JOIN patients p ON a.patient_id = p.id").
		Joins("LEFT JOIN doctors d ON a.doctor_id = d.id").
		Order("a.date DESC, a.time DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return rows, nil
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	err := r.db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}
	return nil
}
