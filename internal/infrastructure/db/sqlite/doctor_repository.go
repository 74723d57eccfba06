package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/carewell/hospital-system/internal/core/domain"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

func (r *DoctorRepository) FindAll(ctx context.Context) ([]domain.Doctor, error) {
	var doctors []domain.Doctor
	if err := r.db.WithContext(ctx).Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("find all doctors: %w", err)
	}
	return doctors, nil
}

func (r *DoctorRepository) FindByID(ctx context.Context, id int) (*domain.Doctor, error) {
	var doctor domain.Doctor
	err := r.db.WithContext(ctx).First(&doctor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find doctor by id: %w", err)
	}
	return &doctor, nil
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *domain.Doctor) error {
	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		return fmt.Errorf("insert doctor: %w", err)
	}
	return nil
}

func (r *DoctorRepository) Update(ctx context.Context, doctor *domain.Doctor) error {
	if err := r.db.WithContext(ctx).Save(doctor).Error; err != nil {
		return fmt.Errorf("update doctor: %w", err)
	}
	return nil
}

// Delete removes the row without touching appointments or invoices that
// reference it; those keep their dangling doctor_id.
func (r *DoctorRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Doctor{}, id).Error; err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}
	return nil
}
