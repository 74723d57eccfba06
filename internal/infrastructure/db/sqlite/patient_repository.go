package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/carewell/hospital-system/internal/core/domain"
	"github.com/carewell/hospital-system/internal/core/ports"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) List(ctx context.Context, filter ports.ListPatientsFilter) ([]domain.Patient, error) {
	q := r.db.WithContext(ctx).Model(&domain.Patient{})
	if filter.Query != "" {
		q = q.Where("name LIKE ?", "%"+filter.Query+"%")
	}

	var patients []domain.Patient
	err := q.Limit(filter.Limit).Offset(filter.Offset).Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (r *PatientRepository) Count(ctx context.Context, query string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Patient{})
	if query != "" {
		q = q.Where("name LIKE ?", "%"+query+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count patients: %w", err)
	}
	return total, nil
}

func (r *PatientRepository) FindAll(ctx context.Context) ([]domain.Patient, error) {
	var patients []domain.Patient
	if err := r.db.WithContext(ctx).Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("find all patients: %w", err)
	}
	return patients, nil
}

func (r *PatientRepository) FindByID(ctx context.Context, id int) (*domain.Patient, error) {
	var patient domain.Patient
	err := r.db.WithContext(ctx).First(&patient, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find patient by id: %w", err)
	}
	return &patient, nil
}

func (r *PatientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

// Update writes every column, so a cleared optional field goes back to NULL.
func (r *PatientRepository) Update(ctx context.Context, patient *domain.Patient) error {
	if err := r.db.WithContext(ctx).Save(patient).Error; err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	return nil
}

func (r *PatientRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Patient{}, id).Error; err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	return nil
}
