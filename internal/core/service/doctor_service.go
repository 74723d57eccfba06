package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/carewell/hospital-system/internal/core/domain"
	"github.com/carewell/hospital-system/internal/core/ports"
)

// DoctorService implements doctor CRUD.
type DoctorService struct {
	repo ports.DoctorRepository
}

func NewDoctorService(repo ports.DoctorRepository) *DoctorService {
	return &DoctorService{repo: repo}
}

func (s *DoctorService) List(ctx context.Context) ([]domain.Doctor, error) {
	return s.repo.FindAll(ctx)
}

func (s *DoctorService) Get(ctx context.Context, id int) (*domain.Doctor, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DoctorService) Create(ctx context.Context, input ports.DoctorInput) error {
	doctor, err := doctorFromInput(input)
	if err != nil {
		return err
	}
	return s.repo.Create(ctx, doctor)
}

func (s *DoctorService) Update(ctx context.Context, id int, input ports.DoctorInput) error {
	doctor, err := doctorFromInput(input)
	if err != nil {
		return err
	}
	doctor.ID = id
	return s.repo.Update(ctx, doctor)
}

func (s *DoctorService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func doctorFromInput(input ports.DoctorInput) (*domain.Doctor, error) {
	// Fee is parsed before the name check, matching the long-standing
	// order of the billing forms: a malformed number wins over a blank name.
	var fee *float64
	if v := strings.TrimSpace(input.Fee); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, domain.ErrInvalidNumber
		}
		fee = &f
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	return &domain.Doctor{
		Name:      name,
		Specialty: strings.TrimSpace(input.Specialty),
		Phone:     strings.TrimSpace(input.Phone),
		Email:     strings.TrimSpace(input.Email),
		Fee:       fee,
	}, nil
}
