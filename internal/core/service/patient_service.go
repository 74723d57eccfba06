package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/carewell/hospital-system/internal/core/domain"
	"github.com/carewell/hospital-system/internal/core/ports"
)

// patientsPerPage is the fixed page size of the dashboard listing.
const patientsPerPage = 10

// PatientService implements patient CRUD, search and pagination.
type PatientService struct {
	repo ports.PatientRepository
}

func NewPatientService(repo ports.PatientRepository) *PatientService {
	return &PatientService{repo: repo}
}

func (s *PatientService) List(ctx context.Context, query string, page int) (*ports.PatientPage, error) {
	query = strings.TrimSpace(query)
	if page < 1 {
		page = 1
	}

	total, err := s.repo.Count(ctx, query)
	if err != nil {
		return nil, err
	}

	patients, err := s.repo.List(ctx, ports.ListPatientsFilter{
		Query:  query,
		Limit:  patientsPerPage,
		Offset: (page - 1) * patientsPerPage,
	})
	if err != nil {
		return nil, err
	}

	return &ports.PatientPage{
		Patients:   patients,
		Query:      query,
		Page:       page,
		PerPage:    patientsPerPage,
		Total:      total,
		TotalPages: int((total + patientsPerPage - 1) / patientsPerPage),
	}, nil
}

func (s *PatientService) Export(ctx context.Context) ([]domain.Patient, error) {
	return s.repo.FindAll(ctx)
}

func (s *PatientService) Get(ctx context.Context, id int) (*domain.Patient, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PatientService) Create(ctx context.Context, input ports.PatientInput) error {
	patient, err := patientFromInput(input)
	if err != nil {
		return err
	}
	return s.repo.Create(ctx, patient)
}

func (s *PatientService) Update(ctx context.Context, id int, input ports.PatientInput) error {
	patient, err := patientFromInput(input)
	if err != nil {
		return err
	}
	patient.ID = id
	return s.repo.Update(ctx, patient)
}

func (s *PatientService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// patientFromInput validates the raw form values. Name must be non-blank;
// a blank age stays NULL while a malformed one rejects the whole write.
func patientFromInput(input ports.PatientInput) (*domain.Patient, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	var age *int
	if v := strings.TrimSpace(input.Age); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, domain.ErrInvalidNumber
		}
		age = &n
	}

	return &domain.Patient{
		Name:    name,
		Age:     age,
		Gender:  strings.TrimSpace(input.Gender),
		Disease: strings.TrimSpace(input.Disease),
	}, nil
}
