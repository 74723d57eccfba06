package service

import (
	"context"
	"strings"
	"testing"

	"github.com/carewell/hospital-system/internal/core/domain"
	"github.com/carewell/hospital-system/internal/core/ports"
)

type stubPatientRepo struct {
	patients []domain.Patient
	nextID   int
}

func newStubPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{nextID: 1}
}

func (r *stubPatientRepo) matching(query string) []domain.Patient {
	if query == "" {
		return r.patients
	}
	var out []domain.Patient
	for _, p := range r.patients {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	return out
}

func (r *stubPatientRepo) List(_ context.Context, filter ports.ListPatientsFilter) ([]domain.Patient, error) {
	rows := r.matching(filter.Query)
	if filter.Offset >= len(rows) {
		return nil, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[filter.Offset:end], nil
}

func (r *stubPatientRepo) Count(_ context.Context, query string) (int64, error) {
	return int64(len(r.matching(query))), nil
}

func (r *stubPatientRepo) FindAll(_ context.Context) ([]domain.Patient, error) {
	return r.patients, nil
}

func (r *stubPatientRepo) FindByID(_ context.Context, id int) (*domain.Patient, error) {
	for _, p := range r.patients {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrPatientNotFound
}

func (r *stubPatientRepo) Create(_ context.Context, patient *domain.Patient) error {
	patient.ID = r.nextID
	r.nextID++
	r.patients = append(r.patients, *patient)
	return nil
}

func (r *stubPatientRepo) Update(_ context.Context, patient *domain.Patient) error {
	for i, p := range r.patients {
		if p.ID == patient.ID {
			r.patients[i] = *patient
			return nil
		}
	}
	return nil
}

func (r *stubPatientRepo) Delete(_ context.Context, id int) error {
	for i, p := range r.patients {
		if p.ID == id {
			r.patients = append(r.patients[:i], r.patients[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestPatientService_Create_AddsExactlyOneRow(t *testing.T) {
	repo := newStubPatientRepo()
	svc := NewPatientService(repo)

	err := svc.Create(context.Background(), ports.PatientInput{
		Name: " John Doe ", Age: "30", Gender: "Male", Disease: "Flu",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if len(repo.patients) != 1 {
		t.Fatalf("expected 1 patient, got %d", len(repo.patients))
	}
	got := repo.patients[0]
	if got.Name != "John Doe" {
		t.Fatalf("expected trimmed name, got %q", got.Name)
	}
	if got.Age == nil || *got.Age != 30 {
		t.Fatalf("unexpected age: %v", got.Age)
	}
}

func TestPatientService_Create_BlankAgeStoredAsNull(t *testing.T) {
	repo := newStubPatientRepo()
	svc := NewPatientService(repo)

	if err := svc.Create(context.Background(), ports.PatientInput{Name: "Jane"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if repo.patients[0].Age != nil {
		t.Fatalf("expected nil age, got %v", *repo.patients[0].Age)
	}
}

func TestPatientService_Create_RejectsBlankName(t *testing.T) {
	repo := newStubPatientRepo()
	svc := NewPatientService(repo)

	if err := svc.Create(context.Background(), ports.PatientInput{Name: "   "}); err != domain.ErrNameRequired {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if len(repo.patients) != 0 {
		t.Fatalf("expected no insert, got %d rows", len(repo.patients))
	}
}

func TestPatientService_Create_RejectsNonNumericAge(t *testing.T) {
	repo := newStubPatientRepo()
	svc := NewPatientService(repo)

	if err := svc.Create(context.Background(), ports.PatientInput{Name: "Jane", Age: "abc"}); err != domain.ErrInvalidNumber {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
	if len(repo.patients) != 0 {
		t.Fatalf("invalid age must not insert, got %d rows", len(repo.patients))
	}
}

func TestPatientService_List_Pagination(t *testing.T) {
	repo := newStubPatientRepo()
	svc := NewPatientService(repo)
	for i := 0; i < 25; i++ {
		_ = svc.Create(context.Background(), ports.PatientInput{Name: "Patient"})
	}

	page, err := svc.List(context.Background(), "", 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 25 {
		t.Fatalf("expected total 25, got %d", page.Total)
	}
	if page.TotalPages != 3 {
		t.Fatalf("expected 3 pages for 25 rows, got %d", page.TotalPages)
	}
	if len(page.Patients) != 10 {
		t.Fatalf("expected 10 rows on page 1, got %d", len(page.Patients))
	}

	last, err := svc.List(context.Background(), "", 3)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(last.Patients) != 5 {
		t.Fatalf("expected 5 rows on page 3, got %d", len(last.Patients))
	}
}

func TestPatientService_List_PageBeyondRangeIsEmpty(t *testing.T) {
	repo := newStubPatientRepo()
	svc := NewPatientService(repo)
	for i := 0; i < 5; i++ {
		_ = svc.Create(context.Background(), ports.PatientInput{Name: "Patient"})
	}

	page, err := svc.List(context.Background(), "", 99)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page.Patients) != 0 {
		t.Fatalf("expected empty page, got %d rows", len(page.Patients))
	}
	if page.TotalPages != 1 {
		t.Fatalf("expected 1 total page, got %d", page.TotalPages)
	}
}

func TestPatientService_List_ClampsPageBelowOne(t *testing.T) {
	repo := newStubPatientRepo()
	svc := NewPatientService(repo)
	_ = svc.Create(context.Background(), ports.PatientInput{Name: "Solo"})

	page, err := svc.List(context.Background(), "", -4)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Page != 1 || len(page.Patients) != 1 {
		t.Fatalf("expected page 1 with 1 row, got page %d with %d rows", page.Page, len(page.Patients))
	}
}

func TestPatientService_List_SearchFiltersByName(t *testing.T) {
	repo := newStubPatientRepo()
	svc := NewPatientService(repo)
	_ = svc.Create(context.Background(), ports.PatientInput{Name: "Alice Smith"})
	_ = svc.Create(context.Background(), ports.PatientInput{Name: "Bob Jones"})

	page, err := svc.List(context.Background(), "smith", 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 1 || len(page.Patients) != 1 {
		t.Fatalf("expected exactly one match, got total=%d rows=%d", page.Total, len(page.Patients))
	}
	if page.Patients[0].Name != "Alice Smith" {
		t.Fatalf("unexpected match: %q", page.Patients[0].Name)
	}
}
