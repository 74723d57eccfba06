package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carewell/hospital-system/internal/core/domain"
	"github.com/carewell/hospital-system/internal/core/ports"
)

type stubBillingService struct {
	invoices  []domain.InvoiceDetail
	createErr error
	created   []ports.CreateInvoiceInput
	paid      []int
}

func (s *stubBillingService) ListInvoices(context.Context) ([]domain.InvoiceDetail, error) {
	return s.invoices, nil
}

func (s *stubBillingService) GetInvoice(_ context.Context, id int) (*domain.InvoiceDetail, error) {
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			return &s.invoices[i], nil
		}
	}
	return nil, domain.ErrInvoiceNotFound
}

func (s *stubBillingService) CreateInvoice(_ context.Context, input ports.CreateInvoiceInput) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, input)
	return nil
}

func (s *stubBillingService) PayInvoice(_ context.Context, id int) error {
	s.paid = append(s.paid, id)
	return nil
}

func (s *stubBillingService) DeleteInvoice(context.Context, int) error { return nil }

func strPtr(v string) *string { return &v }

func TestBillingHandler_Export_CSV(t *testing.T) {
	e := echo.New()
	svc := &stubBillingService{invoices: []domain.InvoiceDetail{
		{
			ID:          1,
			PatientName: strPtr("John Doe"),
			Amount:      250.5,
			Status:      domain.InvoiceUnpaid,
			CreatedAt:   "2026-01-02 15:04:05",
			DueDate:     strPtr("2026-02-01"),
			Description: "Consultation",
		},
		{
			ID:        2,
			Amount:    80,
			Status:    domain.InvoicePaid,
			CreatedAt: "2026-01-03 09:00:00",
		},
	}}
	h := NewBillingHandler(svc, &stubPatientService{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/export_invoices", nil)
	rec := httptest.NewRecorder()
	if err := h.Export(e.NewContext(req, rec)); err != nil {
		t.Fatalf("export handler error: %v", err)
	}

	if cd := rec.Header().Get(echo.HeaderContentDisposition); cd != `attachment; filename=invoices.csv` {
		t.Fatalf("unexpected content disposition %q", cd)
	}

	lines := strings.Split(strings.TrimRight(rec.Body.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines: %q", len(lines), lines)
	}
	if lines[0] != "id,patient,amount,status,created_at,due_date,description" {
		t.Fatalf("unexpected header row %q", lines[0])
	}
	if lines[1] != "1,John Doe,250.5,Unpaid,2026-01-02 15:04:05,2026-02-01,Consultation" {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	// An orphaned invoice exports blank patient and due date columns.
	if lines[2] != "2,,80,Paid,2026-01-03 09:00:00,," {
		t.Fatalf("unexpected second row %q", lines[2])
	}
}

func TestBillingHandler_Create_InvalidAmountFlashes(t *testing.T) {
	e := echo.New()
	svc := &stubBillingService{createErr: domain.ErrInvalidNumber}
	h := NewBillingHandler(svc, &stubPatientService{}, zerolog.Nop())

	c, rec := postForm(e, "/billing", url.Values{
		"patient_id": {"1"}, "amount": {"abc"},
	})
	if err := h.Create(c); err != nil {
		t.Fatalf("create handler error: %v", err)
	}

	if loc := rec.Header().Get("Location"); loc != "/billing" {
		t.Fatalf("expected redirect to /billing, got %q", loc)
	}
	assertFlashContains(t, rec, "Invalid+amount")
}

func TestBillingHandler_Pay_FlashesAndRedirects(t *testing.T) {
	e := echo.New()
	svc := &stubBillingService{invoices: []domain.InvoiceDetail{{ID: 7, Status: domain.InvoiceUnpaid}}}
	h := NewBillingHandler(svc, &stubPatientService{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/pay_invoice/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Pay(c); err != nil {
		t.Fatalf("pay handler error: %v", err)
	}
	if loc := rec.Header().Get("Location"); loc != "/billing" {
		t.Fatalf("expected redirect to /billing, got %q", loc)
	}
	if len(svc.paid) != 1 || svc.paid[0] != 7 {
		t.Fatalf("expected pay call for id 7, got %v", svc.paid)
	}
	assertFlashContains(t, rec, "Invoice+marked+as+paid")
}
