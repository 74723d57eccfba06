package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/carewell/hospital-system/internal/core/domain"
	"github.com/carewell/hospital-system/internal/core/ports"
)

// createdAtLayout is the storage format of Invoice.CreatedAt.
const createdAtLayout = "2006-01-02 15:04:05"

// BillingService implements invoice creation, payment and deletion.
type BillingService struct {
	repo ports.InvoiceRepository
	now  func() time.Time
}

func NewBillingService(repo ports.InvoiceRepository) *BillingService {
	return &BillingService{repo: repo, now: time.Now}
}

func (s *BillingService) ListInvoices(ctx context.Context) ([]domain.InvoiceDetail, error) {
	return s.repo.ListDetailed(ctx)
}

func (s *BillingService) GetInvoice(ctx context.Context, id int) (*domain.InvoiceDetail, error) {
	return s.repo.FindDetailedByID(ctx, id)
}

func (s *BillingService) CreateInvoice(ctx context.Context, input ports.CreateInvoiceInput) error {
	amount, err := strconv.ParseFloat(strings.TrimSpace(input.Amount), 64)
	if err != nil {
		return domain.ErrInvalidNumber
	}

	var patientID *int
	if v := strings.TrimSpace(input.PatientID); v != "" {
		if pid, err := strconv.Atoi(v); err == nil {
			patientID = &pid
		}
	}

	var dueDate *string
	if v := strings.TrimSpace(input.DueDate); v != "" {
		dueDate = &v
	}

	return s.repo.Create(ctx, &domain.Invoice{
		PatientID:   patientID,
		Amount:      amount,
		Status:      domain.InvoiceUnpaid,
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   s.now().UTC().Format(createdAtLayout),
		DueDate:     dueDate,
	})
}

// PayInvoice marks the invoice Paid. The underlying update is idempotent,
// so paying an already-paid invoice succeeds without complaint.
func (s *BillingService) PayInvoice(ctx context.Context, id int) error {
	return s.repo.UpdateStatus(ctx, id, domain.InvoicePaid)
}

func (s *BillingService) DeleteInvoice(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
