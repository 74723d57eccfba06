package ports

import (
	"context"

	"github.com/carewell/hospital-system/internal/core/domain"
)

// CreateInvoiceInput is the raw billing form. Amount stays a string so
// the service can reject a malformed number before anything is written.
type CreateInvoiceInput struct {
	PatientID   string
	Amount      string
	Description string
	DueDate     string
}

type BillingService interface {
	ListInvoices(ctx context.Context) ([]domain.InvoiceDetail, error)
	GetInvoice(ctx context.Context, id int) (*domain.InvoiceDetail, error)
	CreateInvoice(ctx context.Context, input CreateInvoiceInput) error
	// PayInvoice marks the invoice Paid. Paying twice is not an error.
	PayInvoice(ctx context.Context, id int) error
	DeleteInvoice(ctx context.Context, id int) error
}
