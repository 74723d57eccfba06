package ports

import (
	"context"

	"github.com/carewell/hospital-system/internal/core/domain"
)

type InvoiceRepository interface {
	// ListDetailed returns invoices joined with the patient name
	// (LEFT JOIN), newest first.
	ListDetailed(ctx context.Context) ([]domain.InvoiceDetail, error)
	// FindDetailedByID returns domain.ErrInvoiceNotFound when absent.
	FindDetailedByID(ctx context.Context, id int) (*domain.InvoiceDetail, error)
	Create(ctx context.Context, invoice *domain.Invoice) error
	// UpdateStatus is idempotent: setting an already-set status succeeds,
	// and an absent id is a no-op.
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
}
