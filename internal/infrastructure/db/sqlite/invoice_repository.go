package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/carewell/hospital-system/internal/core/domain"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

const invoiceDetailColumns = "i.id, p.name AS patient_name, i.amount, i.status, i.created_at, i.due_date, i.description"

func (r *InvoiceRepository) ListDetailed(ctx context.Context) ([]domain.InvoiceDetail, error) {
	var rows []domain.InvoiceDetail
	err := r.db.WithContext(ctx).
		Table("invoices AS i").
		Select(invoiceDetailColumns).
		Joins("LEFT JOIN patients p ON i.patient_id = p.id").
		Order("i.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return rows, nil
}

func (r *InvoiceRepository) FindDetailedByID(ctx context.Context, id int) (*domain.InvoiceDetail, error) {
	var row domain.InvoiceDetail
	res := r.db.WithContext(ctx).
		Table("invoices AS i").
		Select(invoiceDetailColumns).
		Joins("LEFT JOIN patients p ON i.patient_id = p.id").
		Where("i.id = ?", id).
		Scan(&row)
	if res.Error != nil {
		return nil, fmt.Errorf("find invoice by id: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrInvoiceNotFound
	}
	return &row, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	if err := r.db.WithContext(ctx).Create(invoice).Error; err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// UpdateStatus matches zero or one rows and never reports which; paying an
// already-paid (or missing) invoice is therefore a silent success.
func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	err := r.db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Invoice{}, id).Error; err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}
