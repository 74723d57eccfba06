package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/carewell/hospital-system/internal/core/domain"
	"github.com/carewell/hospital-system/internal/core/ports"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Totals runs whole-table aggregates. COALESCE folds the NULL that SUM
// yields over an empty match into zero.
func (r *ReportRepository) Totals(ctx context.Context) (*ports.ReportTotals, error) {
	db := r.db.WithContext(ctx)
	var t ports.ReportTotals

	if err := db.Model(&domain.Patient{}).Count(&t.Patients).Error; err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}
	if err := db.Model(&domain.Doctor{}).Count(&t.Doctors).Error; err != nil {
		return nil, fmt.Errorf("count doctors: %w", err)
	}
	if err := db.Model(&domain.Appointment{}).Count(&t.Appointments).Error; err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	err := db.Raw("SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = ?", domain.InvoicePaid).
		Scan(&t.Revenue).Error
	if err != nil {
		return nil, fmt.Errorf("sum paid invoices: %w", err)
	}

	err = db.Raw("SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status != ?", domain.InvoicePaid).
		Scan(&t.Unpaid).Error
	if err != nil {
		return nil, fmt.Errorf("sum unpaid invoices: %w", err)
	}

	return &t, nil
}
