package ports

import "context"

// ReportTotals are the whole-table aggregates shown on the dashboard and
// the report page. Revenue sums paid invoices, Unpaid sums the rest; a
// NULL sum over an empty table reads as zero.
type ReportTotals struct {
	Patients     int64
	Doctors      int64
	Appointments int64
	Revenue      float64
	Unpaid       float64
}

type ReportRepository interface {
	Totals(ctx context.Context) (*ReportTotals, error)
}

type ReportService interface {
	Totals(ctx context.Context) (*ReportTotals, error)
}
