package service

import (
	"context"

	"github.com/carewell/hospital-system/internal/core/ports"
)

// ReportService exposes the dashboard aggregates. The sums and counts run
// over whole tables on every request; nothing is cached.
type ReportService struct {
	repo ports.ReportRepository
}

func NewReportService(repo ports.ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

func (s *ReportService) Totals(ctx context.Context) (*ports.ReportTotals, error) {
	return s.repo.Totals(ctx)
}
