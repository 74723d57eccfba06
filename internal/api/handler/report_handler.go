package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carewell/hospital-system/internal/core/ports"
)

// ReportHandler serves the totals page.
type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

type reportView struct {
	pageContext
	Totals *ports.ReportTotals
}

// Totals handles GET /report.
func (h *ReportHandler) Totals(c echo.Context) error {
	totals, err := h.reports.Totals(c.Request().Context())
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "report.html", reportView{
		pageContext: newPageContext(c),
		Totals:      totals,
	})
}
