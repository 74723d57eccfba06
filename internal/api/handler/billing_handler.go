package handler

import (
	"bytes"
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carewell/hospital-system/internal/api/flash"
	"github.com/carewell/hospital-system/internal/api/metrics"
	"github.com/carewell/hospital-system/internal/core/domain"
	"github.com/carewell/hospital-system/internal/core/ports"
)

// BillingHandler serves the billing page, the invoice detail page,
// payment/deletion and the invoice CSV export.
type BillingHandler struct {
	billing  ports.BillingService
	patients ports.PatientService
	log      zerolog.Logger
}

func NewBillingHandler(billing ports.BillingService, patients ports.PatientService, log zerolog.Logger) *BillingHandler {
	return &BillingHandler{billing: billing, patients: patients, log: log}
}

type invoiceForm struct {
	PatientID   string `form:"patient_id"`
	Amount      string `form:"amount"`
	Description string `form:"description"`
	DueDate     string `form:"due_date"`
}

type billingView struct {
	pageContext
	Invoices []domain.InvoiceDetail
	Patients []domain.Patient
}

// List handles GET /billing.
func (h *BillingHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	invoices, err := h.billing.ListInvoices(ctx)
	if err != nil {
		return err
	}
	patients, err := h.patients.Export(ctx)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "billing.html", billingView{
		pageContext: newPageContext(c),
		Invoices:    invoices,
		Patients:    patients,
	})
}

// Create handles POST /billing.
func (h *BillingHandler) Create(c echo.Context) error {
	var form invoiceForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, flash.LevelDanger, "Invalid form submission")
		return c.Redirect(http.StatusFound, "/billing")
	}

	err := h.billing.CreateInvoice(c.Request().Context(), ports.CreateInvoiceInput{
		PatientID:   form.PatientID,
		Amount:      form.Amount,
		Description: form.Description,
		DueDate:     form.DueDate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidNumber) {
			flash.Set(c, flash.LevelDanger, "Invalid amount")
		} else {
			h.log.Error().Err(err).Msg("create invoice")
			flash.Set(c, flash.LevelDanger, "Could not create invoice")
		}
		return c.Redirect(http.StatusFound, "/billing")
	}

	metrics.RecordMutationsTotal.WithLabelValues("invoice", "create").Inc()
	flash.Set(c, flash.LevelSuccess, "Invoice added")
	return c.Redirect(http.StatusFound, "/billing")
}

type invoiceView struct {
	pageContext
	Invoice *domain.InvoiceDetail
}

// Detail handles GET /invoice/:id.
func (h *BillingHandler) Detail(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.notFound(c)
	}

	invoice, err := h.billing.GetInvoice(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrInvoiceNotFound) {
			return h.notFound(c)
		}
		return err
	}

	return c.Render(http.StatusOK, "invoice.html", invoiceView{
		pageContext: newPageContext(c),
		Invoice:     invoice,
	})
}

// Pay handles POST /pay_invoice/:id. Paying twice is harmless.
func (h *BillingHandler) Pay(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.notFound(c)
	}

	if err := h.billing.PayInvoice(c.Request().Context(), id); err != nil {
		h.log.Error().Err(err).Int("id", id).Msg("pay invoice")
		flash.Set(c, flash.LevelDanger, "Could not update invoice")
		return c.Redirect(http.StatusFound, "/billing")
	}

	metrics.RecordMutationsTotal.WithLabelValues("invoice", "pay").Inc()
	flash.Set(c, flash.LevelSuccess, "Invoice marked as paid")
	return c.Redirect(http.StatusFound, "/billing")
}

// Delete handles POST /delete_invoice/:id.
func (h *BillingHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.notFound(c)
	}

	if err := h.billing.DeleteInvoice(c.Request().Context(), id); err != nil {
		h.log.Error().Err(err).Int("id", id).Msg("delete invoice")
		flash.Set(c, flash.LevelDanger, "Could not delete invoice")
		return c.Redirect(http.StatusFound, "/billing")
	}

	metrics.RecordMutationsTotal.WithLabelValues("invoice", "delete").Inc()
	flash.Set(c, flash.LevelSuccess, "Invoice deleted")
	return c.Redirect(http.StatusFound, "/billing")
}

// Export handles GET /export_invoices.
func (h *BillingHandler) Export(c echo.Context) error {
	invoices, err := h.billing.ListInvoices(c.Request().Context())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "patient", "amount", "status", "created_at", "due_date", "description"})
	for _, inv := range invoices {
		patient, dueDate := "", ""
		if inv.PatientName != nil {
			patient = *inv.PatientName
		}
		if inv.DueDate != nil {
			dueDate = *inv.DueDate
		}
		_ = w.Write([]string{
			strconv.Itoa(inv.ID),
			patient,
			strconv.FormatFloat(inv.Amount, 'f', -1, 64),
			inv.Status,
			inv.CreatedAt,
			dueDate,
			inv.Description,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	metrics.CSVExportsTotal.WithLabelValues("invoices").Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=invoices.csv`)
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *BillingHandler) notFound(c echo.Context) error {
	flash.Set(c, flash.LevelDanger, "Invoice not found")
	return c.Redirect(http.StatusFound, "/billing")
}
