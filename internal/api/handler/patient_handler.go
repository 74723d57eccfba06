package handler

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carewell/hospital-system/internal/api/flash"
	"github.com/carewell/hospital-system/internal/api/metrics"
	"github.com/carewell/hospital-system/internal/core/domain"
	"github.com/carewell/hospital-system/internal/core/ports"
)

// PatientHandler serves the dashboard (patient listing + stats) and
// patient CRUD, plus the patient CSV export.
type PatientHandler struct {
	patients ports.PatientService
	reports  ports.ReportService
	log      zerolog.Logger
}

func NewPatientHandler(patients ports.PatientService, reports ports.ReportService, log zerolog.Logger) *PatientHandler {
	return &PatientHandler{patients: patients, reports: reports, log: log}
}

type patientForm struct {
	Name    string `form:"name"`
	Age     string `form:"age"`
	Gender  string `form:"gender"`
	Disease string `form:"disease"`
}

func (f patientForm) input() ports.PatientInput {
	return ports.PatientInput{Name: f.Name, Age: f.Age, Gender: f.Gender, Disease: f.Disease}
}

type dashboardView struct {
	pageContext
	Patients   []domain.Patient
	Query      string
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
	PrevPage   int
	NextPage   int
	Totals     *ports.ReportTotals
}

// Dashboard handles GET /. A non-numeric or missing page parameter means
// page one; a page past the end renders empty rather than erroring.
func (h *PatientHandler) Dashboard(c echo.Context) error {
	query := c.QueryParam("q")
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	ctx := c.Request().Context()
	listing, err := h.patients.List(ctx, query, page)
	if err != nil {
		return err
	}
	totals, err := h.reports.Totals(ctx)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "index.html", dashboardView{
		pageContext: newPageContext(c),
		Patients:    listing.Patients,
		Query:       listing.Query,
		Page:        listing.Page,
		PerPage:     listing.PerPage,
		Total:       listing.Total,
		TotalPages:  listing.TotalPages,
		PrevPage:    listing.Page - 1,
		NextPage:    listing.Page + 1,
		Totals:      totals,
	})
}

// Add handles POST /add_patient.
func (h *PatientHandler) Add(c echo.Context) error {
	var form patientForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, flash.LevelDanger, "Invalid form submission")
		return c.Redirect(http.StatusFound, "/")
	}

	if err := h.patients.Create(c.Request().Context(), form.input()); err != nil {
		return h.flashPatientError(c, err, "/")
	}

	metrics.RecordMutationsTotal.WithLabelValues("patient", "create").Inc()
	flash.Set(c, flash.LevelSuccess, "Patient added")
	return c.Redirect(http.StatusFound, "/")
}

type editPatientView struct {
	pageContext
	Patient *domain.Patient
}

// EditPage handles GET /edit/:id.
func (h *PatientHandler) EditPage(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.notFound(c)
	}

	patient, err := h.patients.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return h.notFound(c)
		}
		return err
	}

	return c.Render(http.StatusOK, "edit_patient.html", editPatientView{
		pageContext: newPageContext(c),
		Patient:     patient,
	})
}

// Update handles POST /edit/:id.
func (h *PatientHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.notFound(c)
	}

	var form patientForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, flash.LevelDanger, "Invalid form submission")
		return c.Redirect(http.StatusFound, "/")
	}

	if err := h.patients.Update(c.Request().Context(), id, form.input()); err != nil {
		return h.flashPatientError(c, err, fmt.Sprintf("/edit/%d", id))
	}

	metrics.RecordMutationsTotal.WithLabelValues("patient", "update").Inc()
	flash.Set(c, flash.LevelSuccess, "Patient updated")
	return c.Redirect(http.StatusFound, "/")
}

// Delete handles POST /delete/:id. Appointments and invoices pointing at
// the patient are deliberately left behind.
func (h *PatientHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.notFound(c)
	}

	if err := h.patients.Delete(c.Request().Context(), id); err != nil {
		h.log.Error().Err(err).Int("id", id).Msg("delete patient")
		flash.Set(c, flash.LevelDanger, "Could not delete patient")
		return c.Redirect(http.StatusFound, "/")
	}

	metrics.RecordMutationsTotal.WithLabelValues("patient", "delete").Inc()
	flash.Set(c, flash.LevelSuccess, "Patient deleted")
	return c.Redirect(http.StatusFound, "/")
}

// Export handles GET /export_patients: the full patient table as CSV, in
// store order, with a fixed header.
func (h *PatientHandler) Export(c echo.Context) error {
	patients, err := h.patients.Export(c.Request().Context())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "name", "age", "gender", "disease"})
	for _, p := range patients {
		age := ""
		if p.Age != nil {
			age = strconv.Itoa(*p.Age)
		}
		_ = w.Write([]string{strconv.Itoa(p.ID), p.Name, age, p.Gender, p.Disease})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	metrics.CSVExportsTotal.WithLabelValues("patients").Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=patients.csv`)
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *PatientHandler) notFound(c echo.Context) error {
	flash.Set(c, flash.LevelDanger, "Patient not found")
	return c.Redirect(http.StatusFound, "/")
}

func (h *PatientHandler) flashPatientError(c echo.Context, err error, redirect string) error {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		flash.Set(c, flash.LevelDanger, "Patient name is required")
	case errors.Is(err, domain.ErrInvalidNumber):
		flash.Set(c, flash.LevelDanger, "Invalid age")
	default:
		h.log.Error().Err(err).Msg("save patient")
		flash.Set(c, flash.LevelDanger, "Could not save patient")
	}
	return c.Redirect(http.StatusFound, redirect)
}
