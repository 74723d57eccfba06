package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carewell/hospital-system/internal/api/flash"
	"github.com/carewell/hospital-system/internal/api/metrics"
	"github.com/carewell/hospital-system/internal/core/domain"
	"github.com/carewell/hospital-system/internal/core/ports"
)

// DoctorHandler serves the doctors page and doctor CRUD. Deletion is
// admin-gated at the route, not here.
type DoctorHandler struct {
	doctors ports.DoctorService
	log     zerolog.Logger
}

func NewDoctorHandler(doctors ports.DoctorService, log zerolog.Logger) *DoctorHandler {
	return &DoctorHandler{doctors: doctors, log: log}
}

type doctorForm struct {
	Name      string `form:"name"`
	Specialty string `form:"specialty"`
	Phone     string `form:"phone"`
	Email     string `form:"email"`
	Fee       string `form:"fee"`
}

func (f doctorForm) input() ports.DoctorInput {
	return ports.DoctorInput{Name: f.Name, Specialty: f.Specialty, Phone: f.Phone, Email: f.Email, Fee: f.Fee}
}

type doctorsView struct {
	pageContext
	Doctors []domain.Doctor
}

// List handles GET /doctors.
func (h *DoctorHandler) List(c echo.Context) error {
	doctors, err := h.doctors.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "doctors.html", doctorsView{
		pageContext: newPageContext(c),
		Doctors:     doctors,
	})
}

// Add handles POST /doctors.
func (h *DoctorHandler) Add(c echo.Context) error {
	var form doctorForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, flash.LevelDanger, "Invalid form submission")
		return c.Redirect(http.StatusFound, "/doctors")
	}

	if err := h.doctors.Create(c.Request().Context(), form.input()); err != nil {
		return h.flashDoctorError(c, err, "/doctors")
	}

	metrics.RecordMutationsTotal.WithLabelValues("doctor", "create").Inc()
	flash.Set(c, flash.LevelSuccess, "Doctor added")
	return c.Redirect(http.StatusFound, "/doctors")
}

type editDoctorView struct {
	pageContext
	Doctor *domain.Doctor
}

// EditPage handles GET /edit_doctor/:id.
func (h *DoctorHandler) EditPage(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.notFound(c)
	}

	doctor, err := h.doctors.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDoctorNotFound) {
			return h.notFound(c)
		}
		return err
	}

	return c.Render(http.StatusOK, "edit_doctor.html", editDoctorView{
		pageContext: newPageContext(c),
		Doctor:      doctor,
	})
}

// Update handles POST /edit_doctor/:id.
func (h *DoctorHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.notFound(c)
	}

	var form doctorForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, flash.LevelDanger, "Invalid form submission")
		return c.Redirect(http.StatusFound, "/doctors")
	}

	if err := h.doctors.Update(c.Request().Context(), id, form.input()); err != nil {
		return h.flashDoctorError(c, err, fmt.Sprintf("/edit_doctor/%d", id))
	}

	metrics.RecordMutationsTotal.WithLabelValues("doctor", "update").Inc()
	flash.Set(c, flash.LevelSuccess, "Doctor updated")
	return c.Redirect(http.StatusFound, "/doctors")
}

// Delete handles POST /delete_doctor/:id. The route carries the admin
// requirement; by the time this runs the caller is an admin.
func (h *DoctorHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return h.notFound(c)
	}

	if err := h.doctors.Delete(c.Request().Context(), id); err != nil {
		h.log.Error().Err(err).Int("id", id).Msg("delete doctor")
		flash.Set(c, flash.LevelDanger, "Could not delete doctor")
		return c.Redirect(http.StatusFound, "/doctors")
	}

	metrics.RecordMutationsTotal.WithLabelValues("doctor", "delete").Inc()
	flash.Set(c, flash.LevelSuccess, "Doctor deleted")
	return c.Redirect(http.StatusFound, "/doctors")
}

func (h *DoctorHandler) notFound(c echo.Context) error {
	flash.Set(c, flash.LevelDanger, "Doctor not found")
	return c.Redirect(http.StatusFound, "/doctors")
}

func (h *DoctorHandler) flashDoctorError(c echo.Context, err error, redirect string) error {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		flash.Set(c, flash.LevelDanger, "Doctor name is required")
	case errors.Is(err, domain.ErrInvalidNumber):
		flash.Set(c, flash.LevelDanger, "Invalid fee")
	default:
		h.log.Error().Err(err).Msg("save doctor")
		flash.Set(c, flash.LevelDanger, "Could not save doctor")
	}
	return c.Redirect(http.StatusFound, redirect)
}
