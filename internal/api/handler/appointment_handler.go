package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carewell/hospital-system/internal/api/flash"
	"github.com/carewell/hospital-system/internal/api/metrics"
	"github.com/carewell/hospital-system/internal/core/domain"
	"github.com/carewell/hospital-system/internal/core/ports"
)

// AppointmentHandler serves the appointments page, scheduling and
// cancellation.
type AppointmentHandler struct {
	appointments ports.AppointmentService
	patients     ports.PatientService
	doctors      ports.DoctorService
	log          zerolog.Logger
}

func NewAppointmentHandler(
	appointments ports.AppointmentService,
	patients ports.PatientService,
	doctors ports.DoctorService,
	log zerolog.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments, patients: patients, doctors: doctors, log: log}
}

type appointmentForm struct {
	PatientID string `form:"patient_id"`
	DoctorID  string `form:"doctor_id"`
	Date      string `form:"date"`
	Time      string `form:"time"`
	Notes     string `form:"notes"`
}

type appointmentsView struct {
	pageContext
	Appointments []domain.AppointmentDetail
	Patients     []domain.Patient
	Doctors      []domain.Doctor
}

// List handles GET /appointments. The patient and doctor lists feed the
// scheduling form's selects.
func (h *AppointmentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	appointments, err := h.appointments.List(ctx)
	if err != nil {
		return err
	}
	patients, err := h.patients.Export(ctx)
	if err != nil {
		return err
	}
	doctors, err := h.doctors.List(ctx)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "appointments.html", appointmentsView{
		pageContext:  newPageContext(c),
		Appointments: appointments,
		Patients:     patients,
		Doctors:      doctors,
	})
}

// Schedule handles POST /appointments.
func (h *AppointmentHandler) Schedule(c echo.Context) error {
	var form appointmentForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, flash.LevelDanger, "All fields are required")
		return c.Redirect(http.StatusFound, "/appointments")
	}

	err := h.appointments.Schedule(c.Request().Context(), ports.ScheduleAppointmentInput{
		PatientID: form.PatientID,
		DoctorID:  form.DoctorID,
		Date:      form.Date,
		Time:      form.Time,
		Notes:     form.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			flash.Set(c, flash.LevelDanger, "All fields are required")
		} else {
			h.log.Error().Err(err).Msg("schedule appointment")
			flash.Set(c, flash.LevelDanger, "Could not schedule appointment")
		}
		return c.Redirect(http.StatusFound, "/appointments")
	}

	metrics.RecordMutationsTotal.WithLabelValues("appointment", "create").Inc()
	flash.Set(c, flash.LevelSuccess, "Appointment scheduled")
	return c.Redirect(http.StatusFound, "/appointments")
}

// Cancel handles POST /cancel_appointment/:id.
func (h *AppointmentHandler) Cancel(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		flash.Set(c, flash.LevelDanger, "Appointment not found")
		return c.Redirect(http.StatusFound, "/appointments")
	}

	if err := h.appointments.Cancel(c.Request().Context(), id); err != nil {
		h.log.Error().Err(err).Int("id", id).Msg("cancel appointment")
		flash.Set(c, flash.LevelDanger, "Could not cancel appointment")
		return c.Redirect(http.StatusFound, "/appointments")
	}

	metrics.RecordMutationsTotal.WithLabelValues("appointment", "cancel").Inc()
	flash.Set(c, flash.LevelSuccess, "Appointment cancelled")
	return c.Redirect(http.StatusFound, "/appointments")
}
