package domain

import "errors"

// Sentinel errors shared across services, repositories and handlers.
// Handlers translate these into flash notices; anything else bubbles up
// to the central HTTP error handler.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("forbidden")

	ErrPatientNotFound     = errors.New("patient not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")

	ErrNameRequired  = errors.New("name is required")
	ErrInvalidNumber = errors.New("invalid number")
	ErrMissingFields = errors.New("required fields missing")
)
