package domain

const (
	AppointmentScheduled = "Scheduled"
	AppointmentCancelled = "Cancelled"
)

// Appointment links a patient to a doctor at a date/time. The references
// are deliberately unconstrained: deleting a patient or doctor leaves the
// appointment in place and listings render the missing name as blank.
type Appointment struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID *int   `json:"patient_id"`
	DoctorID  *int   `json:"doctor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `gorm:"default:Scheduled" json:"status"`
	Notes     string `json:"notes"`
}

// AppointmentDetail is an appointment joined with the (possibly missing)
// patient and doctor names, as shown on the appointments page.
type AppointmentDetail struct {
	ID          int     `json:"id"`
	PatientName *string `json:"patient_name"`
	DoctorName  *string `json:"doctor_name"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
}
