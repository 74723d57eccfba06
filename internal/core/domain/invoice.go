package domain

const (
	InvoiceUnpaid = "Unpaid"
	InvoicePaid   = "Paid"
)

// Invoice is a billing record against a patient. CreatedAt is stored as a
// formatted UTC timestamp string, matching how the store has always held it.
type Invoice struct {
	ID          int     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   *int    `json:"patient_id"`
	Amount      float64 `json:"amount"`
	Status      string  `gorm:"default:Unpaid" json:"status"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
	DueDate     *string `json:"due_date"`
}

// InvoiceDetail is an invoice joined with the patient name for listings,
// the detail page and the CSV export.
type InvoiceDetail struct {
	ID          int     `json:"id"`
	PatientName *string `json:"patient_name"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	DueDate     *string `json:"due_date"`
	Description string  `json:"description"`
}
