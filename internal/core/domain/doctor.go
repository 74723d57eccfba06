package domain

// Doctor is a practising doctor. Fee is nullable for the same reason
// Patient.Age is.
type Doctor struct {
	ID        int      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string   `gorm:"not null" json:"name"`
	Specialty string   `json:"specialty"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Fee       *float64 `json:"fee"`
}
