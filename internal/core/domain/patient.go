package domain

// Patient is a hospital patient record. Age is a pointer so an omitted
// form field is stored as NULL rather than zero.
type Patient struct {
	ID      int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Age     *int   `json:"age"`
	Gender  string `json:"gender"`
	Disease string `json:"disease"`
}
