package domain

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User models an authenticated actor. Passwords are only ever stored as
// bcrypt hashes.
type User struct {
	ID           int    `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"column:password;not null" json:"-"`
	Role         string `gorm:"default:staff" json:"role"`
}
