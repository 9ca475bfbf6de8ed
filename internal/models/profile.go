package models

import "time"

// Profile roles.
const (
	RoleComum = "comum"
	RoleAdmin = "admin"
)

// Profile is the one-to-one record that gates authentication and carries the
// user's role. An account whose profile has Active=false cannot log in even
// with valid credentials.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	CPF       string    `gorm:"size:11;not null;uniqueIndex" json:"cpf"`
	Role      string    `gorm:"size:20;not null;default:'comum'" json:"role"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the profile carries the admin role.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
