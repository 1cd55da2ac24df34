package models

import "time"

const (
	RoleConsultant = "consultant"
	RoleInspector  = "inspector"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Name         string `gorm:"size:100;not null" json:"name"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'consultant'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsConsultant reports whether the user may create, edit and delete
// future inspections. Inspectors only read.
func (u *User) IsConsultant() bool {
	return u.Role == RoleConsultant
}
