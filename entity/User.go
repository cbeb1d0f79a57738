package entity

import (
	"gorm.io/gorm"
)

// User is a staff account for the admin dashboard.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	FullName string `json:"fullName"`
	Role     string `gorm:"not null;default:staff" json:"role"`
}
