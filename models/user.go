package models

import (
	"time"

	"gorm.io/gorm"
)

// Role values accepted on User.Role. "recepcionist" keeps the spelling the
// existing clients already send.
const (
	RoleAdmin        = "admin"
	RoleUser         = "user"
	RoleInstructor   = "instructor"
	RoleMember       = "member"
	RoleRecepcionist = "recepcionist"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type User struct {
	gorm.Model
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Birthdate time.Time `json:"birthdate"`
	Phone     string    `json:"phone"`
	Role      string    `gorm:"default:user" json:"role"`
	Password  string    `gorm:"not null" json:"-"`
	Photo     string    `gorm:"default:default.jpg" json:"photo"`
	Status    string    `gorm:"default:active" json:"status"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleUser, RoleInstructor, RoleMember, RoleRecepcionist:
		return true
	}
	return false
}
