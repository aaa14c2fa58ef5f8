// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles. Role is fixed at registration; there is no role-switch operation.
const (
	RoleEmployer  = "employer"
	RoleJobSeeker = "jobseeker"
)

// User represents an employer or job-seeker account.
// IsAdmin is an elevated flag outside the role enum; it is set by
// operations tooling or seeding, never through the public API.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Username    string         `gorm:"unique;not null" json:"username"`
	Email       string         `gorm:"unique;not null" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	Role        string         `gorm:"not null" json:"role"`
	Phone       string         `json:"phone,omitempty"`
	CompanyName string         `json:"company_name,omitempty"`
	IsAdmin     bool           `gorm:"default:false" json:"is_admin"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Jobs        []Job          `gorm:"foreignKey:EmployerID" json:"jobs,omitempty"`
}

// IsEmployer reports whether the user registered as an employer.
func (u *User) IsEmployer() bool {
	return u.Role == RoleEmployer
}

// IsJobSeeker reports whether the user registered as a job seeker.
func (u *User) IsJobSeeker() bool {
	return u.Role == RoleJobSeeker
}

// ValidRole reports whether role is one of the registration roles.
func ValidRole(role string) bool {
	return role == RoleEmployer || role == RoleJobSeeker
}
