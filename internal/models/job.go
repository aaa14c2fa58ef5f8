package models

import (
	"time"

	"gorm.io/gorm"
)

// Job moderation statuses. Only approved jobs are publicly visible,
// searchable and appliable.
const (
	JobStatusPending  = "pending"
	JobStatusApproved = "approved"
	JobStatusRejected = "rejected"
)

// Job types.
const (
	JobTypeFullTime   = "full_time"
	JobTypePartTime   = "part_time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

// Job is a listing posted by an employer. New jobs start as pending and
// become visible only after an administrator approves them.
type Job struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	EmployerID   uint     `gorm:"not null;index" json:"employer_id"`
	Employer     User     `gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE" json:"employer"`
	Title        string   `gorm:"not null" json:"title"`
	Description  string   `gorm:"not null" json:"description"`
	Location     string   `gorm:"not null" json:"location"`
	JobType      string   `gorm:"not null" json:"job_type"`
	Category     string   `gorm:"not null" json:"category"`
	SalaryMin    *float64 `json:"salary_min,omitempty"`
	SalaryMax    *float64 `json:"salary_max,omitempty"`
	Requirements string   `gorm:"not null" json:"requirements"`
	Status       string   `gorm:"not null;default:pending;index" json:"status"`
	// ApplicationsCount has no column; read-only so the dashboard
	// query's subquery alias scans into it
	ApplicationsCount int `gorm:"->;-:migration" json:"applications_count"`
	// AlreadyApplied indicates whether the requesting job seeker applied (computed)
	AlreadyApplied bool           `gorm:"-" json:"already_applied"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsApproved reports whether the job has passed moderation.
func (j *Job) IsApproved() bool {
	return j.Status == JobStatusApproved
}

// ValidJobType reports whether t is one of the enumerated job types.
func ValidJobType(t string) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// ValidJobStatus reports whether s is one of the enumerated job statuses.
func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusPending, JobStatusApproved, JobStatusRejected:
		return true
	}
	return false
}
