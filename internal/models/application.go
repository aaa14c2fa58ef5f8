package models

import (
	"time"
)

// Application statuses. The field is a flat enum: any status may be set
// from any other, there is no enforced transition graph.
const (
	ApplicationStatusSubmitted   = "submitted"
	ApplicationStatusUnderReview = "under_review"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusAccepted    = "accepted"
)

// Application relates one job seeker to one job. The composite unique
// index makes the database reject a second application for the same
// (job, applicant) pair, so concurrent duplicate submissions cannot race
// past an application-level existence check.
type Application struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	JobID       uint      `gorm:"not null;uniqueIndex:idx_job_applicant" json:"job_id"`
	Job         Job       `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job"`
	ApplicantID uint      `gorm:"not null;uniqueIndex:idx_job_applicant" json:"applicant_id"`
	Applicant   User      `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE" json:"applicant"`
	Resume      string    `gorm:"not null" json:"resume"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Status      string    `gorm:"not null;default:submitted;index" json:"status"`
	AppliedAt   time.Time `gorm:"autoCreateTime" json:"applied_at"`
}

// ValidApplicationStatus reports whether s is one of the enumerated statuses.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusUnderReview,
		ApplicationStatusShortlisted, ApplicationStatusRejected, ApplicationStatusAccepted:
		return true
	}
	return false
}

// ModerationApplicationStatus reports whether s is a status reachable
// through bulk moderation triage.
func ModerationApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusUnderReview, ApplicationStatusShortlisted, ApplicationStatusRejected:
		return true
	}
	return false
}
