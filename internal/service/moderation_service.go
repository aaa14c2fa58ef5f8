package service

import (
	"context"

	"jobport/internal/cache"
	"jobport/internal/models"
	"jobport/internal/observability"

	"gorm.io/gorm"
)

// ModerationService provides the admin bulk operations over jobs and
// applications. It works directly against the DB: bulk updates are
// single UPDATE statements over id sets, with no per-item validation
// beyond existence.
type ModerationService struct {
	db *gorm.DB
}

// BulkResult reports how many records a bulk operation touched.
type BulkResult struct {
	Affected int64 `json:"affected"`
}

// NewModerationService returns a new ModerationService.
func NewModerationService(db *gorm.DB) *ModerationService {
	return &ModerationService{db: db}
}

// ModerateJobs transitions the given jobs to approved or rejected and
// returns the affected count. Approval is what makes a listing public.
func (s *ModerationService) ModerateJobs(ctx context.Context, ids []uint, status string) (*BulkResult, error) {
	if status != models.JobStatusApproved && status != models.JobStatusRejected {
		return nil, models.NewValidationError("Jobs can only be approved or rejected")
	}
	if len(ids) == 0 {
		return nil, models.NewValidationError("No job ids supplied")
	}

	res := s.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id IN ?", ids).
		Update("status", status)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}

	observability.ModerationActions.WithLabelValues("job", status).Add(float64(res.RowsAffected))
	cache.InvalidateJobListings(ctx)
	for _, id := range ids {
		cache.InvalidateJob(ctx, id)
	}

	return &BulkResult{Affected: res.RowsAffected}, nil
}

// TriageApplications bulk-transitions applications to under_review,
// shortlisted or rejected and returns the affected count.
func (s *ModerationService) TriageApplications(ctx context.Context, ids []uint, status string) (*BulkResult, error) {
	if !models.ModerationApplicationStatus(status) {
		return nil, models.NewValidationError("Applications can only be marked under_review, shortlisted or rejected")
	}
	if len(ids) == 0 {
		return nil, models.NewValidationError("No application ids supplied")
	}

	res := s.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id IN ?", ids).
		Update("status", status)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}

	observability.ModerationActions.WithLabelValues("application", status).Add(float64(res.RowsAffected))

	return &BulkResult{Affected: res.RowsAffected}, nil
}

// ListJobs returns jobs for the admin queue, optionally filtered by
// status, newest first.
func (s *ModerationService) ListJobs(ctx context.Context, status string, limit, offset int) ([]*models.Job, error) {
	if status != "" && !models.ValidJobStatus(status) {
		return nil, models.NewValidationError("Invalid job status filter")
	}

	query := s.db.WithContext(ctx).Preload("Employer").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var jobs []*models.Job
	if err := query.Limit(limit).Offset(offset).Find(&jobs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return jobs, nil
}

// ListApplications returns applications for the admin queue, optionally
// filtered by status, newest first.
func (s *ModerationService) ListApplications(ctx context.Context, status string, limit, offset int) ([]*models.Application, error) {
	if status != "" && !models.ValidApplicationStatus(status) {
		return nil, models.NewValidationError("Invalid application status filter")
	}

	query := s.db.WithContext(ctx).Preload("Job").Preload("Applicant").Order("applied_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var applications []*models.Application
	if err := query.Limit(limit).Offset(offset).Find(&applications).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return applications, nil
}
