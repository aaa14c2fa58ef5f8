package service

import (
	"context"
	"strings"

	"jobport/internal/cache"
	"jobport/internal/models"
	"jobport/internal/observability"
	"jobport/internal/repository"
)

// PageSize is the fixed public listing page size.
const PageSize = 10

// JobService implements the job catalog and search/listing operations.
type JobService struct {
	jobRepo  repository.JobRepository
	appRepo  repository.ApplicationRepository
	userRepo repository.UserRepository
}

// CreateJobInput is the typed payload for posting a job. EmployerID is
// always the acting identity, never client input.
type CreateJobInput struct {
	EmployerID   uint
	Title        string
	Description  string
	Location     string
	JobType      string
	Category     string
	SalaryMin    *float64
	SalaryMax    *float64
	Requirements string
}

// ListJobsInput selects and pages the public catalog.
type ListJobsInput struct {
	Filters repository.JobFilters
	Page    int
}

// JobPage is a page of the public catalog with paginator metadata.
type JobPage struct {
	Jobs       []*models.Job `json:"jobs"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
	TotalCount int64         `json:"total_count"`
}

// NewJobService returns a new JobService.
func NewJobService(jobRepo repository.JobRepository, appRepo repository.ApplicationRepository, userRepo repository.UserRepository) *JobService {
	return &JobService{jobRepo: jobRepo, appRepo: appRepo, userRepo: userRepo}
}

// CreateJob validates the posting and persists it with status pending.
// The listing becomes publicly visible only after moderation approves it.
func (s *JobService) CreateJob(ctx context.Context, in CreateJobInput) (*models.Job, error) {
	actor, err := s.userRepo.GetByID(ctx, in.EmployerID)
	if err != nil {
		return nil, err
	}
	if !actor.IsEmployer() {
		return nil, models.NewRoleViolationError("Only employers can post jobs")
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	in.Category = strings.TrimSpace(in.Category)
	in.Requirements = strings.TrimSpace(in.Requirements)

	if in.Title == "" || in.Description == "" || in.Location == "" || in.Category == "" || in.Requirements == "" {
		return nil, models.NewValidationError("Title, description, location, category and requirements are required")
	}
	if !models.ValidJobType(in.JobType) {
		return nil, models.NewValidationError("Invalid job_type")
	}
	if in.SalaryMin != nil && *in.SalaryMin < 0 {
		return nil, models.NewValidationError("salary_min cannot be negative")
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return nil, models.NewValidationError("salary_min cannot exceed salary_max")
	}

	job := &models.Job{
		EmployerID:   in.EmployerID,
		Title:        in.Title,
		Description:  in.Description,
		Location:     in.Location,
		JobType:      in.JobType,
		Category:     in.Category,
		SalaryMin:    in.SalaryMin,
		SalaryMax:    in.SalaryMax,
		Requirements: in.Requirements,
		Status:       models.JobStatusPending,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	observability.JobsCreated.WithLabelValues(job.Status).Inc()
	cache.InvalidateJobListings(ctx)

	return s.jobRepo.GetByID(ctx, job.ID)
}

// ListJobs returns a page of approved jobs, newest first. Out-of-range
// page numbers clamp to the nearest valid page. The unfiltered first
// page is served cache-aside.
func (s *JobService) ListJobs(ctx context.Context, in ListJobsInput) (*JobPage, error) {
	total, err := s.jobRepo.CountApproved(ctx, in.Filters)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	page := in.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	offset := (page - 1) * PageSize

	result := &JobPage{
		Page:       page,
		PageSize:   PageSize,
		TotalPages: totalPages,
		TotalCount: total,
	}

	unfilteredFirstPage := page == 1 && in.Filters == (repository.JobFilters{})
	if unfilteredFirstPage {
		err = cache.Aside(ctx, cache.JobsFirstPage, &result.Jobs, cache.JobListTTL, func() error {
			var fetchErr error
			result.Jobs, fetchErr = s.jobRepo.ListApproved(ctx, in.Filters, PageSize, offset)
			return fetchErr
		})
	} else {
		result.Jobs, err = s.jobRepo.ListApproved(ctx, in.Filters, PageSize, offset)
	}
	if err != nil {
		return nil, err
	}

	if result.Jobs == nil {
		result.Jobs = []*models.Job{}
	}
	return result, nil
}

// GetJob returns a job detail. Approved jobs are visible to everyone;
// a non-approved job is visible only to its owning employer or an
// admin, and reads as not found to anyone else. actorID 0 means
// anonymous. For a job seeker the AlreadyApplied flag is populated.
// The row fetch is served cache-aside per job; moderation invalidates
// the key when it changes the status.
func (s *JobService) GetJob(ctx context.Context, id uint, actorID uint) (*models.Job, error) {
	var job *models.Job
	err := cache.Aside(ctx, cache.JobKey(id), &job, cache.JobTTL, func() error {
		var fetchErr error
		job, fetchErr = s.jobRepo.GetByID(ctx, id)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}

	var actor *models.User
	if actorID != 0 {
		actor, err = s.userRepo.GetByID(ctx, actorID)
		if err != nil {
			return nil, err
		}
	}

	if !job.IsApproved() {
		ownerPreview := actor != nil && (actor.ID == job.EmployerID || actor.IsAdmin)
		if !ownerPreview {
			return nil, models.NewNotFoundError("Job", id)
		}
	}

	if actor != nil && actor.IsJobSeeker() {
		applied, err := s.appRepo.Exists(ctx, job.ID, actor.ID)
		if err != nil {
			return nil, err
		}
		job.AlreadyApplied = applied
	}

	return job, nil
}

// EmployerDashboard lists the actor's own jobs in every status, with
// application counts, newest first.
func (s *JobService) EmployerDashboard(ctx context.Context, employerID uint) ([]*models.Job, error) {
	actor, err := s.userRepo.GetByID(ctx, employerID)
	if err != nil {
		return nil, err
	}
	if !actor.IsEmployer() {
		return nil, models.NewRoleViolationError("Access denied")
	}
	jobs, err := s.jobRepo.GetByEmployerID(ctx, employerID)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []*models.Job{}
	}
	return jobs, nil
}
