package service

import (
	"context"

	"jobport/internal/models"
	"jobport/internal/observability"
	"jobport/internal/repository"
)

// ApplicationService implements the application lifecycle: apply,
// employer status updates and the ownership-scoped listings.
type ApplicationService struct {
	appRepo  repository.ApplicationRepository
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
}

// ApplyInput is the typed payload for submitting an application. The
// resume has already been written to the content store; ResumeRef is
// its reference.
type ApplyInput struct {
	ApplicantID uint
	JobID       uint
	ResumeRef   string
	CoverLetter string
}

// UpdateStatusInput is the typed payload for an employer status change.
type UpdateStatusInput struct {
	ActorID       uint
	ApplicationID uint
	Status        string
}

// NewApplicationService returns a new ApplicationService.
func NewApplicationService(appRepo repository.ApplicationRepository, jobRepo repository.JobRepository, userRepo repository.UserRepository) *ApplicationService {
	return &ApplicationService{appRepo: appRepo, jobRepo: jobRepo, userRepo: userRepo}
}

// Apply creates an application with status submitted. Only job seekers
// may apply, and only to approved jobs. The store's unique index on
// (job_id, applicant_id) is the duplicate guard; a second submission
// reports DUPLICATE_APPLICATION and creates no record.
func (s *ApplicationService) Apply(ctx context.Context, in ApplyInput) (*models.Application, error) {
	actor, err := s.userRepo.GetByID(ctx, in.ApplicantID)
	if err != nil {
		return nil, err
	}
	if !actor.IsJobSeeker() {
		return nil, models.NewRoleViolationError("Only job seekers can apply for jobs")
	}

	job, err := s.jobRepo.GetByID(ctx, in.JobID)
	if err != nil {
		return nil, err
	}
	if !job.IsApproved() {
		return nil, models.NewNotFoundError("Job", in.JobID)
	}

	if in.ResumeRef == "" {
		return nil, models.NewValidationError("Resume is required")
	}

	application := &models.Application{
		JobID:       job.ID,
		ApplicantID: actor.ID,
		Resume:      in.ResumeRef,
		CoverLetter: in.CoverLetter,
		Status:      models.ApplicationStatusSubmitted,
	}
	if err := s.appRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	observability.ApplicationsSubmitted.Inc()

	return s.appRepo.GetByID(ctx, application.ID)
}

// UpdateStatus overwrites an application's status. The status field is
// a flat enum: any value may replace any other. Only the employer who
// owns the parent job (or an admin) may change it.
func (s *ApplicationService) UpdateStatus(ctx context.Context, in UpdateStatusInput) (*models.Application, error) {
	if !models.ValidApplicationStatus(in.Status) {
		return nil, models.NewValidationError("Invalid application status")
	}

	actor, err := s.userRepo.GetByID(ctx, in.ActorID)
	if err != nil {
		return nil, err
	}

	application, err := s.appRepo.GetByID(ctx, in.ApplicationID)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin {
		if !actor.IsEmployer() {
			return nil, models.NewRoleViolationError("Only employers can manage applications")
		}
		if application.Job.EmployerID != actor.ID {
			return nil, models.NewAccessDeniedError("You can only manage applications to your own jobs")
		}
	}

	application.Status = in.Status
	if err := s.appRepo.Update(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

// ListForJob returns the applications to a job for its owning employer,
// newest first.
func (s *ApplicationService) ListForJob(ctx context.Context, actorID, jobID uint) ([]*models.Application, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin {
		if !actor.IsEmployer() {
			return nil, models.NewRoleViolationError("Only employers can view applicants")
		}
		if job.EmployerID != actor.ID {
			return nil, models.NewAccessDeniedError("You can only view applicants to your own jobs")
		}
	}

	applications, err := s.appRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if applications == nil {
		applications = []*models.Application{}
	}
	return applications, nil
}

// ListForApplicant returns the actor's own applications, newest first.
func (s *ApplicationService) ListForApplicant(ctx context.Context, actorID uint) ([]*models.Application, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsJobSeeker() {
		return nil, models.NewRoleViolationError("Access denied")
	}

	applications, err := s.appRepo.GetByApplicantID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if applications == nil {
		applications = []*models.Application{}
	}
	return applications, nil
}
