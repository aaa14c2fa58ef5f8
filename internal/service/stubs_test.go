package service

import (
	"context"

	"jobport/internal/models"
	"jobport/internal/repository"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
	}
}

// userRepoWith returns a stub whose GetByID serves the given users by ID.
func userRepoWith(users ...*models.User) *userRepoStub {
	stub := noopUserRepo()
	stub.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		for _, u := range users {
			if u.ID == id {
				return u, nil
			}
		}
		return nil, models.NewNotFoundError("User", id)
	}
	return stub
}

// jobRepoStub is a stub for repository.JobRepository.
type jobRepoStub struct {
	createFn          func(context.Context, *models.Job) error
	getByIDFn         func(context.Context, uint) (*models.Job, error)
	listApprovedFn    func(context.Context, repository.JobFilters, int, int) ([]*models.Job, error)
	countApprovedFn   func(context.Context, repository.JobFilters) (int64, error)
	getByEmployerIDFn func(context.Context, uint) ([]*models.Job, error)
	updateFn          func(context.Context, *models.Job) error
}

func (s *jobRepoStub) Create(ctx context.Context, job *models.Job) error {
	return s.createFn(ctx, job)
}
func (s *jobRepoStub) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	return s.getByIDFn(ctx, id)
}
func (s *jobRepoStub) ListApproved(ctx context.Context, filters repository.JobFilters, limit, offset int) ([]*models.Job, error) {
	return s.listApprovedFn(ctx, filters, limit, offset)
}
func (s *jobRepoStub) CountApproved(ctx context.Context, filters repository.JobFilters) (int64, error) {
	return s.countApprovedFn(ctx, filters)
}
func (s *jobRepoStub) GetByEmployerID(ctx context.Context, employerID uint) ([]*models.Job, error) {
	return s.getByEmployerIDFn(ctx, employerID)
}
func (s *jobRepoStub) Update(ctx context.Context, job *models.Job) error {
	return s.updateFn(ctx, job)
}

func noopJobRepo() *jobRepoStub {
	return &jobRepoStub{
		createFn: func(_ context.Context, _ *models.Job) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Job, error) {
			return &models.Job{ID: id, Status: models.JobStatusApproved}, nil
		},
		listApprovedFn: func(_ context.Context, _ repository.JobFilters, _, _ int) ([]*models.Job, error) {
			return nil, nil
		},
		countApprovedFn:   func(_ context.Context, _ repository.JobFilters) (int64, error) { return 0, nil },
		getByEmployerIDFn: func(_ context.Context, _ uint) ([]*models.Job, error) { return nil, nil },
		updateFn:          func(_ context.Context, _ *models.Job) error { return nil },
	}
}

// applicationRepoStub is a stub for repository.ApplicationRepository.
type applicationRepoStub struct {
	createFn           func(context.Context, *models.Application) error
	getByIDFn          func(context.Context, uint) (*models.Application, error)
	getByJobIDFn       func(context.Context, uint) ([]*models.Application, error)
	getByApplicantIDFn func(context.Context, uint) ([]*models.Application, error)
	existsFn           func(context.Context, uint, uint) (bool, error)
	updateFn           func(context.Context, *models.Application) error
}

func (s *applicationRepoStub) Create(ctx context.Context, application *models.Application) error {
	return s.createFn(ctx, application)
}
func (s *applicationRepoStub) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	return s.getByIDFn(ctx, id)
}
func (s *applicationRepoStub) GetByJobID(ctx context.Context, jobID uint) ([]*models.Application, error) {
	return s.getByJobIDFn(ctx, jobID)
}
func (s *applicationRepoStub) GetByApplicantID(ctx context.Context, applicantID uint) ([]*models.Application, error) {
	return s.getByApplicantIDFn(ctx, applicantID)
}
func (s *applicationRepoStub) Exists(ctx context.Context, jobID, applicantID uint) (bool, error) {
	return s.existsFn(ctx, jobID, applicantID)
}
func (s *applicationRepoStub) Update(ctx context.Context, application *models.Application) error {
	return s.updateFn(ctx, application)
}

func noopApplicationRepo() *applicationRepoStub {
	return &applicationRepoStub{
		createFn: func(_ context.Context, _ *models.Application) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Application, error) {
			return &models.Application{ID: id}, nil
		},
		getByJobIDFn:       func(_ context.Context, _ uint) ([]*models.Application, error) { return nil, nil },
		getByApplicantIDFn: func(_ context.Context, _ uint) ([]*models.Application, error) { return nil, nil },
		existsFn:           func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		updateFn:           func(_ context.Context, _ *models.Application) error { return nil },
	}
}
