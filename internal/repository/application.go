package repository

import (
	"context"
	"errors"

	"jobport/internal/models"

	"gorm.io/gorm"
)

// ApplicationRepository defines the interface for application data operations
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	GetByJobID(ctx context.Context, jobID uint) ([]*models.Application, error)
	GetByApplicantID(ctx context.Context, applicantID uint) ([]*models.Application, error)
	Exists(ctx context.Context, jobID, applicantID uint) (bool, error)
	Update(ctx context.Context, application *models.Application) error
}

// applicationRepository implements ApplicationRepository
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create inserts the application. The composite unique index on
// (job_id, applicant_id) rejects a concurrent duplicate; GORM's error
// translation turns that into ErrDuplicatedKey, reported here as
// DUPLICATE_APPLICATION.
func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewDuplicateApplicationError()
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Applicant").
		First(&application, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("Application", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &application, nil
}

func (r *applicationRepository) GetByJobID(ctx context.Context, jobID uint) ([]*models.Application, error) {
	var applications []*models.Application
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return applications, nil
}

func (r *applicationRepository) GetByApplicantID(ctx context.Context, applicantID uint) ([]*models.Application, error) {
	var applications []*models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Job.Employer").
		Where("applicant_id = ?", applicantID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return applications, nil
}

func (r *applicationRepository) Exists(ctx context.Context, jobID, applicantID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *applicationRepository) Update(ctx context.Context, application *models.Application) error {
	if err := r.db.WithContext(ctx).Save(application).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
