package repository

import (
	"context"
	"strings"

	"jobport/internal/models"

	"gorm.io/gorm"
)

// JobFilters are the optional public listing filters. All supplied
// filters compose with AND; text filters are case-insensitive substring
// matches.
type JobFilters struct {
	Search   string
	Location string
	Category string
	JobType  string
}

// JobRepository defines the interface for job data operations
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id uint) (*models.Job, error)
	ListApproved(ctx context.Context, filters JobFilters, limit, offset int) ([]*models.Job, error)
	CountApproved(ctx context.Context, filters JobFilters) (int64, error)
	GetByEmployerID(ctx context.Context, employerID uint) ([]*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
}

// jobRepository implements JobRepository
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).Preload("Employer").First(&job, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("Job", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &job, nil
}

// applyFilters appends WHERE clauses for each supplied filter.
// LOWER(...) LIKE keeps the matching case-insensitive on both Postgres
// and the SQLite test database.
func (r *jobRepository) applyFilters(db *gorm.DB, filters JobFilters) *gorm.DB {
	if filters.Search != "" {
		like := "%" + strings.ToLower(filters.Search) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if filters.Location != "" {
		db = db.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filters.Location)+"%")
	}
	if filters.Category != "" {
		db = db.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(filters.Category)+"%")
	}
	if filters.JobType != "" {
		db = db.Where("job_type = ?", filters.JobType)
	}
	return db
}

func (r *jobRepository) ListApproved(ctx context.Context, filters JobFilters, limit, offset int) ([]*models.Job, error) {
	var jobs []*models.Job
	base := r.db.WithContext(ctx).
		Preload("Employer").
		Where("status = ?", models.JobStatusApproved)
	err := r.applyFilters(base, filters).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&jobs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return jobs, nil
}

func (r *jobRepository) CountApproved(ctx context.Context, filters JobFilters) (int64, error) {
	var count int64
	base := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("status = ?", models.JobStatusApproved)
	if err := r.applyFilters(base, filters).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *jobRepository) GetByEmployerID(ctx context.Context, employerID uint) ([]*models.Job, error) {
	var jobs []*models.Job
	err := r.db.WithContext(ctx).
		Select("jobs.*, (SELECT COUNT(*) FROM applications WHERE applications.job_id = jobs.id) as applications_count").
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return jobs, nil
}

func (r *jobRepository) Update(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Save(job).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
