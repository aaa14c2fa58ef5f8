// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"jobport/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedPassword is the known password for every seeded account.
const SeedPassword = "password123"

var jobCategories = []string{
	"Engineering", "Design", "Marketing", "Sales", "Finance",
	"Operations", "Customer Support", "Data", "Product", "HR",
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db             *gorm.DB
	hashedPassword string
	rng            *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	hashed, _ := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	return &Factory{
		db:             db,
		hashedPassword: string(hashed),
		//nolint:gosec // Weak random number generator is fine for seeding
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample `models.User` with the
// given role. Optional override functions may modify the generated user
// before saving.
func (f *Factory) CreateUser(role string, overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: f.hashedPassword,
		Role:     role,
		Phone:    gofakeit.Phone(),
	}
	if role == models.RoleEmployer {
		user.CompanyName = gofakeit.Company()
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateJob constructs and persists a sample `models.Job` for the given
// employer, with a realistic created_at spread over the last 90 days.
func (f *Factory) CreateJob(employer *models.User, overrides ...func(*models.Job)) (*models.Job, error) {
	salaryMin := float64(gofakeit.Number(40, 90)) * 1000
	salaryMax := salaryMin + float64(gofakeit.Number(10, 60))*1000

	jobTypes := []string{
		models.JobTypeFullTime, models.JobTypePartTime,
		models.JobTypeContract, models.JobTypeInternship,
	}

	job := &models.Job{
		EmployerID:   employer.ID,
		Title:        gofakeit.JobTitle(),
		Description:  gofakeit.Paragraph(2, 4, 8, "\n"),
		Location:     fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		JobType:      jobTypes[f.rng.Intn(len(jobTypes))],
		Category:     jobCategories[f.rng.Intn(len(jobCategories))],
		SalaryMin:    &salaryMin,
		SalaryMax:    &salaryMax,
		Requirements: gofakeit.Paragraph(1, 3, 6, "\n"),
		Status:       models.JobStatusPending,
	}

	daysBack := f.rng.Intn(90)
	hoursBack := f.rng.Intn(24)
	job.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(job)
	}

	if err := f.db.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// CreateApplication constructs and persists a sample application from
// the given seeker to the given job.
func (f *Factory) CreateApplication(job *models.Job, seeker *models.User, overrides ...func(*models.Application)) (*models.Application, error) {
	application := &models.Application{
		JobID:       job.ID,
		ApplicantID: seeker.ID,
		Resume:      fmt.Sprintf("%s.pdf", gofakeit.UUID()),
		CoverLetter: gofakeit.Paragraph(1, 2, 6, "\n"),
		Status:      models.ApplicationStatusSubmitted,
	}

	for _, override := range overrides {
		override(application)
	}

	if err := f.db.Create(application).Error; err != nil {
		return nil, err
	}
	return application, nil
}
