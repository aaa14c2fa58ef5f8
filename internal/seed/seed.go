package seed

import (
	"fmt"
	"log"

	"jobport/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumEmployers    int
	NumSeekers      int
	JobsPerEmployer int
	ShouldClean     bool
}

// Seeder populates the database with demo accounts, jobs and applications.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded data. Postgres gets a single TRUNCATE
// that also resets sequences; other dialects (the SQLite tests) delete
// table by table in FK order.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	if s.db.Dialector.Name() == "postgres" {
		return s.db.Exec(`TRUNCATE TABLE applications, jobs, users RESTART IDENTITY CASCADE;`).Error
	}
	for _, model := range []any{&models.Application{}, &models.Job{}, &models.User{}} {
		err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Seed populates the database with test data: an admin, employers with
// jobs across every moderation status, and seekers with applications to
// approved jobs.
func (s *Seeder) Seed(opts Options) error {
	log.Printf("Seeding %d employers, %d seekers, %d jobs each...",
		opts.NumEmployers, opts.NumSeekers, opts.JobsPerEmployer)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	if err := s.createAdmin(); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	employers := make([]*models.User, 0, opts.NumEmployers)
	for i := 0; i < opts.NumEmployers; i++ {
		employer, err := s.factory.CreateUser(models.RoleEmployer)
		if err != nil {
			return fmt.Errorf("failed to create employer: %w", err)
		}
		employers = append(employers, employer)
	}
	log.Printf("✓ %d employers created", len(employers))

	seekers := make([]*models.User, 0, opts.NumSeekers)
	for i := 0; i < opts.NumSeekers; i++ {
		seeker, err := s.factory.CreateUser(models.RoleJobSeeker)
		if err != nil {
			return fmt.Errorf("failed to create seeker: %w", err)
		}
		seekers = append(seekers, seeker)
	}
	log.Printf("✓ %d job seekers created", len(seekers))

	var approved []*models.Job
	statuses := []string{
		models.JobStatusApproved, models.JobStatusApproved,
		models.JobStatusApproved, models.JobStatusPending,
		models.JobStatusRejected,
	}
	for _, employer := range employers {
		for i := 0; i < opts.JobsPerEmployer; i++ {
			status := statuses[i%len(statuses)]
			job, err := s.factory.CreateJob(employer, func(j *models.Job) {
				j.Status = status
			})
			if err != nil {
				return fmt.Errorf("failed to create job: %w", err)
			}
			if job.Status == models.JobStatusApproved {
				approved = append(approved, job)
			}
		}
	}
	log.Printf("✓ %d jobs created (%d approved)", len(employers)*opts.JobsPerEmployer, len(approved))

	applicationStatuses := []string{
		models.ApplicationStatusSubmitted, models.ApplicationStatusSubmitted,
		models.ApplicationStatusUnderReview, models.ApplicationStatusShortlisted,
		models.ApplicationStatusRejected, models.ApplicationStatusAccepted,
	}
	created := 0
	for i, seeker := range seekers {
		// each seeker applies to a handful of distinct approved jobs
		for j := 0; j < 3 && j < len(approved); j++ {
			job := approved[(i*3+j)%len(approved)]
			_, err := s.factory.CreateApplication(job, seeker, func(a *models.Application) {
				a.Status = applicationStatuses[(i+j)%len(applicationStatuses)]
			})
			if err != nil {
				return fmt.Errorf("failed to create application: %w", err)
			}
			created++
		}
	}
	log.Printf("✓ %d applications created", created)

	log.Println("Database seeding completed successfully!")
	return nil
}

func (s *Seeder) createAdmin() error {
	_, err := s.factory.CreateUser(models.RoleJobSeeker, func(u *models.User) {
		u.Username = "admin"
		u.Email = "admin@example.com"
		u.IsAdmin = true
	})
	return err
}
