package server

import (
	"strconv"

	"jobport/internal/models"
	"jobport/internal/repository"
	"jobport/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListJobs returns a page of approved jobs. Filters combine
// conjunctively: search (title or description substring), location,
// category, and job_type.
func (s *Server) ListJobs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))

	input := service.ListJobsInput{
		Page: page,
		Filters: repository.JobFilters{
			Search:   c.Query("search"),
			Location: c.Query("location"),
			Category: c.Query("category"),
			JobType:  c.Query("job_type"),
		},
	}

	result, err := s.jobService.ListJobs(c.Context(), input)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.JSON(result)
}

// GetJob returns a job detail. Auth is optional here; the owning
// employer and admins can preview their non-approved jobs, everyone
// else sees only approved ones.
func (s *Server) GetJob(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid job ID"))
	}

	actorID, _ := s.optionalUserID(c)

	job, svcErr := s.jobService.GetJob(c.Context(), uint(id), actorID)
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}

	return c.JSON(job)
}

// CreateJobRequest is the job posting payload.
type CreateJobRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	JobType      string   `json:"job_type"`
	Category     string   `json:"category"`
	SalaryMin    *float64 `json:"salary_min"`
	SalaryMax    *float64 `json:"salary_max"`
	Requirements string   `json:"requirements"`
}

// CreateJob posts a new job for the authenticated employer. The job
// starts pending and is not publicly listed until approved.
func (s *Server) CreateJob(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	job, err := s.jobService.CreateJob(c.Context(), service.CreateJobInput{
		EmployerID:   userID,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		JobType:      req.JobType,
		Category:     req.Category,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Requirements: req.Requirements,
	})
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

// EmployerDashboard lists the authenticated employer's jobs in every
// status with application counts.
func (s *Server) EmployerDashboard(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	jobs, err := s.jobService.EmployerDashboard(c.Context(), userID)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.JSON(fiber.Map{"jobs": jobs})
}
