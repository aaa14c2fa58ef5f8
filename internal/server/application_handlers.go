package server

import (
	"strconv"

	"jobport/internal/middleware"
	"jobport/internal/models"
	"jobport/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Apply submits an application to a job. The request is multipart:
// a "resume" file plus an optional "cover_letter" field. The resume is
// written to the content store before the application row is created.
func (s *Server) Apply(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	jobID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid job ID"))
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Resume file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondAppError(c, models.NewInternalError(err))
	}
	defer file.Close()

	ref, err := s.resumeStore.Save(fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	application, err := s.applicationService.Apply(c.Context(), service.ApplyInput{
		ApplicantID: userID,
		JobID:       uint(jobID),
		ResumeRef:   ref,
		CoverLetter: c.FormValue("cover_letter"),
	})
	if err != nil {
		// The row was never created, so the stored file is orphaned.
		if removeErr := s.resumeStore.Remove(ref); removeErr != nil {
			middleware.Logger.WarnContext(c.Context(), "failed to remove orphaned resume",
				"ref", ref, "error", removeErr)
		}
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(application)
}

// UpdateStatusRequest carries the new status for an application.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateApplicationStatus lets the owning employer (or an admin) set
// an application's status to any value of the status enum.
func (s *Server) UpdateApplicationStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	appID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid application ID"))
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	application, svcErr := s.applicationService.UpdateStatus(c.Context(), service.UpdateStatusInput{
		ActorID:       userID,
		ApplicationID: uint(appID),
		Status:        req.Status,
	})
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}

	return c.JSON(application)
}

// GetApplicants lists the applications to a job for its owning employer.
func (s *Server) GetApplicants(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	jobID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid job ID"))
	}

	applications, svcErr := s.applicationService.ListForJob(c.Context(), userID, uint(jobID))
	if svcErr != nil {
		return models.RespondAppError(c, svcErr)
	}

	return c.JSON(fiber.Map{"applications": applications})
}

// JobSeekerDashboard lists the authenticated job seeker's applications
// with each parent job's current status.
func (s *Server) JobSeekerDashboard(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	applications, err := s.applicationService.ListForApplicant(c.Context(), userID)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.JSON(fiber.Map{"applications": applications})
}

// DownloadResume streams an application's resume. Access follows the
// same ownership rule as viewing the application: the applicant, the
// owning employer, or an admin.
func (s *Server) DownloadResume(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	appID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid application ID"))
	}

	actor, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	application, err := s.appRepo.GetByID(c.Context(), uint(appID))
	if err != nil {
		return models.RespondAppError(c, err)
	}

	allowed := actor.IsAdmin ||
		application.ApplicantID == actor.ID ||
		application.Job.EmployerID == actor.ID
	if !allowed {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewAccessDeniedError("Access denied"))
	}

	path, err := s.resumeStore.Path(application.Resume)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Download(path)
}
