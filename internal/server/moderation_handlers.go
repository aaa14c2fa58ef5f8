package server

import (
	"strconv"

	"jobport/internal/models"

	"github.com/gofiber/fiber/v2"
)

// BulkIDsRequest carries the target ids for a bulk moderation action.
type BulkIDsRequest struct {
	IDs []uint `json:"ids"`
}

// BulkStatusRequest carries the target ids and the status to apply.
type BulkStatusRequest struct {
	IDs    []uint `json:"ids"`
	Status string `json:"status"`
}

// ApproveJobs publishes the given jobs.
func (s *Server) ApproveJobs(c *fiber.Ctx) error {
	var req BulkIDsRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.moderationService.ModerateJobs(c.Context(), req.IDs, models.JobStatusApproved)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.JSON(result)
}

// RejectJobs rejects the given jobs.
func (s *Server) RejectJobs(c *fiber.Ctx) error {
	var req BulkIDsRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.moderationService.ModerateJobs(c.Context(), req.IDs, models.JobStatusRejected)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.JSON(result)
}

// TriageApplications bulk-updates application statuses from the admin queue.
func (s *Server) TriageApplications(c *fiber.Ctx) error {
	var req BulkStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.moderationService.TriageApplications(c.Context(), req.IDs, req.Status)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.JSON(result)
}

// AdminListJobs returns the moderation queue of jobs, optionally
// filtered by status.
func (s *Server) AdminListJobs(c *fiber.Ctx) error {
	limit, offset := adminPageParams(c)

	jobs, err := s.moderationService.ListJobs(c.Context(), c.Query("status"), limit, offset)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.JSON(fiber.Map{"jobs": jobs})
}

// AdminListApplications returns the moderation queue of applications,
// optionally filtered by status.
func (s *Server) AdminListApplications(c *fiber.Ctx) error {
	limit, offset := adminPageParams(c)

	applications, err := s.moderationService.ListApplications(c.Context(), c.Query("status"), limit, offset)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.JSON(fiber.Map{"applications": applications})
}

func adminPageParams(c *fiber.Ctx) (limit, offset int) {
	limit, _ = strconv.Atoi(c.Query("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset, _ = strconv.Atoi(c.Query("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
