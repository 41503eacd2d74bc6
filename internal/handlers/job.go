package handlers

import (
	"errors"

	"zeaz/internal/repositories"
	"zeaz/internal/services/job"
	"zeaz/internal/utils"
	"zeaz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	jobService job.Service
}

func NewJobHandler(jobService job.Service) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// GenerateFeedForm queues a TikTok feed product form generation job.
func (h *JobHandler) GenerateFeedForm(c *fiber.Ctx) error {
	var req job.FeedFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if req.ProductID == "" || req.Title == "" {
		return utils.BadRequest(c, "product_id and title are required")
	}
	if req.Price <= 0 {
		return utils.BadRequest(c, "price must be greater than 0")
	}
	if _, err := validation.NormalizeCurrency(req.Currency); err != nil {
		return utils.BadRequest(c, "Invalid currency")
	}

	created, err := h.jobService.CreateFeedForm(c.Context(), req)
	if err != nil {
		return utils.InternalError(c, "Failed to create job")
	}
	return utils.Success(c, created)
}

// GenerateVideo queues a product video render job.
func (h *JobHandler) GenerateVideo(c *fiber.Ctx) error {
	var req job.VideoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if req.ProductID == "" {
		return utils.BadRequest(c, "product_id is required")
	}
	if req.ScriptStyle == "" {
		req.ScriptStyle = "conversion"
	}
	if req.DurationSeconds == 0 {
		req.DurationSeconds = 20
	}
	if req.DurationSeconds < 5 || req.DurationSeconds > 180 {
		return utils.BadRequest(c, "duration_seconds must be between 5 and 180")
	}

	created, err := h.jobService.CreateVideo(c.Context(), req)
	if err != nil {
		return utils.InternalError(c, "Failed to create job")
	}
	return utils.Success(c, created)
}

// Upload queues a TikTok Shop affiliate upload job.
func (h *JobHandler) Upload(c *fiber.Ctx) error {
	var req job.UploadRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if req.JobReference == "" || req.ShopID == "" || req.CreatorHandle == "" {
		return utils.BadRequest(c, "job_reference, shop_id and creator_handle are required")
	}

	created, err := h.jobService.CreateUpload(c.Context(), req)
	if err != nil {
		return utils.InternalError(c, "Failed to create job")
	}
	return utils.Success(c, created)
}

// ListJobs returns all jobs, newest first.
func (h *JobHandler) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.jobService.List(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to list jobs")
	}
	return utils.Success(c, fiber.Map{"data": jobs})
}

// GetJob returns one job by id.
func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	found, err := h.jobService.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return utils.NotFound(c, "job_not_found")
		}
		return utils.InternalError(c, "Failed to get job")
	}
	return utils.Success(c, found)
}
