package handler

import (
	"errors"

	"job-platform/internal/delivery/http/dto"
	"job-platform/internal/delivery/http/middleware"
	"job-platform/internal/pkg/response"
	"job-platform/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const msgJobFieldsRequired = "All fields (title, description, skills, experience, location, posterUsername) are required."

type JobsHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
	Location       string   `json:"location"`
	PosterUsername string   `json:"posterUsername"`
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.List)
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgJobFieldsRequired, err)
	}

	posting, err := h.uc.Create(c.Context(), usecase.JobCreateInput{
		Title:          req.Title,
		Description:    req.Description,
		Skills:         req.Skills,
		Experience:     req.Experience,
		Location:       req.Location,
		PosterUsername: req.PosterUsername,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, msgJobFieldsRequired, err)
		case errors.Is(err, usecase.ErrPosterNotFound), errors.Is(err, usecase.ErrPosterNotAuthorized):
			return middleware.NewAppError(fiber.StatusForbidden,
				"Failed to create job posting. Ensure the user exists and has 'Post' section.", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}

	return response.JSON(c, fiber.StatusCreated, fiber.Map{
		"message": "Job posting created successfully.",
		"job":     dto.FromPosting(posting),
	})
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	postings, err := h.uc.ListAll(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusOK, dto.FromPostings(postings))
}
