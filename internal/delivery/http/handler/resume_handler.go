package handler

import (
	"errors"
	"io"
	"strings"

	"job-platform/internal/delivery/http/dto"
	"job-platform/internal/delivery/http/middleware"
	"job-platform/internal/pkg/response"
	"job-platform/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/upload", h.Upload)
	r.Get("/recommendations/:applicantUsername", h.Recommendations)
	r.Get("/metadata/:username", h.Metadata)
	r.Get("/file/:username", h.File)
}

func (h *ResumeHandler) Upload(c fiber.Ctx) error {
	username := strings.TrimSpace(c.FormValue("username"))
	if username == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Username is required for resume upload.", nil)
	}

	fh, err := c.FormFile("file")
	if err != nil || fh == nil || fh.Filename == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file uploaded or file name is empty.", err)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file uploaded or file name is empty.", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError,
			"Failed to upload resume. Check server logs for details.", err)
	}

	res, err := h.uc.Upload(c.Context(), usecase.ResumeUploadInput{
		Username:           username,
		Content:            content,
		ContentType:        fh.Header.Get("Content-Type"),
		ExtractedSkillsCSV: c.FormValue("extractedSkills"),
		Summary:            c.FormValue("resumeSummary"),
	})
	if err != nil {
		return mapResumeUploadError(err)
	}

	return response.JSON(c, fiber.StatusOK, fiber.Map{
		"message":  "Resume uploaded successfully.",
		"gridFsId": res.BlobID,
	})
}

// Recommendations keeps the original wire shape: failures on the applicant
// lookup return a bare empty array with the failure status, never a message
// body.
func (h *ResumeHandler) Recommendations(c fiber.Ctx) error {
	applicant := c.Params("applicantUsername")

	recs, err := h.uc.Recommend(c.Context(), applicant)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			return response.JSON(c, fiber.StatusNotFound, []dto.JobRecommendationResponse{})
		case errors.Is(err, usecase.ErrNotApplicant):
			return response.JSON(c, fiber.StatusForbidden, []dto.JobRecommendationResponse{})
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}

	return response.JSON(c, fiber.StatusOK, dto.FromRecommendations(recs))
}

func (h *ResumeHandler) Metadata(c fiber.Ctx) error {
	username := c.Params("username")

	meta, err := h.uc.GetMetadata(c.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound), errors.Is(err, usecase.ErrNoResume):
			return middleware.NewAppError(fiber.StatusNotFound, "No resume metadata found for user: "+username, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}

	skills := meta.Skills
	if skills == nil {
		skills = []string{}
	}
	return response.JSON(c, fiber.StatusOK, fiber.Map{
		"extractedSkills": skills,
		"resumeSummary":   meta.Summary,
	})
}

func (h *ResumeHandler) File(c fiber.Ctx) error {
	username := c.Params("username")

	content, contentType, err := h.uc.GetFile(c.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound), errors.Is(err, usecase.ErrNoResume):
			return middleware.NewAppError(fiber.StatusNotFound, "No resume found for user: "+username, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}

	if contentType == "" {
		contentType = "application/pdf"
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+username+`.pdf"`)
	return c.Status(fiber.StatusOK).Send(content)
}

func mapResumeUploadError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Username is required for resume upload.", err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found.", err)
	case errors.Is(err, usecase.ErrNotApplicant):
		return middleware.NewAppError(fiber.StatusForbidden, "Only users with 'Apply' section can upload resumes.", err)
	case errors.Is(err, usecase.ErrEmptyFile):
		return middleware.NewAppError(fiber.StatusBadRequest, "No file uploaded or file name is empty.", err)
	case errors.Is(err, usecase.ErrUnsupportedMediaType):
		return middleware.NewAppError(fiber.StatusUnsupportedMediaType, "Invalid file type. Only PDF files are allowed.", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError,
			"Failed to upload resume. Check server logs for details.", err)
	}
}
