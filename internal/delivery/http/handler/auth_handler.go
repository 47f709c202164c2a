package handler

import (
	"errors"
	"strings"

	"job-platform/internal/delivery/http/middleware"
	"job-platform/internal/pkg/response"
	"job-platform/internal/usecase"
	ucauth "job-platform/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Section  string `json:"section"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type logoutRequest struct {
	Username string `json:"username"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
}

func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var req signupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Username, password, and section are required.", err)
	}

	if strings.TrimSpace(req.Username) == "" || req.Password == "" || strings.TrimSpace(req.Section) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Username, password, and section are required.", nil)
	}

	acct, err := h.uc.Signup(c.Context(), ucauth.SignupInput{
		Username: req.Username,
		Password: req.Password,
		Section:  req.Section,
	})
	if err != nil {
		switch {
		case errors.Is(err, ucauth.ErrInvalidSection):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid section. Must be 'Post' or 'Apply'.", err)
		case errors.Is(err, ucauth.ErrUsernameTaken):
			return middleware.NewAppError(fiber.StatusConflict, "Username already exists.", err)
		case errors.Is(err, ucauth.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Username, password, and section are required.", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}

	return response.JSON(c, fiber.StatusCreated, fiber.Map{
		"message":  "Signup successful for user: " + acct.Username,
		"userId":   acct.ID.String(),
		"username": acct.Username,
		"section":  acct.Section.String(),
	})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Username and password are required.", err)
	}

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Username and password are required.", nil)
	}

	acct, token, err := h.uc.Login(c.Context(), ucauth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, ucauth.ErrInvalidCredentials):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid username or password.", err)
		case errors.Is(err, ucauth.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Username and password are required.", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}

	return response.JSON(c, fiber.StatusOK, fiber.Map{
		"message":  "Login successful for user: " + acct.Username,
		"userId":   acct.ID.String(),
		"username": acct.Username,
		"section":  acct.Section.String(),
		"token":    token,
	})
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	var req logoutRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Username is required for logout.", err)
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Username is required for logout.", nil)
	}

	if err := h.uc.Logout(c.Context(), username); err != nil {
		if errors.Is(err, ucauth.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Username is required for logout.", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.Message(c, fiber.StatusOK, "Logout successful for user: "+username)
}
