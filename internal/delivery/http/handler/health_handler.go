package handler

import (
	"context"
	"time"

	"job-platform/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger reports reachability of a backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	body := fiber.Map{"status": "ok"}

	body["database"] = h.check(ctx, h.db)
	if body["database"] == "down" {
		status = fiber.StatusServiceUnavailable
		body["status"] = "degraded"
	}

	// cache is optional infrastructure, its state never fails the check
	body["cache"] = h.check(ctx, h.cache)

	return response.JSON(c, status, body)
}

func (h *HealthHandler) check(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
