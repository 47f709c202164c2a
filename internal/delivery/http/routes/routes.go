package routes

import (
	"job-platform/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health  *handler.HealthHandler
	auth    *handler.AuthHandler
	jobs    *handler.JobsHandler
	resumes *handler.ResumeHandler
}

func NewRegistry(health *handler.HealthHandler, auth *handler.AuthHandler, jobs *handler.JobsHandler, resumes *handler.ResumeHandler) *Registry {
	return &Registry{health: health, auth: auth, jobs: jobs, resumes: resumes}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	r.auth.RegisterRoutes(api.Group("/auth"))
	r.jobs.RegisterRoutes(api.Group("/jobs"))
	r.resumes.RegisterRoutes(api.Group("/resumes"))
}
