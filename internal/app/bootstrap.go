package app

import (
	"fmt"
	"os"
	"strings"

	"job-platform/internal/config"
	"job-platform/internal/delivery/http/handler"
	"job-platform/internal/delivery/http/middleware"
	"job-platform/internal/delivery/http/routes"
	"job-platform/internal/repository"
	"job-platform/internal/usecase"
	ucauth "job-platform/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: 16 * 1024 * 1024,
	})

	registerGlobalMiddleware(f, c.Log)
	buildRegistry(c).Register(f)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	log := NewLogger(cfg)

	c, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	return New(c), c.Close, nil
}

// NewLogger builds the process logger. LOG_LEVEL overrides the default,
// production gets JSON output for log shipping.
func NewLogger(cfg config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	if lvl, err := logrus.ParseLevel(strings.TrimSpace(os.Getenv("LOG_LEVEL"))); err == nil {
		log.SetLevel(lvl)
	}
	if strings.EqualFold(cfg.App.Environment, "production") {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}

func registerGlobalMiddleware(app *fiber.App, log logrus.FieldLogger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
}

func buildRegistry(c *Container) *routes.Registry {
	accounts := repository.NewPostgresAccountRepository(c.DB)
	jobs := repository.NewPostgresJobRepository(c.DB)

	authSvc := ucauth.NewService(accounts, c.Log)
	authUC := usecase.NewAuthUsecase(authSvc, c.Tokens)
	jobUC := usecase.NewJobUsecase(jobs, accounts, c.Cache, c.Log)
	resumeUC := usecase.NewResumeUsecase(accounts, jobs, c.Blobs, c.Log)

	return routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		handler.NewAuthHandler(authUC),
		handler.NewJobsHandler(jobUC),
		handler.NewResumeHandler(resumeUC),
	)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
