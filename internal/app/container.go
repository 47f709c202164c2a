package app

import (
	"context"
	"os"
	"strings"
	"time"

	"job-platform/internal/config"
	"job-platform/internal/database"
	"job-platform/internal/database/migration"
	dbpostgres "job-platform/internal/database/postgres"
	"job-platform/internal/database/seeder"
	"job-platform/internal/domain/resume"
	"job-platform/internal/infrastructure/blob"
	"job-platform/internal/infrastructure/cache"
	"job-platform/internal/pkg/jwt"

	"github.com/sirupsen/logrus"
)

type Container struct {
	Config config.Config
	Log    *logrus.Logger
	DB     database.DB
	Cache  *cache.Redis
	Blobs  resume.BlobStore
	Tokens jwt.Service
}

func NewContainer(cfg config.Config, log *logrus.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{FS: migration.Embedded()}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	if strings.EqualFold(os.Getenv("SEED_DEMO_DATA"), "true") {
		log.Info("seeding demo data")
		if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	blobs, err := blob.NewS3Store(ctx, cfg.Blob, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config: cfg,
		Log:    log,
		DB:     db,
		Cache:  cache.NewRedis(log),
		Blobs:  blobs,
		Tokens: jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var firstErr error
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
