package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"job-platform/internal/domain/account"
	"job-platform/internal/domain/job"
	"job-platform/internal/infrastructure/cache"
)

var (
	ErrPosterNotFound      = errors.New("poster not found")
	ErrPosterNotAuthorized = errors.New("poster not authorized")
)

const (
	jobsListCacheKey = "jobs:list:all"
	jobsListCacheTTL = 30 * time.Second
)

type JobCreateInput struct {
	Title          string
	Description    string
	Skills         []string
	Experience     string
	Location       string
	PosterUsername string
}

type JobUsecase interface {
	Create(ctx context.Context, in JobCreateInput) (job.Posting, error)
	ListAll(ctx context.Context) ([]job.Posting, error)
}

type Jobs struct {
	jobs     job.Repository
	accounts account.Repository
	cache    *cache.Redis
	log      logrus.FieldLogger

	now func() time.Time
}

func NewJobUsecase(jobs job.Repository, accounts account.Repository, c *cache.Redis, log logrus.FieldLogger) *Jobs {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Jobs{jobs: jobs, accounts: accounts, cache: c, log: log, now: time.Now}
}

// Create persists a posting on behalf of a poster account. Nothing is
// written unless the poster exists and has the Post section.
func (u *Jobs) Create(ctx context.Context, in JobCreateInput) (job.Posting, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	experience := strings.TrimSpace(in.Experience)
	location := strings.TrimSpace(in.Location)
	posterUsername := strings.TrimSpace(in.PosterUsername)
	skills := cleanSkills(in.Skills)

	if title == "" || description == "" || experience == "" || location == "" ||
		posterUsername == "" || len(skills) == 0 {
		return job.Posting{}, ErrInvalidInput
	}

	poster, err := u.accounts.GetByUsername(ctx, posterUsername)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return job.Posting{}, ErrPosterNotFound
		}
		return job.Posting{}, ErrInternal
	}
	if poster.Section != account.SectionPoster {
		return job.Posting{}, ErrPosterNotAuthorized
	}

	p := job.Posting{
		ID:               uuid.New(),
		Title:            title,
		Description:      description,
		Skills:           skills,
		Experience:       experience,
		Location:         location,
		PostedByUserID:   poster.ID,
		PostedByUsername: poster.Username,
		PostedDate:       u.now().UTC(),
	}

	if err := u.jobs.Create(ctx, p); err != nil {
		return job.Posting{}, ErrInternal
	}

	if err := u.cache.Delete(ctx, jobsListCacheKey); err != nil {
		u.log.WithError(err).Warn("jobs list cache invalidation failed")
	}

	return p, nil
}

// ListAll returns every posting in insertion order. The listing is cached
// briefly; match scores are never cached, only this raw list.
func (u *Jobs) ListAll(ctx context.Context) ([]job.Posting, error) {
	var cached []job.Posting
	if hit, err := u.cache.GetJSON(ctx, jobsListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	postings, err := u.jobs.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if err := u.cache.SetJSON(ctx, jobsListCacheKey, postings, jobsListCacheTTL); err != nil {
		u.log.WithError(err).Warn("jobs list cache write failed")
	}

	return postings, nil
}

func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
