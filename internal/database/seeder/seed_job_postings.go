package seeder

import (
	"context"
	"fmt"
	"time"

	"job-platform/internal/database"

	"github.com/google/uuid"
)

type JobPostingsSeeder struct{}

func (JobPostingsSeeder) Name() string { return "job_postings" }

func (JobPostingsSeeder) Run(ctx context.Context, db database.DB) error {
	items := []struct {
		Title       string
		Description string
		Skills      []string
		Experience  string
		Location    string
	}{
		{
			Title:       "Backend Engineer (Go)",
			Description: "Build and maintain Go services, REST APIs, and PostgreSQL-backed systems.",
			Skills:      []string{"go", "postgresql", "rest"},
			Experience:  "3+ years",
			Location:    "Remote",
		},
		{
			Title:       "Data Engineer",
			Description: "Design batch and streaming pipelines feeding the analytics warehouse.",
			Skills:      []string{"python", "sql", "airflow"},
			Experience:  "2+ years",
			Location:    "Jakarta, ID",
		},
		{
			Title:       "Platform Engineer",
			Description: "Own the deployment platform: Kubernetes, CI, and observability tooling.",
			Skills:      []string{"kubernetes", "terraform", "go"},
			Experience:  "4+ years",
			Location:    "Singapore",
		},
	}

	now := time.Now().UTC()
	for _, it := range items {
		_, err := db.Exec(ctx, `
			INSERT INTO job_postings
				(id, title, description, skills, experience, location, posted_by_user_id, posted_by_username, posted_at)
			SELECT $1, $2, $3, $4, $5, $6, a.id, a.username, $7
			FROM accounts a
			WHERE a.username = 'demo-poster'
			  AND NOT EXISTS (
				SELECT 1 FROM job_postings j
				WHERE j.title = $2 AND j.posted_by_username = a.username
			  )`,
			uuid.New(), it.Title, it.Description, it.Skills, it.Experience, it.Location, now,
		)
		if err != nil {
			return fmt.Errorf("insert %q: %w", it.Title, err)
		}
	}
	return nil
}
