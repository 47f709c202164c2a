package repository

import (
	"context"

	"job-platform/internal/database"
	"job-platform/internal/domain/job"
)

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, p job.Posting) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_postings
		 (id, title, description, skills, experience, location, posted_by_user_id, posted_by_username, posted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Title, p.Description, p.Skills, p.Experience, p.Location,
		p.PostedByUserID, p.PostedByUsername, p.PostedDate,
	)
	return err
}

// ListAll returns postings ordered by the insertion sequence, which is the
// storage-native order the recommendation tie-break depends on.
func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, skills, experience, location, posted_by_user_id, posted_by_username, posted_at
		 FROM job_postings
		 ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		var p job.Posting
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Skills, &p.Experience, &p.Location,
			&p.PostedByUserID, &p.PostedByUsername, &p.PostedDate,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
