package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"job-platform/internal/database"
	"job-platform/internal/domain/account"
)

type PostgresAccountRepository struct {
	db database.DB
}

func NewPostgresAccountRepository(db database.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, a account.Account) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO accounts (id, username, password_hash, section, resume_blob_key)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Username, a.PasswordHash, string(a.Section), a.ResumeBlobKey,
	)
	return err
}

func (r *PostgresAccountRepository) GetByUsername(ctx context.Context, username string) (account.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, section, resume_blob_key, created_at, updated_at
		 FROM accounts
		 WHERE username = $1`,
		username,
	)
	return scanAccount(row)
}

func (r *PostgresAccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE username = $1)`, username)
	if err := row.Scan(&exists); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresAccountRepository) SetResumeBlobKey(ctx context.Context, id uuid.UUID, key string) error {
	n, err := r.db.Exec(ctx,
		`UPDATE accounts SET resume_blob_key = $2, updated_at = now() WHERE id = $1`,
		id, key,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return account.ErrNotFound
	}
	return nil
}

func scanAccount(row database.Row) (account.Account, error) {
	var a account.Account
	var section string
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &section, &a.ResumeBlobKey, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, err
	}
	a.Section = account.Section(section)
	return a, nil
}
