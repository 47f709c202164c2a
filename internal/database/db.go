package database

import (
	"context"
	"database/sql"
)

// DB is the narrow query surface the repositories depend on. Every
// operation here is a single statement; per-document atomicity comes from
// Postgres, no cross-statement transactions are used.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	SQLDB() *sql.DB
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
