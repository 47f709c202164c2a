package job

import "context"

type Repository interface {
	Create(ctx context.Context, p Posting) error

	// ListAll returns every posting in insertion order.
	ListAll(ctx context.Context) ([]Posting, error)
}
