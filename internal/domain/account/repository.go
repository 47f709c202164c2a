package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("account not found")

type Repository interface {
	Create(ctx context.Context, a Account) error
	GetByUsername(ctx context.Context, username string) (Account, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	SetResumeBlobKey(ctx context.Context, id uuid.UUID, key string) error
}
