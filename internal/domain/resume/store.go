package resume

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("resume not found")

// Metadata is the sidecar attached to a stored resume blob.
type Metadata struct {
	Username string
	Skills   []string
	Summary  string
}

// BlobStore holds resume bytes plus their metadata, keyed by an opaque id.
type BlobStore interface {
	Put(ctx context.Context, content []byte, contentType string, meta Metadata) (string, error)
	Get(ctx context.Context, id string) ([]byte, string, error)
	GetMetadata(ctx context.Context, id string) (Metadata, error)
	Delete(ctx context.Context, id string) error
}

// CleanupResult records the outcome of the best-effort deletion of a prior
// blob on re-upload. A failed cleanup never blocks the new upload; callers
// inspect this for observability only.
type CleanupResult struct {
	Attempted bool
	BlobID    string
	Err       error
}

func (r CleanupResult) Failed() bool {
	return r.Attempted && r.Err != nil
}
