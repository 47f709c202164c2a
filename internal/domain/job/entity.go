package job

import (
	"time"

	"github.com/google/uuid"
)

// Posting is an immutable job posting. There is no update or delete path;
// postings only accumulate.
type Posting struct {
	ID               uuid.UUID
	Title            string
	Description      string
	Skills           []string
	Experience       string
	Location         string
	PostedByUserID   uuid.UUID
	PostedByUsername string
	PostedDate       time.Time
}
