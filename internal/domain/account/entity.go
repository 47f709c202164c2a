package account

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Section tags an account as either a job poster or an applicant.
// It is a closed set: every value reaching the rest of the system comes
// out of ParseSection.
type Section string

const (
	SectionPoster    Section = "Post"
	SectionApplicant Section = "Apply"
)

// ParseSection normalizes a free-form section string at the boundary.
// Matching is case-insensitive; internally only the two canonical values
// exist.
func ParseSection(s string) (Section, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "post":
		return SectionPoster, true
	case "apply":
		return SectionApplicant, true
	default:
		return "", false
	}
}

func (s Section) Valid() bool {
	return s == SectionPoster || s == SectionApplicant
}

func (s Section) String() string {
	return string(s)
}

type Account struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Section      Section

	// ResumeBlobKey references the account's current resume in the blob
	// store. Empty means no resume has been uploaded.
	ResumeBlobKey string

	CreatedAt time.Time
	UpdatedAt time.Time
}
