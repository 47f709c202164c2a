package dto

import (
	"time"

	"job-platform/internal/domain/job"
)

// JobPostingResponse mirrors the persisted posting on the wire. Field names
// are part of the public API and must not change.
type JobPostingResponse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Skills           []string `json:"skills"`
	Experience       string   `json:"experience"`
	Location         string   `json:"location"`
	PostedByUserID   string   `json:"postedByUserId"`
	PostedByUsername string   `json:"postedByUsername"`
	PostedDate       string   `json:"postedDate"`
}

func FromPosting(p job.Posting) JobPostingResponse {
	posted := ""
	if !p.PostedDate.IsZero() {
		posted = p.PostedDate.UTC().Format(time.RFC3339)
	}
	return JobPostingResponse{
		ID:               p.ID.String(),
		Title:            p.Title,
		Description:      p.Description,
		Skills:           p.Skills,
		Experience:       p.Experience,
		Location:         p.Location,
		PostedByUserID:   p.PostedByUserID.String(),
		PostedByUsername: p.PostedByUsername,
		PostedDate:       posted,
	}
}

func FromPostings(postings []job.Posting) []JobPostingResponse {
	out := make([]JobPostingResponse, 0, len(postings))
	for _, p := range postings {
		out = append(out, FromPosting(p))
	}
	return out
}
