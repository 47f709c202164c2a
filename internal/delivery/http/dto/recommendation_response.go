package dto

import "job-platform/internal/domain/matching"

type JobRecommendationResponse struct {
	JobPosting JobPostingResponse `json:"jobPosting"`
	MatchScore float64            `json:"matchScore"`
}

func FromRecommendations(recs []matching.Recommendation) []JobRecommendationResponse {
	out := make([]JobRecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, JobRecommendationResponse{
			JobPosting: FromPosting(r.Posting),
			MatchScore: r.MatchScore,
		})
	}
	return out
}
