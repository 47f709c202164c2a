package matching

import (
	"math"
	"sort"
	"strings"

	"job-platform/internal/domain/job"
)

type Recommendation struct {
	Posting    job.Posting
	MatchScore float64
}

// NormalizeCSV splits a comma-separated skill string into normalized skills:
// trimmed, lowercased, empties dropped. Duplicates are kept; set semantics
// are applied by NormalizeSet.
func NormalizeCSV(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// NormalizeSet builds the deduplicated, trimmed, lowercased skill set.
func NormalizeSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		set[s] = struct{}{}
	}
	return set
}

// Score computes |applicant ∩ job| / |job|, rounded to two decimals.
// The denominator is the job's deduplicated skill set: a posting whose few
// required skills are all matched scores 1.0 no matter how many extra
// skills the applicant has.
func Score(applicant map[string]struct{}, jobSkills map[string]struct{}) float64 {
	if len(jobSkills) == 0 {
		return 0
	}
	common := 0
	for s := range jobSkills {
		if _, ok := applicant[s]; ok {
			common++
		}
	}
	return round2(float64(common) / float64(len(jobSkills)))
}

// Recommend scores every posting with a non-empty skill list against the
// applicant's skills, keeps those with a positive score, and orders them by
// score descending. The sort is stable: equal scores keep the input order.
func Recommend(applicantSkills []string, postings []job.Posting) []Recommendation {
	applicant := NormalizeSet(applicantSkills)
	if len(applicant) == 0 {
		return nil
	}

	out := make([]Recommendation, 0, len(postings))
	for _, p := range postings {
		jobSet := NormalizeSet(p.Skills)
		if len(jobSet) == 0 {
			continue
		}
		score := Score(applicant, jobSet)
		if score <= 0 {
			continue
		}
		out = append(out, Recommendation{Posting: p, MatchScore: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
