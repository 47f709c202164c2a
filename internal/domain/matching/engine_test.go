package matching

import (
	"testing"

	"github.com/google/uuid"

	"job-platform/internal/domain/job"
)

func posting(title string, skills ...string) job.Posting {
	return job.Posting{ID: uuid.New(), Title: title, Skills: skills}
}

func TestNormalizeCSV(t *testing.T) {
	got := NormalizeCSV(" Java , SQL ,, go,")
	want := []string{"java", "sql", "go"}
	if len(got) != len(want) {
		t.Fatalf("expected %d skills, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("skill %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestNormalizeCSV_Empty(t *testing.T) {
	if got := NormalizeCSV("   "); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	if got := NormalizeCSV(",, ,"); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}

func TestScore_PartialMatch(t *testing.T) {
	applicant := NormalizeSet([]string{"java", "sql"})
	jobSet := NormalizeSet([]string{"Java", "SQL", "Go"})

	if got := Score(applicant, jobSet); got != 0.67 {
		t.Fatalf("expected 0.67, got %v", got)
	}
}

func TestScore_FullMatchIgnoresApplicantBreadth(t *testing.T) {
	applicant := NormalizeSet([]string{"java", "sql", "go", "python", "rust"})
	jobSet := NormalizeSet([]string{"java"})

	if got := Score(applicant, jobSet); got != 1.0 {
		t.Fatalf("expected 1.0, got %v", got)
	}
}

func TestScore_DuplicateJobSkillsDeduped(t *testing.T) {
	applicant := NormalizeSet([]string{"java"})
	jobSet := NormalizeSet([]string{"Java", "java ", "sql"})

	// Deduped job set is {java, sql}; one of two matched.
	if got := Score(applicant, jobSet); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
}

func TestRecommend_FiltersZeroScores(t *testing.T) {
	recs := Recommend([]string{"java", "sql"}, []job.Posting{
		posting("backend", "java", "sql", "go"),
		posting("data", "python"),
		posting("dba", "sql"),
	})

	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	for _, r := range recs {
		if r.MatchScore <= 0 {
			t.Fatalf("zero-score posting %q not filtered", r.Posting.Title)
		}
	}
}

func TestRecommend_SortedDescendingStable(t *testing.T) {
	a := posting("a", "java", "sql", "go") // 0.67
	b := posting("b", "java")              // 1.0
	c := posting("c", "sql")               // 1.0
	d := posting("d", "java", "go", "c++") // 0.33

	recs := Recommend([]string{"java", "sql"}, []job.Posting{a, b, c, d})
	if len(recs) != 4 {
		t.Fatalf("expected 4 recommendations, got %d", len(recs))
	}

	wantOrder := []string{"b", "c", "a", "d"}
	for i, title := range wantOrder {
		if recs[i].Posting.Title != title {
			t.Fatalf("position %d: expected %q, got %q", i, title, recs[i].Posting.Title)
		}
	}
	if recs[0].MatchScore != 1.0 || recs[2].MatchScore != 0.67 || recs[3].MatchScore != 0.33 {
		t.Fatalf("unexpected scores: %v %v %v", recs[0].MatchScore, recs[2].MatchScore, recs[3].MatchScore)
	}
}

func TestRecommend_NoApplicantSkills(t *testing.T) {
	if recs := Recommend(nil, []job.Posting{posting("a", "java")}); len(recs) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(recs))
	}
}

func TestRecommend_SkipsPostingsWithoutSkills(t *testing.T) {
	recs := Recommend([]string{"java"}, []job.Posting{
		posting("empty"),
		{ID: uuid.New(), Title: "blank", Skills: []string{" ", ""}},
		posting("real", "java"),
	})
	if len(recs) != 1 || recs[0].Posting.Title != "real" {
		t.Fatalf("expected only the real posting, got %v", recs)
	}
}
