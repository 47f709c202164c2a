package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"job-platform/internal/domain/account"
	"job-platform/internal/domain/job"
)

type fakeAccountRepo struct {
	byUsername map[string]account.Account
	setKeyErr  error
}

func newFakeAccountRepo(accounts ...account.Account) *fakeAccountRepo {
	f := &fakeAccountRepo{byUsername: map[string]account.Account{}}
	for _, a := range accounts {
		f.byUsername[a.Username] = a
	}
	return f
}

func (f *fakeAccountRepo) Create(_ context.Context, a account.Account) error {
	f.byUsername[a.Username] = a
	return nil
}

func (f *fakeAccountRepo) GetByUsername(_ context.Context, username string) (account.Account, error) {
	a, ok := f.byUsername[username]
	if !ok {
		return account.Account{}, account.ErrNotFound
	}
	return a, nil
}

func (f *fakeAccountRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := f.byUsername[username]
	return ok, nil
}

func (f *fakeAccountRepo) SetResumeBlobKey(_ context.Context, id uuid.UUID, key string) error {
	if f.setKeyErr != nil {
		return f.setKeyErr
	}
	for username, a := range f.byUsername {
		if a.ID == id {
			a.ResumeBlobKey = key
			f.byUsername[username] = a
			return nil
		}
	}
	return account.ErrNotFound
}

type fakeJobRepo struct {
	postings  []job.Posting
	createErr error
	listErr   error
}

func (f *fakeJobRepo) Create(_ context.Context, p job.Posting) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.postings = append(f.postings, p)
	return nil
}

func (f *fakeJobRepo) ListAll(_ context.Context) ([]job.Posting, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.postings, nil
}

func posterAccount(username string) account.Account {
	return account.Account{ID: uuid.New(), Username: username, Section: account.SectionPoster}
}

func applicantAccount(username string) account.Account {
	return account.Account{ID: uuid.New(), Username: username, Section: account.SectionApplicant}
}

func validJobInput(poster string) JobCreateInput {
	return JobCreateInput{
		Title:          "Backend Engineer",
		Description:    "Build services",
		Skills:         []string{"Go", "PostgreSQL"},
		Experience:     "2-5 years",
		Location:       "Remote",
		PosterUsername: poster,
	}
}

func TestJobCreate_Success(t *testing.T) {
	poster := posterAccount("bob")
	jobs := &fakeJobRepo{}
	uc := NewJobUsecase(jobs, newFakeAccountRepo(poster), nil, nil)

	p, err := uc.Create(context.Background(), validJobInput("bob"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.PostedByUserID != poster.ID || p.PostedByUsername != "bob" {
		t.Fatalf("poster attribution wrong: %+v", p)
	}
	if p.PostedDate.IsZero() {
		t.Fatalf("posted date not set")
	}
	if len(jobs.postings) != 1 {
		t.Fatalf("expected 1 stored posting, got %d", len(jobs.postings))
	}
}

func TestJobCreate_MissingFields(t *testing.T) {
	jobs := &fakeJobRepo{}
	uc := NewJobUsecase(jobs, newFakeAccountRepo(posterAccount("bob")), nil, nil)

	mutations := []func(*JobCreateInput){
		func(in *JobCreateInput) { in.Title = " " },
		func(in *JobCreateInput) { in.Description = "" },
		func(in *JobCreateInput) { in.Skills = nil },
		func(in *JobCreateInput) { in.Skills = []string{" ", ""} },
		func(in *JobCreateInput) { in.Experience = "" },
		func(in *JobCreateInput) { in.Location = "" },
		func(in *JobCreateInput) { in.PosterUsername = "" },
	}
	for i, mutate := range mutations {
		in := validJobInput("bob")
		mutate(&in)
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("mutation %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
	if len(jobs.postings) != 0 {
		t.Fatalf("store written despite invalid input")
	}
}

func TestJobCreate_PosterNotFound(t *testing.T) {
	jobs := &fakeJobRepo{}
	uc := NewJobUsecase(jobs, newFakeAccountRepo(), nil, nil)

	if _, err := uc.Create(context.Background(), validJobInput("ghost")); !errors.Is(err, ErrPosterNotFound) {
		t.Fatalf("expected ErrPosterNotFound, got %v", err)
	}
	if len(jobs.postings) != 0 {
		t.Fatalf("store written for unknown poster")
	}
}

func TestJobCreate_NotAuthorized(t *testing.T) {
	jobs := &fakeJobRepo{}
	uc := NewJobUsecase(jobs, newFakeAccountRepo(applicantAccount("carol")), nil, nil)

	if _, err := uc.Create(context.Background(), validJobInput("carol")); !errors.Is(err, ErrPosterNotAuthorized) {
		t.Fatalf("expected ErrPosterNotAuthorized, got %v", err)
	}
	if len(jobs.postings) != 0 {
		t.Fatalf("store written for applicant account")
	}
}

func TestJobListAll_InsertionOrder(t *testing.T) {
	jobs := &fakeJobRepo{}
	uc := NewJobUsecase(jobs, newFakeAccountRepo(posterAccount("bob")), nil, nil)

	for _, title := range []string{"first", "second", "third"} {
		in := validJobInput("bob")
		in.Title = title
		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}

	out, err := uc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 postings, got %d", len(out))
	}
	for i, title := range []string{"first", "second", "third"} {
		if out[i].Title != title {
			t.Fatalf("position %d: expected %q, got %q", i, title, out[i].Title)
		}
	}
}
