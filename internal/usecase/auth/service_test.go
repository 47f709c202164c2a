package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"job-platform/internal/domain/account"
)

type fakeAccountRepo struct {
	byUsername map[string]account.Account
	createErr  error

	// existsSeq, when non-empty, overrides ExistsByUsername one call at
	// a time. Lets tests simulate a lost unique-username race.
	existsSeq []bool
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byUsername: map[string]account.Account{}}
}

func (f *fakeAccountRepo) Create(_ context.Context, a account.Account) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byUsername[a.Username]; ok {
		return errors.New("duplicate username")
	}
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
	if len(f.existsSeq) > 0 {
		v := f.existsSeq[0]
		f.existsSeq = f.existsSeq[1:]
		return v, nil
	}
	_, ok := f.byUsername[username]
	return ok, nil
}

func (f *fakeAccountRepo) SetResumeBlobKey(_ context.Context, id uuid.UUID, key string) error {
	for username, a := range f.byUsername {
		if a.ID == id {
			a.ResumeBlobKey = key
			f.byUsername[username] = a
			return nil
		}
	}
	return account.ErrNotFound
}

func TestSignup_SectionNormalization(t *testing.T) {
	svc := NewService(newFakeAccountRepo(), nil)

	cases := []struct {
		in   string
		want account.Section
	}{
		{"Post", account.SectionPoster},
		{"post", account.SectionPoster},
		{"POST", account.SectionPoster},
		{"Apply", account.SectionApplicant},
		{"aPPly", account.SectionApplicant},
	}
	for i, tc := range cases {
		a, err := svc.Signup(context.Background(), SignupInput{
			Username: tc.in + "-user",
			Password: "secret123",
			Section:  tc.in,
		})
		if err != nil {
			t.Fatalf("case %d: unexpected err: %v", i, err)
		}
		if a.Section != tc.want {
			t.Fatalf("case %d: expected section %q, got %q", i, tc.want, a.Section)
		}
	}
}

func TestSignup_InvalidSection(t *testing.T) {
	svc := NewService(newFakeAccountRepo(), nil)

	for _, section := range []string{"", "Admin", "poster", "applyy"} {
		_, err := svc.Signup(context.Background(), SignupInput{
			Username: "alice",
			Password: "secret123",
			Section:  section,
		})
		if !errors.Is(err, ErrInvalidSection) {
			t.Fatalf("section %q: expected ErrInvalidSection, got %v", section, err)
		}
	}
}

func TestSignup_UsernameTaken(t *testing.T) {
	svc := NewService(newFakeAccountRepo(), nil)

	if _, err := svc.Signup(context.Background(), SignupInput{Username: "alice", Password: "pw-one", Section: "Post"}); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	_, err := svc.Signup(context.Background(), SignupInput{Username: "alice", Password: "different-pw", Section: "Apply"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestSignup_UsernameTakenOnCreateRace(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewService(repo, nil)

	// Insert fails and no row is visible: plain infrastructure error.
	repo.createErr = errors.New("connection reset")
	_, err := svc.Signup(context.Background(), SignupInput{Username: "bob", Password: "pw", Section: "Post"})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal when row still absent, got %v", err)
	}

	// Insert fails and a concurrent signup's row is visible by the
	// recheck: the failure maps to the duplicate-username error.
	repo.existsSeq = []bool{false, true}
	_, err = svc.Signup(context.Background(), SignupInput{Username: "bob", Password: "pw", Section: "Post"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken after race, got %v", err)
	}
}

func TestSignup_HashesPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewService(repo, nil)

	if _, err := svc.Signup(context.Background(), SignupInput{Username: "alice", Password: "secret123", Section: "Apply"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	stored := repo.byUsername["alice"]
	if stored.PasswordHash == "secret123" || stored.PasswordHash == "" {
		t.Fatalf("password stored in the clear or empty")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewService(repo, nil)

	if _, err := svc.Signup(context.Background(), SignupInput{Username: "alice", Password: "secret123", Section: "Apply"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	a, err := svc.Login(context.Background(), LoginInput{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if a.Username != "alice" || a.Section != account.SectionApplicant {
		t.Fatalf("unexpected account: %+v", a)
	}
	if a.PasswordHash != "" {
		t.Fatalf("password hash leaked in login result")
	}
}

func TestLogin_Failures(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewService(repo, nil)

	if _, err := svc.Signup(context.Background(), SignupInput{Username: "alice", Password: "secret123", Section: "Apply"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	cases := []LoginInput{
		{Username: "alice", Password: "wrong"},
		{Username: "alice", Password: "SECRET123"}, // case-sensitive
		{Username: "nobody", Password: "secret123"},
		{Username: "alice", Password: ""},
	}
	for i, in := range cases {
		if _, err := svc.Login(context.Background(), in); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("case %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}
}

func TestLogout(t *testing.T) {
	svc := NewService(newFakeAccountRepo(), nil)

	if err := svc.Logout(context.Background(), "alice"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := svc.Logout(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
