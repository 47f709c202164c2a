package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"job-platform/internal/domain/account"
)

var (
	ErrInvalidSection     = errors.New("invalid section")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
)

type SignupInput struct {
	Username string
	Password string
	Section  string
}

type LoginInput struct {
	Username string
	Password string
}

type Service struct {
	accounts account.Repository
	log      logrus.FieldLogger
}

func NewService(accounts account.Repository, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{accounts: accounts, log: log}
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (account.Account, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return account.Account{}, ErrInvalidInput
	}

	section, ok := account.ParseSection(in.Section)
	if !ok {
		return account.Account{}, ErrInvalidSection
	}

	exists, err := s.accounts.ExistsByUsername(ctx, username)
	if err != nil {
		return account.Account{}, ErrInternal
	}
	if exists {
		return account.Account{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return account.Account{}, ErrInternal
	}

	a := account.Account{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		Section:      section,
	}

	if err := s.accounts.Create(ctx, a); err != nil {
		// A concurrent signup may have won the unique-username race.
		exists, exErr := s.accounts.ExistsByUsername(ctx, username)
		if exErr == nil && exists {
			return account.Account{}, ErrUsernameTaken
		}
		return account.Account{}, ErrInternal
	}

	return sanitize(a), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (account.Account, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return account.Account{}, ErrInvalidCredentials
	}

	a, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.Account{}, ErrInvalidCredentials
		}
		return account.Account{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)); err != nil {
		return account.Account{}, ErrInvalidCredentials
	}

	return sanitize(a), nil
}

// Logout is a stateless acknowledgment: tokens are not revocable, so the
// only server-side effect is a log line.
func (s *Service) Logout(_ context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrInvalidInput
	}
	s.log.WithField("username", username).Info("user logged out")
	return nil
}

func sanitize(a account.Account) account.Account {
	a.PasswordHash = ""
	return a
}
