package usecase

import (
	"context"
	"errors"

	"job-platform/internal/domain/account"
	"job-platform/internal/pkg/jwt"
	ucauth "job-platform/internal/usecase/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

type AuthUsecase interface {
	Signup(ctx context.Context, in ucauth.SignupInput) (account.Account, error)
	Login(ctx context.Context, in ucauth.LoginInput) (account.Account, string, error)
	Logout(ctx context.Context, username string) error
}

type Auth struct {
	svc    *ucauth.Service
	tokens jwt.Service
}

func NewAuthUsecase(svc *ucauth.Service, tokens jwt.Service) *Auth {
	return &Auth{svc: svc, tokens: tokens}
}

func (u *Auth) Signup(ctx context.Context, in ucauth.SignupInput) (account.Account, error) {
	return u.svc.Signup(ctx, in)
}

// Login authenticates and issues a bearer token for the session.
func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (account.Account, string, error) {
	a, err := u.svc.Login(ctx, in)
	if err != nil {
		return account.Account{}, "", err
	}

	token, err := u.tokens.Issue(a.Username)
	if err != nil {
		return account.Account{}, "", ucauth.ErrInternal
	}

	return a, token, nil
}

func (u *Auth) Logout(ctx context.Context, username string) error {
	return u.svc.Logout(ctx, username)
}
