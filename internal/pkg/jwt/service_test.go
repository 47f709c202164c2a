package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssueVerify_Roundtrip(t *testing.T) {
	svc := NewHMACService("test-secret", 10*time.Hour)

	tok, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	sub, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if sub != "alice" {
		t.Fatalf("expected subject alice, got %q", sub)
	}
}

func TestVerify_Expired(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	issued := time.Now()
	svc.now = func() time.Time { return issued }
	tok, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := svc.Verify(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	tok, err := NewHMACService("secret-a", time.Hour).Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewHMACService("secret-b", time.Hour).Verify(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_Tampered(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	tok, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	parts[2] = strings.Repeat("A", len(parts[2]))

	if _, err := svc.Verify(strings.Join(parts, ".")); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
