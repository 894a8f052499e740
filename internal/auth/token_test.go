package auth

import (
	"testing"
	"time"

	"github.com/taskdeck/backend/domain"
)

func TestIssueAndValidate(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("super-secret", "taskdeck-test", time.Hour)

	tok, err := m.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := m.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "alice")
	}
	if claims.ID == "" {
		t.Fatal("expected a token id")
	}
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret", "taskdeck-test", time.Hour)
	// A negative ttl slips past the constructor default via a second manager.
	expired := &TokenManager{secret: []byte("secret"), issuer: "taskdeck-test", ttl: -time.Minute}

	tok, err := expired.Issue("bob")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := m.Validate(tok); err == nil {
		t.Fatal("expected error for expired token, got nil")
	} else if !domain.IsDomainError(err, domain.ErrCodeUnauthorized) {
		t.Fatalf("expected unauthorized domain error, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager("right-secret", "taskdeck-test", time.Hour)
	verifier := NewTokenManager("wrong-secret", "taskdeck-test", time.Hour)

	tok, err := issuer.Issue("carol")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := verifier.Validate(tok); err == nil {
		t.Fatal("expected error for wrong secret, got nil")
	}
}

func TestValidate_Garbage(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret", "taskdeck-test", time.Hour)
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Validate(tok); err == nil {
			t.Fatalf("expected error for token %q, got nil", tok)
		}
	}
}

func TestIssue_DistinctTokenIDs(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret", "taskdeck-test", time.Hour)

	first, err := m.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	second, err := m.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	c1, err := m.Validate(first)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	c2, err := m.Validate(second)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if c1.ID == c2.ID {
		t.Fatal("expected distinct token ids for separate issues")
	}
}
