package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/storekit/catalog-api/internal/models"
)

func TestIssueAndVerifyToken(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	user := models.User{ID: 42, Username: "alice"}

	token, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	identity, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if identity.UserID != 42 {
		t.Errorf("expected user id 42, got %d", identity.UserID)
	}
	if identity.Username != "alice" {
		t.Errorf("expected username 'alice', got %q", identity.Username)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	token, err := svc.IssueToken(models.User{ID: 1, Username: "bob"})
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	_, err = svc.VerifyToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	issuer := NewService("secret-one", time.Hour)
	verifier := NewService("secret-two", time.Hour)

	token, err := issuer.IssueToken(models.User{ID: 1, Username: "bob"})
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	_, err = verifier.VerifyToken(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyToken_Tampered(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, err := svc.IssueToken(models.User{ID: 1, Username: "bob"})
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	parts := strings.Split(token, ".")
	parts[1] = strings.Repeat("A", len(parts[1]))
	tampered := strings.Join(parts, ".")

	if _, err := svc.VerifyToken(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for tampered token, got %v", err)
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	if _, err := svc.VerifyToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
