package devauth

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/gtohub/admin-portal/internal/config"
)

func testAuthenticator(t *testing.T) *Authenticator {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return New(config.AuthConfig{
		DevMode:         true,
		DevEmail:        "dev@example.com",
		DevPasswordHash: string(hash),
		DevJWTSecret:    "test-secret",
	})
}

func TestLoginAndVerifyRoundTrip(t *testing.T) {
	a := testAuthenticator(t)

	identity, token, err := a.Login(context.Background(), "dev@example.com", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || !identity.AdminAllowed {
		t.Fatalf("unexpected login result: identity=%+v token=%q", identity, token)
	}

	verified, err := a.VerifyAdminToken(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if verified.Email != "dev@example.com" {
		t.Fatalf("verified wrong identity: %+v", verified)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	a := testAuthenticator(t)

	if _, _, err := a.Login(context.Background(), "dev@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := a.Login(context.Background(), "other@example.com", "hunter2"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	a := testAuthenticator(t)
	other := New(config.AuthConfig{
		DevEmail:        "dev@example.com",
		DevPasswordHash: a.passwordHash,
		DevJWTSecret:    "different-secret",
	})

	_, token, err := other.Login(context.Background(), "dev@example.com", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := a.VerifyAdminToken(context.Background(), token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}
