// Package devauth authenticates the configured development credentials
// locally when no backend is wired up. It exists for offline work on the
// portal itself; production deployments always verify against the backend.
package devauth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gtohub/admin-portal/internal/config"
	"github.com/gtohub/admin-portal/internal/models"
)

// ErrInvalidCredentials is returned for any email/password mismatch.
var ErrInvalidCredentials = errors.New("devauth: invalid credentials")

// Authenticator issues and verifies locally signed admin tokens against a
// single configured account.
type Authenticator struct {
	email        string
	passwordHash string
	secret       []byte
	tokenTTL     time.Duration
}

// New builds the authenticator from the auth config block.
func New(cfg config.AuthConfig) *Authenticator {
	return &Authenticator{
		email:        cfg.DevEmail,
		passwordHash: cfg.DevPasswordHash,
		secret:       []byte(cfg.DevJWTSecret),
		tokenTTL:     7 * 24 * time.Hour,
	}
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Login checks the credentials and issues a signed token.
func (a *Authenticator) Login(_ context.Context, email, password string) (*models.AdminIdentity, string, error) {
	if email != a.email {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
			Issuer:    "admin-portal-dev",
		},
	})
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return nil, "", fmt.Errorf("devauth: sign token: %w", err)
	}
	return a.identity(), signed, nil
}

// VerifyAdminToken validates a locally issued token.
func (a *Authenticator) VerifyAdminToken(_ context.Context, tokenString string) (*models.AdminIdentity, error) {
	var cl claims
	token, err := jwt.ParseWithClaims(tokenString, &cl, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("devauth: unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || cl.Email != a.email {
		return nil, errors.New("devauth: token rejected")
	}
	return a.identity(), nil
}

// Logout is a no-op; local tokens expire on their own and the session store
// clearing is what makes logout effective.
func (a *Authenticator) Logout(_ context.Context, _ string) error { return nil }

func (a *Authenticator) identity() *models.AdminIdentity {
	return &models.AdminIdentity{
		FullName:     "Development Admin",
		Email:        a.email,
		AdminAllowed: true,
	}
}
