// Package session implements the admin session credential store and the
// per-request authentication guard.
//
// The token lives in two places: a readable cookie and a persistent mirror
// keyed by a second ref cookie. Presence in either is enough to attempt
// verification; the single write path keeps both in step so pages never
// reimplement the resolution order.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gtohub/admin-portal/internal/config"
)

// Store is the single session-token abstraction: cookie-first reads, dual
// writes, and a clear path that is always locally effective.
type Store struct {
	cookieName string
	refCookie  string
	maxAge     time.Duration
	secure     bool
	mirror     Mirror
}

// NewStore creates a store over the given mirror backend.
func NewStore(cfg config.SessionConfig, mirror Mirror) *Store {
	return &Store{
		cookieName: cfg.CookieName,
		refCookie:  cfg.RefCookie,
		maxAge:     cfg.CookieMaxAge,
		secure:     cfg.Secure,
		mirror:     mirror,
	}
}

// CookieName returns the token cookie's name.
func (s *Store) CookieName() string { return s.cookieName }

// Read resolves the session token: cookie first, then the mirror via the
// ref cookie. Returns false when neither location holds a value.
func (s *Store) Read(c *gin.Context) (string, bool) {
	if token, err := c.Cookie(s.cookieName); err == nil && token != "" {
		return token, true
	}

	ref, err := c.Cookie(s.refCookie)
	if err != nil || ref == "" {
		return "", false
	}
	token, err := s.mirror.Get(c.Request.Context(), ref)
	if err != nil {
		if err != ErrMirrorMiss {
			log.Printf("session: mirror read failed: %v", err)
		}
		return "", false
	}
	return token, true
}

// Write stores the token in both locations. The cookie is intentionally
// readable by scripts (the frontend reads it to build verify calls), scoped
// to the whole site, SameSite=Lax, with a seven-day lifetime.
func (s *Store) Write(c *gin.Context, token string) error {
	maxAge := int(s.maxAge.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, token, maxAge, "/", "", s.secure, false)

	ref := newRef()
	c.SetCookie(s.refCookie, ref, maxAge, "/", "", s.secure, true)
	if err := s.mirror.Set(c.Request.Context(), ref, token, s.maxAge); err != nil {
		return err
	}
	return nil
}

// Clear removes the token from both locations. Mirror failures are logged,
// not returned: clearing the cookies must never be blocked by storage.
func (s *Store) Clear(c *gin.Context) {
	ref, refErr := c.Cookie(s.refCookie)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, "", -1, "/", "", s.secure, false)
	c.SetCookie(s.refCookie, "", -1, "/", "", s.secure, true)

	if refErr == nil && ref != "" {
		// Request context may already be gone by redirect time; detach.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.mirror.Delete(ctx, ref); err != nil {
			log.Printf("session: mirror clear failed: %v", err)
		}
	}
}

// newRef generates an opaque 128-bit mirror key.
func newRef() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().String()))
	}
	return hex.EncodeToString(b)
}
