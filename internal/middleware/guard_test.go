package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gtohub/admin-portal/internal/config"
	"github.com/gtohub/admin-portal/internal/models"
	"github.com/gtohub/admin-portal/internal/session"
)

type stubVerifier struct {
	identity *models.AdminIdentity
	err      error
	calls    int
}

func (s *stubVerifier) VerifyAdminToken(ctx context.Context, token string) (*models.AdminIdentity, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.identity, nil
}

func (s *stubVerifier) Logout(ctx context.Context, token string) error { return nil }

func testGuard(v session.Verifier) *session.Guard {
	cfg := config.SessionConfig{
		CookieName:   "adminToken",
		RefCookie:    "adminTokenRef",
		CookieMaxAge: time.Hour,
	}
	store := session.NewStore(cfg, session.NewMemoryMirror())
	return session.NewGuard(store, v)
}

func guardedRouter(v session.Verifier) *gin.Engine {
	router := gin.New()
	router.Use(SessionGuard(testGuard(v)))
	router.GET("/admin/dashboard", func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})
	router.GET("/admin/login", func(c *gin.Context) {
		c.String(http.StatusOK, "login")
	})
	router.GET("/api/users", func(c *gin.Context) {
		id, _ := c.Get(CtxIdentity)
		c.JSON(http.StatusOK, gin.H{"success": true, "email": id.(*models.AdminIdentity).Email})
	})
	return router
}

func TestGuardRedirectsPageWithoutToken(t *testing.T) {
	v := &stubVerifier{}
	router := guardedRouter(v)

	req, _ := http.NewRequest("GET", "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/login" {
		t.Fatalf("expected redirect to login, got %q", loc)
	}
	if v.calls != 0 {
		t.Fatalf("no token must mean no verification call, got %d", v.calls)
	}
}

func TestGuardReturns401ForAPIWithoutToken(t *testing.T) {
	router := guardedRouter(&stubVerifier{})

	req, _ := http.NewRequest("GET", "/api/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestGuardRedirectsOnVerificationFailure(t *testing.T) {
	v := &stubVerifier{err: errors.New("token rejected")}
	router := guardedRouter(v)

	req, _ := http.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "adminToken", Value: "bad-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 on failed verification, got %d", w.Code)
	}
	if v.calls != 1 {
		t.Fatalf("verification must run exactly once, got %d", v.calls)
	}
}

func TestGuardPassesIdentityDownstream(t *testing.T) {
	v := &stubVerifier{identity: &models.AdminIdentity{Email: "admin@example.com", AdminAllowed: true}}
	router := guardedRouter(v)

	req, _ := http.NewRequest("GET", "/api/users", nil)
	req.AddCookie(&http.Cookie{Name: "adminToken", Value: "good-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGuardSkipsOpenPaths(t *testing.T) {
	v := &stubVerifier{err: errors.New("should not be called")}
	router := guardedRouter(v)

	req, _ := http.NewRequest("GET", "/admin/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login page must be open, got %d", w.Code)
	}
	if v.calls != 0 {
		t.Fatal("open path must not trigger verification")
	}
}
