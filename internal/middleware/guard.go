// Package middleware carries the router-level cross-cutting handlers: the
// session guard, request observability and rate limiting.
package middleware

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gtohub/admin-portal/internal/apierrors"
	"github.com/gtohub/admin-portal/internal/session"
)

// debugLog logs only when LOG_LEVEL=debug
func debugLog(format string, v ...interface{}) {
	if os.Getenv("LOG_LEVEL") == "debug" {
		log.Printf(format, v...)
	}
}

// Context keys set by the guard for downstream handlers.
const (
	CtxIdentity = "admin_identity"
	CtxToken    = "admin_token"
)

// Paths reachable without a session. Prefixes cover static assets.
var openPaths = map[string]bool{
	"/":                true,
	"/admin":           true,
	"/admin/login":     true,
	"/healthz":         true,
	"/metrics":         true,
	"/api/auth/login":  true,
	"/api/auth/verify": true,
	"/api/auth/logout": true,
}

var openPrefixes = []string{"/static/"}

func isOpenPath(path string) bool {
	if openPaths[path] {
		return true
	}
	for _, p := range openPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// wantsHTML reports whether the request should get a login redirect rather
// than a JSON error. API routes always get JSON regardless of Accept.
func wantsHTML(c *gin.Context) bool {
	return !strings.HasPrefix(c.Request.URL.Path, "/api/")
}

// SessionGuard resolves the admin session once per request. Unauthenticated
// page requests are redirected to the login page with 303; API requests get
// the 401 envelope. On success the identity and token are placed in the
// request context.
func SessionGuard(guard *session.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isOpenPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		res := guard.Resolve(c)
		if res.State != session.StateAuthenticated {
			debugLog("guard: %s %s resolved %s", c.Request.Method, c.Request.URL.Path, res.State)
			if wantsHTML(c) {
				c.Redirect(http.StatusSeeOther, "/admin/login")
				c.Abort()
				return
			}
			apierrors.Error(c, apierrors.CodeUnauthenticated)
			c.Abort()
			return
		}

		c.Set(CtxIdentity, res.Identity)
		c.Set(CtxToken, res.Token)
		c.Next()
	}
}
