package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gtohub/admin-portal/internal/devauth"
	"github.com/gtohub/admin-portal/internal/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleLogin proxies credentials to the backend admin login. The username
// field carries the email; the backend expects it under "email". On success
// the session store is written and the caller gets the identity plus token.
func (h *Handlers) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		sendErrorResponse(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	debugLog("auth: admin login attempt for %s", req.Username)

	identity, token, err := h.login(c, req.Username, req.Password)
	if err != nil {
		status, message := proxyStatus(err)
		if err == devauth.ErrInvalidCredentials {
			status, message = http.StatusUnauthorized, "Invalid credentials"
		}
		sendErrorResponse(c, status, message)
		return
	}

	if err := h.guard.Store().Write(c, token); err != nil {
		sendErrorResponse(c, http.StatusInternalServerError, "Failed to persist session")
		return
	}
	h.adminToken.set(token)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin login successful",
		"data": gin.H{
			"user":  identity,
			"token": token,
		},
	})
}

// login dispatches to the backend or, in dev mode without a backend, the
// local authenticator.
func (h *Handlers) login(c *gin.Context, email, password string) (*models.AdminIdentity, string, error) {
	if h.cfg.Auth.DevMode && !h.backend.Enabled() {
		if dev, ok := h.verifier.(*devauth.Authenticator); ok {
			return dev.Login(c.Request.Context(), email, password)
		}
	}
	return h.backend.AdminLogin(c.Request.Context(), email, password)
}

type verifyRequest struct {
	Token string `json:"token"`
}

// handleVerify checks a token without touching the session store.
func (h *Handlers) handleVerify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		sendErrorResponse(c, http.StatusBadRequest, "Token is required")
		return
	}

	identity, err := h.verifier.VerifyAdminToken(c.Request.Context(), req.Token)
	if err != nil {
		status, message := proxyStatus(err)
		if status == http.StatusBadGateway {
			message = "Token verification failed"
		}
		sendErrorResponse(c, status, message)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"user": identity},
	})
}

// handleLogout runs the guard's logout: best-effort upstream invalidation,
// then unconditional local clearing. Always reports success.
func (h *Handlers) handleLogout(c *gin.Context) {
	h.guard.Logout(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out",
	})
}
