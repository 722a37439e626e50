package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gtohub/admin-portal/internal/models"
)

// defaultPassword is set on created accounts and on password resets; users
// change it on first login.
const defaultPassword = "123456"

// handleListUsers returns the user collection. No mock fallback here: user
// management must show real state or an honest error.
func (h *Handlers) handleListUsers(c *gin.Context) {
	token := h.tokenFrom(c)
	if token == "" {
		sendErrorResponse(c, http.StatusUnauthorized, "Admin authentication required")
		return
	}

	users, count, err := h.backend.ListUsers(c.Request.Context(), token)
	if err != nil {
		status, message := proxyStatus(err)
		sendErrorResponse(c, status, message)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"users": users,
			"count": count,
		},
	})
}

// handleAddUser creates an account with the default password. Validation
// happens before any network call.
func (h *Handlers) handleAddUser(c *gin.Context) {
	var req models.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FullName == "" || req.Email == "" {
		sendErrorResponse(c, http.StatusBadRequest, "Full name and email are required")
		return
	}

	token := h.tokenFrom(c)
	if token == "" {
		sendErrorResponse(c, http.StatusUnauthorized, "Admin authentication required")
		return
	}

	res, err := h.backend.AddUser(c.Request.Context(), token, req.FullName, req.Email, defaultPassword)
	if err != nil {
		status, message := proxyStatus(err)
		sendErrorResponse(c, status, message)
		return
	}

	h.reloadUsers()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User created successfully",
		"data":    res.Data,
	})
}

// handleUpdateUser forwards a full account update. Every field is required;
// the pointer fields reject requests that omit the booleans entirely.
func (h *Handlers) handleUpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.UserID == "" || req.FullName == "" || req.Email == "" ||
		req.IsActive == nil || req.AdminAllowed == nil {
		sendErrorResponse(c, http.StatusBadRequest, "User ID, full name, email, active status, and admin status are required")
		return
	}

	token := h.tokenFrom(c)
	if token == "" {
		sendErrorResponse(c, http.StatusUnauthorized, "Admin authentication required")
		return
	}

	res, err := h.backend.UpdateUser(c.Request.Context(), token, req)
	if err != nil {
		status, message := proxyStatus(err)
		sendErrorResponse(c, status, message)
		return
	}

	h.reloadUsers()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated successfully",
		"data":    res.Data,
	})
}

type userIDRequest struct {
	UserID string `json:"userId"`
}

// handleDeleteUser removes an account.
func (h *Handlers) handleDeleteUser(c *gin.Context) {
	var req userIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		sendErrorResponse(c, http.StatusBadRequest, "User ID is required")
		return
	}

	token := h.tokenFrom(c)
	if token == "" {
		sendErrorResponse(c, http.StatusUnauthorized, "Admin authentication required")
		return
	}

	res, err := h.backend.DeleteUser(c.Request.Context(), token, req.UserID)
	if err != nil {
		status, message := proxyStatus(err)
		sendErrorResponse(c, status, message)
		return
	}

	h.reloadUsers()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": orMessage(res.Message, "User deleted successfully"),
	})
}

// handleResetPassword sets an account's password back to the default.
func (h *Handlers) handleResetPassword(c *gin.Context) {
	var req userIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		sendErrorResponse(c, http.StatusBadRequest, "User ID is required")
		return
	}

	token := h.tokenFrom(c)
	if token == "" {
		sendErrorResponse(c, http.StatusUnauthorized, "Admin authentication required")
		return
	}

	if _, err := h.backend.ResetPassword(c.Request.Context(), token, req.UserID, defaultPassword); err != nil {
		status, message := proxyStatus(err)
		sendErrorResponse(c, status, message)
		return
	}

	h.reloadUsers()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": `Password reset to "123456" successfully`,
	})
}

// reloadUsers triggers exactly one snapshot reload after a successful
// mutation. The mutation's outcome was already reported; a failed reload
// surfaces on the next page render, not here.
func (h *Handlers) reloadUsers() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = h.users.Load(ctx)
	}()
}

func orMessage(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
