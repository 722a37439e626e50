package apierrors

import (
	"github.com/gin-gonic/gin"
)

// Error sends the standard failure envelope for a registered code.
// All JSON responses in the portal use the {success, error} envelope so the
// frontend handles portal-side and proxied backend failures identically.
func Error(c *gin.Context, code string) {
	ErrorWithMessage(c, code, Registry.Message(code))
}

// ErrorWithMessage sends the failure envelope with a custom message.
func ErrorWithMessage(c *gin.Context, code, message string) {
	c.JSON(Registry.HTTPStatus(code), gin.H{
		"success": false,
		"error":   message,
		"code":    code,
	})
}

// ErrorWithStatus sends the failure envelope with an explicit HTTP status.
// Used when proxying: the backend's status is preserved verbatim.
func ErrorWithStatus(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
		"code":    code,
	})
}
