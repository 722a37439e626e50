package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gtohub/admin-portal/internal/backend"
	"github.com/gtohub/admin-portal/internal/metrics"
)

// sendErrorResponse emits the portal's JSON failure envelope.
func sendErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// logSynthetic records a mock substitution. Synthetic payloads keep the
// console usable while the backend is down, but they must never be silent.
func logSynthetic(endpoint string) {
	log.Printf("api: backend unreachable, serving synthetic payload for %s", endpoint)
	metrics.SyntheticResponses.WithLabelValues(endpoint).Inc()
}

// proxyStatus translates a backend error into the status and message the
// caller should see, defaulting to 502 for transport-level failures.
func proxyStatus(err error) (int, string) {
	if apiErr, ok := backend.AsAPIError(err); ok {
		return apiErr.StatusCode, apiErr.Message
	}
	return http.StatusBadGateway, "Backend service unavailable"
}
