package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gtohub/admin-portal/internal/backend"
	"github.com/gtohub/admin-portal/internal/mockdata"
)

// handleSupportTickets proxies the ticket list, forwarding the query string
// untouched. When the backend is unreachable the documented mock payload is
// substituted so the support console stays browsable.
func (h *Handlers) handleSupportTickets(c *gin.Context) {
	res, err := h.backend.SupportTickets(c.Request.Context(), c.Request.URL.RawQuery)
	if err != nil {
		if backend.IsUnavailable(err) {
			logSynthetic("support/tickets")
			c.JSON(http.StatusOK, mockdata.Tickets())
			return
		}
		status, message := proxyStatus(err)
		sendErrorResponse(c, status, message)
		return
	}

	c.JSON(http.StatusOK, res)
}

// handleCreateTicket forwards a new ticket verbatim. Mutation path: no mock
// fallback, a failure is a failure.
func (h *Handlers) handleCreateTicket(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		sendErrorResponse(c, http.StatusBadRequest, "Request body is required")
		return
	}

	raw, err := h.backend.CreateTicket(c.Request.Context(), json.RawMessage(body))
	if err != nil {
		sendErrorResponse(c, http.StatusInternalServerError, "Failed to create support ticket")
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}
