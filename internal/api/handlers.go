// Package api holds the portal's HTTP handlers: server-rendered admin pages
// and the same-origin JSON endpoints that proxy state changes to the
// backend.
package api

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/gtohub/admin-portal/internal/backend"
	"github.com/gtohub/admin-portal/internal/config"
	"github.com/gtohub/admin-portal/internal/middleware"
	"github.com/gtohub/admin-portal/internal/mockdata"
	"github.com/gtohub/admin-portal/internal/models"
	"github.com/gtohub/admin-portal/internal/refresh"
	"github.com/gtohub/admin-portal/internal/session"
	"github.com/gtohub/admin-portal/internal/template"
)

// debugLog logs only when LOG_LEVEL=debug
func debugLog(format string, v ...interface{}) {
	if os.Getenv("LOG_LEVEL") == "debug" {
		log.Printf(format, v...)
	}
}

// tokenSource caches the most recent verified admin token so snapshot
// reloads triggered outside a request (pollers, post-mutation refresh) can
// still call the backend with credentials.
type tokenSource struct {
	mu    sync.RWMutex
	token string
}

func (t *tokenSource) set(token string) {
	t.mu.Lock()
	t.token = token
	t.mu.Unlock()
}

func (t *tokenSource) get() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.token
}

// Handlers bundles everything the routes need.
type Handlers struct {
	cfg      *config.Config
	backend  *backend.Client
	guard    *session.Guard
	verifier session.Verifier
	renderer *template.Renderer

	adminToken *tokenSource

	users    *refresh.Controller[models.ManagedUser]
	tickets  *refresh.Controller[models.SupportTicket]
	activity *refresh.Controller[models.ActivityEntry]

	hub *Hub
}

// NewHandlers wires the handler set and its refresh controllers. The
// verifier is the backend client in production and the dev authenticator
// when running without a backend.
func NewHandlers(cfg *config.Config, client *backend.Client, guard *session.Guard, verifier session.Verifier, renderer *template.Renderer) *Handlers {
	h := &Handlers{
		cfg:        cfg,
		backend:    client,
		guard:      guard,
		verifier:   verifier,
		renderer:   renderer,
		adminToken: &tokenSource{},
		hub:        NewHub(),
	}

	h.users = refresh.New("users", h.fetchUsers)
	h.tickets = refresh.New("tickets", h.fetchTickets)
	h.activity = refresh.New("activity", h.fetchActivity,
		refresh.WithOnUpdate[models.ActivityEntry](h.hub.Broadcast))
	return h
}

// StartPollers begins the timed refresh jobs. Stop them via StopPollers on
// shutdown.
func (h *Handlers) StopPollers() {
	h.users.Stop()
	h.tickets.Stop()
	h.activity.Stop()
	h.hub.Close()
}

func (h *Handlers) StartPollers() error {
	return h.activity.Poll(h.cfg.Refresh.ActivityInterval)
}

// fetchUsers loads the user snapshot with the cached admin token. User data
// is never substituted with mock records; an unauthenticated or failed
// fetch is an error the table shows as such.
func (h *Handlers) fetchUsers(ctx context.Context) ([]models.ManagedUser, error) {
	token := h.adminToken.get()
	users, _, err := h.backend.ListUsers(ctx, token)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// fetchTickets loads the ticket snapshot, substituting the documented mock
// payload when the backend is unreachable.
func (h *Handlers) fetchTickets(ctx context.Context) ([]models.SupportTicket, error) {
	res, err := h.backend.SupportTickets(ctx, "limit=100")
	if err != nil {
		if backend.IsUnavailable(err) {
			logSynthetic("support/tickets")
			return mockdata.Tickets().Tickets, nil
		}
		return nil, err
	}
	return res.Tickets, nil
}

// fetchActivity loads recent activity with the same mock substitution rule.
func (h *Handlers) fetchActivity(ctx context.Context) ([]models.ActivityEntry, error) {
	res, err := h.backend.RecentActivity(ctx)
	if err != nil {
		if backend.IsUnavailable(err) {
			logSynthetic("users/recent-activity")
			return mockdata.Activities().Data.Activities, nil
		}
		return nil, err
	}
	return res.Data.Activities, nil
}

// identityFrom returns the verified identity placed by the guard.
func identityFrom(c *gin.Context) *models.AdminIdentity {
	if v, ok := c.Get(middleware.CtxIdentity); ok {
		if id, ok := v.(*models.AdminIdentity); ok {
			return id
		}
	}
	return nil
}

// tokenFrom returns the verified session token placed by the guard, and
// refreshes the handler-level token cache as a side effect.
func (h *Handlers) tokenFrom(c *gin.Context) string {
	if v, ok := c.Get(middleware.CtxToken); ok {
		if token, ok := v.(string); ok && token != "" {
			h.adminToken.set(token)
			return token
		}
	}
	return ""
}
