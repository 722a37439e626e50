package api

import (
	"net/http"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"github.com/gtohub/admin-portal/internal/mockdata"
	"github.com/gtohub/admin-portal/internal/models"
	"github.com/gtohub/admin-portal/internal/refresh"
	"github.com/gtohub/admin-portal/internal/session"
	"github.com/gtohub/admin-portal/internal/view"
)

// handleAdminIndex routes the bare /admin path to the right page.
func (h *Handlers) handleAdminIndex(c *gin.Context) {
	if res := h.guard.Resolve(c); res.State == session.StateAuthenticated {
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/login")
}

// handleLoginPage renders the login form, skipping it for an already
// authenticated session.
func (h *Handlers) handleLoginPage(c *gin.Context) {
	if res := h.guard.Resolve(c); res.State == session.StateAuthenticated {
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}
	h.renderer.HTML(c, http.StatusOK, "pages/login.pongo2", pongo2.Context{
		"Title":      "Admin Login",
		"DevMode":    h.cfg.Auth.DevMode && !h.backend.Enabled(),
		"ActivePage": "login",
	})
}

// handleDashboard renders the overview page. User counts come from the
// users snapshot when one exists; the headline stats fall back to the
// stats endpoint (or its mock) otherwise.
func (h *Handlers) handleDashboard(c *gin.Context) {
	h.tokenFrom(c)

	var stats models.UserStats
	if res, err := h.backend.Stats(c.Request.Context()); err == nil {
		stats = res.Data
	} else {
		logSynthetic("users/stats")
		stats = mockdata.Stats().Data
	}

	if users, loadedAt, _ := h.users.Snapshot(); !loadedAt.IsZero() {
		stats.TotalUsers = len(users)
		active := 0
		for _, u := range users {
			if u.IsActive {
				active++
			}
		}
		stats.ActiveUsers = active
	}

	if h.activity.State() == refresh.RegionLoading {
		_ = h.activity.Load(c.Request.Context())
	}
	activities, _, activityErr := h.activity.Snapshot()

	h.renderer.HTML(c, http.StatusOK, "pages/dashboard.pongo2", pongo2.Context{
		"Title":         "Dashboard",
		"User":          identityFrom(c),
		"ActivePage":    "dashboard",
		"Stats":         stats,
		"Activities":    activities,
		"ActivityState": h.activity.State().String(),
		"ActivityError": errString(activityErr),
	})
}

// handleUsersPage renders the user management table: snapshot filtered,
// sorted and paginated server-side. ?refresh=1 reloads the snapshot first;
// sort-only changes keep the current page, filter changes reset it.
func (h *Handlers) handleUsersPage(c *gin.Context) {
	h.tokenFrom(c)

	if c.Query("refresh") == "1" || h.users.State() == refresh.RegionLoading {
		_ = h.users.Load(c.Request.Context())
	}
	users, loadedAt, loadErr := h.users.Snapshot()

	search := c.Query("search")
	adminEmail := ""
	if id := identityFrom(c); id != nil {
		adminEmail = id.Email
	}
	filtered := view.FilterUsers(users, adminEmail, search)

	sortField := c.DefaultQuery("sort", "createdAt")
	dir := view.ParseDirection(c.DefaultQuery("dir", "desc"))
	view.SortUsers(filtered, sortField, dir)

	page := view.Paginate(filtered, view.PageFromQuery(c.Query("page")), h.cfg.Refresh.PageSize)

	state := h.users.State()
	if state == refresh.RegionPopulated && len(filtered) == 0 {
		// Records exist but the search matched none; templates show the
		// no-results state instead of the true empty state.
		state = refresh.RegionEmpty
	}

	h.renderer.HTML(c, http.StatusOK, "pages/users.pongo2", pongo2.Context{
		"Title":      "User Management",
		"User":       identityFrom(c),
		"ActivePage": "users",
		"Page":       page,
		"State":      state.String(),
		"Search":     search,
		"Sort":       sortField,
		"Dir":        dir.String(),
		"NextDir":    dir.Toggle().String(),
		"LoadedAt":   loadedAt,
		"LoadError":  errString(loadErr),
		"HasSearch":  search != "",
	})
}

// handleSupportPage renders the support ticket console.
func (h *Handlers) handleSupportPage(c *gin.Context) {
	h.tokenFrom(c)

	if c.Query("refresh") == "1" || h.tickets.State() == refresh.RegionLoading {
		_ = h.tickets.Load(c.Request.Context())
	}
	tickets, loadedAt, loadErr := h.tickets.Snapshot()

	filter := view.TicketFilter{
		Status:   c.DefaultQuery("status", "all"),
		Type:     c.DefaultQuery("type", "all"),
		Priority: c.DefaultQuery("priority", "all"),
		Search:   c.Query("search"),
	}
	filtered := view.FilterTickets(tickets, filter)

	sortField := c.DefaultQuery("sort", "createdAt")
	dir := view.ParseDirection(c.DefaultQuery("dir", "desc"))
	view.SortTickets(filtered, sortField, dir)

	page := view.Paginate(filtered, view.PageFromQuery(c.Query("page")), h.cfg.Refresh.PageSize)

	state := h.tickets.State()
	if state == refresh.RegionPopulated && len(filtered) == 0 {
		state = refresh.RegionEmpty
	}

	rendered := make([]pongo2.Context, 0, len(page.Items))
	for _, t := range page.Items {
		rendered = append(rendered, pongo2.Context{
			"Ticket":   t,
			"BodyHTML": view.RenderTicketBody(t.Description),
		})
	}

	h.renderer.HTML(c, http.StatusOK, "pages/support.pongo2", pongo2.Context{
		"Title":      "Support Tickets",
		"User":       identityFrom(c),
		"ActivePage": "support",
		"Page":       page,
		"Rows":       rendered,
		"State":      state.String(),
		"Filter":     filter,
		"Sort":       sortField,
		"Dir":        dir.String(),
		"NextDir":    dir.Toggle().String(),
		"LoadedAt":   loadedAt,
		"LoadError":  errString(loadErr),
	})
}

// handleAnalyticsPage renders the analytics dashboard.
func (h *Handlers) handleAnalyticsPage(c *gin.Context) {
	analytics := h.analyticsData(c)
	h.renderer.HTML(c, http.StatusOK, "pages/analytics.pongo2", pongo2.Context{
		"Title":      "Analytics",
		"User":       identityFrom(c),
		"ActivePage": "analytics",
		"Analytics":  analytics,
	})
}

// handleAIPage renders the AI performance panel.
func (h *Handlers) handleAIPage(c *gin.Context) {
	var stats models.AIStats
	if res, err := h.backend.AIStats(c.Request.Context()); err == nil {
		stats = res.Data
	} else {
		logSynthetic("users/ai-stats")
		stats = mockdata.AIStats().Data
	}
	h.renderer.HTML(c, http.StatusOK, "pages/ai.pongo2", pongo2.Context{
		"Title":      "AI Analysis",
		"User":       identityFrom(c),
		"ActivePage": "ai",
		"Stats":      stats,
	})
}

// handleRevenuePage renders the revenue placeholder figures.
func (h *Handlers) handleRevenuePage(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "pages/revenue.pongo2", pongo2.Context{
		"Title":      "Revenue",
		"User":       identityFrom(c),
		"ActivePage": "revenue",
	})
}

// handleSettingsPage renders the settings page.
func (h *Handlers) handleSettingsPage(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "pages/settings.pongo2", pongo2.Context{
		"Title":      "Settings",
		"User":       identityFrom(c),
		"ActivePage": "settings",
		"Backend":    h.cfg.Backend.URL,
		"DevMode":    h.cfg.Auth.DevMode,
	})
}

func (h *Handlers) analyticsData(c *gin.Context) models.Analytics {
	if res, err := h.backend.Analytics(c.Request.Context()); err == nil {
		return res.Data
	}
	logSynthetic("analytics/dashboard")
	return mockdata.Analytics().Data
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
