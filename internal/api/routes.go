package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gtohub/admin-portal/internal/middleware"
)

// RegisterRoutes mounts the full portal surface: guarded admin pages, the
// same-origin JSON API and the operational endpoints.
func RegisterRoutes(router *gin.Engine, h *Handlers) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.SessionGuard(h.guard))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"backend": h.backend.Enabled(),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/admin")
	})

	// Pages
	router.GET("/admin", h.handleAdminIndex)
	router.GET("/admin/login", h.handleLoginPage)
	router.GET("/admin/dashboard", h.handleDashboard)
	router.GET("/admin/dashboard/users", h.handleUsersPage)
	router.GET("/admin/dashboard/support", h.handleSupportPage)
	router.GET("/admin/dashboard/analytics", h.handleAnalyticsPage)
	router.GET("/admin/dashboard/ai", h.handleAIPage)
	router.GET("/admin/dashboard/revenue", h.handleRevenuePage)
	router.GET("/admin/dashboard/settings", h.handleSettingsPage)

	// Auth API. Login is the one brute-forceable endpoint.
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(middleware.DefaultRateLimit), h.handleLogin)
		auth.POST("/verify", h.handleVerify)
		auth.POST("/logout", h.handleLogout)
	}

	// User management API (guarded).
	users := router.Group("/api/users")
	{
		users.GET("", h.handleListUsers)
		users.POST("/add", h.handleAddUser)
		users.PUT("/update", h.handleUpdateUser)
		users.DELETE("/delete", h.handleDeleteUser)
		users.PUT("/reset-password", h.handleResetPassword)
		users.GET("/export", h.handleExportUsers)
		users.GET("/stats", h.handleUserStats)
		users.GET("/ai-stats", h.handleAIStats)
		users.GET("/recent-activity", h.handleRecentActivity)
		users.GET("/recent-activity/stream", h.handleActivityStream)
	}

	// Support API (guarded).
	support := router.Group("/api/support")
	{
		support.GET("/tickets", h.handleSupportTickets)
		support.POST("/tickets", h.handleCreateTicket)
	}

	router.GET("/api/analytics/dashboard", h.handleAnalytics)
}
