package models

// Every endpoint, local and upstream, speaks the same {success, ...} JSON
// envelope. These types decode the backend contracts; the portal re-emits
// the same shapes on its own surface.

// VerifyResponse is the body of POST /api/auth/verify-admin-token.
type VerifyResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    struct {
		User AdminIdentity `json:"user"`
	} `json:"data"`
}

// LoginResponse is the body of POST /api/auth/admin-login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    struct {
		User  AdminIdentity `json:"user"`
		Token string        `json:"token"`
	} `json:"data"`
}

// UsersResponse is the body of GET /api/auth/users.
type UsersResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    struct {
		Users []ManagedUser `json:"users"`
		Count int           `json:"count"`
	} `json:"data"`
}

// TicketsResponse is the body of GET /api/support/tickets. Note the backend
// puts tickets at the top level, not under data.
type TicketsResponse struct {
	Success    bool              `json:"success"`
	Error      string            `json:"error,omitempty"`
	Tickets    []SupportTicket   `json:"tickets"`
	Pagination *TicketPagination `json:"pagination,omitempty"`
}

// ActivityResponse is the body of GET /api/users/recent-activity.
type ActivityResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    struct {
		Activities      []ActivityEntry `json:"activities"`
		TotalActivities int             `json:"totalActivities"`
		Timestamp       string          `json:"timestamp"`
	} `json:"data"`
}

// StatsResponse wraps GET /api/users/stats.
type StatsResponse struct {
	Success bool      `json:"success"`
	Error   string    `json:"error,omitempty"`
	Data    UserStats `json:"data"`
}

// AIStatsResponse wraps GET /api/users/ai-stats.
type AIStatsResponse struct {
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
	Data    AIStats `json:"data"`
}

// AnalyticsResponse wraps GET /api/users/analytics.
type AnalyticsResponse struct {
	Success bool      `json:"success"`
	Error   string    `json:"error,omitempty"`
	Data    Analytics `json:"data"`
}

// MutationResponse is the generic body of user create/update/delete calls.
type MutationResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
