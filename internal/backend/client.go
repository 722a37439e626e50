// Package backend is the typed HTTP client for the upstream service that
// owns identity, user accounts, support tickets and analytics. Every call
// carries a bounded timeout; a hung backend becomes ErrUnavailable instead
// of a stuck request.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gtohub/admin-portal/internal/config"
	"github.com/gtohub/admin-portal/internal/models"
)

// Client talks to the backend REST API.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a client from configuration. An empty backend URL yields a
// disabled client: every call returns ErrNotConfigured.
func New(cfg config.BackendConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.URL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether a backend URL is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// VerifyAdminToken checks a session token. Returns the resolved identity on
// success. Any failure, whether a rejection or a transport error, is
// returned as an error; callers treat all of them as the same
// unauthenticated outcome.
func (c *Client) VerifyAdminToken(ctx context.Context, token string) (*models.AdminIdentity, error) {
	var out models.VerifyResponse
	status, err := c.postJSON(ctx, "/api/auth/verify-admin-token", "", map[string]string{"token": token}, &out)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK || !out.Success {
		return nil, &APIError{StatusCode: status, Message: orDefault(out.Error, "Token verification failed")}
	}
	return &out.Data.User, nil
}

// AdminLogin exchanges credentials for a session token.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (*models.AdminIdentity, string, error) {
	var out models.LoginResponse
	status, err := c.postJSON(ctx, "/api/auth/admin-login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, "", err
	}
	if status != http.StatusOK || !out.Success {
		return nil, "", &APIError{StatusCode: status, Message: orDefault(out.Error, "Login failed")}
	}
	return &out.Data.User, out.Data.Token, nil
}

// Logout invalidates the token upstream. Best effort only: callers must
// clear local credentials regardless of the outcome here.
func (c *Client) Logout(ctx context.Context, token string) error {
	var out models.MutationResponse
	_, err := c.postJSON(ctx, "/api/auth/logout", token, map[string]string{"token": token}, &out)
	return err
}

// ListUsers fetches every managed user record.
func (c *Client) ListUsers(ctx context.Context, token string) ([]models.ManagedUser, int, error) {
	var out models.UsersResponse
	status, err := c.do(ctx, http.MethodGet, "/api/auth/users", token, nil, &out)
	if err != nil {
		return nil, 0, err
	}
	if status != http.StatusOK || !out.Success {
		return nil, 0, &APIError{StatusCode: status, Message: orDefault(out.Error, "Failed to fetch users")}
	}
	return out.Data.Users, out.Data.Count, nil
}

// AddUser creates an account with the portal's default password.
func (c *Client) AddUser(ctx context.Context, token, fullName, email, password string) (*models.MutationResponse, error) {
	return c.mutate(ctx, http.MethodPost, "/api/auth/add-user", token, map[string]interface{}{
		"fullName": fullName,
		"email":    email,
		"password": password,
	}, "Failed to create user")
}

// UpdateUser applies a full update to one account.
func (c *Client) UpdateUser(ctx context.Context, token string, req models.UpdateUserRequest) (*models.MutationResponse, error) {
	return c.mutate(ctx, http.MethodPut, "/api/auth/users/"+req.UserID, token, map[string]interface{}{
		"fullName":     req.FullName,
		"email":        req.Email,
		"isActive":     req.IsActive,
		"adminAllowed": req.AdminAllowed,
	}, "Failed to update user")
}

// DeleteUser removes one account.
func (c *Client) DeleteUser(ctx context.Context, token, userID string) (*models.MutationResponse, error) {
	return c.mutate(ctx, http.MethodDelete, "/api/auth/users/"+userID, token, nil, "Failed to delete user")
}

// ResetPassword sets an account's password.
func (c *Client) ResetPassword(ctx context.Context, token, userID, newPassword string) (*models.MutationResponse, error) {
	return c.mutate(ctx, http.MethodPut, "/api/auth/users/"+userID+"/reset-password", token, map[string]interface{}{
		"newPassword": newPassword,
	}, "Failed to reset password")
}

// SupportTickets fetches the ticket collection. rawQuery is forwarded
// untouched so the page's ?limit=... reaches the backend.
func (c *Client) SupportTickets(ctx context.Context, rawQuery string) (*models.TicketsResponse, error) {
	path := "/api/support/tickets"
	if rawQuery != "" {
		path += "?" + rawQuery
	}
	var out models.TicketsResponse
	status, err := c.do(ctx, http.MethodGet, path, "", nil, &out)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: tickets status %d", ErrUnavailable, status)
	}
	return &out, nil
}

// CreateTicket forwards a new support ticket. Mutation path: no mock
// fallback, failures propagate.
func (c *Client) CreateTicket(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	raw, status, err := c.doRaw(ctx, http.MethodPost, "/api/support/tickets", "", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: create ticket status %d", ErrUnavailable, status)
	}
	return raw, nil
}

// RecentActivity fetches the activity feed.
func (c *Client) RecentActivity(ctx context.Context) (*models.ActivityResponse, error) {
	var out models.ActivityResponse
	return &out, c.getOK(ctx, "/api/users/recent-activity", &out, &out.Success)
}

// Stats fetches user account statistics.
func (c *Client) Stats(ctx context.Context) (*models.StatsResponse, error) {
	var out models.StatsResponse
	return &out, c.getOK(ctx, "/api/users/stats", &out, &out.Success)
}

// AIStats fetches AI performance statistics.
func (c *Client) AIStats(ctx context.Context) (*models.AIStatsResponse, error) {
	var out models.AIStatsResponse
	return &out, c.getOK(ctx, "/api/users/ai-stats", &out, &out.Success)
}

// Analytics fetches the analytics dashboard payload.
func (c *Client) Analytics(ctx context.Context) (*models.AnalyticsResponse, error) {
	var out models.AnalyticsResponse
	return &out, c.getOK(ctx, "/api/users/analytics", &out, &out.Success)
}

func (c *Client) mutate(ctx context.Context, method, path, token string, body interface{}, fallbackMsg string) (*models.MutationResponse, error) {
	var out models.MutationResponse
	status, err := c.do(ctx, method, path, token, body, &out)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK || !out.Success {
		return nil, &APIError{StatusCode: status, Message: orDefault(out.Error, fallbackMsg)}
	}
	return &out, nil
}

// getOK performs a GET that only distinguishes reachable from unreachable;
// informational reads treat any non-OK or success:false as unavailability so
// the caller can fall back to mock data.
func (c *Client) getOK(ctx context.Context, path string, out interface{}, success *bool) error {
	status, err := c.do(ctx, http.MethodGet, path, "", nil, out)
	if err != nil {
		return err
	}
	if status != http.StatusOK || (success != nil && !*success) {
		return fmt.Errorf("%w: %s status %d", ErrUnavailable, path, status)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path, token string, body interface{}, out interface{}) (int, error) {
	return c.do(ctx, http.MethodPost, path, token, body, out)
}

// do issues one JSON request and decodes the response envelope. Transport
// and decode failures are wrapped in ErrUnavailable; HTTP-level rejections
// are left to the caller, which has the decoded envelope and status.
func (c *Client) do(ctx context.Context, method, path, token string, body interface{}, out interface{}) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	raw, status, err := c.doRaw(ctx, method, path, token, reader)
	if err != nil {
		return 0, err
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return 0, fmt.Errorf("%w: malformed response from %s: %v", ErrUnavailable, path, err)
		}
	}
	return status, nil
}

func (c *Client) doRaw(ctx context.Context, method, path, token string, body io.Reader) (json.RawMessage, int, error) {
	if !c.Enabled() {
		return nil, 0, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}
	return raw, resp.StatusCode, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
