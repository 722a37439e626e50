// Package metrics registers the portal's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by method, route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_portal_http_requests_total",
		Help: "HTTP requests handled by the portal.",
	}, []string{"method", "path", "status"})

	// HTTPDuration observes request latency by route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "admin_portal_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// SyntheticResponses counts mock-fallback substitutions per endpoint.
	// Operators rely on this to tell fabricated data apart from real
	// backend responses.
	SyntheticResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_portal_synthetic_responses_total",
		Help: "Responses served from embedded mock data because the backend was unreachable.",
	}, []string{"endpoint"})

	// TokenVerifications counts session guard outcomes.
	TokenVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_portal_token_verifications_total",
		Help: "Session token verification attempts by outcome.",
	}, []string{"outcome"})

	// SnapshotRefreshes counts collection snapshot loads.
	SnapshotRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_portal_snapshot_refreshes_total",
		Help: "Collection snapshot refreshes by collection and outcome.",
	}, []string{"collection", "outcome"})
)

// Verification outcomes.
const (
	OutcomeAuthenticated   = "authenticated"
	OutcomeUnauthenticated = "unauthenticated"
	OutcomeNoToken         = "no_token"
)
