package session

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/gtohub/admin-portal/internal/metrics"
	"github.com/gtohub/admin-portal/internal/models"
)

// State is the guard's per-request resolution state. Protected content may
// only render once the state is Authenticated; everything else shows nothing
// or a neutral loading view, never a flash of protected markup.
type State int

const (
	StateInitializing State = iota
	StateResolving
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateResolving:
		return "resolving"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// Verifier checks a session token against the identity authority. The
// production implementation is the backend client; development mode swaps in
// a local verifier.
type Verifier interface {
	VerifyAdminToken(ctx context.Context, token string) (*models.AdminIdentity, error)
	Logout(ctx context.Context, token string) error
}

// Resolution is the outcome of one guard pass.
type Resolution struct {
	State    State
	Identity *models.AdminIdentity
	Token    string
}

// Guard gates admin pages behind a verified session. Verification happens
// exactly once per page load; there is no background re-verification.
type Guard struct {
	store    *Store
	verifier Verifier
}

// NewGuard wires the guard over the session store and a verifier.
func NewGuard(store *Store, verifier Verifier) *Guard {
	return &Guard{store: store, verifier: verifier}
}

// Store exposes the underlying session store.
func (g *Guard) Store() *Store { return g.store }

// Resolve reads the token and verifies it. With no token in either storage
// location it returns Unauthenticated without any network call. Every kind
// of verification failure converges to the same Unauthenticated outcome and
// is never retried.
func (g *Guard) Resolve(c *gin.Context) Resolution {
	token, ok := g.store.Read(c)
	if !ok {
		metrics.TokenVerifications.WithLabelValues(metrics.OutcomeNoToken).Inc()
		return Resolution{State: StateUnauthenticated}
	}

	identity, err := g.verifier.VerifyAdminToken(c.Request.Context(), token)
	if err != nil {
		metrics.TokenVerifications.WithLabelValues(metrics.OutcomeUnauthenticated).Inc()
		debugLog("guard: verification failed: %v", err)
		// The guard never touches stored tokens on failure; only logout
		// clears them.
		return Resolution{State: StateUnauthenticated}
	}

	metrics.TokenVerifications.WithLabelValues(metrics.OutcomeAuthenticated).Inc()
	return Resolution{State: StateAuthenticated, Identity: identity, Token: token}
}

// Logout invalidates the session. The upstream call is best effort; local
// clearing always happens, so logout is always locally effective.
func (g *Guard) Logout(c *gin.Context) {
	if token, ok := g.store.Read(c); ok {
		if err := g.verifier.Logout(c.Request.Context(), token); err != nil {
			log.Printf("session: backend logout failed (clearing locally anyway): %v", err)
		}
	}
	g.store.Clear(c)
}
