// Package apierrors provides structured API error codes and responses.
// Codes are namespaced ("core:..." for portal-side failures, "backend:..."
// for failures talking to the upstream service).
package apierrors

import (
	"net/http"
	"strings"
	"sync"
)

// ErrorCode represents a registered API error code.
type ErrorCode struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"http_status"`
}

type registry struct {
	mu    sync.RWMutex
	codes map[string]ErrorCode
	byNS  map[string][]string
}

// Registry is the global error code registry.
var Registry = &registry{
	codes: make(map[string]ErrorCode),
	byNS:  make(map[string][]string),
}

// Register adds an error code to the registry.
func (r *registry) Register(e ErrorCode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codes[e.Code] = e

	ns := "core"
	if idx := strings.Index(e.Code, ":"); idx > 0 {
		ns = e.Code[:idx]
	}
	r.byNS[ns] = append(r.byNS[ns], e.Code)
}

// Get returns an error code by its full code string.
func (r *registry) Get(code string) (ErrorCode, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.codes[code]
	return e, ok
}

// HTTPStatus returns the suggested HTTP status for a code, or 500 if unknown.
func (r *registry) HTTPStatus(code string) int {
	if e, ok := r.Get(code); ok {
		return e.HTTPStatus
	}
	return http.StatusInternalServerError
}

// Message returns the default message for a code, or the code itself if unknown.
func (r *registry) Message(code string) string {
	if e, ok := r.Get(code); ok {
		return e.Message
	}
	return code
}
