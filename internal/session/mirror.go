package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gtohub/admin-portal/internal/config"
)

// ErrMirrorMiss is returned when no token is stored under a ref.
var ErrMirrorMiss = errors.New("session mirror: ref not found")

// Mirror is the persistent fallback copy of the session token, keyed by the
// opaque ref carried in a second long-lived cookie. The guard reads it only
// when the token cookie itself is absent.
type Mirror interface {
	Get(ctx context.Context, ref string) (string, error)
	Set(ctx context.Context, ref, token string, ttl time.Duration) error
	Delete(ctx context.Context, ref string) error
	Close() error
}

// NewMirror builds the mirror backend selected by configuration.
func NewMirror(cfg config.MirrorConfig) (Mirror, error) {
	switch cfg.Driver {
	case "", "memory":
		return NewMemoryMirror(), nil
	case "redis":
		return newRedisMirror(cfg)
	case "sqlite", "sqlite3", "mysql", "postgres":
		return newSQLMirror(cfg)
	default:
		return nil, fmt.Errorf("session mirror: unknown driver %q", cfg.Driver)
	}
}

// MemoryMirror is the in-process backend used in development and tests.
type MemoryMirror struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	token   string
	expires time.Time
}

// NewMemoryMirror creates an empty in-memory mirror.
func NewMemoryMirror() *MemoryMirror {
	return &MemoryMirror{entries: make(map[string]memoryEntry)}
}

func (m *MemoryMirror) Get(_ context.Context, ref string) (string, error) {
	m.mu.RLock()
	e, ok := m.entries[ref]
	m.mu.RUnlock()
	if !ok || (!e.expires.IsZero() && time.Now().After(e.expires)) {
		return "", ErrMirrorMiss
	}
	return e.token, nil
}

func (m *MemoryMirror) Set(_ context.Context, ref, token string, ttl time.Duration) error {
	var expires time.Time
	if ttl > 0 {
		expires = time.Now().Add(ttl)
	}
	m.mu.Lock()
	m.entries[ref] = memoryEntry{token: token, expires: expires}
	m.mu.Unlock()
	return nil
}

func (m *MemoryMirror) Delete(_ context.Context, ref string) error {
	m.mu.Lock()
	delete(m.entries, ref)
	m.mu.Unlock()
	return nil
}

func (m *MemoryMirror) Close() error { return nil }
