package api

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/gtohub/admin-portal/internal/models"
)

// The default CheckOrigin stands: the page and the socket share the host,
// so a cross-origin upgrade is refused.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Hub fans activity poll results out to connected dashboard sockets.
type Hub struct {
	mu     sync.Mutex
	conns  map[*websocket.Conn]bool
	closed bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]bool)}
}

// Broadcast pushes one activity snapshot to every connected socket. Dead
// connections are dropped on write failure.
func (h *Hub) Broadcast(entries []models.ActivityEntry) {
	payload := gin.H{
		"type":       "activity",
		"activities": entries,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(payload); err != nil {
			debugLog("stream: dropping connection: %v", err)
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

func (h *Hub) add(conn *websocket.Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.conns[conn] = true
	return true
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.conns[conn]; ok {
		delete(h.conns, conn)
		conn.Close()
	}
	h.mu.Unlock()
}

// Close shuts every connection down.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for conn := range h.conns {
		conn.Close()
		delete(h.conns, conn)
	}
}

// handleActivityStream upgrades the request and keeps the socket registered
// until the client goes away. Pushes come from the activity poller via the
// hub; the read loop only exists to detect closure.
func (h *Handlers) handleActivityStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		debugLog("stream: upgrade failed: %v", err)
		return
	}
	if !h.hub.add(conn) {
		conn.Close()
		return
	}

	// Send the current snapshot immediately so a fresh dashboard isn't
	// empty until the next poll.
	if entries, _, _ := h.activity.Snapshot(); len(entries) > 0 {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		_ = conn.WriteJSON(gin.H{
			"type":       "activity",
			"activities": entries,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
		})
	}

	go func() {
		defer h.hub.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
