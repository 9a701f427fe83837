// Package ws pushes world-state snapshots to any number of connected
// browser visualizers over WebSocket.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"ride-hail-sim/internal/engine"
	"ride-hail-sim/internal/general/logger"
)

const writeTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub tracks every connected visualizer and broadcasts state to all of
// them. Unlike a per-user registry, visualizer clients are anonymous: the
// same snapshot goes to everyone.
type Hub struct {
	logger *logger.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewHub creates an empty Hub.
func NewHub(logger *logger.Logger) *Hub {
	return &Hub{
		logger: logger,
		conns:  make(map[*websocket.Conn]struct{}),
	}
}

// Connect upgrades r to a WebSocket connection and registers it for
// broadcasts until the client disconnects.
func (h *Hub) Connect(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error(r.Context(), "ws_upgrade_failed", "failed to upgrade visualizer connection", err, nil)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	h.logger.Info(r.Context(), "ws_connected", "visualizer connected", nil)

	h.readUntilClose(conn)

	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

// readUntilClose drains and discards inbound frames; visualizer clients
// are read-only. This also detects disconnects.
func (h *Hub) readUntilClose(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast pushes state to every connected visualizer, dropping any
// connection that fails to accept the write.
func (h *Hub) Broadcast(ctx context.Context, state engine.StateView) {
	payload, err := json.Marshal(state)
	if err != nil {
		h.logger.Error(ctx, "ws_marshal_failed", "failed to encode state for broadcast", err, nil)
		return
	}

	h.mu.Lock()
	targets := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		targets = append(targets, conn)
	}
	h.mu.Unlock()

	for _, conn := range targets {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.mu.Lock()
			delete(h.conns, conn)
			h.mu.Unlock()
			_ = conn.Close()
		}
	}
}
