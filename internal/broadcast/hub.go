// Package broadcast pushes reconciliation snapshots to connected browser
// clients over WebSocket. Clients are read-only consumers: every message is
// a full dataUpdate envelope, and a newly connected client immediately
// receives the current snapshot so it never waits for the next cycle.
package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"mlb-draft-tracker/internal/domain"
)

// EventDataUpdate is the single event type pushed to clients.
const EventDataUpdate = "dataUpdate"

const (
	writeTimeout   = 10 * time.Second
	pingInterval   = 30 * time.Second
	pongWait       = 60 * time.Second
	sendBufferSize = 8
)

// Envelope is the wire shape of a push message.
type Envelope struct {
	Type       string             `json:"type"`
	Players    []domain.Prospect  `json:"players"`
	DraftPicks []domain.DraftPick `json:"draftPicks"`
	LastUpdate time.Time          `json:"lastUpdate"`
}

// SnapshotSource supplies the current snapshot for replay to new clients.
type SnapshotSource interface {
	Current() (domain.Snapshot, bool)
}

// Hub manages WebSocket connections and fan-out of snapshot updates.
type Hub struct {
	source   SnapshotSource
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]*client
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// NewHub constructs a hub replaying snapshots from source.
func NewHub(source SnapshotSource, logger *slog.Logger) *Hub {
	return &Hub{
		source: source,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The data is public and read-only; origin checks add nothing here.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*client),
	}
}

// ServeWS upgrades an HTTP request and registers the client. The current
// snapshot, when one exists, is sent before any broadcast reaches the
// client.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("websocket upgrade failed", "error", err)
		}
		return
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()

	if snap, ok := h.source.Current(); ok {
		if data, err := json.Marshal(envelope(snap)); err == nil {
			c.send <- data
		}
	}

	go h.writeLoop(c)
	go h.readLoop(c)

	if h.logger != nil {
		h.logger.Info("client connected", "client_id", c.id, "clients", h.ClientCount())
	}
}

// Broadcast fans a snapshot out to every connected client. A client whose
// send buffer is full is dropped rather than allowed to stall the rest.
func (h *Hub) Broadcast(ctx context.Context, snap domain.Snapshot) error {
	data, err := json.Marshal(envelope(snap))
	if err != nil {
		return err
	}

	h.mu.RLock()
	stalled := make([]*client, 0)
	for _, c := range h.clients {
		select {
		case c.send <- data:
		default:
			stalled = append(stalled, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stalled {
		h.drop(c, "send buffer full")
	}
	return nil
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects all clients.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.drop(c, "hub closing")
	}
}

func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case data, ok := <-c.send:
			if !ok {
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.drop(c, "write failed")
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.drop(c, "ping failed")
				return
			}
		}
	}
}

// readLoop drains client frames so pongs are processed; clients never send
// application messages.
func (h *Hub) readLoop(c *client) {
	c.conn.SetReadLimit(1024)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			h.drop(c, "disconnected")
			return
		}
	}
}

func (h *Hub) drop(c *client, reason string) {
	h.mu.Lock()
	_, present := h.clients[c.id]
	if present {
		delete(h.clients, c.id)
		close(c.send)
	}
	h.mu.Unlock()

	if !present {
		return
	}
	c.conn.Close()
	if h.logger != nil {
		h.logger.Info("client dropped", "client_id", c.id, "reason", reason)
	}
}

func envelope(snap domain.Snapshot) Envelope {
	return Envelope{
		Type:       EventDataUpdate,
		Players:    snap.Roster,
		DraftPicks: snap.Picks,
		LastUpdate: snap.LastUpdate,
	}
}
