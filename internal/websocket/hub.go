// Package websocket fans cached collection snapshots out to every
// connected UI client. Clients are passive subscribers: the server pushes
// full snapshots, clients send nothing but pings.
package websocket

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Hub maintains the set of active clients and broadcasts snapshots to them.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	mu         sync.RWMutex
	logger     *zap.Logger
}

// snapshotMessage is the wire envelope for one replaced collection.
type snapshotMessage struct {
	Collection string `json:"collection"`
	Data       any    `json:"data"`
}

// NewHub creates an empty hub.
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
		logger:     logger,
	}
}

// Run drives the hub's registration and fan-out loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Debug("ui client connected", zap.Int("clients", h.ClientCount()))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Debug("ui client disconnected", zap.Int("clients", h.ClientCount()))

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; it will resync on reconnect.
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast publishes one replaced collection snapshot to all clients.
func (h *Hub) Broadcast(collection string, data any) {
	payload, err := json.Marshal(snapshotMessage{Collection: collection, Data: data})
	if err != nil {
		h.logger.Error("failed to marshal snapshot broadcast", zap.String("collection", collection), zap.Error(err))
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("broadcast queue full, dropping snapshot", zap.String("collection", collection))
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
