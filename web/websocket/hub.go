// Package websocket provides the real-time update fan-out for connected
// panel clients.
package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/domysh/spesometro/logger"

	"github.com/goccy/go-json"
	"go.uber.org/atomic"
)

// MessageTypeUpdate is the single event type of the protocol: shared state
// changed, clients should re-fetch it. The payload lists affected resource
// ids and may be empty.
const MessageTypeUpdate = "update"

// Message is the wire format of a fan-out event.
type Message struct {
	Type    string   `json:"type"`
	Payload []string `json:"payload"`
	Time    int64    `json:"time"`
}

// Client represents a connected real-time client.
type Client struct {
	ID   string
	Send chan []byte
}

// Hub maintains the set of connected clients and broadcasts update events
// to them. Delivery is best-effort and at-most-once: there is no replay
// for late joiners and slow clients are dropped rather than awaited.
type Hub struct {
	clients map[*Client]bool

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	ctx     context.Context
	cancel  context.CancelFunc
	stopped *atomic.Bool
}

// NewHub creates a new hub. Run must be started for it to serve.
func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client, 16),
		unregister: make(chan *Client, 16),
		ctx:        ctx,
		cancel:     cancel,
		stopped:    atomic.NewBool(false),
	}
}

// Run is the hub's main loop, serializing connect, disconnect and
// broadcast so a disconnect during a broadcast cannot corrupt the
// client set.
func (h *Hub) Run() {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("websocket hub panic recovered:", r)
			go h.Run()
		}
	}()

	for {
		select {
		case <-h.ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.Send)
			}
			h.clients = make(map[*Client]bool)
			h.mu.Unlock()
			logger.Info("websocket hub stopped")
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			logger.Debugf("websocket client connected: %s (total: %d)", client.ID, count)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			logger.Debugf("websocket client disconnected: %s (total: %d)", client.ID, count)

		case message := <-h.broadcast:
			if message == nil {
				continue
			}
			h.mu.RLock()
			clients := make([]*Client, 0, len(h.clients))
			for client := range h.clients {
				clients = append(clients, client)
			}
			h.mu.RUnlock()

			for _, client := range clients {
				select {
				case client.Send <- message:
				default:
					// Send buffer full, drop the client rather than block.
					// Dropped inline: the loop is the only drainer of the
					// unregister queue and must not enqueue to itself.
					logger.Debugf("websocket client %s send buffer full, disconnecting", client.ID)
					h.mu.Lock()
					if _, ok := h.clients[client]; ok {
						delete(h.clients, client)
						close(client.Send)
					}
					h.mu.Unlock()
				}
			}
		}
	}
}

// Broadcast enqueues an update event for every connected client. It never
// blocks the caller for long and never fails the triggering mutation: a
// full queue or a stopped hub just drops the event.
func (h *Hub) Broadcast(affected []string) {
	if h == nil || h.stopped.Load() {
		return
	}
	if affected == nil {
		affected = []string{}
	}

	msg := Message{
		Type:    MessageTypeUpdate,
		Payload: affected,
		Time:    time.Now().UnixMilli(),
	}
	data, err := json.Marshal(msg)
	if err != nil {
		logger.Error("failed to marshal websocket message:", err)
		return
	}

	select {
	case h.broadcast <- data:
	case <-time.After(100 * time.Millisecond):
		logger.Warning("websocket broadcast channel is full, dropping message")
	case <-h.ctx.Done():
	}
}

// GetClientCount returns the number of connected clients.
func (h *Hub) GetClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Register adds a client to the hub.
func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	select {
	case h.register <- client:
	case <-h.ctx.Done():
	}
}

// Unregister removes a client from the hub and closes its send channel.
func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.ctx.Done():
	}
}

// Stop shuts down the hub and disconnects all clients.
func (h *Hub) Stop() {
	if h == nil {
		return
	}
	h.stopped.Store(true)
	if h.cancel != nil {
		h.cancel()
	}
}
