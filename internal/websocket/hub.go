package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"course-portal-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// presenceMessage is pushed to every connected client whenever the membership
// set changes, and once to a client right after it registers (sync).
type presenceMessage struct {
	Type   string `json:"type"` // always "presence"
	Event  string `json:"event"`
	Online int    `json:"online"`
}

// Hub tracks the live progress channel: which sessions are currently
// connected, with multi-tab support (one session, many clients). Presence is
// ephemeral; nothing here is persisted.
type Hub struct {
	// Connected clients per session id.
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fanout; may be nil in single-node
	// setups and tests.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			joined := len(h.clients[client.SessionID]) == 0
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()

			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

			// The new client gets a sync snapshot; everyone else sees a join
			// only when this is the session's first connection.
			h.sendTo(client, h.presencePayload("sync"))
			if joined {
				h.broadcastLocal(h.presencePayload("join"))
			}

		case client := <-h.unregister:
			h.mu.Lock()
			left := false
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					left = true
				}
			}
			h.mu.Unlock()

			if left {
				h.logger.Info("Hub", "Session disconnected", map[string]interface{}{"session_id": client.SessionID})
				h.broadcastLocal(h.presencePayload("leave"))
			}
		}
	}
}

// OnlineCount is the size of the current membership set: distinct sessions,
// not open sockets.
func (h *Hub) OnlineCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) presencePayload(event string) []byte {
	data, _ := json.Marshal(presenceMessage{
		Type:   "presence",
		Event:  event,
		Online: h.OnlineCount(),
	})
	return data
}

// Broadcast sends a payload to ALL connected clients, and to other instances
// via Redis.
func (h *Hub) Broadcast(payload []byte) {
	h.broadcastLocal(payload)

	if h.rdb != nil {
		wrapped, _ := json.Marshal(map[string]interface{}{
			"target_session_id": "*",
			"message":           json.RawMessage(payload),
		})
		h.rdb.Publish(context.Background(), "presence_events", wrapped)
	}
}

// Send delivers a payload to one session's clients (all tabs), locally and on
// other instances.
func (h *Hub) Send(sessionID string, payload []byte) {
	h.mu.RLock()
	clients, localFound := h.clients[sessionID]
	h.mu.RUnlock()

	if localFound {
		for _, client := range clients {
			h.sendTo(client, payload)
		}
	}

	if h.rdb != nil {
		wrapped, _ := json.Marshal(map[string]interface{}{
			"target_session_id": sessionID,
			"message":           json.RawMessage(payload),
		})
		h.rdb.Publish(context.Background(), "presence_events", wrapped)
	}
}

func (h *Hub) broadcastLocal(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, clients := range h.clients {
		for _, client := range clients {
			h.sendTo(client, payload)
		}
	}
}

func (h *Hub) sendTo(client *Client, payload []byte) {
	select {
	case client.Send <- payload:
	default:
		// Slow consumer: drop the connection rather than block the hub.
		h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"session_id": client.SessionID})
		go func() { h.unregister <- client }()
	}
}

func (h *Hub) subscribeToRedis() {
	// Every instance subscribes to the shared channel and forwards messages
	// to sessions it holds locally.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "presence_events")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			TargetSessionID string          `json:"target_session_id"`
			Message         json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if payload.TargetSessionID == "*" {
			h.broadcastLocal(payload.Message)
			continue
		}

		h.mu.RLock()
		clients, ok := h.clients[payload.TargetSessionID]
		h.mu.RUnlock()

		if ok {
			for _, client := range clients {
				h.sendTo(client, payload.Message)
			}
		}
	}
}
