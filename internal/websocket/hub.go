package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"edutrack-advisor-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const flowChannel = "advisor_flow_events"

// Hub fan-outs recorded interaction traces to every connected observer.
// Observers are anonymous dashboards; there is no per-user targeting.
type Hub struct {
	// Registered observer connections
	clients map[*Client]bool

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance fan-out
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("Hub", "Flow observer registered", map[string]interface{}{"observer_id": client.Id})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.logger.Info("Hub", "Flow observer unregistered", map[string]interface{}{"observer_id": client.Id})
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastFlow sends an interaction trace to ALL connected observers
// and relays it to sibling instances through Redis.
func (h *Hub) BroadcastFlow(payload []byte) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "interaction",
		"data": json.RawMessage(payload),
	})

	// With Redis every instance (this one included) receives the message
	// back on the channel, so publishing is also the local delivery.
	if h.rdb != nil {
		if err := h.rdb.Publish(context.Background(), flowChannel, data).Err(); err != nil {
			h.logger.Warn("Hub", "Redis relay failed, delivering locally", map[string]interface{}{"error": err.Error()})
			h.broadcastLocal(data)
		}
		return
	}

	h.broadcastLocal(data)
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Observer send buffer full, dropping connection", map[string]interface{}{"observer_id": client.Id})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	// Every instance subscribes to the shared flow channel and replays
	// messages to its local observers, including messages it published.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, flowChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for msg := range ch {
		h.broadcastLocal([]byte(msg.Payload))
	}
	log.Printf("Redis flow subscription closed")
}
