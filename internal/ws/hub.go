package ws

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
)

const redisPubSubChannel = "litmart:push"

// Message represents a real-time push message sent via WebSocket
type Message struct {
	Type    string      `json:"type"`    // "notification", "chat", "unread_count"
	Payload interface{} `json:"payload"` // message-specific data
}

// Hub manages WebSocket clients and broadcasts messages
type Hub struct {
	// Registered clients grouped by member ID
	clients map[int64]map[*Client]bool

	// Register/unregister channels
	register   chan *Client
	unregister chan *Client

	// Broadcast to a specific member
	broadcast chan *targetedMessage

	mu          sync.RWMutex
	redisClient *redis.Client
	ctx         context.Context
	cancel      context.CancelFunc
}

type targetedMessage struct {
	MemberID int64
	Message  *Message
}

// NewHub creates a new Hub
func NewHub(redisClient *redis.Client) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:     make(map[int64]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		broadcast:   make(chan *targetedMessage, 256),
		redisClient: redisClient,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	// Start Redis subscriber if Redis is available
	if h.redisClient != nil {
		go h.subscribeRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.memberID] == nil {
				h.clients[client.memberID] = make(map[*Client]bool)
			}
			h.clients[client.memberID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.memberID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.clients, client.memberID)
					}
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			if clients, ok := h.clients[msg.MemberID]; ok {
				data, err := json.Marshal(msg.Message)
				if err == nil {
					for client := range clients {
						select {
						case client.send <- data:
						default:
							close(client.send)
							delete(clients, client)
						}
					}
				}
			}
			h.mu.RUnlock()

		case <-h.ctx.Done():
			return
		}
	}
}

// SendToMember sends a message to a specific member (local + Redis publish)
func (h *Hub) SendToMember(memberID int64, msg *Message) {
	// Local broadcast
	h.broadcast <- &targetedMessage{MemberID: memberID, Message: msg}

	// Publish to Redis for multi-instance support
	if h.redisClient != nil {
		rm := &redisMessage{MemberID: memberID, Message: msg}
		data, err := json.Marshal(rm)
		if err == nil {
			h.redisClient.Publish(h.ctx, redisPubSubChannel, data) //nolint:errcheck
		}
	}
}

type redisMessage struct {
	MemberID int64    `json:"member_id"`
	Message  *Message `json:"message"`
}

// subscribeRedis listens for push messages from other instances
func (h *Hub) subscribeRedis() {
	pubsub := h.redisClient.Subscribe(h.ctx, redisPubSubChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var rm redisMessage
			if err := json.Unmarshal([]byte(msg.Payload), &rm); err == nil {
				// Only local broadcast (don't re-publish to Redis)
				h.broadcast <- &targetedMessage{MemberID: rm.MemberID, Message: rm.Message}
			}
		case <-h.ctx.Done():
			return
		}
	}
}

// ConnectedMembers returns the member ids with at least one open connection
func (h *Hub) ConnectedMembers() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, strconv.FormatInt(id, 10))
	}
	return ids
}

// Stop gracefully shuts down the hub
func (h *Hub) Stop() {
	h.cancel()
}
