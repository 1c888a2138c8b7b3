package ws

import (
	"context"
	"sync"

	"intervue_backend/internal/logger"
)

// Event is a server-to-client refresh hint. Clients react by refetching
// the authoritative list; payloads are deliberately minimal.
type Event struct {
	Type        string `json:"type"`
	InterviewID string `json:"interview_id,omitempty"`
}

const EventInterviewDeleted = "interview_deleted"

// Hub tracks connected clients per user and fans events out to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]bool // userID -> connections

	register   chan *Client
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes client (un)registrations until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			logger.Info("websocket hub stopped")
			return
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.UserID] == nil {
				h.clients[client.UserID] = make(map[*Client]bool)
			}
			h.clients[client.UserID][client] = true
			h.mu.Unlock()
			logger.Debug("websocket client registered", "user_id", client.UserID)
		case client := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.clients[client.UserID]; ok {
				if conns[client] {
					delete(conns, client)
					close(client.send)
					if len(conns) == 0 {
						delete(h.clients, client.UserID)
					}
				}
			}
			h.mu.Unlock()
			logger.Debug("websocket client unregistered", "user_id", client.UserID)
		}
	}
}

// Publish sends the event to every connection of one user. Slow consumers
// are skipped rather than blocking the publisher.
func (h *Hub) Publish(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[userID] {
		select {
		case client.send <- event:
		default:
			logger.Warn("dropping event for slow websocket client", "user_id", userID)
		}
	}
}

// NotifyInterviewDeleted implements services.RefreshNotifier.
func (h *Hub) NotifyInterviewDeleted(userID, interviewID string) {
	h.Publish(userID, Event{
		Type:        EventInterviewDeleted,
		InterviewID: interviewID,
	})
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, conns := range h.clients {
		for client := range conns {
			close(client.send)
		}
		delete(h.clients, userID)
	}
}
