package events

import (
	"sync"
	"time"

	"trackify_backend/internal/logger"
	"trackify_backend/internal/models"
)

// Event is what dashboards receive when a complaint changes.
type Event struct {
	Type         string    `json:"type"` // complaint.created, complaint.updated, complaint.progress
	ComplaintID  string    `json:"complaintId"`
	Organization string    `json:"organization"`
	UserID       string    `json:"userId"`
	Status       string    `json:"status"`
	At           time.Time `json:"at"`
}

// Publisher is the side the complaint service sees.
type Publisher interface {
	Publish(event Event)
}

// Hub fans complaint events out to connected websocket clients.
// Clients only receive events they would be allowed to list.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			logger.Debug("events client registered", "user_id", client.UserID, "total", len(h.clients))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				close(client.Send)
				delete(h.clients, client)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.dispatch(event)
		}
	}
}

// Publish queues an event without blocking the request that caused it.
func (h *Hub) Publish(event Event) {
	select {
	case h.broadcast <- event:
	default:
		logger.Warn("events broadcast buffer full, dropping event", "type", event.Type)
	}
}

func (h *Hub) dispatch(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if !client.canSee(event) {
			continue
		}
		select {
		case client.Send <- event:
		default:
			// Slow consumer: drop it rather than stall everyone.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (c *Client) canSee(event Event) bool {
	switch models.UserRole(c.Role) {
	case models.UserRoleAdmin:
		return true
	case models.UserRoleOrganization, models.UserRoleWorker:
		return c.Organization != "" && c.Organization == event.Organization
	case models.UserRoleUser:
		return c.UserID == event.UserID
	}
	return false
}
