package events

import (
	"net/http"

	"trackify_backend/internal/logger"
	"trackify_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Client is one connected dashboard.
type Client struct {
	UserID       string
	Role         string
	Organization string
	Conn         *websocket.Conn
	Send         chan Event

	hub *Hub
}

// Handler upgrades authenticated requests to websocket subscriptions.
type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// ServeWS runs behind the auth middleware, so identity comes from the
// gin context, not the query string.
func (h *Handler) ServeWS(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": gin.H{"message": "Unauthorized"}})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "websocket upgrade failed", err)
		return
	}

	client := &Client{
		UserID:       userID,
		Role:         c.GetString("role"),
		Organization: c.GetString("organization"),
		Conn:         conn,
		Send:         make(chan Event, 16),
		hub:          h.hub,
	}

	h.hub.register <- client

	go client.readPump()
	go client.writePump()
}

// readPump only watches for disconnects; subscriptions are read-only.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	for event := range c.Send {
		if err := c.Conn.WriteJSON(event); err != nil {
			break
		}
	}
	c.Conn.Close()
}
