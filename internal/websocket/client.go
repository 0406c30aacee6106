package websocket

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/elinacho/lumiskin-backend/pkg/logger"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Cart events are small; anything bigger from the peer is garbage.
	maxMessageSize = 4 * 1024
)

// Client is one cart-feed subscriber connection.
type Client struct {
	Hub       *Hub
	Conn      *websocket.Conn
	SessionID string
	Send      chan []byte
}

// NewClient wraps an upgraded connection and registers it with the hub.
// Callers start ReadPump and WritePump themselves.
func NewClient(hub *Hub, conn *websocket.Conn, sessionID string) *Client {
	client := &Client{
		Hub:       hub,
		Conn:      conn,
		SessionID: sessionID,
		Send:      make(chan []byte, 16),
	}
	hub.register <- client
	return client
}

// ReadPump drains the connection. The cart feed is push-only; inbound
// messages are ignored but the read loop is what detects a closed peer.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("WebSocket read error", err, map[string]interface{}{
					"session_id": c.SessionID,
				})
			}
			break
		}
	}
}

// WritePump forwards hub events to the peer and keeps the connection alive
// with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Error("Failed to write cart event", err, map[string]interface{}{
					"session_id": c.SessionID,
				})
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
