package websocket

import (
	"encoding/json"
	"sync"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
	"github.com/elinacho/lumiskin-backend/pkg/logger"
)

// CartEvent is pushed to every subscriber of a session whenever that
// session's cart mutates. Subtotal and item count come precomputed so the
// page layer renders without recomputing.
type CartEvent struct {
	Type      string      `json:"type"` // always "cart_updated"
	SessionID string      `json:"session_id"`
	Cart      *model.Cart `json:"cart"`
	Subtotal  model.Money `json:"subtotal"`
	ItemCount int         `json:"item_count"`
}

// Hub manages cart-feed subscribers. A session can have several subscribers
// (multiple tabs); each gets every event for its session.
type Hub struct {
	// subscribers per session ID
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client
	events     chan *CartEvent

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string][]*Client),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		events:     make(chan *CartEvent, 256),
	}
}

// Run processes registrations and event fan-out. Call it once in its own
// goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			count := len(h.clients[client.SessionID])
			h.mu.Unlock()
			logger.Debug("Cart feed subscriber registered", map[string]interface{}{
				"session_id":  client.SessionID,
				"subscribers": count,
			})

		case client := <-h.unregister:
			h.removeClient(client)

		case event := <-h.events:
			h.deliver(event)
		}
	}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subscribers := h.clients[client.SessionID]
	for i, existing := range subscribers {
		if existing == client {
			h.clients[client.SessionID] = append(subscribers[:i], subscribers[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.SessionID]) == 0 {
		delete(h.clients, client.SessionID)
	}
}

func (h *Hub) deliver(event *CartEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal cart event", err, map[string]interface{}{
			"session_id": event.SessionID,
		})
		return
	}

	h.mu.RLock()
	subscribers := h.clients[event.SessionID]
	h.mu.RUnlock()

	for _, client := range subscribers {
		select {
		case client.Send <- payload:
		default:
			// Slow subscriber; drop the event rather than block the hub.
			logger.Warn("Dropping cart event for slow subscriber", map[string]interface{}{
				"session_id": event.SessionID,
			})
		}
	}
}

// Publish implements service.CartNotifier. It never blocks the mutating
// request: when the event buffer is full the update is dropped and the next
// mutation's event carries the fresh state anyway.
func (h *Hub) Publish(sessionID string, cart *model.Cart) {
	event := &CartEvent{
		Type:      "cart_updated",
		SessionID: sessionID,
		Cart:      cart,
		Subtotal:  cart.Subtotal(),
		ItemCount: cart.ItemCount(),
	}
	select {
	case h.events <- event:
	default:
		logger.Warn("Cart event buffer full, dropping event", map[string]interface{}{
			"session_id": sessionID,
		})
	}
}
