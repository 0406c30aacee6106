package repository

import (
	"sync"
	"time"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
)

// CartRepository stores session carts in process memory. Carts survive
// navigation within a session but not a server restart; that is the intended
// lifecycle, there is no persistence layer behind this.
type CartRepository interface {
	Get(sessionID string) *model.Cart
	Save(cart *model.Cart)
	Delete(sessionID string)
}

type cartRepository struct {
	mu    sync.RWMutex
	carts map[string]*model.Cart
}

func NewCartRepository() CartRepository {
	return &cartRepository{
		carts: make(map[string]*model.Cart),
	}
}

// Get returns a copy of the session's cart, creating an empty one on first
// access. Copies keep callers from mutating shared state outside Save.
func (r *cartRepository) Get(sessionID string) *model.Cart {
	r.mu.RLock()
	cart, ok := r.carts[sessionID]
	r.mu.RUnlock()

	if !ok {
		return &model.Cart{
			SessionID: sessionID,
			Items:     []model.CartItem{},
			UpdatedAt: time.Now(),
		}
	}
	return copyCart(cart)
}

func (r *cartRepository) Save(cart *model.Cart) {
	cart.UpdatedAt = time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.SessionID] = copyCart(cart)
}

func (r *cartRepository) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}

func copyCart(cart *model.Cart) *model.Cart {
	items := make([]model.CartItem, len(cart.Items))
	copy(items, cart.Items)
	clone := *cart
	clone.Items = items
	return &clone
}
