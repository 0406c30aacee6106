package model

import "time"

// CartItem is one line in a cart: a product snapshot and its quantity.
// There is at most one line per distinct product ID in a cart.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart holds the line items for one browser session. It lives in process
// memory only; there is no server-side persistence.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	IsOpen    bool       `json:"is_open"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Subtotal recomputes price x quantity across all lines on every call. It is
// intentionally not cached so it can never drift from the items.
func (c *Cart) Subtotal() Money {
	subtotal := Money{CurrencyCode: "USD"}
	for i, item := range c.Items {
		if i == 0 && item.Product.Price.CurrencyCode != "" {
			subtotal.CurrencyCode = item.Product.Price.CurrencyCode
		}
		subtotal.Amount += item.Product.Price.Amount * float64(item.Quantity)
	}
	return subtotal
}

// ItemCount is the total quantity across all lines, used for the cart badge.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) findItem(productID string) int {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// AddItem appends a new line or increments the existing one for the same
// product. Non-positive quantities are clamped to 1.
func (c *Cart) AddItem(product Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if i := c.findItem(product.ID); i >= 0 {
		c.Items[i].Quantity += quantity
		return
	}
	c.Items = append(c.Items, CartItem{Product: product, Quantity: quantity})
}

// UpdateQuantity sets a line's quantity directly. A quantity of zero or less
// removes the line. Returns false when no line matches the product ID.
func (c *Cart) UpdateQuantity(productID string, quantity int) bool {
	i := c.findItem(productID)
	if i < 0 {
		return false
	}
	if quantity <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return true
	}
	c.Items[i].Quantity = quantity
	return true
}

// RemoveItem drops the line entirely regardless of its quantity. Returns
// false when no line matches.
func (c *Cart) RemoveItem(productID string) bool {
	i := c.findItem(productID)
	if i < 0 {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return true
}
