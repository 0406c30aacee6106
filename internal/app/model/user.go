package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

type OrderItem struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       Money  `json:"price"`
}

type Order struct {
	ID     string      `json:"id"`
	Date   time.Time   `json:"date"`
	Status OrderStatus `json:"status"`
	Items  []OrderItem `json:"items"`
	Total  Money       `json:"total"`
}

// User is the mock account record. It is seeded once at signup/login and
// never persisted externally.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	DateJoined   time.Time `json:"date_joined"`
	IsInsider    bool      `json:"is_insider"`
	Orders       []Order   `json:"orders"`
}
