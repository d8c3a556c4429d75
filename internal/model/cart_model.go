package model

import "time"

// CartLine is the persisted (productId, qty) pair of a user's cart.
type CartLine struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// CartItem is a CartLine merged with its product's display data.
// Resolved is false when no catalog product matched the line; the
// display fields are then zero and the item contributes nothing to totals.
type CartItem struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
	Name      string `json:"name,omitempty"`
	Category  string `json:"category,omitempty"`
	Cost      int64  `json:"cost,omitempty"`
	Rating    int    `json:"rating,omitempty"`
	Image     string `json:"image,omitempty"`
	Resolved  bool   `json:"-"`
}

// Order is written when a checkout succeeds.
type Order struct {
	ID        string     `json:"orderId"`
	UserID    string     `json:"-"`
	AddressID string     `json:"addressId"`
	Total     int64      `json:"total"`
	Items     []CartLine `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
}

// CheckoutResponse is returned by POST /cart/checkout. Balance is the
// wallet balance after the order was charged.
type CheckoutResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId,omitempty"`
	Balance *int64 `json:"balance,omitempty"`
}
