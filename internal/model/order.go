package model

// Order represents an order header. TotalPrice is caller-supplied and is not
// derived from the order's line items.
type Order struct {
	ID         int64   `json:"id" db:"id"`
	UserID     int64   `json:"userId" db:"user_id"`
	Status     string  `json:"status" db:"status"`
	TotalPrice float64 `json:"totalPrice" db:"total_price"`
	CreatedAt  string  `json:"createdAt" db:"created_at"`
}

// CreateOrderRequest represents the request payload for creating an order.
type CreateOrderRequest struct {
	UserID     Numeric `json:"userId"`
	Status     string  `json:"status"`
	TotalPrice Numeric `json:"totalPrice"`
	CreatedAt  string  `json:"createdAt"`
}

// UpdateOrderRequest represents the request payload for updating an order.
type UpdateOrderRequest struct {
	Status     string  `json:"status"`
	TotalPrice Numeric `json:"totalPrice"`
}
