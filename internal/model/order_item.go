package model

// OrderItem represents a line item in an order. LineTotal is derived:
// quantity times the product's price as read at write time.
type OrderItem struct {
	ID        int64   `json:"id" db:"id"`
	OrderID   int64   `json:"orderId" db:"order_id"`
	ProductID int64   `json:"productId" db:"product_id"`
	Quantity  int     `json:"quantity" db:"quantity"`
	LineTotal float64 `json:"lineTotal" db:"line_total"`
	CreatedAt string  `json:"createdAt" db:"created_at"`
}

// OrderItemDetail is an order item joined with its product's current name
// and price, as returned by the list endpoints.
type OrderItemDetail struct {
	OrderItem
	ProductName  string  `json:"name" db:"name"`
	ProductPrice float64 `json:"price" db:"price"`
}

// CreateOrderItemRequest represents the request payload for creating an
// order item.
type CreateOrderItemRequest struct {
	OrderID   Numeric `json:"orderId"`
	ProductID Numeric `json:"productId"`
	Quantity  Numeric `json:"quantity"`
	CreatedAt string  `json:"createdAt"`
}

// UpdateOrderItemRequest represents the request payload for updating an
// order item's quantity. Quantity is a pointer so an absent field can be
// told apart from an explicit zero; only a present, numeric value is valid.
type UpdateOrderItemRequest struct {
	Quantity *Numeric `json:"quantity"`
}
