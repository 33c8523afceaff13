package model

// Product represents a catalogue product.
type Product struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
	Stock       int     `json:"stock" db:"stock"`
	CreatedAt   string  `json:"createdAt" db:"created_at"`
}

// CreateProductRequest represents the request payload for creating a product.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       Numeric `json:"price"`
	Stock       Numeric `json:"stock"`
	CreatedAt   string  `json:"createdAt"`
}

// UpdateProductRequest represents the request payload for updating a product.
type UpdateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       Numeric `json:"price"`
	Stock       Numeric `json:"stock"`
}
