package service

import (
	"context"

	"tokoonline/internal/model"
)

// UserService defines operations for user accounts and sessions.
type UserService interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)

	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, req *model.LoginRequest) (string, error)

	// GetAll retrieves all users without password hashes.
	GetAll(ctx context.Context) ([]model.User, error)

	// GetByID retrieves a single user by id.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// Update overwrites a user's name, email and role.
	Update(ctx context.Context, id int64, req *model.UpdateUserRequest) error

	// Delete removes a user.
	Delete(ctx context.Context, id int64) error
}

// ProductService defines operations for catalogue products.
type ProductService interface {
	// Create adds a new product.
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)

	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by id.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Update overwrites a product's fields. Existence is not checked first.
	Update(ctx context.Context, id int64, req *model.UpdateProductRequest) error

	// Delete removes a product. Existence is not checked first.
	Delete(ctx context.Context, id int64) error
}

// OrderService defines operations for order headers.
type OrderService interface {
	// Create adds a new order. The total price is trusted caller input.
	Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error)

	// GetAll retrieves all orders.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves a single order by id.
	GetByID(ctx context.Context, id int64) (*model.Order, error)

	// Update overwrites an order's status and total price.
	Update(ctx context.Context, id int64, req *model.UpdateOrderRequest) error

	// Delete removes an order. Existence is not checked first.
	Delete(ctx context.Context, id int64) error
}

// OrderItemService defines operations for order line items, including the
// derived line-total pricing flow.
type OrderItemService interface {
	// Create adds a line item, computing its line total from the referenced
	// product's current price.
	Create(ctx context.Context, req *model.CreateOrderItemRequest) (*model.OrderItem, error)

	// ListByOrder retrieves an order's items joined with product data. An
	// empty result is reported as not found.
	ListByOrder(ctx context.Context, orderID int64) ([]model.OrderItemDetail, error)

	// ListAll retrieves all items joined with product data. An empty result
	// is reported as not found.
	ListAll(ctx context.Context) ([]model.OrderItemDetail, error)

	// UpdateQuantity changes an item's quantity and recomputes its line
	// total against the product's current price.
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*model.OrderItem, error)

	// Delete removes an item after verifying it exists.
	Delete(ctx context.Context, id int64) error
}
