package repository

import (
	"context"

	"tokoonline/internal/model"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Create inserts a new user and returns its generated id.
	Create(ctx context.Context, user *model.User) (int64, error)

	// GetByEmail retrieves a user by email. Returns nil when no user exists.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetAll retrieves all users. Password hashes are not selected.
	GetAll(ctx context.Context) ([]model.User, error)

	// GetByID retrieves a single user by id. Returns nil when no user exists.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// Update overwrites a user's name, email and role.
	Update(ctx context.Context, id int64, name, email, role string) error

	// Delete removes a user row.
	Delete(ctx context.Context, id int64) error
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a new product and returns its generated id.
	Create(ctx context.Context, product *model.Product) (int64, error)

	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by id. Returns nil when no product exists.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Update overwrites a product's mutable fields. No existence check is
	// performed; updating an absent row affects zero rows.
	Update(ctx context.Context, id int64, name, description string, price float64, stock int) error

	// Delete removes a product row. Deleting an absent row is not an error.
	Delete(ctx context.Context, id int64) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Create inserts a new order and returns its generated id.
	Create(ctx context.Context, order *model.Order) (int64, error)

	// GetAll retrieves all orders.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves a single order by id. Returns nil when no order exists.
	GetByID(ctx context.Context, id int64) (*model.Order, error)

	// Update overwrites an order's status and total price.
	Update(ctx context.Context, id int64, status string, totalPrice float64) error

	// Delete removes an order row.
	Delete(ctx context.Context, id int64) error
}

// OrderItemRepository defines the interface for order line-item data access
// operations.
type OrderItemRepository interface {
	// Create inserts a new order item, including its derived line total, and
	// returns its generated id.
	Create(ctx context.Context, item *model.OrderItem) (int64, error)

	// GetByID retrieves a single order item by id. Returns nil when no item
	// exists.
	GetByID(ctx context.Context, id int64) (*model.OrderItem, error)

	// ListByOrder retrieves all items for an order joined with product name
	// and price.
	ListByOrder(ctx context.Context, orderID int64) ([]model.OrderItemDetail, error)

	// ListAll retrieves all order items joined with product name and price.
	ListAll(ctx context.Context) ([]model.OrderItemDetail, error)

	// UpdateQuantity persists a recomputed quantity and line total.
	UpdateQuantity(ctx context.Context, id int64, quantity int, lineTotal float64) error

	// Delete removes an order item row.
	Delete(ctx context.Context, id int64) error
}
