package repository

import (
	"context"
	"errors"
	"fmt"

	"tokoonline/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Create inserts a new order and returns its generated id.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) (int64, error) {
	query := `
		INSERT INTO orders (user_id, status, total_price, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		order.UserID, order.Status, order.TotalPrice, order.CreatedAt,
	).Scan(&id)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", order.UserID).Msg("failed to insert order")
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	r.logger.Debug().Int64("order_id", id).Msg("order created")
	return id, nil
}

// GetAll retrieves all orders.
func (r *orderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	query := `
		SELECT id, user_id, status, total_price, created_at
		FROM orders
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalPrice, &o.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// GetByID retrieves a single order by id. Returns nil when no order exists.
func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `
		SELECT id, user_id, status, total_price, created_at
		FROM orders
		WHERE id = $1
	`

	var o model.Order
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.UserID, &o.Status, &o.TotalPrice, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("order_id", id).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("order_id", id).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return &o, nil
}

// Update overwrites an order's status and total price.
func (r *orderRepository) Update(ctx context.Context, id int64, status string, totalPrice float64) error {
	query := `
		UPDATE orders
		SET status = $1, total_price = $2
		WHERE id = $3
	`

	_, err := r.pool.Exec(ctx, query, status, totalPrice, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("order_id", id).Msg("failed to update order")
		return fmt.Errorf("failed to update order: %w", err)
	}

	return nil
}

// Delete removes an order row.
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM orders WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("order_id", id).Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}
