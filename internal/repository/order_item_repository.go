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

// orderItemRepository implements the OrderItemRepository interface using
// PostgreSQL.
type orderItemRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderItemRepository creates a new PostgreSQL-backed order item repository.
func NewOrderItemRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderItemRepository {
	return &orderItemRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order_item").Logger(),
	}
}

// Create inserts a new order item, including its derived line total, and
// returns its generated id.
func (r *orderItemRepository) Create(ctx context.Context, item *model.OrderItem) (int64, error) {
	query := `
		INSERT INTO order_items (order_id, product_id, quantity, line_total, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		item.OrderID, item.ProductID, item.Quantity, item.LineTotal, item.CreatedAt,
	).Scan(&id)
	if err != nil {
		r.logger.Error().Err(err).
			Int64("order_id", item.OrderID).
			Int64("product_id", item.ProductID).
			Msg("failed to insert order item")
		return 0, fmt.Errorf("failed to insert order item: %w", err)
	}

	r.logger.Debug().Int64("order_item_id", id).Msg("order item created")
	return id, nil
}

// GetByID retrieves a single order item by id. Returns nil when no item exists.
func (r *orderItemRepository) GetByID(ctx context.Context, id int64) (*model.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, line_total, created_at
		FROM order_items
		WHERE id = $1
	`

	var item model.OrderItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.LineTotal, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("order_item_id", id).Msg("order item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("order_item_id", id).Msg("failed to query order item")
		return nil, fmt.Errorf("failed to query order item: %w", err)
	}

	return &item, nil
}

// ListByOrder retrieves all items for an order joined with product name and
// price.
func (r *orderItemRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.OrderItemDetail, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.line_total, oi.created_at,
		       p.name, p.price
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		r.logger.Error().Err(err).Int64("order_id", orderID).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	return scanOrderItemDetails(rows, r.logger)
}

// ListAll retrieves all order items joined with product name and price.
func (r *orderItemRepository) ListAll(ctx context.Context) ([]model.OrderItemDetail, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.line_total, oi.created_at,
		       p.name, p.price
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		ORDER BY oi.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	return scanOrderItemDetails(rows, r.logger)
}

// UpdateQuantity persists a recomputed quantity and line total.
func (r *orderItemRepository) UpdateQuantity(ctx context.Context, id int64, quantity int, lineTotal float64) error {
	query := `
		UPDATE order_items
		SET quantity = $1, line_total = $2
		WHERE id = $3
	`

	_, err := r.pool.Exec(ctx, query, quantity, lineTotal, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("order_item_id", id).Msg("failed to update order item")
		return fmt.Errorf("failed to update order item: %w", err)
	}

	return nil
}

// Delete removes an order item row.
func (r *orderItemRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM order_items WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("order_item_id", id).Msg("failed to delete order item")
		return fmt.Errorf("failed to delete order item: %w", err)
	}

	return nil
}

// scanOrderItemDetails drains rows of joined order item queries.
func scanOrderItemDetails(rows pgx.Rows, logger zerolog.Logger) ([]model.OrderItemDetail, error) {
	var items []model.OrderItemDetail
	for rows.Next() {
		var d model.OrderItemDetail
		err := rows.Scan(
			&d.ID, &d.OrderID, &d.ProductID, &d.Quantity, &d.LineTotal, &d.CreatedAt,
			&d.ProductName, &d.ProductPrice,
		)
		if err != nil {
			logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, d)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}
