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

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Create inserts a new product and returns its generated id.
func (r *productRepository) Create(ctx context.Context, product *model.Product) (int64, error) {
	query := `
		INSERT INTO products (name, description, price, stock, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Stock, product.CreatedAt,
	).Scan(&id)
	if err != nil {
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to insert product")
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().Int64("product_id", id).Msg("product created")
	return id, nil
}

// GetAll retrieves all products.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, description, price, stock, created_at
		FROM products
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by id. Returns nil when no product exists.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT id, name, description, price, stock, created_at
		FROM products
		WHERE id = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Update overwrites a product's mutable fields. Updating an absent row
// affects zero rows and is not reported as an error.
func (r *productRepository) Update(ctx context.Context, id int64, name, description string, price float64, stock int) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, stock = $4
		WHERE id = $5
	`

	_, err := r.pool.Exec(ctx, query, name, description, price, stock, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

// Delete removes a product row. Deleting an absent row is not an error.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
