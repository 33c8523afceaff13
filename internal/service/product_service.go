package service

import (
	"context"

	"tokoonline/internal/model"
	"tokoonline/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	repo   repository.ProductRepository
	logger zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		repo:   repo,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// Create adds a new product. Every field must be present; a zero price or
// stock counts as absent, matching the API's historical behaviour.
func (s *productService) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	if req.Name == "" || req.Description == "" || req.Price == 0 || req.Stock == 0 || req.CreatedAt == "" {
		return nil, model.ErrMissingFields
	}
	if req.Price.IsNaN() || req.Stock.IsNaN() {
		return nil, model.ErrMissingFields
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price.Float(),
		Stock:       int(req.Stock.Int()),
		CreatedAt:   req.CreatedAt,
	}

	id, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id

	s.logger.Info().Int64("product_id", id).Str("name", product.Name).Msg("product created")
	return product, nil
}

// GetAll retrieves all products.
func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetByID retrieves a single product by id.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

// Update overwrites a product's fields. Existence is not checked first;
// updating an absent row still reports success.
func (s *productService) Update(ctx context.Context, id int64, req *model.UpdateProductRequest) error {
	if req.Name == "" || req.Description == "" || req.Price == 0 || req.Stock == 0 {
		return model.ErrMissingFields
	}
	if req.Price.IsNaN() || req.Stock.IsNaN() {
		return model.ErrMissingFields
	}

	return s.repo.Update(ctx, id, req.Name, req.Description, req.Price.Float(), int(req.Stock.Int()))
}

// Delete removes a product. Existence is not checked first; deleting an
// absent row still reports success.
func (s *productService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
