package service

import (
	"context"

	"tokoonline/internal/model"
	"tokoonline/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	repo   repository.OrderRepository
	logger zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		repo:   repo,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

// Create adds a new order. The total price is trusted caller input and is
// not derived from line items.
func (s *orderService) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	if req.UserID == 0 || req.Status == "" || req.TotalPrice == 0 || req.CreatedAt == "" {
		return nil, model.ErrMissingFields
	}
	if req.UserID.IsNaN() || req.TotalPrice.IsNaN() {
		return nil, model.ErrMissingFields
	}

	order := &model.Order{
		UserID:     req.UserID.Int(),
		Status:     req.Status,
		TotalPrice: req.TotalPrice.Float(),
		CreatedAt:  req.CreatedAt,
	}

	id, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	s.logger.Info().Int64("order_id", id).Int64("user_id", order.UserID).Msg("order created")
	return order, nil
}

// GetAll retrieves all orders.
func (s *orderService) GetAll(ctx context.Context) ([]model.Order, error) {
	return s.repo.GetAll(ctx)
}

// GetByID retrieves a single order by id.
func (s *orderService) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// Update overwrites an order's status and total price. Existence is not
// checked first; updating an absent row still reports success.
func (s *orderService) Update(ctx context.Context, id int64, req *model.UpdateOrderRequest) error {
	if req.Status == "" || req.TotalPrice == 0 || req.TotalPrice.IsNaN() {
		return model.ErrMissingFields
	}

	return s.repo.Update(ctx, id, req.Status, req.TotalPrice.Float())
}

// Delete removes an order. Existence is not checked first.
func (s *orderService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
