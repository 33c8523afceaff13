package service

import (
	"context"

	"tokoonline/internal/model"
	"tokoonline/internal/repository"

	"github.com/rs/zerolog"
)

// orderItemService implements OrderItemService. It owns the pricing flow:
// every write reads the referenced product's current price and persists
// quantity times that price as the line total.
type orderItemService struct {
	repo        repository.OrderItemRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewOrderItemService creates a new order item service.
func NewOrderItemService(
	repo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderItemService {
	return &orderItemService{
		repo:        repo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "order_item").Logger(),
	}
}

// Create adds a line item. The line total is computed from the product's
// price as read now, not from any price the caller supplies.
//
// The price read and the item write are deliberately not wrapped in a
// transaction; a concurrent product price change between the two can
// produce a stale total. This matches the system's documented behaviour.
func (s *orderItemService) Create(ctx context.Context, req *model.CreateOrderItemRequest) (*model.OrderItem, error) {
	if req.OrderID.IsNaN() || req.ProductID.IsNaN() || req.Quantity.IsNaN() {
		return nil, model.ErrFieldsNotNumeric
	}
	if req.OrderID == 0 || req.ProductID == 0 || req.Quantity == 0 || req.CreatedAt == "" {
		return nil, model.ErrMissingFields
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID.Int())
	if err != nil {
		return nil, err
	}
	if product == nil {
		s.logger.Debug().Int64("product_id", req.ProductID.Int()).Msg("order item references unknown product")
		return nil, model.ErrProductNotFound
	}

	quantity := int(req.Quantity.Int())
	item := &model.OrderItem{
		OrderID:   req.OrderID.Int(),
		ProductID: product.ID,
		Quantity:  quantity,
		LineTotal: float64(quantity) * product.Price,
		CreatedAt: req.CreatedAt,
	}

	id, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id

	s.logger.Info().
		Int64("order_item_id", id).
		Int64("order_id", item.OrderID).
		Float64("line_total", item.LineTotal).
		Msg("order item created")

	return item, nil
}

// ListByOrder retrieves an order's items joined with product data. An empty
// result reports not found rather than an empty list.
func (s *orderItemService) ListByOrder(ctx context.Context, orderID int64) ([]model.OrderItemDetail, error) {
	items, err := s.repo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, model.ErrNoItemsForOrder
	}
	return items, nil
}

// ListAll retrieves all items joined with product data. An empty result
// reports not found rather than an empty list.
func (s *orderItemService) ListAll(ctx context.Context) ([]model.OrderItemDetail, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, model.ErrNoOrderItems
	}
	return items, nil
}

// UpdateQuantity changes an item's quantity and recomputes its line total
// against the product's CURRENT price, not the price in effect when the
// item was created. Price drift between create and update therefore changes
// the stored total.
func (s *orderItemService) UpdateQuantity(ctx context.Context, id int64, quantity int) (*model.OrderItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, model.ErrOrderItemNotFound
	}

	product, err := s.productRepo.GetByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	lineTotal := float64(quantity) * product.Price
	if err := s.repo.UpdateQuantity(ctx, id, quantity, lineTotal); err != nil {
		return nil, err
	}

	item.Quantity = quantity
	item.LineTotal = lineTotal

	s.logger.Info().
		Int64("order_item_id", id).
		Int("quantity", quantity).
		Float64("line_total", lineTotal).
		Msg("order item updated")

	return item, nil
}

// Delete removes an item after verifying it exists, unlike the product and
// order resources which delete blind.
func (s *orderItemService) Delete(ctx context.Context, id int64) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return model.ErrOrderItemNotFound
	}

	return s.repo.Delete(ctx, id)
}
