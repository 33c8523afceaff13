package handler

import (
	"encoding/json"
	"net/http"

	"tokoonline/internal/model"
	"tokoonline/internal/service"

	"github.com/rs/zerolog"
)

// OrderItemHandler handles order line-item HTTP requests.
type OrderItemHandler struct {
	service service.OrderItemService
	logger  zerolog.Logger
}

// NewOrderItemHandler creates a new order item handler.
func NewOrderItemHandler(service service.OrderItemService, logger zerolog.Logger) *OrderItemHandler {
	return &OrderItemHandler{
		service: service,
		logger:  logger.With().Str("handler", "order_item").Logger(),
	}
}

// updateItemResponse echoes the recomputed quantity and line total.
type updateItemResponse struct {
	Message   string  `json:"message"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// Create handles POST /api/detailpesanan requests. The response includes the
// line total computed from the product's current price.
func (h *OrderItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOrderItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Invalid request body", h.logger)
		return
	}

	item, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, dataResponse{
		Message: "Order item added successfully",
		Data:    item,
	})
}

// ListByOrder handles GET /api/detailpesanan/{orderId} requests. An order
// with zero items yields 404, not an empty list.
func (h *OrderItemHandler) ListByOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Order ID must be a number", h.logger)
		return
	}

	items, err := h.service.ListByOrder(r.Context(), orderID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{
		Message: "Order items found",
		Data:    items,
	})
}

// ListAll handles GET /api/detailpesanan requests. An empty table yields
// 404, not an empty list.
func (h *OrderItemHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListAll(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{
		Message: "Order items found",
		Data:    items,
	})
}

// Update handles PUT /api/detailpesanan/{id} requests. The line total is
// recomputed from the product's current price, not the price at creation.
func (h *OrderItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, model.ErrQuantityNotNumeric, h.logger)
		return
	}

	var req model.UpdateOrderItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Invalid request body", h.logger)
		return
	}
	if req.Quantity == nil || req.Quantity.IsNaN() {
		writeDomainError(w, model.ErrQuantityNotNumeric, h.logger)
		return
	}

	item, err := h.service.UpdateQuantity(r.Context(), id, int(req.Quantity.Int()))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, updateItemResponse{
		Message:   "Order item updated successfully",
		Quantity:  item.Quantity,
		LineTotal: item.LineTotal,
	})
}

// Delete handles DELETE /api/detailpesanan/{id} requests. Unlike products
// and orders, a missing item yields 404.
func (h *OrderItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "ID must be a number", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Order item deleted successfully"})
}
