package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tokoonline/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderItemService is a mock implementation of OrderItemService.
type MockOrderItemService struct {
	mock.Mock
}

func (m *MockOrderItemService) Create(ctx context.Context, req *model.CreateOrderItemRequest) (*model.OrderItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderItem), args.Error(1)
}

func (m *MockOrderItemService) ListByOrder(ctx context.Context, orderID int64) ([]model.OrderItemDetail, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderItemDetail), args.Error(1)
}

func (m *MockOrderItemService) ListAll(ctx context.Context) ([]model.OrderItemDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderItemDetail), args.Error(1)
}

func (m *MockOrderItemService) UpdateQuantity(ctx context.Context, id int64, quantity int) (*model.OrderItem, error) {
	args := m.Called(ctx, id, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderItem), args.Error(1)
}

func (m *MockOrderItemService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestOrderItemHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	testItem := &model.OrderItem{
		ID:        21,
		OrderID:   11,
		ProductID: 3,
		Quantity:  2,
		LineTotal: 170000,
		CreatedAt: "2024-01-02 09:30:00",
	}

	tests := []struct {
		name           string
		requestBody    string
		mockReturn     *model.OrderItem
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			requestBody:    `{"orderId":11,"productId":3,"quantity":2,"createdAt":"2024-01-02 09:30:00"}`,
			mockReturn:     testItem,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Unknown product",
			requestBody:    `{"orderId":11,"productId":99,"quantity":2,"createdAt":"2024-01-02 09:30:00"}`,
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Non-numeric fields",
			requestBody:    `{"orderId":"sebelas","productId":3,"quantity":2,"createdAt":"2024-01-02 09:30:00"}`,
			mockError:      model.ErrFieldsNotNumeric,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			requestBody:    "{",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderItemService)
			handler := NewOrderItemHandler(mockService, logger)

			if tt.expectService {
				mockService.On("Create", mock.Anything, mock.AnythingOfType("*model.CreateOrderItemRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/detailpesanan", bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var resp struct {
					Message string          `json:"message"`
					Data    model.OrderItem `json:"data"`
				}
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "Order item added successfully", resp.Message)
				assert.Equal(t, 170000.0, resp.Data.LineTotal)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestOrderItemHandler_ListByOrder(t *testing.T) {
	logger := zerolog.Nop()

	details := []model.OrderItemDetail{
		{
			OrderItem:    model.OrderItem{ID: 21, OrderID: 11, ProductID: 3, Quantity: 2, LineTotal: 170000},
			ProductName:  "Kopi Arabika",
			ProductPrice: 85000,
		},
	}

	tests := []struct {
		name           string
		pathID         string
		mockReturn     []model.OrderItemDetail
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			pathID:         "11",
			mockReturn:     details,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			// An order with no items is a 404, not an empty list.
			name:           "Empty order",
			pathID:         "12",
			mockError:      model.ErrNoItemsForOrder,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Non-numeric order id",
			pathID:         "abc",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderItemService)
			handler := NewOrderItemHandler(mockService, logger)

			if tt.expectService {
				mockService.On("ListByOrder", mock.Anything, mock.AnythingOfType("int64")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/detailpesanan/"+tt.pathID, nil)
			req.SetPathValue("orderId", tt.pathID)
			w := httptest.NewRecorder()

			handler.ListByOrder(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp struct {
					Message string                  `json:"message"`
					Data    []model.OrderItemDetail `json:"data"`
				}
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "Order items found", resp.Message)
				require.Len(t, resp.Data, 1)
				assert.Equal(t, "Kopi Arabika", resp.Data[0].ProductName)
				assert.Equal(t, 85000.0, resp.Data[0].ProductPrice)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestOrderItemHandler_ListAll(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Empty table is not found", func(t *testing.T) {
		mockService := new(MockOrderItemService)
		mockService.On("ListAll", mock.Anything).Return(nil, model.ErrNoOrderItems)
		handler := NewOrderItemHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/detailpesanan", nil)
		w := httptest.NewRecorder()

		handler.ListAll(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "No order items available")
	})
}

func TestOrderItemHandler_Update(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		pathID         string
		requestBody    string
		mockReturn     *model.OrderItem
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			pathID:         "21",
			requestBody:    `{"quantity":3}`,
			mockReturn:     &model.OrderItem{ID: 21, Quantity: 3, LineTotal: 255000},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "String-typed quantity",
			pathID:         "21",
			requestBody:    `{"quantity":"3"}`,
			mockReturn:     &model.OrderItem{ID: 21, Quantity: 3, LineTotal: 255000},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Non-numeric quantity",
			pathID:         "21",
			requestBody:    `{"quantity":"tiga"}`,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Missing quantity",
			pathID:         "21",
			requestBody:    `{}`,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Non-numeric id",
			pathID:         "abc",
			requestBody:    `{"quantity":3}`,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Item not found",
			pathID:         "99",
			requestBody:    `{"quantity":3}`,
			mockError:      model.ErrOrderItemNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderItemService)
			handler := NewOrderItemHandler(mockService, logger)

			if tt.expectService {
				mockService.On("UpdateQuantity", mock.Anything, mock.AnythingOfType("int64"), 3).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/detailpesanan/"+tt.pathID, bytes.NewBufferString(tt.requestBody))
			req.SetPathValue("id", tt.pathID)
			w := httptest.NewRecorder()

			handler.Update(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp updateItemResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "Order item updated successfully", resp.Message)
				assert.Equal(t, 3, resp.Quantity)
				assert.Equal(t, 255000.0, resp.LineTotal)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestOrderItemHandler_Delete(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		pathID         string
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			pathID:         "21",
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			// Unlike products and orders, deleting a missing item is a 404.
			name:           "Item not found",
			pathID:         "99",
			mockError:      model.ErrOrderItemNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Non-numeric id",
			pathID:         "abc",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderItemService)
			handler := NewOrderItemHandler(mockService, logger)

			if tt.expectService {
				mockService.On("Delete", mock.Anything, mock.AnythingOfType("int64")).
					Return(tt.mockError)
			}

			req := httptest.NewRequest(http.MethodDelete, "/api/detailpesanan/"+tt.pathID, nil)
			req.SetPathValue("id", tt.pathID)
			w := httptest.NewRecorder()

			handler.Delete(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}
