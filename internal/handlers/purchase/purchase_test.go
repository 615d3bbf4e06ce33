package purchase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/asemenkov/digimart/internal/apperr"
	"github.com/asemenkov/digimart/internal/domain"
	"github.com/asemenkov/digimart/internal/dto"
	"github.com/asemenkov/digimart/pkg/auth"
	"github.com/asemenkov/digimart/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PurchaseHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authorized(req *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestPurchaseHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful purchase",
			body: `{"product_id":1}`,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), int64(1), int64(1)).Return(&domain.Order{
					ID:      10,
					UserID:  1,
					Type:    domain.OrderTypeProduct,
					Name:    "VPN account 1 month",
					Price:   300,
					Details: "login1:pass1",
					Status:  domain.OrderStatusCompleted,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Product not found",
			body: `{"product_id":99}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(gomock.Any(), int64(1), int64(99)).
					Return(nil, apperr.NotFound("product %d not found", 99))
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "product 99 not found",
		},
		{
			name: "Out of stock",
			body: `{"product_id":2}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(gomock.Any(), int64(1), int64(2)).
					Return(nil, apperr.OutOfStock("product %d is out of stock", 2))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "product 2 is out of stock",
		},
		{
			name: "Insufficient balance",
			body: `{"product_id":1}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(gomock.Any(), int64(1), int64(1)).
					Return(nil, apperr.InsufficientBalance(300, 100))
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient balance: required 300.00, available 100.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorized(httptest.NewRequest("POST", "/api/purchase", bytes.NewReader([]byte(tt.body))), 1)
			rr := httptest.NewRecorder()

			handler.Purchase(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.PurchaseResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, int64(10), resp.OrderID)
				assert.Equal(t, "VPN account 1 month", resp.Product)
				assert.Equal(t, "login1:pass1", resp.Details)
			}
		})
	}
}

func TestGetOrdersHandler(t *testing.T) {
	handler, service := NewMock(t)

	now := time.Now()
	orders := []domain.Order{
		{ID: 11, UserID: 1, Type: domain.OrderTypeSMS, Name: "tg", Price: 90, Status: domain.OrderStatusWaiting, CreatedAt: now},
		{ID: 10, UserID: 1, Type: domain.OrderTypeProduct, Name: "VPN account 1 month", Price: 300, Status: domain.OrderStatusCompleted, CreatedAt: now.Add(-time.Hour)},
	}

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Orders returned",
			prepareMock: func() {
				service.EXPECT().GetOrders(gomock.Any(), int64(1)).Return(orders, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No orders",
			prepareMock: func() {
				service.EXPECT().GetOrders(gomock.Any(), int64(1)).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().
					GetOrders(gomock.Any(), int64(1)).
					Return(nil, apperr.Internal("list orders", errors.New("db down")))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorized(httptest.NewRequest("GET", "/api/orders", nil), 1)
			rr := httptest.NewRecorder()

			handler.GetOrders(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedLen > 0 {
				var resp []dto.OrderResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, tt.expectedLen)
				assert.Equal(t, int64(11), resp[0].ID)
			}
		})
	}
}

func TestListProductsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Catalog returned",
			prepareMock: func() {
				service.EXPECT().ListProducts(gomock.Any()).Return([]domain.Product{
					{ID: 1, Category: "vpn", Name: "VPN account 1 month", Price: 300, Stock: 5},
					{ID: 2, Category: "mail", Name: "Mailbox", Price: 50, Stock: 0},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().
					ListProducts(gomock.Any()).
					Return(nil, apperr.Internal("list products", errors.New("db down")))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorized(httptest.NewRequest("GET", "/api/products", nil), 1)
			rr := httptest.NewRecorder()

			handler.ListProducts(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedLen > 0 {
				var resp []dto.ProductResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}
