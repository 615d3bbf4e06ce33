package smm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asemenkov/digimart/internal/apperr"
	"github.com/asemenkov/digimart/internal/dto"
	"github.com/asemenkov/digimart/internal/provider/smmprov"
	"github.com/asemenkov/digimart/internal/service/smmservice"
	"github.com/asemenkov/digimart/pkg/auth"
	"github.com/asemenkov/digimart/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*SMMHandler, *MockService) {
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

func TestServicesHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Catalog returned",
			prepareMock: func() {
				service.EXPECT().Services(gomock.Any()).Return([]smmprov.Service{
					{Service: "101", Name: "Followers", Category: "social", Min: 100, Max: 10000, Rate: 2.5},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Provider unavailable",
			prepareMock: func() {
				service.EXPECT().
					Services(gomock.Any()).
					Return(nil, apperr.Unavailable("smm provider unavailable", errors.New("timeout")))
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: "smm provider unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorized(httptest.NewRequest("GET", "/api/smm/services", nil), 1)
			rr := httptest.NewRecorder()

			handler.Services(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp []dto.SMMServiceDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 1)
				assert.Equal(t, "Followers", resp[0].Name)
				assert.Equal(t, 2.5, resp[0].Rate)
			}
		})
	}
}

func TestOrderHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Order placed",
			body: `{"service":"101","link":"https://example.com/profile","quantity":1000}`,
			prepareMock: func() {
				service.EXPECT().
					Order(gomock.Any(), int64(1), "101", "https://example.com/profile", 1000).
					Return(&smmservice.OrderResult{
						OrderID:         7,
						ProviderOrderID: "987654",
						Price:           90,
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
			name: "Service not found",
			body: `{"service":"999","link":"https://example.com/profile","quantity":1000}`,
			prepareMock: func() {
				service.EXPECT().
					Order(gomock.Any(), int64(1), "999", "https://example.com/profile", 1000).
					Return(nil, apperr.NotFound("service %q not found", "999"))
			},
			expectedCode:  http.StatusNotFound,
			expectedError: `service "999" not found`,
		},
		{
			name: "Insufficient balance",
			body: `{"service":"101","link":"https://example.com/profile","quantity":1000}`,
			prepareMock: func() {
				service.EXPECT().
					Order(gomock.Any(), int64(1), "101", "https://example.com/profile", 1000).
					Return(nil, apperr.InsufficientBalance(90, 10))
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient balance: required 90.00, available 10.00",
		},
		{
			name: "Provider unavailable",
			body: `{"service":"101","link":"https://example.com/profile","quantity":1000}`,
			prepareMock: func() {
				service.EXPECT().
					Order(gomock.Any(), int64(1), "101", "https://example.com/profile", 1000).
					Return(nil, apperr.Unavailable("smm provider unavailable", errors.New("timeout")))
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: "smm provider unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorized(httptest.NewRequest("POST", "/api/smm/order", bytes.NewReader([]byte(tt.body))), 1)
			rr := httptest.NewRecorder()

			handler.Order(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.SMMOrderResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, int64(7), resp.OrderID)
				assert.Equal(t, "987654", resp.ProviderOrderID)
			}
		})
	}
}
