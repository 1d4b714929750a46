package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/serviceconnect/internal/access"
	"github.com/GlebRadaev/serviceconnect/internal/domain"
	"github.com/GlebRadaev/serviceconnect/internal/dto"
	"github.com/GlebRadaev/serviceconnect/internal/service/catalogservice"
	"github.com/GlebRadaev/serviceconnect/internal/service/orderservice"
	"github.com/GlebRadaev/serviceconnect/pkg/auth"
	"github.com/GlebRadaev/serviceconnect/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var (
	client     = auth.Caller{Email: "user@example.com", Role: domain.RoleClient}
	technician = auth.Caller{Email: "tech@example.com", Role: domain.RoleTechnician}
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func sampleOrder(status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:              "6f1c2c1e-2f43-4c36-9d2a-7d1f2a0b9c11",
		ClientEmail:     "user@example.com",
		ClientName:      "Demo User",
		ServiceID:       1,
		ServiceName:     "House Cleaning",
		TechnicianLabel: "Alice (Top Rated)",
		RequestedDate:   time.Date(2026, time.May, 1, 0, 0, 0, 0, time.Local),
		Status:          status,
		PaymentMethod:   domain.PaymentCash,
		Price:           decimal.NewFromInt(50),
		CreatedAt:       time.Now(),
	}
}

func asCaller(r *http.Request, caller auth.Caller) *http.Request {
	return r.WithContext(auth.WithCaller(r.Context(), caller))
}

func TestCreateOrder(t *testing.T) {
	handler, service := NewMock(t)
	validBody := `{"service_id":1,"technician":"Alice (Top Rated)","requested_date":"2026-05-01","payment_method":"Cash on Delivery"}`

	tests := []struct {
		name          string
		body          string
		withCaller    bool
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:       "Order booked",
			body:       validBody,
			withCaller: true,
			prepareMock: func() {
				service.EXPECT().CreateOrder(gomock.Any(), client, gomock.Any()).DoAndReturn(
					func(ctx context.Context, caller auth.Caller, req orderservice.BookingRequest) (*domain.Order, error) {
						assert.Equal(t, 1, req.ServiceID)
						assert.Equal(t, "Cash on Delivery", req.PaymentMethod)
						assert.Equal(t, "2026-05-01", req.RequestedDate.Format(dto.DateLayout))
						return sampleOrder(domain.OrderStatusPending), nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "No caller",
			body:          validBody,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			withCaller:    true,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Invalid date",
			body:          `{"service_id":1,"technician":"Alice","requested_date":"tomorrow","payment_method":"cash"}`,
			withCaller:    true,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid requested date",
		},
		{
			name:       "Date in the past",
			body:       validBody,
			withCaller: true,
			prepareMock: func() {
				service.EXPECT().CreateOrder(gomock.Any(), client, gomock.Any()).Return(nil, orderservice.ErrDateInPast)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: orderservice.ErrDateInPast.Error(),
		},
		{
			name:       "Unknown payment method",
			body:       validBody,
			withCaller: true,
			prepareMock: func() {
				service.EXPECT().CreateOrder(gomock.Any(), client, gomock.Any()).Return(nil, domain.ErrInvalidPaymentMethod)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: domain.ErrInvalidPaymentMethod.Error(),
		},
		{
			name:       "Unknown service",
			body:       validBody,
			withCaller: true,
			prepareMock: func() {
				service.EXPECT().CreateOrder(gomock.Any(), client, gomock.Any()).Return(nil, catalogservice.ErrListingNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: catalogservice.ErrListingNotFound.Error(),
		},
		{
			name:       "Service error",
			body:       validBody,
			withCaller: true,
			prepareMock: func() {
				service.EXPECT().CreateOrder(gomock.Any(), client, gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/user/orders", bytes.NewReader([]byte(tt.body)))
			if tt.withCaller {
				req = asCaller(req, client)
			}
			rr := httptest.NewRecorder()
			handler.CreateOrder(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.OrderResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "Pending", resp.Status)
			assert.Equal(t, "50.00", resp.Price)
			assert.Equal(t, "Cash on Delivery", resp.PaymentMethod)
			assert.False(t, resp.Paid)
		})
	}
}

func TestGetOrders(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Orders found",
			prepareMock: func() {
				service.EXPECT().ListOrdersForClient(gomock.Any(), client).Return([]domain.Order{
					*sampleOrder(domain.OrderStatusPending),
					*sampleOrder(domain.OrderStatusDone),
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No orders",
			prepareMock: func() {
				service.EXPECT().ListOrdersForClient(gomock.Any(), client).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Service error",
			prepareMock: func() {
				service.EXPECT().ListOrdersForClient(gomock.Any(), client).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.GetOrders(rr, asCaller(httptest.NewRequest(http.MethodGet, "/api/user/orders", nil), client))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.OrderResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}

func TestGetPending(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		caller       auth.Caller
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Pending orders",
			caller: technician,
			prepareMock: func() {
				service.EXPECT().ListPendingOrders(gomock.Any(), technician).Return([]domain.Order{*sampleOrder(domain.OrderStatusPending)}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Queue is empty",
			caller: technician,
			prepareMock: func() {
				service.EXPECT().ListPendingOrders(gomock.Any(), technician).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "Client is refused",
			caller: client,
			prepareMock: func() {
				service.EXPECT().ListPendingOrders(gomock.Any(), client).Return(nil, access.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.GetPending(rr, asCaller(httptest.NewRequest(http.MethodGet, "/api/orders/pending", nil), tt.caller))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCompleteOrder(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		caller       auth.Caller
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Order completed",
			caller: technician,
			id:     "abc",
			prepareMock: func() {
				service.EXPECT().CompleteOrder(gomock.Any(), technician, "abc").Return(sampleOrder(domain.OrderStatusDone), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Unknown order",
			caller: technician,
			id:     "missing",
			prepareMock: func() {
				service.EXPECT().CompleteOrder(gomock.Any(), technician, "missing").Return(nil, orderservice.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Client is refused",
			caller: client,
			id:     "abc",
			prepareMock: func() {
				service.EXPECT().CompleteOrder(gomock.Any(), client, "abc").Return(nil, access.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req := httptest.NewRequest(http.MethodPost, "/api/orders/"+tt.id+"/complete", nil)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			req = asCaller(req, tt.caller)

			rr := httptest.NewRecorder()
			handler.CompleteOrder(rr, req)
			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.OrderResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "Done", resp.Status)
			}
		})
	}
}
