package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/serviceconnect/internal/domain"
	"github.com/GlebRadaev/serviceconnect/internal/dto"
	"github.com/GlebRadaev/serviceconnect/internal/service/catalogservice"
	"github.com/GlebRadaev/serviceconnect/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var listings = []domain.ServiceListing{
	{ID: 1, Name: "House Cleaning", Category: "Home", Price: decimal.NewFromInt(50)},
	{ID: 2, Name: "Plumbing Repair", Category: "Maintenance", Price: decimal.NewFromInt(80)},
	{ID: 3, Name: "Tech Support", Category: "Tech", Price: decimal.NewFromInt(60)},
	{ID: 20, Name: "Mobile Mechanic", Category: "Auto", Price: decimal.NewFromInt(90)},
}

func NewMock(t *testing.T) (*CatalogHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, []string{"Alice (Top Rated)", "Bob (Expert)"})
	return handler, service
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHome(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().ListServices(gomock.Any(), catalogservice.AllCategories).Return(listings, nil)

	rr := httptest.NewRecorder()
	handler.Home(rr, httptest.NewRequest(http.MethodGet, "/api/home", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.LandingResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Service Connect", resp.Title)
	assert.Len(t, resp.Featured, 3)
	assert.Equal(t, "50.00", resp.Featured[0].Price)
}

func TestListServices(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "All services",
			url:  "/api/services",
			prepareMock: func() {
				service.EXPECT().ListServices(gomock.Any(), "").Return(listings, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  4,
		},
		{
			name: "Filtered by category",
			url:  "/api/services?category=Home",
			prepareMock: func() {
				service.EXPECT().ListServices(gomock.Any(), "Home").Return(listings[:1], nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "Service error",
			url:  "/api/services",
			prepareMock: func() {
				service.EXPECT().ListServices(gomock.Any(), "").Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.ListServices(rr, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.ServiceResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Categories(gomock.Any()).Return([]string{"Auto", "Home"}, nil)

	rr := httptest.NewRecorder()
	handler.Categories(rr, httptest.NewRequest(http.MethodGet, "/api/services/categories", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `["Auto","Home"]`, rr.Body.String())
}

func TestGetService(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Found",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().GetService(gomock.Any(), 1).Return(&listings[0], nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not found",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().GetService(gomock.Any(), 99).Return(nil, catalogservice.ErrListingNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: catalogservice.ErrListingNotFound.Error(),
		},
		{
			name:          "Invalid id",
			id:            "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid service id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.GetService(rr, withID(httptest.NewRequest(http.MethodGet, "/api/services/"+tt.id, nil), tt.id))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestTechnicians(t *testing.T) {
	handler, _ := NewMock(t)

	rr := httptest.NewRecorder()
	handler.Technicians(rr, httptest.NewRequest(http.MethodGet, "/api/technicians", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `["Alice (Top Rated)","Bob (Expert)"]`, rr.Body.String())
}
