package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/serviceconnect/internal/domain"
	"github.com/GlebRadaev/serviceconnect/internal/dto"
	"github.com/GlebRadaev/serviceconnect/internal/service/authservice"
	"github.com/GlebRadaev/serviceconnect/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)
	account := &domain.Account{ID: 1, Email: "new@example.com", DisplayName: "New User", Role: domain.RoleClient}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedToken string
	}{
		{
			name: "Successful registration",
			body: `{"email":"new@example.com","password":"secret","confirm_password":"secret","name":"New User","role":"Client"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "new@example.com", "secret", "New User", domain.RoleClient).Return(account, nil)
				service.EXPECT().GenerateToken(account).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer some-jwt-token",
		},
		{
			name: "Email already registered",
			body: `{"email":"user@example.com","password":"secret","confirm_password":"secret","name":"Dup","role":"client"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "user@example.com", "secret", "Dup", domain.RoleClient).Return(nil, authservice.ErrDuplicateEmail)
			},
			expectedCode:  http.StatusConflict,
			expectedError: authservice.ErrDuplicateEmail.Error(),
		},
		{
			name: "Invalid role",
			body: `{"email":"new@example.com","password":"secret","confirm_password":"secret","name":"New User","role":"admin"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "new@example.com", "secret", "New User", domain.Role("admin")).Return(nil, authservice.ErrInvalidRole)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: authservice.ErrInvalidRole.Error(),
		},
		{
			name:          "Passwords do not match",
			body:          `{"email":"new@example.com","password":"secret","confirm_password":"other","name":"New User","role":"client"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Passwords do not match",
		},
		{
			name:          "Invalid email",
			body:          `{"email":"not-an-email","password":"secret","confirm_password":"secret","name":"New User","role":"client"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid email",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"email":"new@example.com","password":"secret","confirm_password":"secret","name":"New User","role":"client"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "new@example.com", "secret", "New User", domain.RoleClient).Return(account, nil)
				service.EXPECT().GenerateToken(account).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedToken, rr.Header().Get("Authorization"))

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	tech := &domain.Account{ID: 2, Email: "tech@example.com", Role: domain.RoleTechnician}

	tests := []struct {
		name             string
		body             string
		prepareMock      func()
		expectedCode     int
		expectedError    string
		expectedHomePage string
	}{
		{
			name: "Successful login",
			body: `{"email":"tech@example.com","password":"tech","role":"technician"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "tech@example.com", "tech", domain.RoleTechnician).Return(tech, nil)
				service.EXPECT().GenerateToken(tech).Return("some-jwt-token", nil)
			},
			expectedCode:     http.StatusOK,
			expectedHomePage: "Pending Orders",
		},
		{
			name: "Login without role",
			body: `{"email":"tech@example.com","password":"tech"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "tech@example.com", "tech", domain.RoleGuest).Return(tech, nil)
				service.EXPECT().GenerateToken(tech).Return("some-jwt-token", nil)
			},
			expectedCode:     http.StatusOK,
			expectedHomePage: "Pending Orders",
		},
		{
			name: "Invalid credentials",
			body: `{"email":"tech@example.com","password":"wrong","role":"technician"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "tech@example.com", "wrong", domain.RoleTechnician).Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"email":"tech@example.com","password":"tech"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "tech@example.com", "tech", domain.RoleGuest).Return(tech, nil)
				service.EXPECT().GenerateToken(tech).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.LoginResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedHomePage, resp.HomePage)
			assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
		})
	}
}
