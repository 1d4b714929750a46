package service

import (
	"testing"

	"github.com/GlebRadaev/serviceconnect/internal/config"
	"github.com/GlebRadaev/serviceconnect/internal/repo"
	"github.com/GlebRadaev/serviceconnect/internal/service/authservice"
	"github.com/GlebRadaev/serviceconnect/internal/service/orderservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockAccountRepo := authservice.NewMockRepo(ctrl)
	mockOrderRepo := orderservice.NewMockRepo(ctrl)

	repos := &repo.Repositories{
		AccountRepo: mockAccountRepo,
		OrderRepo:   mockOrderRepo,
	}

	services := New(&config.Config{JWTSecret: "secret"}, repos)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.ProfileService)
	assert.NotNil(t, services.CatalogService)
	assert.NotNil(t, services.OrderService)
	assert.NotNil(t, services.Seeder)
	assert.NotNil(t, services.Tokens)
	assert.Len(t, services.Technicians, 4)
}
