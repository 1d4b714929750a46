package service

import (
	"context"

	"github.com/GlebRadaev/serviceconnect/internal/config"
	"github.com/GlebRadaev/serviceconnect/internal/handlers/auth"
	"github.com/GlebRadaev/serviceconnect/internal/handlers/catalog"
	"github.com/GlebRadaev/serviceconnect/internal/handlers/orders"
	"github.com/GlebRadaev/serviceconnect/internal/handlers/profile"
	"github.com/GlebRadaev/serviceconnect/internal/repo"
	authservice "github.com/GlebRadaev/serviceconnect/internal/service/authservice"
	catalogservice "github.com/GlebRadaev/serviceconnect/internal/service/catalogservice"
	orderservice "github.com/GlebRadaev/serviceconnect/internal/service/orderservice"

	pkgauth "github.com/GlebRadaev/serviceconnect/pkg/auth"
)

type Seeder interface {
	SeedDemoAccounts(ctx context.Context) error
}

type Services struct {
	AuthService    auth.Service
	ProfileService profile.Service
	CatalogService catalog.Service
	OrderService   orders.Service
	Seeder         Seeder
	Tokens         pkgauth.JWTServiceInterface
	Technicians    []string
}

func New(cfg *config.Config, repo *repo.Repositories) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	catalogService := catalogservice.New(catalogservice.DefaultListings())
	authService := authservice.New(repo.AccountRepo, pkgauth.NewHashService(0), jwtService, cfg.TokenTTL)
	orderService := orderservice.New(repo.OrderRepo, catalogService, repo.AccountRepo)

	return &Services{
		AuthService:    authService,
		ProfileService: authService,
		CatalogService: catalogService,
		OrderService:   orderService,
		Seeder:         authService,
		Tokens:         jwtService,
		Technicians:    orderservice.TechnicianLabels(),
	}
}
