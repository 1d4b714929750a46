package repo

import (
	"context"

	"github.com/GlebRadaev/serviceconnect/internal/domain"
	"github.com/GlebRadaev/serviceconnect/internal/pg"
	accountrepo "github.com/GlebRadaev/serviceconnect/internal/repo/account-repo"
	memoryrepo "github.com/GlebRadaev/serviceconnect/internal/repo/memory-repo"
	orderrepo "github.com/GlebRadaev/serviceconnect/internal/repo/order-repo"
	"github.com/GlebRadaev/serviceconnect/internal/service/orderservice"
)

// AccountRepo serves both the identity store and the order service's client
// lookup.
type AccountRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) error
}

type Repositories struct {
	AccountRepo AccountRepo
	OrderRepo   orderservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		AccountRepo: accountrepo.New(conn),
		OrderRepo:   orderrepo.New(conn, txManager),
	}
}

func NewMemory() *Repositories {
	return &Repositories{
		AccountRepo: memoryrepo.NewAccountRepository(),
		OrderRepo:   memoryrepo.NewOrderRepository(),
	}
}
