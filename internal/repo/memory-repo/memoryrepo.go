// Package memoryrepo keeps accounts and the order ledger in process memory.
// It is the default storage and mirrors the postgres repositories' semantics.
package memoryrepo

import (
	"context"
	"fmt"
	"sync"

	"github.com/GlebRadaev/serviceconnect/internal/domain"
)

type AccountRepository struct {
	mu       sync.RWMutex
	nextID   int
	accounts map[string]domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		nextID:   1,
		accounts: make(map[string]domain.Account),
	}
}

func (r *AccountRepository) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[email]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.Email]; ok {
		return nil, fmt.Errorf("account %s: %w", account.Email, domain.ErrAlreadyExists)
	}
	account.ID = r.nextID
	r.nextID++
	r.accounts[account.Email] = *account
	return account, nil
}

func (r *AccountRepository) UpdatePasswordHash(_ context.Context, email, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[email]
	if !ok {
		return fmt.Errorf("account %s: %w", email, domain.ErrNotFound)
	}
	account.PasswordHash = passwordHash
	r.accounts[email] = account
	return nil
}

// OrderRepository is the ledger: an append-only slice plus an id index.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
	byID   map[string]int
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		byID: make(map[string]int),
	}
}

func (r *OrderRepository) FindByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	order := r.orders[idx]
	return &order, nil
}

func (r *OrderRepository) FindByClientEmail(_ context.Context, email string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []domain.Order
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].ClientEmail == email {
			orders = append(orders, r.orders[i])
		}
	}
	return orders, nil
}

func (r *OrderRepository) FindPending(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []domain.Order
	for _, order := range r.orders {
		if order.Status == domain.OrderStatusPending {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (r *OrderRepository) Save(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[order.ID]; ok {
		return fmt.Errorf("order %s: %w", order.ID, domain.ErrAlreadyExists)
	}
	r.byID[order.ID] = len(r.orders)
	r.orders = append(r.orders, *order)
	return nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	r.orders[idx].Status = status
	return nil
}
