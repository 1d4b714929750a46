package orderservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/serviceconnect/internal/access"
	"github.com/GlebRadaev/serviceconnect/internal/domain"
	"github.com/GlebRadaev/serviceconnect/pkg/auth"
	"github.com/GlebRadaev/serviceconnect/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByClientEmail(ctx context.Context, email string) ([]domain.Order, error)
	FindPending(ctx context.Context) ([]domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type Catalog interface {
	GetService(ctx context.Context, id int) (*domain.ServiceListing, error)
}

type Accounts interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
}

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrDateInPast        = errors.New("requested date is in the past")
	ErrMissingTechnician = errors.New("technician is required")
	ErrClientNotFound    = errors.New("client account not found")
)

var technicianLabels = []string{
	"Alice (Top Rated)",
	"Bob (Expert)",
	"Charlie (Fast)",
	"David (Premium)",
}

// TechnicianLabels are the suggestions offered on the booking form. The
// label on an order is free text and does not have to be one of them.
func TechnicianLabels() []string {
	out := make([]string, len(technicianLabels))
	copy(out, technicianLabels)
	return out
}

type BookingRequest struct {
	ServiceID       int
	TechnicianLabel string
	RequestedDate   time.Time
	PaymentMethod   string
	Notes           string
}

type Service struct {
	repo     Repo
	catalog  Catalog
	accounts Accounts
	now      func() time.Time
}

func New(repo Repo, catalog Catalog, accounts Accounts) *Service {
	return &Service{
		repo:     repo,
		catalog:  catalog,
		accounts: accounts,
		now:      time.Now,
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (s *Service) CreateOrder(ctx context.Context, caller auth.Caller, req BookingRequest) (*domain.Order, error) {
	if err := access.Check(caller.Role, access.ActionBookService); err != nil {
		zap.L().Info("booking rejected", zap.String("email", caller.Email), zap.String("role", string(caller.Role)))
		return nil, err
	}

	listing, err := s.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	method, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if startOfDay(req.RequestedDate.In(now.Location())).Before(startOfDay(now)) {
		return nil, ErrDateInPast
	}
	technician := strings.TrimSpace(req.TechnicianLabel)
	if technician == "" {
		return nil, ErrMissingTechnician
	}

	client, err := s.accounts.FindByEmail(ctx, caller.Email)
	if err != nil {
		zap.L().Error("can't load client account", zap.Error(err))
		return nil, err
	}
	if client == nil || client.Role != domain.RoleClient {
		return nil, fmt.Errorf("%s: %w", caller.Email, ErrClientNotFound)
	}

	order := &domain.Order{
		ID:              uuid.NewString(),
		ClientEmail:     client.Email,
		ClientName:      client.DisplayName,
		ServiceID:       listing.ID,
		ServiceName:     listing.Name,
		TechnicianLabel: technician,
		RequestedDate:   req.RequestedDate,
		Status:          domain.OrderStatusPending,
		Paid:            method.IsPrepaid(),
		PaymentMethod:   method,
		Notes:           req.Notes,
		Price:           listing.Price,
		CreatedAt:       now,
	}

	if err = s.repo.Save(ctx, order); err != nil {
		zap.L().Error("can't save order: ", zap.Error(err))
		return nil, err
	}
	metrics.OrdersCreated.WithLabelValues(string(method), fmt.Sprint(order.Paid)).Inc()
	zap.L().Info("order booked", zap.String("order_id", order.ID), zap.String("client", order.ClientEmail))

	return order, nil
}

// ListOrdersForClient returns the caller's own orders, newest first.
func (s *Service) ListOrdersForClient(ctx context.Context, caller auth.Caller) ([]domain.Order, error) {
	if err := access.Check(caller.Role, access.ActionViewOwnOrders); err != nil {
		return nil, err
	}
	orders, err := s.repo.FindByClientEmail(ctx, caller.Email)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// ListPendingOrders returns every Pending order in the order it was booked.
func (s *Service) ListPendingOrders(ctx context.Context, caller auth.Caller) ([]domain.Order, error) {
	if err := access.Check(caller.Role, access.ActionViewPending); err != nil {
		return nil, err
	}
	orders, err := s.repo.FindPending(ctx)
	if err != nil {
		zap.L().Error("failed to get pending orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// CompleteOrder marks the order Done. Completing an order that is already
// Done succeeds without touching the ledger.
func (s *Service) CompleteOrder(ctx context.Context, caller auth.Caller, id string) (*domain.Order, error) {
	if err := access.Check(caller.Role, access.ActionCompleteOrder); err != nil {
		return nil, err
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status == domain.OrderStatusDone {
		zap.L().Info("order already done", zap.String("order_id", id))
		return order, nil
	}
	if !order.Status.CanTransitionTo(domain.OrderStatusDone) {
		return nil, fmt.Errorf("order %s in status %s can't be completed", id, order.Status)
	}

	err = s.repo.UpdateStatus(ctx, id, domain.OrderStatusDone)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		zap.L().Error("failed to complete order", zap.Error(err))
		return nil, err
	}
	order.Status = domain.OrderStatusDone
	metrics.OrdersCompleted.Inc()
	zap.L().Info("order completed", zap.String("order_id", id), zap.String("technician", caller.Email))

	return order, nil
}
