package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/serviceconnect/internal/domain"
	"github.com/GlebRadaev/serviceconnect/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const orderColumns = `id, client_email, client_name, service_id, service_name, technician_label,
        requested_date, status, paid, payment_method, notes, price_cents, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order         domain.Order
		status        string
		paymentMethod string
		priceCents    int64
	)
	err := row.Scan(
		&order.ID, &order.ClientEmail, &order.ClientName, &order.ServiceID, &order.ServiceName,
		&order.TechnicianLabel, &order.RequestedDate, &status, &order.Paid, &paymentMethod,
		&order.Notes, &priceCents, &order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatus(status)
	order.PaymentMethod = domain.PaymentMethod(paymentMethod)
	order.Price = decimal.New(priceCents, -2)
	return &order, nil
}

func collect(rows pgx.Rows) ([]domain.Order, error) {
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate order rows", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByClientEmail(ctx context.Context, email string) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE client_email = $1
        ORDER BY seq DESC
    `
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		zap.L().Error("can't get client orders", zap.Error(err))
		return nil, err
	}
	return collect(rows)
}

func (r *Repository) FindPending(ctx context.Context) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE status = $1
        ORDER BY seq ASC
    `
	rows, err := r.db.Query(ctx, query, string(domain.OrderStatusPending))
	if err != nil {
		zap.L().Error("can't get pending orders", zap.Error(err))
		return nil, err
	}
	return collect(rows)
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (id, client_email, client_name, service_id, service_name, technician_label,
            requested_date, status, paid, payment_method, notes, price_cents, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			order.ID, order.ClientEmail, order.ClientName, order.ServiceID, order.ServiceName,
			order.TechnicianLabel, order.RequestedDate, string(order.Status), order.Paid,
			string(order.PaymentMethod), order.Notes, order.Price.Shift(2).IntPart(), order.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	query := `
        UPDATE orders
        SET status = $1
        WHERE id = $2
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, string(status), id)
		if err != nil {
			zap.L().Error("failed to update order status", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}
