package accountrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/serviceconnect/internal/domain"
	"github.com/GlebRadaev/serviceconnect/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT id, email, password_hash, display_name, role, created_at
		FROM accounts
		WHERE email = $1
	`
	var (
		account domain.Account
		role    string
	)
	err := repo.db.QueryRow(ctx, query, email).
		Scan(&account.ID, &account.Email, &account.PasswordHash, &account.DisplayName, &role, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	account.Role = domain.Role(role)
	return &account, nil
}

func (repo *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (email, password_hash, display_name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, account.Email, account.PasswordHash, account.DisplayName, string(account.Role)).
		Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("account %s: %w", account.Email, domain.ErrAlreadyExists)
		}
		zap.L().Error("can't save account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (repo *Repository) UpdatePasswordHash(ctx context.Context, email, passwordHash string) error {
	query := `
		UPDATE accounts
		SET password_hash = $1
		WHERE email = $2
	`
	tag, err := repo.db.Exec(ctx, query, passwordHash, email)
	if err != nil {
		zap.L().Error("can't update password", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", email, domain.ErrNotFound)
	}
	return nil
}
