package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/serviceconnect/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

const (
	selectQuery = "SELECT id, email, password_hash, display_name, role, created_at FROM accounts WHERE email = $1"
	insertQuery = "INSERT INTO accounts (email, password_hash, display_name, role) VALUES ($1, $2, $3, $4) RETURNING id, created_at"
	updateQuery = "UPDATE accounts SET password_hash = $1 WHERE email = $2"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name:  "Account found",
			email: "user@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "display_name", "role", "created_at"}).
					AddRow(1, "user@example.com", "hashed_password", "Demo User", "client", createdAt)
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs("user@example.com").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Account{
				ID:           1,
				Email:        "user@example.com",
				PasswordHash: "hashed_password",
				DisplayName:  "Demo User",
				Role:         domain.RoleClient,
				CreatedAt:    createdAt,
			},
		},
		{
			name:  "Account not found",
			email: "ghost@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs("ghost@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			email: "user@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs("user@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	tests := []struct {
		name        string
		account     *domain.Account
		mockSetup   func()
		expectedErr error
		anyErr      bool
		result      *domain.Account
	}{
		{
			name: "Create account successfully",
			account: &domain.Account{
				Email:        "tech@example.com",
				PasswordHash: "hashed_password",
				DisplayName:  "Demo Technician",
				Role:         domain.RoleTechnician,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs("tech@example.com", "hashed_password", "Demo Technician", "technician").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt))
			},
			result: &domain.Account{
				ID:           7,
				Email:        "tech@example.com",
				PasswordHash: "hashed_password",
				DisplayName:  "Demo Technician",
				Role:         domain.RoleTechnician,
				CreatedAt:    createdAt,
			},
		},
		{
			name: "Unique violation",
			account: &domain.Account{
				Email:        "tech@example.com",
				PasswordHash: "hashed_password",
				DisplayName:  "Demo Technician",
				Role:         domain.RoleTechnician,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs("tech@example.com", "hashed_password", "Demo Technician", "technician").
					WillReturnError(&pgconn.PgError{Code: uniqueViolation})
			},
			expectedErr: domain.ErrAlreadyExists,
		},
		{
			name: "Database error",
			account: &domain.Account{
				Email:        "tech@example.com",
				PasswordHash: "hashed_password",
				DisplayName:  "Demo Technician",
				Role:         domain.RoleTechnician,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs("tech@example.com", "hashed_password", "Demo Technician", "technician").
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.account)
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			case tt.anyErr:
				assert.Error(t, err)
				assert.Nil(t, result)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_UpdatePasswordHash(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		anyErr      bool
	}{
		{
			name: "Updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WithArgs("new_hash", "user@example.com").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Unknown account",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WithArgs("new_hash", "user@example.com").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WithArgs("new_hash", "user@example.com").
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdatePasswordHash(context.Background(), "user@example.com", "new_hash")
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
