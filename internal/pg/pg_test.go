package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        func(db Database) TransactionalFn
		expectErr bool
	}{
		{
			name: "Commit on success",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE orders").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			fn: func(db Database) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := db.Exec(ctx, "UPDATE orders SET status = 'Done'")
					return err
				}
			},
		},
		{
			name: "Rollback on error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(db Database) TransactionalFn {
				return func(ctx context.Context) error {
					return errors.New("fn failed")
				}
			},
			expectErr: true,
		},
		{
			name: "Begin fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			fn: func(db Database) TransactionalFn {
				return func(ctx context.Context) error {
					t.Error("fn must not run")
					return nil
				}
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)
			manager := NewTXManager(mock)

			err = manager.Begin(context.Background(), func(ctx context.Context) error {
				tx, ok := ctx.Value(txKey{}).(pgx.Tx)
				assert.True(t, ok)
				return tt.fn(tx)(ctx)
			})

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestManager_BeginNested(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	manager := NewTXManager(mock)
	calls := 0
	err = manager.Begin(context.Background(), func(ctx context.Context) error {
		return manager.Begin(ctx, func(ctx context.Context) error {
			calls++
			return nil
		})
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_BeginWithMockBeginner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	beginner := NewMockBeginner(ctrl)
	beginner.EXPECT().Begin(gomock.Any()).Return(nil, errors.New("pool closed"))

	err := NewTXManager(beginner).Begin(context.Background(), func(ctx context.Context) error { return nil })

	assert.ErrorContains(t, err, "pool closed")
}
