package repository_test

import (
	"context"
	"errors"
	"rentdesk/infras/postgres"
	"rentdesk/shared/repository"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	otelMocks "rentdesk/infras/otel/mocks"
)

func newTransactor(t *testing.T) (repository.Transactor, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return repository.NewTransactor(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, otelMocks.NewOtel()), mock
}

func TestTransactor_WithinTx(t *testing.T) {
	errWork := errors.New("work failed")

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		fn      repository.TxFunc
		wantErr error
	}{
		{
			name: "commits on success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE equipment").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				_, err := tx.ExecContext(ctx, "UPDATE equipment SET status_id = 1")

				return err
			},
		},
		{
			name: "rolls back on error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(_ context.Context, _ *sqlx.Tx) error {
				return errWork
			},
			wantErr: errWork,
		},
		{
			name: "begin failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			fn: func(_ context.Context, _ *sqlx.Tx) error {
				t.Fatal("fn must not run without a transaction")

				return nil
			},
			wantErr: errors.New("failed to begin transaction: connection refused"),
		},
		{
			name: "rollback failure is joined",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback().WillReturnError(errors.New("rollback failed"))
			},
			fn: func(_ context.Context, _ *sqlx.Tx) error {
				return errWork
			},
			wantErr: errWork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactor, mock := newTransactor(t)
			tt.setup(mock)

			err := transactor.WithinTx(context.Background(), tt.fn)

			switch {
			case tt.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(err, tt.wantErr):
			default:
				assert.EqualError(t, err, tt.wantErr.Error())
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransactor_WithinTx_Panic(t *testing.T) {
	transactor, mock := newTransactor(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = transactor.WithinTx(context.Background(), func(_ context.Context, _ *sqlx.Tx) error {
			panic("boom")
		})
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
