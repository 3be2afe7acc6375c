package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdesk/infras/otel/mocks"
	"rentdesk/infras/postgres"
	"rentdesk/internal/domains/listing/repository"
	"rentdesk/shared/dto"
)

func newRepository(t *testing.T) (repository.Listing, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), mock
}

func TestListingRepository_Display(t *testing.T) {
	repo, mock := newRepository(t)

	columns := []string{
		"customer_id", "rental_id", "first_name", "last_name", "email", "address", "phone", "alt_phone", "tdl",
		"tdl_expiration_date", "insurance_exp_date", "equipment_type", "return_date", "return_time",
		"internal_note", "customer_note",
	}

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT customers.customer_id, rentals.rental_id, customers.first_name")).
		ExpectQuery().
		WithArgs(1, 1, 1).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(9, 31, "Ada", "Lovelace", "ada@example.com", "1 Engine St", "555-0100", nil, "D1",
				time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC), "2026-12-31", "Scissor Lift", "2024-05-08", "17:30:00",
				"call first", nil))

	rows, err := repo.Display(context.Background(), dto.QueryParams{})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(31), rows[0].RentalID)
	assert.Equal(t, "2027-01-31", rows[0].TDLExpirationDate.String())
	assert.Equal(t, "17:30", rows[0].ReturnTime.String())
	assert.Nil(t, rows[0].AltPhone)
	assert.Equal(t, "call first", *rows[0].InternalNote)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_DisplayFilterAndOrder(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta(
		"FROM customers JOIN rentals ON rentals.customer_id = customers.customer_id " +
			"JOIN equipment ON equipment.equipment_id = rentals.equipment_id " +
			"WHERE (customers.status_id = $1 AND rentals.status_id = $2 AND equipment.status_id = $3) " +
			"ORDER BY customers.customer_id DESC, rentals.rental_id DESC LIMIT $4 OFFSET $5")).
		ExpectQuery().
		WithArgs(1, 1, 1, 20, 20).
		WillReturnRows(sqlmock.NewRows([]string{"customer_id"}))

	rows, err := repo.Display(context.Background(), dto.QueryParams{Page: 2, Limit: 20})

	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_Rentals(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta(
		"customers.first_name AS customer_first_name, customers.last_name AS customer_last_name")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"rental_id", "customer_first_name", "status_name"}).
			AddRow(5, "Ada", "Active").
			AddRow(4, "Grace", "Closed"))

	rows, err := repo.Rentals(context.Background(), dto.QueryParams{})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ada", rows[0].CustomerFirstName)
	assert.Equal(t, "Closed", rows[1].StatusName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_PrintedPage(t *testing.T) {
	t.Run("first rental equipment", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta(
			"first_rental.equipment_type AS first_equipment_type FROM customers "+
				"JOIN customer_statuses ON customer_statuses.status_id = customers.status_id "+
				"LEFT JOIN companies ON companies.company_id = customers.company_id "+
				"LEFT JOIN LATERAL (SELECT equipment.equipment_type FROM rentals")+
			".*"+regexp.QuoteMeta("ORDER BY rentals.rental_id ASC LIMIT 1) first_rental ON TRUE WHERE (customers.customer_id = $1)")).
			ExpectQuery().
			WithArgs(9).
			WillReturnRows(sqlmock.NewRows([]string{"customer_id", "status_name", "first_equipment_type"}).
				AddRow(9, "Inactive", "Drill"))

		page, err := repo.PrintedPage(context.Background(), 9)

		require.NoError(t, err)
		assert.Equal(t, int64(9), page.CustomerID)
		assert.Equal(t, "Inactive", page.StatusName)
		assert.Equal(t, "Drill", *page.EquipmentType)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("customer without rentals", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare("first_rental").
			ExpectQuery().
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows([]string{"customer_id", "first_equipment_type"}).AddRow(3, nil))

		page, err := repo.PrintedPage(context.Background(), 3)

		require.NoError(t, err)
		assert.Nil(t, page.EquipmentType)
	})

	t.Run("unknown customer", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare("first_rental").
			ExpectQuery().
			WithArgs(404).
			WillReturnRows(sqlmock.NewRows([]string{"customer_id"}))

		page, err := repo.PrintedPage(context.Background(), 404)

		require.NoError(t, err)
		assert.Zero(t, page.CustomerID)
	})
}
