package repositories_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"hotel-booking-service/internal/module/loyalty/models/entity"
	"hotel-booking-service/internal/module/loyalty/repositories"
	"hotel-booking-service/internal/pkg/database"
	"hotel-booking-service/internal/pkg/errors"
	log_internal "hotel-booking-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock sqlxmock.Sqlmock
	dbx  *sqlx.DB
	repo repositories.Repositories
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	repo = repositories.New(dbx, log_internal.GetLogger())
}

func teardown() {
	dbx.Close()
}

func TestFindRoomTypeAward(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, points_earned FROM room_types WHERE id = (.+)").
			WithArgs(int64(1)).
			WillReturnRows(sqlxmock.NewRows([]string{"id", "name", "points_earned"}).AddRow(1, "Deluxe Double", 150))

		award, err := repo.FindRoomTypeAward(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(150), award.PointsEarned)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, points_earned FROM room_types").
			WithArgs(int64(9)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindRoomTypeAward(ctx, 9)

		assert.Equal(t, errors.NotFound("room type 9 not found"), err)
	})
}

func TestLockCustomer(t *testing.T) {
	setup()
	defer teardown()
	tr := database.NewTransactor(dbx)

	t.Run("locks inside transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM customers WHERE id = (.+) FOR UPDATE").
			WithArgs(int64(3)).
			WillReturnRows(sqlxmock.NewRows([]string{"id", "full_name", "current_points", "loyalty_tier_id"}).
				AddRow(3, "Jane Doe", 900, 1))
		mock.ExpectCommit()

		err := tr.WithTransaction(context.Background(), func(ctx context.Context) error {
			customer, err := repo.LockCustomer(ctx, 3)
			if err != nil {
				return err
			}
			assert.Equal(t, int64(900), customer.CurrentPoints)
			return nil
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("outside transaction", func(t *testing.T) {
		_, err := repo.LockCustomer(context.Background(), 3)

		assert.True(t, errors.Is(err, errors.CodeInternal))
	})
}

func TestIsBookingCheckedOut(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	testCases := []struct {
		name   string
		status string
		want   bool
	}{
		{name: "checked out", status: "CHECKED_OUT", want: true},
		{name: "still checked in", status: "CHECKED_IN", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock.ExpectQuery("SELECT status FROM bookings WHERE id = (.+)").
				WithArgs(int64(10)).
				WillReturnRows(sqlxmock.NewRows([]string{"status"}).AddRow(tc.status))

			checkedOut, err := repo.IsBookingCheckedOut(ctx, 10)

			require.NoError(t, err)
			assert.Equal(t, tc.want, checkedOut)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("unknown booking", func(t *testing.T) {
		mock.ExpectQuery("SELECT status FROM bookings WHERE id = (.+)").
			WithArgs(int64(42)).
			WillReturnError(sql.ErrNoRows)

		checkedOut, err := repo.IsBookingCheckedOut(ctx, 42)

		require.NoError(t, err)
		assert.False(t, checkedOut)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT status FROM bookings WHERE id = (.+)").
			WithArgs(int64(43)).
			WillReturnError(fmt.Errorf("connection reset"))

		_, err := repo.IsBookingCheckedOut(ctx, 43)

		assert.Equal(t, errors.InternalServerError("error find booking status"), err)
	})
}

func TestInsertTransaction(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	newTx := func() *entity.PointTransaction {
		return &entity.PointTransaction{
			CustomerID:   3,
			BookingID:    sql.NullInt64{Int64: 10, Valid: true},
			PointsEarned: 150,
			Description:  sql.NullString{String: "Points earned from Deluxe Double stay", Valid: true},
		}
	}

	t.Run("inserted", func(t *testing.T) {
		createdAt := time.Date(2024, 6, 5, 11, 0, 0, 0, time.UTC)
		mock.ExpectQuery("INSERT INTO loyalty_point_transactions (.+) ON CONFLICT \\(booking_id\\) DO NOTHING RETURNING id, created_at").
			WillReturnRows(sqlxmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt))

		tx := newTx()
		inserted, err := repo.InsertTransaction(ctx, tx)

		require.NoError(t, err)
		assert.True(t, inserted)
		assert.Equal(t, int64(7), tx.ID)
		assert.Equal(t, createdAt, tx.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("booking already credited", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO loyalty_point_transactions").
			WillReturnRows(sqlxmock.NewRows([]string{"id", "created_at"}))

		inserted, err := repo.InsertTransaction(ctx, newTx())

		require.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("driver failure", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO loyalty_point_transactions").
			WillReturnError(fmt.Errorf("connection reset"))

		_, err := repo.InsertTransaction(ctx, newTx())

		assert.True(t, errors.Is(err, errors.CodeInternal))
	})
}

func TestFindTiersDesc(t *testing.T) {
	setup()
	defer teardown()

	mock.ExpectQuery("SELECT id, name, points_required, description FROM loyalty_tiers ORDER BY points_required DESC").
		WillReturnRows(sqlxmock.NewRows([]string{"id", "name", "points_required", "description"}).
			AddRow(3, "Gold", 2000, nil).
			AddRow(2, "Silver", 1000, nil).
			AddRow(1, "Bronze", 0, "Default tier"))

	tiers, err := repo.FindTiersDesc(context.Background())

	require.NoError(t, err)
	require.Len(t, tiers, 3)
	assert.Equal(t, "Gold", tiers[0].Name)
	assert.Equal(t, "Default tier", tiers[2].Description.String)
}

func TestUpdateCustomerLoyalty(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE customers SET current_points = (.+), loyalty_tier_id = (.+) WHERE id = (.+)").
			WithArgs(int64(1050), int64(2), int64(3)).
			WillReturnResult(sqlxmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateCustomerLoyalty(ctx, 3, 1050, 2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown customer", func(t *testing.T) {
		mock.ExpectExec("UPDATE customers SET").
			WillReturnResult(sqlxmock.NewResult(0, 0))

		err := repo.UpdateCustomerLoyalty(ctx, 42, 10, 1)

		assert.Equal(t, errors.NotFound("customer 42 not found"), err)
	})
}

func TestFindTransactionsByCustomer(t *testing.T) {
	setup()
	defer teardown()
	newer := time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)
	older := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM loyalty_point_transactions WHERE customer_id = (.+) ORDER BY created_at DESC, id DESC").
		WithArgs(int64(3)).
		WillReturnRows(sqlxmock.NewRows([]string{"id", "customer_id", "booking_id", "points_earned", "description", "created_at"}).
			AddRow(8, 3, 12, 1000, "Points earned from Suite stay", newer).
			AddRow(7, 3, nil, -50, "Manual adjustment", older))

	txs, err := repo.FindTransactionsByCustomer(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.True(t, txs[0].BookingID.Valid)
	assert.False(t, txs[1].BookingID.Valid)
	assert.Equal(t, int64(-50), txs[1].PointsEarned)
}

func TestSumTransactions(t *testing.T) {
	setup()
	defer teardown()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(points_earned\\), 0\\) FROM loyalty_point_transactions").
		WithArgs(int64(3)).
		WillReturnRows(sqlxmock.NewRows([]string{"coalesce"}).AddRow(1050))

	sum, err := repo.SumTransactions(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(1050), sum)
}
