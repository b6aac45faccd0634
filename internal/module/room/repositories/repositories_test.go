package repositories_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hotel-booking-service/internal/module/room/models/entity"
	"hotel-booking-service/internal/module/room/repositories"
	"hotel-booking-service/internal/pkg/database"
	"hotel-booking-service/internal/pkg/errors"
	"hotel-booking-service/internal/pkg/helpers"
	log_internal "hotel-booking-service/internal/pkg/log"
	redis_internal "hotel-booking-service/internal/pkg/redis"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock sqlxmock.Sqlmock
	dbx  *sqlx.DB
	repo repositories.Repositories
	stay = helpers.NewDateRange(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))

	roomColumns = []string{"id", "room_number", "room_type_id", "status", "floor", "price",
		"room_type_name", "capacity", "points_earned", "created_at", "updated_at"}
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	repo = repositories.New(dbx, log_internal.GetLogger(), nil)
}

func teardown() {
	dbx.Close()
}

func TestFindAvailable(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlxmock.NewRows(roomColumns).
			AddRow(1, "101", 1, "AVAILABLE", 1, "120.00", "Deluxe Double", 2, 150, time.Time{}, nil)
		mock.ExpectQuery("SELECT (.+) FROM rooms r JOIN room_types rt (.+) NOT EXISTS").
			WithArgs(stay.CheckIn, stay.CheckOut, int64(2)).
			WillReturnRows(rows)

		rooms, err := repo.FindAvailable(ctx, stay, 2)

		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, "101", rooms[0].RoomNumber)
		assert.Equal(t, entity.RoomAvailable, rooms[0].Status)
		assert.True(t, decimal.RequireFromString("120").Equal(rooms[0].Price))
		assert.Equal(t, 2, rooms[0].Capacity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rooms r").
			WithArgs(stay.CheckIn, stay.CheckOut, int64(5)).
			WillReturnRows(sqlxmock.NewRows(roomColumns))

		rooms, err := repo.FindAvailable(ctx, stay, 5)

		require.NoError(t, err)
		assert.Empty(t, rooms)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rooms r").
			WillReturnError(fmt.Errorf("connection reset"))

		_, err := repo.FindAvailable(ctx, stay, 2)

		assert.Equal(t, errors.InternalServerError("error find available rooms"), err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHasConflict(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	testCases := []struct {
		name     string
		conflict bool
	}{
		{"overlapping booking", true},
		{"free", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock.ExpectQuery("SELECT EXISTS (.+) FROM bookings").
				WithArgs(int64(1), stay.CheckIn, stay.CheckOut, int64(0)).
				WillReturnRows(sqlxmock.NewRows([]string{"exists"}).AddRow(tc.conflict))

			conflict, err := repo.HasConflict(ctx, 1, stay, 0)

			require.NoError(t, err)
			assert.Equal(t, tc.conflict, conflict)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLockRoom(t *testing.T) {
	setup()
	defer teardown()
	tr := database.NewTransactor(dbx)

	t.Run("locks inside transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM rooms r (.+) FOR UPDATE OF r").
			WithArgs(int64(1)).
			WillReturnRows(sqlxmock.NewRows(roomColumns).
				AddRow(1, "101", 1, "RESERVED", nil, "120.00", "Deluxe Double", 2, 150, time.Time{}, nil))
		mock.ExpectCommit()

		var room entity.Room
		err := tr.WithTransaction(context.Background(), func(ctx context.Context) error {
			var err error
			room, err = repo.LockRoom(ctx, 1)
			return err
		})

		require.NoError(t, err)
		assert.Equal(t, entity.RoomReserved, room.Status)
		assert.False(t, room.Floor.Valid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM rooms r (.+) FOR UPDATE OF r").
			WithArgs(int64(9)).
			WillReturnRows(sqlxmock.NewRows(roomColumns))
		mock.ExpectRollback()

		err := tr.WithTransaction(context.Background(), func(ctx context.Context) error {
			_, err := repo.LockRoom(ctx, 9)
			return err
		})

		assert.Equal(t, errors.NotFound("room 9 not found"), err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("outside transaction", func(t *testing.T) {
		_, err := repo.LockRoom(context.Background(), 1)

		assert.True(t, errors.Is(err, errors.CodeInternal))
	})
}

func TestUpdateRoomStatus(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE rooms SET status").
			WithArgs("RESERVED", int64(1)).
			WillReturnResult(sqlxmock.NewResult(0, 1))

		err := repo.UpdateRoomStatus(ctx, 1, entity.RoomReserved)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing room", func(t *testing.T) {
		mock.ExpectExec("UPDATE rooms SET status").
			WithArgs("AVAILABLE", int64(7)).
			WillReturnResult(sqlxmock.NewResult(0, 0))

		err := repo.UpdateRoomStatus(ctx, 7, entity.RoomAvailable)

		assert.Equal(t, errors.NotFound("room 7 not found"), err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAcquireRoomLockWithoutRedis(t *testing.T) {
	setup()
	defer teardown()

	unlock, err := repo.AcquireRoomLock(context.Background(), 1)

	require.NoError(t, err)
	assert.NotPanics(t, unlock)
}

func TestAcquireRoomLockRedisDown(t *testing.T) {
	setup()
	defer teardown()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 50 * time.Millisecond,
	})
	defer client.Close()
	repo = repositories.New(dbx, log_internal.GetLogger(), redis_internal.NewLocker(client))

	unlock, err := repo.AcquireRoomLock(context.Background(), 7)

	require.NoError(t, err)
	assert.NotPanics(t, unlock)
}
