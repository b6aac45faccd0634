package usecases_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"hotel-booking-service/internal/module/room/mocks"
	"hotel-booking-service/internal/module/room/models/entity"
	"hotel-booking-service/internal/module/room/models/request"
	"hotel-booking-service/internal/module/room/usecases"
	"hotel-booking-service/internal/pkg/errors"
	"hotel-booking-service/internal/pkg/helpers"
	log_internal "hotel-booking-service/internal/pkg/log"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
)

func setup() {
	repoMock = new(mocks.Repositories)
	uc = usecases.New(repoMock, log_internal.GetLogger())
}

func teardown() {
	repoMock = nil
	uc = nil
}

func room101() entity.Room {
	return entity.Room{
		ID:           1,
		RoomNumber:   "101",
		RoomTypeID:   1,
		Status:       entity.RoomAvailable,
		Floor:        sql.NullInt64{Int64: 1, Valid: true},
		Price:        decimal.NewFromInt(120),
		RoomTypeName: "Deluxe Double",
		Capacity:     2,
		PointsEarned: 150,
	}
}

func TestFindAvailable(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		payload := request.FindAvailable{CheckIn: "2024-06-01", CheckOut: "2024-06-05", Guests: 2}
		stay := helpers.NewDateRange(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))

		repoMock.On("FindAvailable", ctx, stay, 2).Return([]entity.Room{room101()}, nil).Once()

		rooms, err := uc.FindAvailable(ctx, &payload)

		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, "101", rooms[0].RoomNumber)
		assert.Equal(t, "Deluxe Double", rooms[0].RoomType)
		assert.Equal(t, int64(1), *rooms[0].Floor)
		assert.Equal(t, "AVAILABLE", rooms[0].Status)
	})

	t.Run("invalid ranges", func(t *testing.T) {
		testCases := []struct {
			name    string
			payload request.FindAvailable
		}{
			{"checkout before checkin", request.FindAvailable{CheckIn: "2024-06-05", CheckOut: "2024-06-01", Guests: 2}},
			{"same day", request.FindAvailable{CheckIn: "2024-06-01", CheckOut: "2024-06-01", Guests: 2}},
			{"malformed date", request.FindAvailable{CheckIn: "01/06/2024", CheckOut: "2024-06-05", Guests: 2}},
			{"no guests", request.FindAvailable{CheckIn: "2024-06-01", CheckOut: "2024-06-05", Guests: 0}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.FindAvailable(ctx, &tc.payload)

				assert.True(t, errors.Is(err, errors.CodeInvalidInput))
			})
		}
		repoMock.AssertNotCalled(t, "FindAvailable", ctx, helpers.DateRange{}, 0)
	})
}

func TestHasConflict(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()
	stay := helpers.NewDateRange(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC))

	t.Run("conflict", func(t *testing.T) {
		repoMock.On("FindRoomByID", ctx, int64(1)).Return(room101(), nil).Once()
		repoMock.On("HasConflict", ctx, int64(1), stay, int64(0)).Return(true, nil).Once()

		resp, err := uc.HasConflict(ctx, 1, &request.CheckConflict{CheckIn: "2024-06-03", CheckOut: "2024-06-04"})

		require.NoError(t, err)
		assert.True(t, resp.HasConflict)
		assert.Equal(t, int64(1), resp.RoomID)
	})

	t.Run("unknown room", func(t *testing.T) {
		repoMock.On("FindRoomByID", ctx, int64(99)).Return(entity.Room{}, errors.NotFound("room 99 not found")).Once()

		_, err := uc.HasConflict(ctx, 99, &request.CheckConflict{CheckIn: "2024-06-03", CheckOut: "2024-06-04"})

		assert.Equal(t, errors.NotFound("room 99 not found"), err)
	})
}
