package handler_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-booking-service/internal/module/booking/models/event"
	"hotel-booking-service/internal/module/loyalty/handler"
	"hotel-booking-service/internal/module/loyalty/mocks"
	"hotel-booking-service/internal/module/loyalty/models/response"
	"hotel-booking-service/internal/pkg/errors"
	log_internal "hotel-booking-service/internal/pkg/log"
	"hotel-booking-service/internal/pkg/messagestream"
	"hotel-booking-service/internal/pkg/scheduler"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	h   *handler.LoyaltyHandler
	ucm *mocks.Usecase
	app *fiber.App

	evt = event.CheckedOut{
		BookingID:        10,
		ConfirmationCode: "BK-1A2B3C4D",
		CustomerID:       3,
		RoomID:           1,
		RoomTypeID:       1,
		CheckedOutAt:     time.Date(2024, 6, 5, 11, 0, 0, 0, time.UTC),
	}
)

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.LoyaltyHandler{
		Log:     log_internal.Setup(),
		Usecase: ucm,
	}
	app = fiber.New()
	app.Get("/api/v1/customers/:id/points", h.PointsHistory)
	app.Post("/api/private/customers/:id/points/rebuild", h.RebuildBalance)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func eventPayload(t *testing.T) []byte {
	payload, err := json.Marshal(evt)
	require.NoError(t, err)
	return payload
}

func TestConsumeCheckedOut(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		ucm.On("ProcessCheckout", mock.Anything, evt).Return(response.Accrual{BookingID: 10, Applied: true}, nil).Once()

		err := h.ConsumeCheckedOut(message.NewMessage(watermill.NewUUID(), eventPayload(t)))

		assert.NoError(t, err)
	})

	t.Run("malformed payload", func(t *testing.T) {
		err := h.ConsumeCheckedOut(message.NewMessage(watermill.NewUUID(), []byte("{")))

		assert.Error(t, err)
	})

	t.Run("usecase failure is returned for retry", func(t *testing.T) {
		ucm.On("ProcessCheckout", mock.Anything, evt).
			Return(response.Accrual{}, errors.InternalServerError("error insert point transaction")).Once()

		err := h.ConsumeCheckedOut(message.NewMessage(watermill.NewUUID(), eventPayload(t)))

		assert.Error(t, err)
	})
}

func TestConsumeCheckedOutThroughRouter(t *testing.T) {
	setup()
	defer teardown()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	processed := make(chan struct{}, 1)
	ucm.On("ProcessCheckout", mock.Anything, evt).
		Run(func(mock.Arguments) { processed <- struct{}{} }).
		Return(response.Accrual{BookingID: 10, Applied: true}, nil).Once()

	router, err := messagestream.NewRouter(pubSub, event.TopicCheckedOutPoisoned, "loyalty_checked_out", event.TopicCheckedOut, pubSub,
		h.ConsumeCheckedOut, messagestream.RouterConfig{MaxRetries: 1, InitialInterval: time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = router.Run(ctx) }()
	<-router.Running()

	require.NoError(t, pubSub.Publish(event.TopicCheckedOut, message.NewMessage(watermill.NewUUID(), eventPayload(t))))

	select {
	case <-processed:
	case <-time.After(5 * time.Second):
		t.Fatal("checked out event was not consumed")
	}
}

func TestProcessCheckoutTask(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		ucm.On("ProcessCheckout", mock.Anything, evt).Return(response.Accrual{BookingID: 10, Applied: true}, nil).Once()

		err := h.ProcessCheckoutTask(context.Background(), asynq.NewTask(scheduler.TypeProcessCheckout, eventPayload(t)))

		assert.NoError(t, err)
	})

	t.Run("malformed payload is not retried", func(t *testing.T) {
		err := h.ProcessCheckoutTask(context.Background(), asynq.NewTask(scheduler.TypeProcessCheckout, []byte("nope")))

		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("transient failure is retried", func(t *testing.T) {
		ucm.On("ProcessCheckout", mock.Anything, evt).Return(response.Accrual{}, fmt.Errorf("connection reset")).Once()

		err := h.ProcessCheckoutTask(context.Background(), asynq.NewTask(scheduler.TypeProcessCheckout, eventPayload(t)))

		assert.Error(t, err)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("unknown customer is not retried", func(t *testing.T) {
		ucm.On("ProcessCheckout", mock.Anything, evt).Return(response.Accrual{}, errors.NotFound("customer 3 not found")).Once()

		err := h.ProcessCheckoutTask(context.Background(), asynq.NewTask(scheduler.TypeProcessCheckout, eventPayload(t)))

		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
}

func TestPointsHistory(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		bookingID := int64(10)
		ucm.On("PointsHistory", mock.Anything, int64(3)).Return([]response.PointTransaction{
			{ID: 7, BookingID: &bookingID, Points: 150, Description: "Points earned from Deluxe Double stay"},
		}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/customers/3/points", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unknown customer", func(t *testing.T) {
		ucm.On("PointsHistory", mock.Anything, int64(9)).Return(nil, errors.NotFound("customer 9 not found")).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/customers/9/points", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/customers/x/points", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestRebuildBalance(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("RebuildBalance", mock.Anything, int64(3)).
		Return(response.Balance{CustomerID: 3, Points: 1050, TierID: 2, Tier: "Silver"}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("POST", "/api/private/customers/3/points/rebuild", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
