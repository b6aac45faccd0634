package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-booking-service/internal/module/booking/handler"
	"hotel-booking-service/internal/module/booking/mocks"
	"hotel-booking-service/internal/module/booking/models/request"
	"hotel-booking-service/internal/module/booking/models/response"
	"hotel-booking-service/internal/pkg/errors"
	log_internal "hotel-booking-service/internal/pkg/log"
	"hotel-booking-service/internal/pkg/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

var (
	h   *handler.BookingHandler
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.BookingHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}
	app = fiber.New()

	// stands in for the identity middleware
	withIdentity := func(c *fiber.Ctx) error {
		if email := c.Get("X-Customer-Email"); email != "" {
			c.Locals(middleware.LocalCustomerEmail, email)
		}
		return c.Next()
	}
	app.Post("/api/v1/bookings", withIdentity, h.CreatePublic)

	private := app.Group("/api/private")
	private.Post("/bookings", h.Create)
	private.Get("/bookings/deleted", h.DeletedBookings)
	private.Get("/bookings/:id", h.GetBooking)
	private.Put("/bookings/:id", h.Update)
	private.Delete("/bookings/:id", h.Delete)
	private.Patch("/bookings/:id/status", h.UpdateStatus)
	private.Get("/customers/:id/bookings", h.CustomerHistory)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreate(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		payload := request.CreateBooking{CustomerID: 3, RoomID: 1, CheckIn: "2024-06-01", CheckOut: "2024-06-05", Adults: 2}
		body, err := json.Marshal(payload)
		require.NoError(t, err)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		defer app.ReleaseCtx(ctx)
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().SetBody(body)

		ucm.On("Create", mock.Anything, &payload).Return(response.Booking{
			ID: 10, Code: "BK-1A2B3C4D", Status: "PENDING", RoomNumber: "101", Nights: 4,
			PricePerNight: decimal.NewFromInt(120), Total: decimal.NewFromInt(480),
		}, nil).Once()

		err = h.Create(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, ctx.Response().StatusCode())
		assert.Contains(t, string(ctx.Response().Body()), `"code":"BK-1A2B3C4D"`)
	})

	t.Run("missing dates", func(t *testing.T) {
		req := jsonRequest(t, "POST", "/api/private/bookings", map[string]interface{}{"customer_id": 3, "room_id": 1})

		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("room taken", func(t *testing.T) {
		payload := request.CreateBooking{CustomerID: 3, RoomID: 1, CheckIn: "2024-06-03", CheckOut: "2024-06-04"}
		ucm.On("Create", mock.Anything, &payload).
			Return(response.Booking{}, errors.Conflict("room is already booked for these dates, please choose another room or dates")).Once()

		resp, err := app.Test(jsonRequest(t, "POST", "/api/private/bookings", payload))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}

func TestCreatePublic(t *testing.T) {
	setup()
	defer teardown()

	payload := request.PublicBooking{
		RoomID: 1, CheckIn: "2024-06-01", CheckOut: "2024-06-03", Adults: 1,
		CustomerName: "New Guest", CustomerEmail: "guest@example.com", CustomerIDNumber: "079999",
	}

	t.Run("anonymous", func(t *testing.T) {
		ucm.On("CreateFromPublicRequest", mock.Anything, &payload, "").Return(response.BookingSummary{
			Code: "BK-1A2B3C4D", Status: "PENDING", Total: decimal.NewFromInt(240),
		}, nil).Once()

		resp, err := app.Test(jsonRequest(t, "POST", "/api/v1/bookings", payload))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("with identity", func(t *testing.T) {
		ucm.On("CreateFromPublicRequest", mock.Anything, &payload, "jane@example.com").Return(response.BookingSummary{
			Code: "BK-FFFF0000", Status: "PENDING", Total: decimal.NewFromInt(240),
		}, nil).Once()

		req := jsonRequest(t, "POST", "/api/v1/bookings", payload)
		req.Header.Set("X-Customer-Email", "jane@example.com")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("invalid email", func(t *testing.T) {
		bad := payload
		bad.CustomerEmail = "not-an-email"

		resp, err := app.Test(jsonRequest(t, "POST", "/api/v1/bookings", bad))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetBooking(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		ucm.On("GetBooking", mock.Anything, int64(10)).Return(response.Booking{
			ID: 10, Code: "BK-1A2B3C4D", Nights: 4, AmountPaid: decimal.NewFromInt(150),
		}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/api/private/bookings/10", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		ucm.On("GetBooking", mock.Anything, int64(99)).Return(response.Booking{}, errors.NotFound("booking 99 not found")).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/api/private/bookings/99", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/private/bookings/abc", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdateStatus(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		payload := request.UpdateStatus{Status: "CONFIRMED"}
		ucm.On("UpdateStatus", mock.Anything, int64(10), &payload).Return(response.Booking{ID: 10, Status: "CONFIRMED"}, nil).Once()

		resp, err := app.Test(jsonRequest(t, "PATCH", "/api/private/bookings/10/status", payload))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("terminal booking", func(t *testing.T) {
		payload := request.UpdateStatus{Status: "PENDING"}
		ucm.On("UpdateStatus", mock.Anything, int64(11), &payload).
			Return(response.Booking{}, errors.StateViolation("booking 11 is CHECKED_OUT and cannot move to PENDING")).Once()

		resp, err := app.Test(jsonRequest(t, "PATCH", "/api/private/bookings/11/status", payload))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("missing status", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, "PATCH", "/api/private/bookings/10/status", map[string]string{}))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdate(t *testing.T) {
	setup()
	defer teardown()

	payload := request.UpdateBooking{RoomID: 2}
	ucm.On("Update", mock.Anything, int64(10), &payload).Return(response.Booking{ID: 10, RoomID: 2}, nil).Once()

	resp, err := app.Test(jsonRequest(t, "PUT", "/api/private/bookings/10", payload))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestDelete(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		ucm.On("Delete", mock.Anything, int64(10)).Return(nil).Once()

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/private/bookings/10", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		ucm.On("Delete", mock.Anything, int64(99)).Return(errors.NotFound("booking 99 not found")).Once()

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/private/bookings/99", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestCustomerHistory(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("CustomerHistory", mock.Anything, int64(3)).Return([]response.History{
		{Code: "BK-1A2B3C4D", RoomNumber: "101", CheckIn: "2024-06-01", CheckOut: "2024-06-05", Status: "CHECKED_OUT"},
	}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/private/customers/3/bookings", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestDeletedBookings(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		ucm.On("DeletedBookings", mock.Anything).Return([]response.Booking{
			{ID: 10, Code: "BK-1A2B3C4D", Status: "CANCELLED"},
		}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/api/private/bookings/deleted", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		ucm.AssertNotCalled(t, "GetBooking", mock.Anything, mock.Anything)
	})

	t.Run("error", func(t *testing.T) {
		ucm.On("DeletedBookings", mock.Anything).Return(nil, errors.InternalServerError("error find deleted bookings")).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/api/private/bookings/deleted", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
