package handler

import (
	"context"
	"fmt"

	"hotel-booking-service/internal/module/booking/models/event"
	"hotel-booking-service/internal/module/loyalty/usecases"
	"hotel-booking-service/internal/pkg/errors"
	"hotel-booking-service/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type LoyaltyHandler struct {
	Log     *otelzap.Logger
	Usecase usecases.Usecase
}

// ConsumeCheckedOut processes CheckedOut events. A returned error makes the
// router retry the message and finally move it to the poison topic.
func (h *LoyaltyHandler) ConsumeCheckedOut(msg *message.Message) error {
	var evt event.CheckedOut
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal checked out event: %v", err))
		return err
	}

	if _, err := h.Usecase.ProcessCheckout(msg.Context(), evt); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error process checkout for booking %d: %v", evt.BookingID, err))
		return err
	}

	return nil
}

// ProcessCheckoutTask handles the delayed task every checkout schedules. It is
// a no-op when the event already credited the booking.
func (h *LoyaltyHandler) ProcessCheckoutTask(ctx context.Context, t *asynq.Task) error {
	var evt event.CheckedOut
	if err := json.Unmarshal(t.Payload(), &evt); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if _, err := h.Usecase.ProcessCheckout(ctx, evt); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error process checkout task for booking %d: %v", evt.BookingID, err))
		if errors.Is(err, errors.CodeInvalidInput) || errors.Is(err, errors.CodeNotFound) {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		return err
	}

	return nil
}

func (h *LoyaltyHandler) PointsHistory(ctx *fiber.Ctx) error {
	customerID, err := ctx.ParamsInt("id")
	if err != nil || customerID <= 0 {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid customer id"))
	}

	resp, err := h.Usecase.PointsHistory(ctx.UserContext(), int64(customerID))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error points history: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success points history")
}

func (h *LoyaltyHandler) RebuildBalance(ctx *fiber.Ctx) error {
	customerID, err := ctx.ParamsInt("id")
	if err != nil || customerID <= 0 {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid customer id"))
	}

	resp, err := h.Usecase.RebuildBalance(ctx.UserContext(), int64(customerID))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error rebuild points balance: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success rebuild points balance")
}
