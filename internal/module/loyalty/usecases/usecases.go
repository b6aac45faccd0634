package usecases

import (
	"context"
	"database/sql"
	"fmt"

	"hotel-booking-service/internal/module/booking/models/event"
	"hotel-booking-service/internal/module/loyalty/models/entity"
	"hotel-booking-service/internal/module/loyalty/models/response"
	"hotel-booking-service/internal/module/loyalty/repositories"
	"hotel-booking-service/internal/pkg/database"
	"hotel-booking-service/internal/pkg/errors"
	"hotel-booking-service/internal/pkg/log"

	"go.elastic.co/apm"
	"go.uber.org/zap"
)

type usecase struct {
	repo repositories.Repositories
	tr   database.Transactor
	log  log.Logger
}

type Usecase interface {
	ProcessCheckout(ctx context.Context, evt event.CheckedOut) (response.Accrual, error)
	PointsHistory(ctx context.Context, customerID int64) ([]response.PointTransaction, error)
	RebuildBalance(ctx context.Context, customerID int64) (response.Balance, error)
}

func New(repo repositories.Repositories, tr database.Transactor, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		tr:   tr,
		log:  log,
	}
}

// ProcessCheckout credits the room type's points for a checked-out booking
// and re-evaluates the customer's tier. A booking is credited at most once,
// and only once its checkout has committed.
func (u *usecase) ProcessCheckout(ctx context.Context, evt event.CheckedOut) (response.Accrual, error) {
	span, ctx := apm.StartSpan(ctx, "LoyaltyUsecase.ProcessCheckout", "usecase")
	defer span.End()

	if evt.BookingID <= 0 || evt.CustomerID <= 0 || evt.RoomTypeID <= 0 {
		return response.Accrual{}, errors.BadRequest("checkout event is missing booking, customer or room type")
	}

	accrual := response.Accrual{BookingID: evt.BookingID, CustomerID: evt.CustomerID}
	err := u.tr.WithTransaction(ctx, func(ctx context.Context) error {
		checkedOut, err := u.repo.IsBookingCheckedOut(ctx, evt.BookingID)
		if err != nil {
			return err
		}
		if !checkedOut {
			u.log.Warn(ctx, "booking is not checked out, nothing to credit", zap.Int64("booking_id", evt.BookingID))
			return nil
		}

		award, err := u.repo.FindRoomTypeAward(ctx, evt.RoomTypeID)
		if err != nil {
			return err
		}
		if award.PointsEarned <= 0 {
			u.log.Info(ctx, "room type earns no points",
				zap.Int64("booking_id", evt.BookingID),
				zap.Int64("room_type_id", evt.RoomTypeID),
			)
			return nil
		}

		customer, err := u.repo.LockCustomer(ctx, evt.CustomerID)
		if err != nil {
			return err
		}

		inserted, err := u.repo.InsertTransaction(ctx, &entity.PointTransaction{
			CustomerID:   customer.ID,
			BookingID:    sql.NullInt64{Int64: evt.BookingID, Valid: true},
			PointsEarned: award.PointsEarned,
			Description: sql.NullString{
				String: fmt.Sprintf("Points earned from %s stay (booking %s)", award.Name, evt.ConfirmationCode),
				Valid:  true,
			},
		})
		if err != nil {
			return err
		}
		if !inserted {
			u.log.Info(ctx, "checkout already credited", zap.Int64("booking_id", evt.BookingID))
			return nil
		}

		tier, err := u.applyBalance(ctx, customer, customer.CurrentPoints+award.PointsEarned)
		if err != nil {
			return err
		}

		accrual.Points = award.PointsEarned
		accrual.Balance = customer.CurrentPoints + award.PointsEarned
		accrual.Tier = tier.Name
		accrual.Applied = true
		return nil
	})
	if err != nil {
		return response.Accrual{}, err
	}

	if accrual.Applied {
		u.log.Info(ctx, "loyalty points credited",
			zap.Int64("booking_id", accrual.BookingID),
			zap.Int64("customer_id", accrual.CustomerID),
			zap.Int64("points", accrual.Points),
			zap.Int64("balance", accrual.Balance),
			zap.String("tier", accrual.Tier),
		)
	}
	return accrual, nil
}

// applyBalance stores the new balance together with the tier it resolves to.
// With no tier matching, the customer keeps the current one.
func (u *usecase) applyBalance(ctx context.Context, customer entity.Customer, balance int64) (entity.Tier, error) {
	tiers, err := u.repo.FindTiersDesc(ctx)
	if err != nil {
		return entity.Tier{}, err
	}

	tier, ok := entity.ResolveTier(tiers, balance)
	if !ok {
		tier = currentTier(tiers, customer.LoyaltyTierID)
	}

	if err := u.repo.UpdateCustomerLoyalty(ctx, customer.ID, balance, tier.ID); err != nil {
		return entity.Tier{}, err
	}

	if tier.ID != customer.LoyaltyTierID {
		u.log.Info(ctx, "customer tier changed",
			zap.Int64("customer_id", customer.ID),
			zap.Int64("from_tier_id", customer.LoyaltyTierID),
			zap.Int64("to_tier_id", tier.ID),
		)
	}
	return tier, nil
}

// PointsHistory lists a customer's point transactions, newest first. A
// customer with no transactions, known or not, gets an empty list.
func (u *usecase) PointsHistory(ctx context.Context, customerID int64) ([]response.PointTransaction, error) {
	txs, err := u.repo.FindTransactionsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.PointTransaction, 0, len(txs))
	for _, tx := range txs {
		item := response.PointTransaction{
			ID:          tx.ID,
			Points:      tx.PointsEarned,
			Description: tx.Description.String,
			CreatedAt:   tx.CreatedAt,
		}
		if tx.BookingID.Valid {
			bookingID := tx.BookingID.Int64
			item.BookingID = &bookingID
		}
		resp = append(resp, item)
	}
	return resp, nil
}

// RebuildBalance recomputes the stored balance from the points log.
func (u *usecase) RebuildBalance(ctx context.Context, customerID int64) (response.Balance, error) {
	span, ctx := apm.StartSpan(ctx, "LoyaltyUsecase.RebuildBalance", "usecase")
	defer span.End()

	var balance response.Balance
	err := u.tr.WithTransaction(ctx, func(ctx context.Context) error {
		customer, err := u.repo.LockCustomer(ctx, customerID)
		if err != nil {
			return err
		}

		sum, err := u.repo.SumTransactions(ctx, customerID)
		if err != nil {
			return err
		}
		if sum < 0 {
			u.log.Warn(ctx, "points log sums below zero", zap.Int64("customer_id", customerID), zap.Int64("sum", sum))
			sum = 0
		}
		if sum != customer.CurrentPoints {
			u.log.Warn(ctx, "stored balance drifted from points log",
				zap.Int64("customer_id", customerID),
				zap.Int64("stored", customer.CurrentPoints),
				zap.Int64("log", sum),
			)
		}

		tier, err := u.applyBalance(ctx, customer, sum)
		if err != nil {
			return err
		}

		balance = response.Balance{
			CustomerID: customer.ID,
			Points:     sum,
			TierID:     tier.ID,
			Tier:       tier.Name,
		}
		return nil
	})
	if err != nil {
		return response.Balance{}, err
	}
	return balance, nil
}

func currentTier(tiers []entity.Tier, tierID int64) entity.Tier {
	for _, tier := range tiers {
		if tier.ID == tierID {
			return tier
		}
	}
	return entity.Tier{ID: tierID}
}
