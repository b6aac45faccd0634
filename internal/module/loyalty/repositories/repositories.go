package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"hotel-booking-service/internal/module/loyalty/models/entity"
	"hotel-booking-service/internal/pkg/database"
	"hotel-booking-service/internal/pkg/errors"
	"hotel-booking-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const bookingCheckedOut = "CHECKED_OUT"

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindRoomTypeAward(ctx context.Context, roomTypeID int64) (entity.RoomTypeAward, error)
	IsBookingCheckedOut(ctx context.Context, bookingID int64) (bool, error)
	LockCustomer(ctx context.Context, customerID int64) (entity.Customer, error)
	InsertTransaction(ctx context.Context, tx *entity.PointTransaction) (bool, error)
	FindTiersDesc(ctx context.Context) ([]entity.Tier, error)
	UpdateCustomerLoyalty(ctx context.Context, customerID int64, points int64, tierID int64) error
	FindTransactionsByCustomer(ctx context.Context, customerID int64) ([]entity.PointTransaction, error)
	SumTransactions(ctx context.Context, customerID int64) (int64, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindRoomTypeAward implements Repositories.
func (r *repositories) FindRoomTypeAward(ctx context.Context, roomTypeID int64) (entity.RoomTypeAward, error) {
	query := `SELECT id, name, points_earned FROM room_types WHERE id = $1`

	var award entity.RoomTypeAward
	err := sqlx.GetContext(ctx, database.Conn(ctx, r.db), &award, query, roomTypeID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.RoomTypeAward{}, errors.NotFound(fmt.Sprintf("room type %d not found", roomTypeID))
	}
	if err != nil {
		r.log.Error(ctx, "error find room type award", zap.Int64("room_type_id", roomTypeID), zap.Error(err))
		return entity.RoomTypeAward{}, errors.InternalServerError("error find room type award")
	}
	return award, nil
}

// IsBookingCheckedOut implements Repositories. An unknown booking is not
// checked out.
func (r *repositories) IsBookingCheckedOut(ctx context.Context, bookingID int64) (bool, error) {
	query := `SELECT status FROM bookings WHERE id = $1`

	var status string
	err := sqlx.GetContext(ctx, database.Conn(ctx, r.db), &status, query, bookingID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find booking status", zap.Int64("booking_id", bookingID), zap.Error(err))
		return false, errors.InternalServerError("error find booking status")
	}
	return status == bookingCheckedOut, nil
}

// LockCustomer implements Repositories. Balance updates for the customer are
// serialised on this row lock.
func (r *repositories) LockCustomer(ctx context.Context, customerID int64) (entity.Customer, error) {
	if !database.InTransaction(ctx) {
		return entity.Customer{}, errors.InternalServerError("customer lock requires a transaction")
	}

	query := `SELECT id, full_name, current_points, loyalty_tier_id FROM customers WHERE id = $1 FOR UPDATE`
	return r.getCustomer(ctx, query, customerID)
}

func (r *repositories) getCustomer(ctx context.Context, query string, customerID int64) (entity.Customer, error) {
	var customer entity.Customer
	err := sqlx.GetContext(ctx, database.Conn(ctx, r.db), &customer, query, customerID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Customer{}, errors.NotFound(fmt.Sprintf("customer %d not found", customerID))
	}
	if err != nil {
		r.log.Error(ctx, "error find customer", zap.Int64("customer_id", customerID), zap.Error(err))
		return entity.Customer{}, errors.InternalServerError("error find customer")
	}
	return customer, nil
}

// InsertTransaction implements Repositories. It reports false when the
// booking already has a transaction.
func (r *repositories) InsertTransaction(ctx context.Context, tx *entity.PointTransaction) (bool, error) {
	query := `INSERT INTO loyalty_point_transactions (customer_id, booking_id, points_earned, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (booking_id) DO NOTHING
		RETURNING id, created_at`

	err := database.Conn(ctx, r.db).
		QueryRowxContext(ctx, query, tx.CustomerID, tx.BookingID, tx.PointsEarned, tx.Description).
		Scan(&tx.ID, &tx.CreatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		r.log.Error(ctx, "error insert point transaction", zap.Int64("customer_id", tx.CustomerID), zap.Error(err))
		return false, errors.InternalServerError("error insert point transaction")
	}
	return true, nil
}

// FindTiersDesc implements Repositories.
func (r *repositories) FindTiersDesc(ctx context.Context) ([]entity.Tier, error) {
	query := `SELECT id, name, points_required, description FROM loyalty_tiers ORDER BY points_required DESC`

	tiers := []entity.Tier{}
	if err := sqlx.SelectContext(ctx, database.Conn(ctx, r.db), &tiers, query); err != nil {
		r.log.Error(ctx, "error find loyalty tiers", zap.Error(err))
		return nil, errors.InternalServerError("error find loyalty tiers")
	}
	return tiers, nil
}

// UpdateCustomerLoyalty implements Repositories.
func (r *repositories) UpdateCustomerLoyalty(ctx context.Context, customerID int64, points int64, tierID int64) error {
	query := `UPDATE customers SET current_points = $1, loyalty_tier_id = $2, updated_at = now() WHERE id = $3`

	res, err := database.Conn(ctx, r.db).ExecContext(ctx, query, points, tierID, customerID)
	if err != nil {
		r.log.Error(ctx, "error update customer loyalty", zap.Int64("customer_id", customerID), zap.Error(err))
		return errors.InternalServerError("error update customer loyalty")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error update customer loyalty")
	}
	if affected == 0 {
		return errors.NotFound(fmt.Sprintf("customer %d not found", customerID))
	}
	return nil
}

// FindTransactionsByCustomer implements Repositories.
func (r *repositories) FindTransactionsByCustomer(ctx context.Context, customerID int64) ([]entity.PointTransaction, error) {
	query := `SELECT id, customer_id, booking_id, points_earned, description, created_at
		FROM loyalty_point_transactions
		WHERE customer_id = $1
		ORDER BY created_at DESC, id DESC`

	txs := []entity.PointTransaction{}
	if err := sqlx.SelectContext(ctx, database.Conn(ctx, r.db), &txs, query, customerID); err != nil {
		r.log.Error(ctx, "error find point transactions", zap.Int64("customer_id", customerID), zap.Error(err))
		return nil, errors.InternalServerError("error find point transactions")
	}
	return txs, nil
}

// SumTransactions implements Repositories.
func (r *repositories) SumTransactions(ctx context.Context, customerID int64) (int64, error) {
	query := `SELECT COALESCE(SUM(points_earned), 0) FROM loyalty_point_transactions WHERE customer_id = $1`

	var sum int64
	if err := sqlx.GetContext(ctx, database.Conn(ctx, r.db), &sum, query, customerID); err != nil {
		r.log.Error(ctx, "error sum point transactions", zap.Int64("customer_id", customerID), zap.Error(err))
		return 0, errors.InternalServerError("error sum point transactions")
	}
	return sum, nil
}
