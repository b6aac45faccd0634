package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"hotel-booking-service/config"
	"hotel-booking-service/internal/module/booking/models/entity"
	"hotel-booking-service/internal/module/booking/models/event"
	"hotel-booking-service/internal/module/booking/models/response"
	"hotel-booking-service/internal/pkg/database"
	"hotel-booking-service/internal/pkg/errors"
	"hotel-booking-service/internal/pkg/log"
	"hotel-booking-service/internal/pkg/scheduler"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const bookingColumns = `b.id, b.booking_code, b.customer_id, b.room_id, b.customer_full_name, b.customer_phone,
	b.check_in_date, b.check_out_date, b.price_per_night, b.total_price, b.adults, b.children, b.status,
	b.actual_checkin_at, b.actual_checkout_at, b.created_at, b.updated_at, b.deleted_at,
	r.room_number, r.room_type_id, rt.name AS room_type_name`

const bookingFrom = `FROM bookings b
	JOIN rooms r ON r.id = b.room_id
	JOIN room_types rt ON rt.id = r.room_type_id`

const customerColumns = `id, full_name, id_number, email, phone, address, current_points, loyalty_tier_id, created_at, updated_at`

const checkoutTaskMaxRetry = 5

type repositories struct {
	db              *sqlx.DB
	log             log.Logger
	httpClient      *circuit.HTTPClient
	cfgPayment      *config.PaymentServiceConfig
	schedulerClient *asynq.Client
	retryIn         time.Duration
}

type Repositories interface {
	// db
	InsertBooking(ctx context.Context, booking *entity.Booking) error
	FindBookingByID(ctx context.Context, bookingID int64) (entity.Booking, error)
	FindBookingForUpdate(ctx context.Context, bookingID int64) (entity.Booking, error)
	UpdateBooking(ctx context.Context, booking entity.Booking) error
	SoftDeleteBooking(ctx context.Context, bookingID int64) error
	ConfirmationCodeExists(ctx context.Context, code string) (bool, error)
	FindBookingsByCustomerID(ctx context.Context, customerID int64) ([]entity.Booking, error)
	FindDeletedBookings(ctx context.Context) ([]entity.Booking, error)
	FindCustomerByID(ctx context.Context, customerID int64) (entity.Customer, error)
	FindCustomerByEmail(ctx context.Context, email string) (entity.Customer, error)
	FindCustomerByIDNumber(ctx context.Context, idNumber string) (entity.Customer, error)
	InsertCustomer(ctx context.Context, customer *entity.Customer) error
	FindLowestTierID(ctx context.Context) (int64, error)
	// http
	SumPayments(ctx context.Context, bookingID int64) (decimal.Decimal, error)
	// scheduler
	ScheduleCheckoutRetry(ctx context.Context, evt event.CheckedOut) (string, error)
}

func New(db *sqlx.DB, log log.Logger, httpClient *circuit.HTTPClient, cfgPayment *config.PaymentServiceConfig, schedulerClient *asynq.Client, retryIn time.Duration) Repositories {
	return &repositories{
		db:              db,
		log:             log,
		httpClient:      httpClient,
		cfgPayment:      cfgPayment,
		schedulerClient: schedulerClient,
		retryIn:         retryIn,
	}
}

// InsertBooking implements Repositories. ID and CreatedAt are filled in from
// the inserted row.
func (r *repositories) InsertBooking(ctx context.Context, booking *entity.Booking) error {
	query := `INSERT INTO bookings (booking_code, customer_id, room_id, customer_full_name, customer_phone,
		check_in_date, check_out_date, price_per_night, total_price, adults, children, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`

	err := database.Conn(ctx, r.db).QueryRowxContext(ctx, query,
		booking.Code,
		booking.CustomerID,
		booking.RoomID,
		booking.CustomerFullName,
		booking.CustomerPhone,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.PricePerNight,
		booking.TotalPrice,
		booking.Adults,
		booking.Children,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		r.log.Error(ctx, "error insert booking", zap.String("code", booking.Code), zap.Error(err))
		return errors.InternalServerError("error insert booking")
	}
	return nil
}

// FindBookingByID implements Repositories. Soft-deleted bookings are not found.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID int64) (entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` ` + bookingFrom + `
		WHERE b.id = $1 AND b.deleted_at IS NULL`

	return r.getBooking(ctx, query, bookingID)
}

// FindBookingForUpdate implements Repositories. The booking row stays locked
// until the surrounding transaction ends.
func (r *repositories) FindBookingForUpdate(ctx context.Context, bookingID int64) (entity.Booking, error) {
	if !database.InTransaction(ctx) {
		return entity.Booking{}, errors.InternalServerError("booking lock requires a transaction")
	}

	query := `SELECT ` + bookingColumns + ` ` + bookingFrom + `
		WHERE b.id = $1 AND b.deleted_at IS NULL
		FOR UPDATE OF b`

	return r.getBooking(ctx, query, bookingID)
}

func (r *repositories) getBooking(ctx context.Context, query string, bookingID int64) (entity.Booking, error) {
	var booking entity.Booking
	err := sqlx.GetContext(ctx, database.Conn(ctx, r.db), &booking, query, bookingID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Booking{}, errors.NotFound(fmt.Sprintf("booking %d not found", bookingID))
	}
	if err != nil {
		r.log.Error(ctx, "error find booking", zap.Int64("booking_id", bookingID), zap.Error(err))
		return entity.Booking{}, errors.InternalServerError("error find booking")
	}
	return booking, nil
}

// UpdateBooking implements Repositories.
func (r *repositories) UpdateBooking(ctx context.Context, booking entity.Booking) error {
	query := `UPDATE bookings SET
		customer_id = $1,
		room_id = $2,
		customer_full_name = $3,
		customer_phone = $4,
		check_in_date = $5,
		check_out_date = $6,
		price_per_night = $7,
		total_price = $8,
		adults = $9,
		children = $10,
		status = $11,
		actual_checkin_at = $12,
		actual_checkout_at = $13,
		updated_at = now()
		WHERE id = $14 AND deleted_at IS NULL`

	res, err := database.Conn(ctx, r.db).ExecContext(ctx, query,
		booking.CustomerID,
		booking.RoomID,
		booking.CustomerFullName,
		booking.CustomerPhone,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.PricePerNight,
		booking.TotalPrice,
		booking.Adults,
		booking.Children,
		booking.Status,
		booking.ActualCheckinAt,
		booking.ActualCheckoutAt,
		booking.ID,
	)
	if err != nil {
		r.log.Error(ctx, "error update booking", zap.Int64("booking_id", booking.ID), zap.Error(err))
		return errors.InternalServerError("error update booking")
	}
	return r.expectOneRow(res, booking.ID)
}

// SoftDeleteBooking implements Repositories.
func (r *repositories) SoftDeleteBooking(ctx context.Context, bookingID int64) error {
	query := `UPDATE bookings SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`

	res, err := database.Conn(ctx, r.db).ExecContext(ctx, query, bookingID)
	if err != nil {
		r.log.Error(ctx, "error soft delete booking", zap.Int64("booking_id", bookingID), zap.Error(err))
		return errors.InternalServerError("error delete booking")
	}
	return r.expectOneRow(res, bookingID)
}

func (r *repositories) expectOneRow(res sql.Result, bookingID int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error read affected rows")
	}
	if affected == 0 {
		return errors.NotFound(fmt.Sprintf("booking %d not found", bookingID))
	}
	return nil
}

// ConfirmationCodeExists implements Repositories. Soft-deleted bookings keep
// their codes.
func (r *repositories) ConfirmationCodeExists(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bookings WHERE booking_code = $1)`

	var exists bool
	if err := sqlx.GetContext(ctx, database.Conn(ctx, r.db), &exists, query, code); err != nil {
		r.log.Error(ctx, "error check confirmation code", zap.String("code", code), zap.Error(err))
		return false, errors.InternalServerError("error check confirmation code")
	}
	return exists, nil
}

// FindBookingsByCustomerID implements Repositories. Newest check-in first.
func (r *repositories) FindBookingsByCustomerID(ctx context.Context, customerID int64) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` ` + bookingFrom + `
		WHERE b.customer_id = $1 AND b.deleted_at IS NULL
		ORDER BY b.check_in_date DESC, b.id DESC`

	bookings := []entity.Booking{}
	if err := sqlx.SelectContext(ctx, database.Conn(ctx, r.db), &bookings, query, customerID); err != nil {
		r.log.Error(ctx, "error find bookings by customer", zap.Int64("customer_id", customerID), zap.Error(err))
		return nil, errors.InternalServerError("error find bookings by customer")
	}
	return bookings, nil
}

// FindDeletedBookings implements Repositories. Most recently deleted first.
func (r *repositories) FindDeletedBookings(ctx context.Context) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` ` + bookingFrom + `
		WHERE b.deleted_at IS NOT NULL
		ORDER BY b.deleted_at DESC, b.id DESC`

	bookings := []entity.Booking{}
	if err := sqlx.SelectContext(ctx, database.Conn(ctx, r.db), &bookings, query); err != nil {
		r.log.Error(ctx, "error find deleted bookings", zap.Error(err))
		return nil, errors.InternalServerError("error find deleted bookings")
	}
	return bookings, nil
}

// FindCustomerByID implements Repositories.
func (r *repositories) FindCustomerByID(ctx context.Context, customerID int64) (entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.getCustomer(ctx, query, customerID, fmt.Sprintf("customer %d not found", customerID))
}

// FindCustomerByEmail implements Repositories.
func (r *repositories) FindCustomerByEmail(ctx context.Context, email string) (entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE lower(email) = lower($1)`
	return r.getCustomer(ctx, query, email, "customer with email not found")
}

// FindCustomerByIDNumber implements Repositories.
func (r *repositories) FindCustomerByIDNumber(ctx context.Context, idNumber string) (entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id_number = $1`
	return r.getCustomer(ctx, query, idNumber, "customer with id number not found")
}

func (r *repositories) getCustomer(ctx context.Context, query string, arg interface{}, notFound string) (entity.Customer, error) {
	var customer entity.Customer
	err := sqlx.GetContext(ctx, database.Conn(ctx, r.db), &customer, query, arg)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Customer{}, errors.NotFound(notFound)
	}
	if err != nil {
		r.log.Error(ctx, "error find customer", zap.Error(err))
		return entity.Customer{}, errors.InternalServerError("error find customer")
	}
	return customer, nil
}

// InsertCustomer implements Repositories.
func (r *repositories) InsertCustomer(ctx context.Context, customer *entity.Customer) error {
	query := `INSERT INTO customers (full_name, id_number, email, phone, address, current_points, loyalty_tier_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := database.Conn(ctx, r.db).QueryRowxContext(ctx, query,
		customer.FullName,
		customer.IDNumber,
		customer.Email,
		customer.Phone,
		customer.Address,
		customer.CurrentPoints,
		customer.LoyaltyTierID,
	).Scan(&customer.ID, &customer.CreatedAt)
	if err != nil {
		r.log.Error(ctx, "error insert customer", zap.Error(err))
		return errors.InternalServerError("error insert customer")
	}
	return nil
}

// FindLowestTierID implements Repositories.
func (r *repositories) FindLowestTierID(ctx context.Context) (int64, error) {
	query := `SELECT id FROM loyalty_tiers ORDER BY points_required ASC, id ASC LIMIT 1`

	var id int64
	err := sqlx.GetContext(ctx, database.Conn(ctx, r.db), &id, query)
	if stderrors.Is(err, sql.ErrNoRows) {
		return 0, errors.NotFound("no loyalty tier configured")
	}
	if err != nil {
		r.log.Error(ctx, "error find default loyalty tier", zap.Error(err))
		return 0, errors.InternalServerError("error find default loyalty tier")
	}
	return id, nil
}

// SumPayments implements Repositories. The ledger answers 404 when a booking
// has no payments yet.
func (r *repositories) SumPayments(ctx context.Context, bookingID int64) (decimal.Decimal, error) {
	url := fmt.Sprintf("http://%s:%s/api/private/payments?booking_id=%d", r.cfgPayment.Host, r.cfgPayment.Port, bookingID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, errors.InternalServerError("error build payment request")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Error(ctx, "error call payment service", zap.Int64("booking_id", bookingID), zap.Error(err))
		return decimal.Zero, errors.InternalServerError("error call payment service")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return decimal.Zero, nil
	}
	if resp.StatusCode != http.StatusOK {
		r.log.Error(ctx, "unexpected payment service status", zap.Int64("booking_id", bookingID), zap.Int("status", resp.StatusCode))
		return decimal.Zero, errors.InternalServerError("error call payment service")
	}

	var ledger response.PaymentLedger
	if err := json.NewDecoder(resp.Body).Decode(&ledger); err != nil {
		r.log.Error(ctx, "error decode payment service response", zap.Int64("booking_id", bookingID), zap.Error(err))
		return decimal.Zero, errors.InternalServerError("error decode payment service response")
	}

	total := decimal.Zero
	for _, p := range ledger.Data {
		total = total.Add(p.Amount)
	}
	return total, nil
}

// ScheduleCheckoutRetry implements Repositories.
func (r *repositories) ScheduleCheckoutRetry(ctx context.Context, evt event.CheckedOut) (string, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return "", errors.InternalServerError("error marshal checkout task")
	}

	task := asynq.NewTask(scheduler.TypeProcessCheckout, payload)
	info, err := r.schedulerClient.EnqueueContext(ctx, task,
		asynq.ProcessIn(r.retryIn),
		asynq.MaxRetry(checkoutTaskMaxRetry),
		asynq.TaskID(fmt.Sprintf("checkout-%d", evt.BookingID)),
	)
	if err != nil {
		r.log.Error(ctx, "error schedule checkout task", zap.Int64("booking_id", evt.BookingID), zap.Error(err))
		return "", errors.InternalServerError("error schedule checkout task")
	}
	return info.ID, nil
}
