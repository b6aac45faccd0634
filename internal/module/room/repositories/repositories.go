package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"hotel-booking-service/internal/module/room/models/entity"
	"hotel-booking-service/internal/pkg/database"
	"hotel-booking-service/internal/pkg/errors"
	"hotel-booking-service/internal/pkg/helpers"
	"hotel-booking-service/internal/pkg/log"

	"github.com/go-redsync/redsync/v4"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const roomColumns = `r.id, r.room_number, r.room_type_id, r.status, r.floor, r.price,
	rt.name AS room_type_name, rt.capacity, rt.points_earned, r.created_at, r.updated_at`

const roomLockExpiry = 10 * time.Second

type repositories struct {
	db     *sqlx.DB
	log    log.Logger
	locker *redsync.Redsync
}

type Repositories interface {
	// db
	FindAvailable(ctx context.Context, stay helpers.DateRange, guests int) ([]entity.Room, error)
	HasConflict(ctx context.Context, roomID int64, stay helpers.DateRange, excludeBookingID int64) (bool, error)
	FindRoomByID(ctx context.Context, roomID int64) (entity.Room, error)
	LockRoom(ctx context.Context, roomID int64) (entity.Room, error)
	UpdateRoomStatus(ctx context.Context, roomID int64, status entity.RoomStatus) error
	// redis
	AcquireRoomLock(ctx context.Context, roomID int64) (func(), error)
}

func New(db *sqlx.DB, log log.Logger, locker *redsync.Redsync) Repositories {
	return &repositories{
		db:     db,
		log:    log,
		locker: locker,
	}
}

// FindAvailable implements Repositories.
func (r *repositories) FindAvailable(ctx context.Context, stay helpers.DateRange, guests int) ([]entity.Room, error) {
	query := `SELECT ` + roomColumns + `
		FROM rooms r
		JOIN room_types rt ON rt.id = r.room_type_id
		WHERE rt.capacity >= $3
		AND r.status = 'AVAILABLE'
		AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = r.id
			AND b.status <> 'CANCELLED'
			AND b.deleted_at IS NULL
			AND b.check_in_date < $2::date
			AND b.check_out_date > $1::date
		)
		ORDER BY r.room_number`

	rooms := []entity.Room{}
	if err := sqlx.SelectContext(ctx, database.Conn(ctx, r.db), &rooms, query, stay.CheckIn, stay.CheckOut, guests); err != nil {
		r.log.Error(ctx, "error find available rooms", zap.Error(err))
		return nil, errors.InternalServerError("error find available rooms")
	}
	return rooms, nil
}

// HasConflict implements Repositories.
func (r *repositories) HasConflict(ctx context.Context, roomID int64, stay helpers.DateRange, excludeBookingID int64) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM bookings
		WHERE room_id = $1
		AND id <> $4
		AND status <> 'CANCELLED'
		AND deleted_at IS NULL
		AND check_in_date < $3::date
		AND check_out_date > $2::date
	)`

	var exists bool
	if err := sqlx.GetContext(ctx, database.Conn(ctx, r.db), &exists, query, roomID, stay.CheckIn, stay.CheckOut, excludeBookingID); err != nil {
		r.log.Error(ctx, "error check booking conflict", zap.Int64("room_id", roomID), zap.Error(err))
		return false, errors.InternalServerError("error check booking conflict")
	}
	return exists, nil
}

// FindRoomByID implements Repositories.
func (r *repositories) FindRoomByID(ctx context.Context, roomID int64) (entity.Room, error) {
	query := `SELECT ` + roomColumns + `
		FROM rooms r
		JOIN room_types rt ON rt.id = r.room_type_id
		WHERE r.id = $1`

	return r.getRoom(ctx, query, roomID)
}

// LockRoom implements Repositories. The row stays locked until the
// surrounding transaction ends.
func (r *repositories) LockRoom(ctx context.Context, roomID int64) (entity.Room, error) {
	if !database.InTransaction(ctx) {
		return entity.Room{}, errors.InternalServerError("room lock requires a transaction")
	}

	query := `SELECT ` + roomColumns + `
		FROM rooms r
		JOIN room_types rt ON rt.id = r.room_type_id
		WHERE r.id = $1
		FOR UPDATE OF r`

	return r.getRoom(ctx, query, roomID)
}

func (r *repositories) getRoom(ctx context.Context, query string, roomID int64) (entity.Room, error) {
	var room entity.Room
	err := sqlx.GetContext(ctx, database.Conn(ctx, r.db), &room, query, roomID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Room{}, errors.NotFound(fmt.Sprintf("room %d not found", roomID))
	}
	if err != nil {
		r.log.Error(ctx, "error find room", zap.Int64("room_id", roomID), zap.Error(err))
		return entity.Room{}, errors.InternalServerError("error find room")
	}
	return room, nil
}

// UpdateRoomStatus implements Repositories.
func (r *repositories) UpdateRoomStatus(ctx context.Context, roomID int64, status entity.RoomStatus) error {
	query := `UPDATE rooms SET status = $1, updated_at = now() WHERE id = $2`

	res, err := database.Conn(ctx, r.db).ExecContext(ctx, query, status, roomID)
	if err != nil {
		r.log.Error(ctx, "error update room status", zap.Int64("room_id", roomID), zap.Error(err))
		return errors.InternalServerError("error update room status")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error update room status")
	}
	if affected == 0 {
		return errors.NotFound(fmt.Sprintf("room %d not found", roomID))
	}
	return nil
}

// AcquireRoomLock implements Repositories. It serialises booking writes for a
// room across service instances before the database row lock is taken.
func (r *repositories) AcquireRoomLock(ctx context.Context, roomID int64) (func(), error) {
	if r.locker == nil {
		return func() {}, nil
	}

	mutex := r.locker.NewMutex(fmt.Sprintf("room:%d:booking", roomID),
		redsync.WithExpiry(roomLockExpiry),
		redsync.WithTries(20),
		redsync.WithRetryDelay(100*time.Millisecond),
	)

	if err := mutex.LockContext(ctx); err != nil {
		if lockContended(err) {
			r.log.Warn(ctx, "room lock held by another request", zap.Int64("room_id", roomID), zap.Error(err))
			return nil, errors.Conflict("room is being booked by another request, please retry")
		}
		// redis unreachable: the database row lock still serialises the write
		r.log.Error(ctx, "error acquire room lock, continuing on row lock", zap.Int64("room_id", roomID), zap.Error(err))
		return func() {}, nil
	}

	return func() {
		if _, err := mutex.UnlockContext(context.Background()); err != nil {
			r.log.Warn(ctx, "error release room lock", zap.Int64("room_id", roomID), zap.Error(err))
		}
	}, nil
}

// lockContended reports whether err means another holder owns the lock, as
// opposed to redis itself failing.
func lockContended(err error) bool {
	var taken *redsync.ErrTaken
	var nodeTaken *redsync.ErrNodeTaken
	return stderrors.Is(err, redsync.ErrFailed) ||
		stderrors.As(err, &taken) ||
		stderrors.As(err, &nodeTaken)
}
