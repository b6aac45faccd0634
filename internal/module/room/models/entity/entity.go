package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type RoomStatus string

const (
	RoomAvailable    RoomStatus = "AVAILABLE"
	RoomReserved     RoomStatus = "RESERVED"
	RoomOccupied     RoomStatus = "OCCUPIED"
	RoomOutOfService RoomStatus = "OUT_OF_SERVICE"
)

// Room is a rooms row joined with the fields of its room type that the
// booking core reads.
type Room struct {
	ID           int64           `db:"id"`
	RoomNumber   string          `db:"room_number"`
	RoomTypeID   int64           `db:"room_type_id"`
	Status       RoomStatus      `db:"status"`
	Floor        sql.NullInt64   `db:"floor"`
	Price        decimal.Decimal `db:"price"`
	RoomTypeName string          `db:"room_type_name"`
	Capacity     int             `db:"capacity"`
	PointsEarned int             `db:"points_earned"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    sql.NullTime    `db:"updated_at"`
}
