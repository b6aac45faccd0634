package entity

import (
	"database/sql"
	"strings"
	"time"

	roomEntity "hotel-booking-service/internal/module/room/models/entity"
	"hotel-booking-service/internal/pkg/errors"
	"hotel-booking-service/internal/pkg/helpers"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	StatusPending    BookingStatus = "PENDING"
	StatusConfirmed  BookingStatus = "CONFIRMED"
	StatusCheckedIn  BookingStatus = "CHECKED_IN"
	StatusCheckedOut BookingStatus = "CHECKED_OUT"
	StatusCancelled  BookingStatus = "CANCELLED"
)

var statuses = []BookingStatus{StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled}

// ParseBookingStatus accepts any casing and "-" or " " in place of "_",
// so "checked-in" and "Checked In" both parse to CHECKED_IN.
func ParseBookingStatus(value string) (BookingStatus, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	for _, s := range statuses {
		if BookingStatus(normalized) == s {
			return s, nil
		}
	}
	return "", errors.BadRequest("invalid booking status: " + value)
}

func (s BookingStatus) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

// TargetRoomStatus is the room status a booking transition into next forces,
// given the room's current status. A result equal to current means no write.
func TargetRoomStatus(next BookingStatus, current roomEntity.RoomStatus) roomEntity.RoomStatus {
	switch next {
	case StatusConfirmed:
		return roomEntity.RoomReserved
	case StatusCheckedIn:
		return roomEntity.RoomOccupied
	case StatusCheckedOut, StatusCancelled:
		return roomEntity.RoomAvailable
	case StatusPending:
		if current == roomEntity.RoomReserved {
			return roomEntity.RoomAvailable
		}
	}
	return current
}

type Booking struct {
	ID               int64           `db:"id"`
	Code             string          `db:"booking_code"`
	CustomerID       int64           `db:"customer_id"`
	RoomID           int64           `db:"room_id"`
	CustomerFullName string          `db:"customer_full_name"`
	CustomerPhone    string          `db:"customer_phone"`
	CheckInDate      time.Time       `db:"check_in_date"`
	CheckOutDate     time.Time       `db:"check_out_date"`
	PricePerNight    decimal.Decimal `db:"price_per_night"`
	TotalPrice       decimal.Decimal `db:"total_price"`
	Adults           int             `db:"adults"`
	Children         int             `db:"children"`
	Status           BookingStatus   `db:"status"`
	ActualCheckinAt  sql.NullTime    `db:"actual_checkin_at"`
	ActualCheckoutAt sql.NullTime    `db:"actual_checkout_at"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        sql.NullTime    `db:"updated_at"`
	DeletedAt        sql.NullTime    `db:"deleted_at"`

	// read-only, joined from rooms and room_types
	RoomNumber   string `db:"room_number"`
	RoomTypeID   int64  `db:"room_type_id"`
	RoomTypeName string `db:"room_type_name"`
}

func (b Booking) Stay() helpers.DateRange {
	return helpers.NewDateRange(b.CheckInDate, b.CheckOutDate)
}

func (b Booking) Nights() int {
	return b.Stay().Nights()
}

// Total is price per night times the number of nights.
func Total(pricePerNight decimal.Decimal, stay helpers.DateRange) decimal.Decimal {
	return pricePerNight.Mul(decimal.NewFromInt(int64(stay.Nights())))
}

type Customer struct {
	ID            int64          `db:"id"`
	FullName      string         `db:"full_name"`
	IDNumber      string         `db:"id_number"`
	Email         string         `db:"email"`
	Phone         sql.NullString `db:"phone"`
	Address       sql.NullString `db:"address"`
	CurrentPoints int            `db:"current_points"`
	LoyaltyTierID int64          `db:"loyalty_tier_id"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     sql.NullTime   `db:"updated_at"`
}
