package event

import "time"

const (
	TopicCheckedOut         = "booking_checked_out"
	TopicCheckedOutPoisoned = "booking_checked_out_poisoned"
)

// CheckedOut is emitted once per booking, after the transition into
// CHECKED_OUT has been committed.
type CheckedOut struct {
	BookingID        int64     `json:"booking_id"`
	ConfirmationCode string    `json:"confirmation_code"`
	CustomerID       int64     `json:"customer_id"`
	RoomID           int64     `json:"room_id"`
	RoomTypeID       int64     `json:"room_type_id"`
	CheckedOutAt     time.Time `json:"checked_out_at"`
}
