package response

import "github.com/shopspring/decimal"

type Room struct {
	ID           int64           `json:"id"`
	RoomNumber   string          `json:"room_number"`
	RoomType     string          `json:"room_type"`
	Capacity     int             `json:"capacity"`
	Status       string          `json:"status"`
	Floor        *int64          `json:"floor,omitempty"`
	Price        decimal.Decimal `json:"price"`
	PointsEarned int             `json:"points_earned"`
}

type Conflict struct {
	RoomID      int64  `json:"room_id"`
	CheckIn     string `json:"checkin"`
	CheckOut    string `json:"checkout"`
	HasConflict bool   `json:"has_conflict"`
}
