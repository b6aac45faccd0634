package response

import "time"

type PointTransaction struct {
	ID          int64     `json:"id"`
	BookingID   *int64    `json:"booking_id,omitempty"`
	Points      int64     `json:"points"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Accrual describes the outcome of processing one checkout.
type Accrual struct {
	BookingID  int64  `json:"booking_id"`
	CustomerID int64  `json:"customer_id"`
	Points     int64  `json:"points"`
	Balance    int64  `json:"balance"`
	Tier       string `json:"tier"`
	Applied    bool   `json:"applied"`
}

type Balance struct {
	CustomerID int64  `json:"customer_id"`
	Points     int64  `json:"points"`
	TierID     int64  `json:"tier_id"`
	Tier       string `json:"tier"`
}
