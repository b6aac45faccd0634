package entity

import (
	"database/sql"
	"time"
)

type Customer struct {
	ID            int64  `db:"id"`
	FullName      string `db:"full_name"`
	CurrentPoints int64  `db:"current_points"`
	LoyaltyTierID int64  `db:"loyalty_tier_id"`
}

type Tier struct {
	ID             int64          `db:"id"`
	Name           string         `db:"name"`
	PointsRequired int64          `db:"points_required"`
	Description    sql.NullString `db:"description"`
}

// RoomTypeAward is the fixed number of points a completed stay in a room
// type earns.
type RoomTypeAward struct {
	RoomTypeID   int64  `db:"id"`
	Name         string `db:"name"`
	PointsEarned int64  `db:"points_earned"`
}

// PointTransaction is an append-only entry of the points log. The customer's
// balance is the sum of PointsEarned over their entries.
type PointTransaction struct {
	ID           int64          `db:"id"`
	CustomerID   int64          `db:"customer_id"`
	BookingID    sql.NullInt64  `db:"booking_id"`
	PointsEarned int64          `db:"points_earned"`
	Description  sql.NullString `db:"description"`
	CreatedAt    time.Time      `db:"created_at"`
}

// ResolveTier returns the highest tier whose threshold the balance meets.
// tiers must be ordered by threshold, highest first.
func ResolveTier(tiers []Tier, balance int64) (Tier, bool) {
	for _, tier := range tiers {
		if tier.PointsRequired <= balance {
			return tier, true
		}
	}
	return Tier{}, false
}
