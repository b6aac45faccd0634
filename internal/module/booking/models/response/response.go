package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type Booking struct {
	ID               int64           `json:"id"`
	Code             string          `json:"code"`
	Status           string          `json:"status"`
	CustomerID       int64           `json:"customer_id"`
	Customer         string          `json:"customer"`
	Phone            string          `json:"phone"`
	RoomID           int64           `json:"room_id"`
	RoomNumber       string          `json:"room_number"`
	RoomType         string          `json:"room_type"`
	CheckIn          string          `json:"checkin"`
	CheckOut         string          `json:"checkout"`
	Nights           int             `json:"nights"`
	PricePerNight    decimal.Decimal `json:"price_per_night"`
	Total            decimal.Decimal `json:"total"`
	Adults           int             `json:"adults"`
	Children         int             `json:"children"`
	ActualCheckinAt  *time.Time      `json:"actual_checkin_at,omitempty"`
	ActualCheckoutAt *time.Time      `json:"actual_checkout_at,omitempty"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	CreatedAt        time.Time       `json:"created_at"`
	DeletedAt        *time.Time      `json:"deleted_at,omitempty"`
}

type BookingSummary struct {
	Code   string          `json:"code"`
	Status string          `json:"status"`
	Total  decimal.Decimal `json:"total"`
}

type History struct {
	Code       string          `json:"booking_code"`
	RoomNumber string          `json:"room_number"`
	RoomType   string          `json:"room_type"`
	CheckIn    string          `json:"checkin"`
	CheckOut   string          `json:"checkout"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
}

// Payment is one entry returned by the payment ledger.
type Payment struct {
	ID     int64           `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

type PaymentLedger struct {
	Message string    `json:"message"`
	Data    []Payment `json:"data"`
}
