package helpers

import (
	"time"

	"hotel-booking-service/internal/pkg/errors"
)

const DateLayout = "2006-01-02"

// DateRange is a half-open stay interval [CheckIn, CheckOut) at day precision.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, errors.BadRequest("invalid date " + value + ", expected YYYY-MM-DD")
	}
	return t, nil
}

// ParseDateRange parses both ends and rejects ranges where checkout is not after checkin.
func ParseDateRange(checkin, checkout string) (DateRange, error) {
	in, err := ParseDate(checkin)
	if err != nil {
		return DateRange{}, err
	}
	out, err := ParseDate(checkout)
	if err != nil {
		return DateRange{}, err
	}
	r := NewDateRange(in, out)
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

func NewDateRange(checkin, checkout time.Time) DateRange {
	return DateRange{CheckIn: truncateDay(checkin), CheckOut: truncateDay(checkout)}
}

func (r DateRange) Validate() error {
	if !r.CheckIn.Before(r.CheckOut) {
		return errors.BadRequest("checkout date must be after checkin date")
	}
	return nil
}

// Overlaps reports whether two stays conflict. Back-to-back stays sharing a
// turnover day do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && r.CheckOut.After(other.CheckIn)
}

func (r DateRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
