package request

type FindAvailable struct {
	CheckIn  string `query:"checkin" validate:"required"`
	CheckOut string `query:"checkout" validate:"required"`
	Guests   int    `query:"guests" validate:"required,min=1"`
}

type CheckConflict struct {
	CheckIn  string `query:"checkin" validate:"required"`
	CheckOut string `query:"checkout" validate:"required"`
}
