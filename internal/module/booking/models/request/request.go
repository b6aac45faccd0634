package request

type CreateBooking struct {
	CustomerID       int64  `json:"customer_id" validate:"required"`
	RoomID           int64  `json:"room_id" validate:"required"`
	CustomerFullName string `json:"customer"`
	Phone            string `json:"phone"`
	CheckIn          string `json:"checkin" validate:"required"`
	CheckOut         string `json:"checkout" validate:"required"`
	Adults           int    `json:"adults"`
	Children         int    `json:"children" validate:"min=0"`
}

// PublicBooking is submitted by guests. The customer fields are only needed
// when the request carries no identity token.
type PublicBooking struct {
	RoomID           int64  `json:"room_id" validate:"required"`
	CheckIn          string `json:"checkin" validate:"required"`
	CheckOut         string `json:"checkout" validate:"required"`
	Adults           int    `json:"adults"`
	Children         int    `json:"children" validate:"min=0"`
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone    string `json:"customer_phone"`
	CustomerAddress  string `json:"customer_address"`
	CustomerIDNumber string `json:"customer_id_number"`
}

type UpdateStatus struct {
	Status string `json:"status" validate:"required"`
}

// UpdateBooking changes only the fields that are set.
type UpdateBooking struct {
	CustomerID       int64  `json:"customer_id"`
	RoomID           int64  `json:"room_id"`
	CustomerFullName string `json:"customer"`
	Phone            string `json:"phone"`
	CheckIn          string `json:"checkin"`
	CheckOut         string `json:"checkout"`
	Adults           *int   `json:"adults"`
	Children         *int   `json:"children"`
}
