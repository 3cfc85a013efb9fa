package request

type GuestRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact" validate:"required"`
	Gender  string `json:"gender" validate:"required"`
}

type CreateBookingRequest struct {
	RoomType   string        `json:"room_type" validate:"required"`
	RoomNumber int           `json:"room_number" validate:"required,min=1"`
	Guest1     GuestRequest  `json:"guest1"`
	Guest2     *GuestRequest `json:"guest2,omitempty"`
}
