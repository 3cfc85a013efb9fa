package request

type AddFoodOrderRequest struct {
	RoomNumber int `json:"room_number" validate:"required,min=1"`
	ItemNo     int `json:"item_no" validate:"required,min=1"`
	Quantity   int `json:"quantity" validate:"required,min=1"`
}
