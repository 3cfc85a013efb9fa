package request

type CreateCheckoutOrderRequest struct {
	RoomNumber int `json:"room_number" validate:"required,min=1"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

type CancelCheckoutRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}
