package response

type BillResponse struct {
	RoomNumber   int                 `json:"room_number"`
	RoomTypeName string              `json:"room_type_name"`
	GuestName    string              `json:"guest_name"`
	Contact      string              `json:"contact"`
	RoomCharge   int                 `json:"room_charge"`
	FoodOrders   []FoodOrderResponse `json:"food_orders"`
	Total        int                 `json:"total"`
}

type CheckoutOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

type PaymentResponse struct {
	OrderID     string `json:"order_id"`
	PaymentID   string `json:"payment_id"`
	RoomNumber  int    `json:"room_number"`
	AmountPaid  int    `json:"amount_paid"`
	Status      string `json:"status"`
	InvoiceName string `json:"invoice_name"`
	ReceiptName string `json:"receipt_name"`
}
