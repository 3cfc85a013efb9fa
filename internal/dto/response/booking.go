package response

import (
	"time"

	"hotel-frontdesk/internal/data/entity"
)

type GuestResponse struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Gender  string `json:"gender"`
}

type FoodOrderResponse struct {
	ItemNo   int    `json:"item_no"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

type BookingResponse struct {
	RoomNumber int                 `json:"room_number"`
	RoomType   string              `json:"room_type"`
	RoomName   string              `json:"room_name,omitempty"`
	Guest1     GuestResponse       `json:"guest1"`
	Guest2     *GuestResponse      `json:"guest2,omitempty"`
	FoodOrders []FoodOrderResponse `json:"food_orders"`
	BookedAt   time.Time           `json:"booked_at"`
}

func GuestToResponse(g entity.Guest) GuestResponse {
	return GuestResponse{
		Name:    g.Name,
		Contact: g.Contact,
		Gender:  g.Gender,
	}
}

func FoodOrderToResponse(order entity.FoodOrder) FoodOrderResponse {
	return FoodOrderResponse{
		ItemNo:   order.ItemNo,
		Name:     order.Name,
		Quantity: order.Quantity,
		Price:    order.Price,
	}
}

func RoomToBookingResponse(room entity.Room, roomName string) BookingResponse {
	orders := make([]FoodOrderResponse, len(room.FoodOrders))
	for i, order := range room.FoodOrders {
		orders[i] = FoodOrderToResponse(order)
	}

	resp := BookingResponse{
		RoomNumber: room.RoomNumber,
		RoomType:   room.Type,
		RoomName:   roomName,
		Guest1:     GuestToResponse(room.Guest1),
		FoodOrders: orders,
		BookedAt:   room.BookedAt,
	}
	if room.Guest2 != nil {
		guest2 := GuestToResponse(*room.Guest2)
		resp.Guest2 = &guest2
	}

	return resp
}
