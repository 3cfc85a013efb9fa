package entity

import (
	"time"
)

type Guest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Gender  string `json:"gender"`
}

// FoodOrder is one priced line item on a room's bill. Price is the extended
// price (unit price x quantity), matching what the persisted blob stores.
type FoodOrder struct {
	ItemNo   int    `json:"itemno"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// Room is one ledger entry: a currently checked-in room. Guest2 is present
// only for double-occupancy types. JSON field names match the reference blob
// format so an existing ledger loads unchanged.
type Room struct {
	RoomNumber int         `json:"roomNumber"`
	Type       string      `json:"type"`
	Guest1     Guest       `json:"guest1"`
	Guest2     *Guest      `json:"guest2,omitempty"`
	FoodOrders []FoodOrder `json:"foodOrders"`
	BookedAt   time.Time   `json:"bookedDate"`
}

// FoodTotal sums the extended prices of all food orders on the room.
func (r *Room) FoodTotal() int {
	total := 0
	for _, order := range r.FoodOrders {
		total += order.Price
	}
	return total
}
