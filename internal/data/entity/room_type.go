package entity

type RoomCategory string

const (
	RoomCategoryLuxury RoomCategory = "luxury"
	RoomCategoryDeluxe RoomCategory = "deluxe"
)

type Occupancy string

const (
	OccupancySingle Occupancy = "single"
	OccupancyDouble Occupancy = "double"
)

// RoomType is a catalog descriptor. The catalog is fixed at process start;
// these values are never persisted with the ledger.
type RoomType struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    RoomCategory `json:"category"`
	Occupancy   Occupancy    `json:"roomType"`
	Beds        string       `json:"beds"`
	AC          bool         `json:"ac"`
	Breakfast   bool         `json:"breakfast"`
	Price       int          `json:"price"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	TotalRooms  int          `json:"totalRooms"`
}

// MenuItem is a fixed food-menu entry. Price is per unit.
type MenuItem struct {
	ItemNo int    `json:"itemno"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
}
