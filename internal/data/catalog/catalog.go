// Package catalog holds the fixed room-type and food-menu reference data.
// Both lists are immutable for the process lifetime.
package catalog

import (
	"hotel-frontdesk/internal/data/entity"
)

var roomTypes = []entity.RoomType{
	{
		ID:          "luxury-double",
		Name:        "Luxury Double Room",
		Category:    entity.RoomCategoryLuxury,
		Occupancy:   entity.OccupancyDouble,
		Beds:        "1 King Size Bed",
		AC:          true,
		Breakfast:   true,
		Price:       4000,
		Description: "Experience ultimate luxury with our premium double room featuring AC, complimentary breakfast, and exquisite amenities.",
		Image:       "luxury-double.jpg",
		TotalRooms:  10,
	},
	{
		ID:          "deluxe-double",
		Name:        "Deluxe Double Room",
		Category:    entity.RoomCategoryDeluxe,
		Occupancy:   entity.OccupancyDouble,
		Beds:        "1 Queen Size Bed",
		AC:          false,
		Breakfast:   true,
		Price:       3000,
		Description: "Comfortable and spacious deluxe room with complimentary breakfast and modern amenities.",
		Image:       "deluxe-double.jpg",
		TotalRooms:  20,
	},
	{
		ID:          "luxury-single",
		Name:        "Luxury Single Room",
		Category:    entity.RoomCategoryLuxury,
		Occupancy:   entity.OccupancySingle,
		Beds:        "1 Single Bed",
		AC:          true,
		Breakfast:   true,
		Price:       2200,
		Description: "Perfect for solo travelers seeking luxury and comfort with AC and complimentary breakfast.",
		Image:       "luxury-single.jpg",
		TotalRooms:  10,
	},
	{
		ID:          "deluxe-single",
		Name:        "Deluxe Single Room",
		Category:    entity.RoomCategoryDeluxe,
		Occupancy:   entity.OccupancySingle,
		Beds:        "1 Single Bed",
		AC:          false,
		Breakfast:   true,
		Price:       1200,
		Description: "Cozy single room with all essential amenities and complimentary breakfast.",
		Image:       "deluxe-single.jpg",
		TotalRooms:  20,
	},
}

var foodMenu = []entity.MenuItem{
	{ItemNo: 1, Name: "Sandwich", Price: 50},
	{ItemNo: 2, Name: "Pasta", Price: 60},
	{ItemNo: 3, Name: "Noodles", Price: 70},
	{ItemNo: 4, Name: "Coke", Price: 30},
}

// RoomTypes returns all room type descriptors in display order.
func RoomTypes() []entity.RoomType {
	types := make([]entity.RoomType, len(roomTypes))
	copy(types, roomTypes)
	return types
}

// FindRoomType returns the descriptor for the given ID, or nil if unknown.
func FindRoomType(id string) *entity.RoomType {
	for i := range roomTypes {
		if roomTypes[i].ID == id {
			rt := roomTypes[i]
			return &rt
		}
	}
	return nil
}

// FoodMenu returns the full food menu in display order.
func FoodMenu() []entity.MenuItem {
	menu := make([]entity.MenuItem, len(foodMenu))
	copy(menu, foodMenu)
	return menu
}

// FindMenuItem returns the menu item with the given number, or nil if unknown.
func FindMenuItem(itemNo int) *entity.MenuItem {
	for i := range foodMenu {
		if foodMenu[i].ItemNo == itemNo {
			item := foodMenu[i]
			return &item
		}
	}
	return nil
}
