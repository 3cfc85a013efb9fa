package response

import (
	"hotel-frontdesk/internal/data/entity"
)

type RoomTypeResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Occupancy      string `json:"occupancy"`
	Beds           string `json:"beds"`
	AC             bool   `json:"ac"`
	Breakfast      bool   `json:"breakfast"`
	Price          int    `json:"price"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	TotalRooms     int    `json:"total_rooms"`
	AvailableRooms int    `json:"available_rooms"`
}

type AvailabilityResponse struct {
	RoomType         string `json:"room_type"`
	AvailableNumbers []int  `json:"available_numbers"`
}

type MenuItemResponse struct {
	ItemNo int    `json:"item_no"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
}

func RoomTypeToResponse(rt entity.RoomType, available int) RoomTypeResponse {
	return RoomTypeResponse{
		ID:             rt.ID,
		Name:           rt.Name,
		Category:       string(rt.Category),
		Occupancy:      string(rt.Occupancy),
		Beds:           rt.Beds,
		AC:             rt.AC,
		Breakfast:      rt.Breakfast,
		Price:          rt.Price,
		Description:    rt.Description,
		Image:          rt.Image,
		TotalRooms:     rt.TotalRooms,
		AvailableRooms: available,
	}
}

func MenuItemToResponse(item entity.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ItemNo: item.ItemNo,
		Name:   item.Name,
		Price:  item.Price,
	}
}
