package catalog

import (
	"testing"

	"hotel-frontdesk/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomTypesFixedCatalog(t *testing.T) {
	types := RoomTypes()
	require.Len(t, types, 4)

	byID := map[string]entity.RoomType{}
	for _, rt := range types {
		byID[rt.ID] = rt
	}

	assert.Equal(t, 4000, byID["luxury-double"].Price)
	assert.Equal(t, 10, byID["luxury-double"].TotalRooms)
	assert.Equal(t, entity.OccupancyDouble, byID["deluxe-double"].Occupancy)
	assert.Equal(t, 20, byID["deluxe-double"].TotalRooms)
	assert.Equal(t, entity.OccupancySingle, byID["luxury-single"].Occupancy)
	assert.Equal(t, 1200, byID["deluxe-single"].Price)
}

func TestFindRoomType(t *testing.T) {
	rt := FindRoomType("luxury-single")
	require.NotNil(t, rt)
	assert.Equal(t, "Luxury Single Room", rt.Name)
	assert.Equal(t, 2200, rt.Price)

	assert.Nil(t, FindRoomType("presidential-suite"))
}

func TestRoomTypesReturnsCopy(t *testing.T) {
	types := RoomTypes()
	types[0].Price = 1

	fresh := FindRoomType(types[0].ID)
	require.NotNil(t, fresh)
	assert.NotEqual(t, 1, fresh.Price)
}

func TestFoodMenu(t *testing.T) {
	menu := FoodMenu()
	require.Len(t, menu, 4)
	assert.Equal(t, entity.MenuItem{ItemNo: 1, Name: "Sandwich", Price: 50}, menu[0])

	item := FindMenuItem(4)
	require.NotNil(t, item)
	assert.Equal(t, "Coke", item.Name)
	assert.Equal(t, 30, item.Price)

	assert.Nil(t, FindMenuItem(99))
}
