package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-frontdesk/internal/data/catalog"
	"hotel-frontdesk/internal/data/entity"
	"hotel-frontdesk/internal/data/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedRooms(t *testing.T, store ledger.Store, rooms ...entity.Room) {
	t.Helper()
	_, err := store.Update(context.Background(), func(current []entity.Room) ([]entity.Room, error) {
		return append(current, rooms...), nil
	})
	require.NoError(t, err)
}

func bookedRoom(number int, roomType string) entity.Room {
	return entity.Room{
		RoomNumber: number,
		Type:       roomType,
		Guest1:     entity.Guest{Name: "Asha Rao", Contact: "9876543210", Gender: "female"},
		FoodOrders: []entity.FoodOrder{},
		BookedAt:   time.Now(),
	}
}

func TestAvailableNumbers(t *testing.T) {
	roomType := catalog.FindRoomType("luxury-single") // 10 rooms
	require.NotNil(t, roomType)

	rooms := []entity.Room{
		bookedRoom(2, "luxury-single"),
		bookedRoom(5, "luxury-single"),
		bookedRoom(2, "deluxe-double"), // other type, same number: no effect
	}

	assert.Equal(t, []int{1, 3, 4, 6, 7, 8, 9, 10}, AvailableNumbers(roomType, rooms))
}

func TestAvailableNumbersEmptyLedger(t *testing.T) {
	roomType := catalog.FindRoomType("luxury-double")
	require.NotNil(t, roomType)

	available := AvailableNumbers(roomType, nil)
	assert.Len(t, available, roomType.TotalRooms)
	assert.Equal(t, 1, available[0])
	assert.Equal(t, roomType.TotalRooms, available[len(available)-1])
}

func TestAvailableNumbersUnknownType(t *testing.T) {
	assert.Empty(t, AvailableNumbers(nil, []entity.Room{bookedRoom(1, "luxury-single")}))
}

func TestGetAvailability(t *testing.T) {
	store := ledger.NewMemoryStore()
	seedRooms(t, store, bookedRoom(2, "luxury-single"), bookedRoom(5, "luxury-single"))

	service := NewRoomService(store, zap.NewNop())

	resp, err := service.GetAvailability(context.Background(), "luxury-single")
	require.NoError(t, err)
	assert.Equal(t, "luxury-single", resp.RoomType)
	assert.Equal(t, []int{1, 3, 4, 6, 7, 8, 9, 10}, resp.AvailableNumbers)
}

func TestGetAvailabilityUnknownTypeIsEmptyNotError(t *testing.T) {
	service := NewRoomService(ledger.NewMemoryStore(), zap.NewNop())

	resp, err := service.GetAvailability(context.Background(), "penthouse")
	require.NoError(t, err)
	assert.Empty(t, resp.AvailableNumbers)
}

func TestListRoomTypes(t *testing.T) {
	store := ledger.NewMemoryStore()
	seedRooms(t, store, bookedRoom(1, "deluxe-single"), bookedRoom(2, "deluxe-single"))

	service := NewRoomService(store, zap.NewNop())

	types, err := service.ListRoomTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 4)

	for _, rt := range types {
		if rt.ID == "deluxe-single" {
			assert.Equal(t, 20, rt.TotalRooms)
			assert.Equal(t, 18, rt.AvailableRooms)
		} else {
			assert.Equal(t, rt.TotalRooms, rt.AvailableRooms)
		}
	}
}
