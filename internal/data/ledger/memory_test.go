package ledger

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"hotel-frontdesk/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoom(number int, roomType string) entity.Room {
	return entity.Room{
		RoomNumber: number,
		Type:       roomType,
		Guest1:     entity.Guest{Name: "Asha Rao", Contact: "9876543210", Gender: "female"},
		FoodOrders: []entity.FoodOrder{},
		BookedAt:   time.Now().Truncate(time.Second),
	}
}

func TestMemoryStoreEmptyOnFirstLoad(t *testing.T) {
	store := NewMemoryStore()

	rooms, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	saved := testRoom(7, "luxury-single")
	saved.FoodOrders = []entity.FoodOrder{
		{ItemNo: 1, Name: "Sandwich", Quantity: 3, Price: 150},
		{ItemNo: 4, Name: "Coke", Quantity: 1, Price: 30},
	}

	_, err := store.Update(ctx, func(rooms []entity.Room) ([]entity.Room, error) {
		return append(rooms, saved), nil
	})
	require.NoError(t, err)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, saved.RoomNumber, loaded[0].RoomNumber)
	assert.Equal(t, saved.Type, loaded[0].Type)
	assert.Equal(t, saved.Guest1, loaded[0].Guest1)
	// Food orders keep insertion order through the round trip.
	assert.Equal(t, saved.FoodOrders, loaded[0].FoodOrders)
	assert.True(t, saved.BookedAt.Equal(loaded[0].BookedAt))
}

func TestMemoryStoreUpdateErrorLeavesLedgerUnchanged(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Update(ctx, func(rooms []entity.Room) ([]entity.Room, error) {
		return append(rooms, testRoom(3, "deluxe-double")), nil
	})
	require.NoError(t, err)

	_, err = store.Update(ctx, func(rooms []entity.Room) ([]entity.Room, error) {
		return nil, fmt.Errorf("room 3 is already booked")
	})
	require.Error(t, err)

	rooms, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, 3, rooms[0].RoomNumber)
}

func TestMemoryStoreSerializesConcurrentUpdates(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := store.Update(ctx, func(rooms []entity.Room) ([]entity.Room, error) {
				return append(rooms, testRoom(n, "deluxe-single")), nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// No interleaved write may be lost.
	rooms, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 10)
}
