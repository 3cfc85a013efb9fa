package usecase

import (
	"context"
	"fmt"

	"hotel-frontdesk/internal/data/catalog"
	"hotel-frontdesk/internal/data/entity"
	"hotel-frontdesk/internal/data/ledger"
	"hotel-frontdesk/internal/dto/response"

	"go.uber.org/zap"
)

type RoomService interface {
	ListRoomTypes(ctx context.Context) ([]response.RoomTypeResponse, error)
	GetAvailability(ctx context.Context, typeID string) (*response.AvailabilityResponse, error)
}

type roomService struct {
	store ledger.Store
	log   *zap.Logger
}

func NewRoomService(store ledger.Store, log *zap.Logger) RoomService {
	return &roomService{
		store: store,
		log:   log.With(zap.String("service", "room")),
	}
}

// AvailableNumbers lists the free room numbers for a type: 1..TotalRooms minus
// the numbers already booked under that type. Bookings of other types never
// block a number. A nil type has no numbers.
func AvailableNumbers(roomType *entity.RoomType, rooms []entity.Room) []int {
	if roomType == nil {
		return []int{}
	}

	booked := make(map[int]bool, len(rooms))
	for _, room := range rooms {
		if room.Type == roomType.ID {
			booked[room.RoomNumber] = true
		}
	}

	available := make([]int, 0, roomType.TotalRooms)
	for n := 1; n <= roomType.TotalRooms; n++ {
		if !booked[n] {
			available = append(available, n)
		}
	}
	return available
}

func (s *roomService) ListRoomTypes(ctx context.Context) ([]response.RoomTypeResponse, error) {
	rooms, err := s.store.Load(ctx)
	if err != nil {
		s.log.Error("Failed to load ledger for room listing", zap.Error(err))
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	types := catalog.RoomTypes()
	result := make([]response.RoomTypeResponse, len(types))
	for i, rt := range types {
		result[i] = response.RoomTypeToResponse(rt, len(AvailableNumbers(&rt, rooms)))
	}
	return result, nil
}

func (s *roomService) GetAvailability(ctx context.Context, typeID string) (*response.AvailabilityResponse, error) {
	rooms, err := s.store.Load(ctx)
	if err != nil {
		s.log.Error("Failed to load ledger for availability", zap.Error(err))
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	// Unknown type answers with no numbers rather than an error.
	roomType := catalog.FindRoomType(typeID)

	return &response.AvailabilityResponse{
		RoomType:         typeID,
		AvailableNumbers: AvailableNumbers(roomType, rooms),
	}, nil
}
