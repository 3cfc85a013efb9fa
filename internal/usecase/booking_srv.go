package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-frontdesk/internal/data/catalog"
	"hotel-frontdesk/internal/data/entity"
	"hotel-frontdesk/internal/data/ledger"
	"hotel-frontdesk/internal/dto/request"
	"hotel-frontdesk/internal/dto/response"
	"hotel-frontdesk/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListBookings(ctx context.Context) ([]response.BookingResponse, error)
}

type bookingService struct {
	store ledger.Store
	log   *zap.Logger
}

func NewBookingService(store ledger.Store, log *zap.Logger) BookingService {
	return &bookingService{
		store: store,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request; nested guest structs are validated along with it
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Resolve room type
	roomType := catalog.FindRoomType(req.RoomType)
	if roomType == nil {
		return nil, fmt.Errorf("room type %s not found", req.RoomType)
	}

	// Double rooms need the second guest
	var guest2 *entity.Guest
	if roomType.Occupancy == entity.OccupancyDouble {
		if req.Guest2 == nil {
			return nil, fmt.Errorf("validation failed: Guest2: required for double occupancy")
		}
		guest2 = &entity.Guest{
			Name:    req.Guest2.Name,
			Contact: req.Guest2.Contact,
			Gender:  req.Guest2.Gender,
		}
	}

	booking := entity.Room{
		RoomNumber: req.RoomNumber,
		Type:       roomType.ID,
		Guest1: entity.Guest{
			Name:    req.Guest1.Name,
			Contact: req.Guest1.Contact,
			Gender:  req.Guest1.Gender,
		},
		Guest2:     guest2,
		FoodOrders: []entity.FoodOrder{},
		BookedAt:   time.Now(),
	}

	// Availability is re-checked inside the same atomic update that appends,
	// so two callers racing for a just-freed number cannot both win.
	_, err := s.store.Update(ctx, func(rooms []entity.Room) ([]entity.Room, error) {
		if req.RoomNumber < 1 || req.RoomNumber > roomType.TotalRooms {
			return nil, fmt.Errorf("invalid room number %d for %s", req.RoomNumber, roomType.ID)
		}
		for _, room := range rooms {
			if room.Type == roomType.ID && room.RoomNumber == req.RoomNumber {
				return nil, fmt.Errorf("room %d is already booked", req.RoomNumber)
			}
		}
		return append(rooms, booking), nil
	})
	if err != nil {
		s.log.Warn("Create booking failed",
			zap.Error(err),
			zap.String("room_type", req.RoomType),
			zap.Int("room_number", req.RoomNumber),
		)
		return nil, err
	}

	s.log.Info("Room booked",
		zap.String("room_type", roomType.ID),
		zap.Int("room_number", booking.RoomNumber),
		zap.String("guest", booking.Guest1.Name),
	)

	resp := response.RoomToBookingResponse(booking, roomType.Name)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]response.BookingResponse, error) {
	rooms, err := s.store.Load(ctx)
	if err != nil {
		s.log.Error("Failed to load ledger for booking list", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(rooms))
	for i, room := range rooms {
		name := ""
		if rt := catalog.FindRoomType(room.Type); rt != nil {
			name = rt.Name
		}
		responses[i] = response.RoomToBookingResponse(room, name)
	}

	return responses, nil
}
