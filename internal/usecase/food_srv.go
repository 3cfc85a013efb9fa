package usecase

import (
	"context"
	"fmt"

	"hotel-frontdesk/internal/data/catalog"
	"hotel-frontdesk/internal/data/entity"
	"hotel-frontdesk/internal/data/ledger"
	"hotel-frontdesk/internal/dto/request"
	"hotel-frontdesk/internal/dto/response"
	"hotel-frontdesk/pkg/utils"

	"go.uber.org/zap"
)

type FoodService interface {
	GetMenu(ctx context.Context) []response.MenuItemResponse
	AddOrder(ctx context.Context, req *request.AddFoodOrderRequest) (*response.BookingResponse, error)
}

type foodService struct {
	store ledger.Store
	log   *zap.Logger
}

func NewFoodService(store ledger.Store, log *zap.Logger) FoodService {
	return &foodService{
		store: store,
		log:   log.With(zap.String("service", "food")),
	}
}

func (s *foodService) GetMenu(ctx context.Context) []response.MenuItemResponse {
	menu := catalog.FoodMenu()
	responses := make([]response.MenuItemResponse, len(menu))
	for i, item := range menu {
		responses[i] = response.MenuItemToResponse(item)
	}
	return responses
}

func (s *foodService) AddOrder(ctx context.Context, req *request.AddFoodOrderRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add food order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	menuItem := catalog.FindMenuItem(req.ItemNo)
	if menuItem == nil {
		return nil, fmt.Errorf("menu item %d not found", req.ItemNo)
	}

	order := entity.FoodOrder{
		ItemNo:   menuItem.ItemNo,
		Name:     menuItem.Name,
		Quantity: req.Quantity,
		Price:    menuItem.Price * req.Quantity,
	}

	var updated entity.Room
	_, err := s.store.Update(ctx, func(rooms []entity.Room) ([]entity.Room, error) {
		for i := range rooms {
			if rooms[i].RoomNumber == req.RoomNumber {
				// Repeat orders stay separate line items, no merging.
				rooms[i].FoodOrders = append(rooms[i].FoodOrders, order)
				updated = rooms[i]
				return rooms, nil
			}
		}
		return nil, fmt.Errorf("room %d not found", req.RoomNumber)
	})
	if err != nil {
		s.log.Warn("Add food order failed",
			zap.Error(err),
			zap.Int("room_number", req.RoomNumber),
			zap.Int("item_no", req.ItemNo),
		)
		return nil, err
	}

	s.log.Info("Food order added",
		zap.Int("room_number", req.RoomNumber),
		zap.String("item", menuItem.Name),
		zap.Int("quantity", req.Quantity),
		zap.Int("price", order.Price),
	)

	name := ""
	if rt := catalog.FindRoomType(updated.Type); rt != nil {
		name = rt.Name
	}
	resp := response.RoomToBookingResponse(updated, name)
	return &resp, nil
}
