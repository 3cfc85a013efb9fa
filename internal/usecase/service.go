package usecase

import (
	"hotel-frontdesk/internal/data/ledger"
	"hotel-frontdesk/internal/gateway"
	"hotel-frontdesk/pkg/utils"

	"go.uber.org/zap"
)

// Service groups all domain services over the shared ledger store.
type Service struct {
	Room    RoomService
	Booking BookingService
	Food    FoodService
	Billing BillingService
}

func NewService(store ledger.Store, gw gateway.PaymentGateway, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Room:    NewRoomService(store, log),
		Booking: NewBookingService(store, log),
		Food:    NewFoodService(store, log),
		Billing: NewBillingService(store, gw, config.App.Name, log),
	}
}
