package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hotel-frontdesk/internal/data/catalog"
	"hotel-frontdesk/internal/data/entity"
	"hotel-frontdesk/internal/data/ledger"
	"hotel-frontdesk/internal/dto/request"
	"hotel-frontdesk/internal/dto/response"
	"hotel-frontdesk/internal/gateway"
	"hotel-frontdesk/pkg/utils"

	"go.uber.org/zap"
)

type BillingService interface {
	GetBill(ctx context.Context, roomNumber int) (*response.BillResponse, error)
	GetInvoice(ctx context.Context, roomNumber int) (*Document, error)
	CreateCheckoutOrder(ctx context.Context, req *request.CreateCheckoutOrderRequest) (*response.CheckoutOrderResponse, error)
	VerifyPayment(ctx context.Context, req *request.VerifyPaymentRequest) (*response.PaymentResponse, error)
	CancelCheckout(ctx context.Context, req *request.CancelCheckoutRequest) error
	GetReceipt(ctx context.Context, paymentID string) (*Document, error)
}

// CheckoutState tracks one gateway order through the payment flow. The
// transient order-creation state collapses into the request that creates it;
// a session only exists once the gateway order does.
type CheckoutState string

const (
	CheckoutStateAwaitingConfirmation CheckoutState = "awaiting_confirmation"
	CheckoutStateSettled              CheckoutState = "settled"
	CheckoutStateFailed               CheckoutState = "failed"
	CheckoutStateCancelled            CheckoutState = "cancelled"
)

type checkoutSession struct {
	OrderID    string
	RoomNumber int
	Amount     int
	State      CheckoutState
	CreatedAt  time.Time
}

type billingService struct {
	store     ledger.Store
	gateway   gateway.PaymentGateway
	hotelName string
	log       *zap.Logger

	mu       sync.Mutex
	sessions map[string]*checkoutSession
	receipts map[string]*Document
}

func NewBillingService(store ledger.Store, gw gateway.PaymentGateway, hotelName string, log *zap.Logger) BillingService {
	return &billingService{
		store:     store,
		gateway:   gw,
		hotelName: hotelName,
		log:       log.With(zap.String("service", "billing")),
		sessions:  make(map[string]*checkoutSession),
		receipts:  make(map[string]*Document),
	}
}

// CalculateTotal is the whole bill arithmetic: flat room charge plus the sum
// of extended food prices. The room charge is per stay, not per night.
func CalculateTotal(roomType *entity.RoomType, room *entity.Room) int {
	if roomType == nil || room == nil {
		return 0
	}
	return roomType.Price + room.FoodTotal()
}

func (s *billingService) findRoom(ctx context.Context, roomNumber int) (*entity.Room, *entity.RoomType, error) {
	rooms, err := s.store.Load(ctx)
	if err != nil {
		s.log.Error("Failed to load ledger for billing", zap.Error(err))
		return nil, nil, fmt.Errorf("load ledger: %w", err)
	}

	for i := range rooms {
		if rooms[i].RoomNumber == roomNumber {
			roomType := catalog.FindRoomType(rooms[i].Type)
			if roomType == nil {
				return nil, nil, fmt.Errorf("room type %s not found", rooms[i].Type)
			}
			return &rooms[i], roomType, nil
		}
	}

	return nil, nil, fmt.Errorf("room %d not found", roomNumber)
}

func (s *billingService) GetBill(ctx context.Context, roomNumber int) (*response.BillResponse, error) {
	room, roomType, err := s.findRoom(ctx, roomNumber)
	if err != nil {
		return nil, err
	}

	orders := make([]response.FoodOrderResponse, len(room.FoodOrders))
	for i, order := range room.FoodOrders {
		orders[i] = response.FoodOrderToResponse(order)
	}

	return &response.BillResponse{
		RoomNumber:   room.RoomNumber,
		RoomTypeName: roomType.Name,
		GuestName:    room.Guest1.Name,
		Contact:      room.Guest1.Contact,
		RoomCharge:   roomType.Price,
		FoodOrders:   orders,
		Total:        CalculateTotal(roomType, room),
	}, nil
}

func (s *billingService) GetInvoice(ctx context.Context, roomNumber int) (*Document, error) {
	room, roomType, err := s.findRoom(ctx, roomNumber)
	if err != nil {
		return nil, err
	}

	doc := RenderInvoice(s.hotelName, room, roomType, CalculateTotal(roomType, room))
	return &doc, nil
}

func (s *billingService) CreateCheckoutOrder(ctx context.Context, req *request.CreateCheckoutOrderRequest) (*response.CheckoutOrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create checkout order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	room, roomType, err := s.findRoom(ctx, req.RoomNumber)
	if err != nil {
		return nil, err
	}

	total := CalculateTotal(roomType, room)

	order, err := s.gateway.CreateOrder(ctx, total, room.RoomNumber, room.Guest1.Name)
	if err != nil {
		s.log.Error("Gateway order creation failed",
			zap.Error(err),
			zap.Int("room_number", room.RoomNumber),
			zap.Int("amount", total),
		)
		return nil, fmt.Errorf("gateway order creation: %w", err)
	}

	s.mu.Lock()
	s.sessions[order.OrderID] = &checkoutSession{
		OrderID:    order.OrderID,
		RoomNumber: room.RoomNumber,
		Amount:     total,
		State:      CheckoutStateAwaitingConfirmation,
		CreatedAt:  time.Now(),
	}
	s.mu.Unlock()

	s.log.Info("Checkout order created",
		zap.String("order_id", order.OrderID),
		zap.Int("room_number", room.RoomNumber),
		zap.Int("amount", total),
	)

	return &response.CheckoutOrderResponse{
		OrderID:  order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    order.KeyID,
	}, nil
}

func (s *billingService) VerifyPayment(ctx context.Context, req *request.VerifyPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s.mu.Lock()
	session, ok := s.sessions[req.OrderID]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("checkout session for order %s not found", req.OrderID)
	}
	if session.State != CheckoutStateAwaitingConfirmation {
		state := session.State
		s.mu.Unlock()
		return nil, fmt.Errorf("invalid checkout state %s for order %s", state, req.OrderID)
	}
	s.mu.Unlock()

	if err := s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature); err != nil {
		s.setState(req.OrderID, CheckoutStateFailed)
		s.log.Warn("Payment verification failed",
			zap.Error(err),
			zap.String("order_id", req.OrderID),
			zap.String("payment_id", req.PaymentID),
		)
		return nil, err
	}

	// Verification succeeded: render artifacts, then remove exactly this
	// entry from the ledger. Entries of other rooms are untouched.
	var settled *entity.Room
	_, err := s.store.Update(ctx, func(rooms []entity.Room) ([]entity.Room, error) {
		for i := range rooms {
			if rooms[i].RoomNumber == session.RoomNumber {
				room := rooms[i]
				settled = &room
				return append(rooms[:i], rooms[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("room %d not found", session.RoomNumber)
	})
	if err != nil {
		s.setState(req.OrderID, CheckoutStateFailed)
		s.log.Error("Checkout failed after verified payment",
			zap.Error(err),
			zap.String("order_id", req.OrderID),
			zap.Int("room_number", session.RoomNumber),
		)
		return nil, err
	}

	roomType := catalog.FindRoomType(settled.Type)
	invoice := RenderInvoice(s.hotelName, settled, roomType, session.Amount)
	receipt := RenderReceipt(s.hotelName, settled, req.PaymentID, req.OrderID, session.Amount, time.Now())

	s.mu.Lock()
	s.sessions[req.OrderID].State = CheckoutStateSettled
	s.receipts[req.PaymentID] = &receipt
	s.mu.Unlock()

	s.log.Info("Room checked out",
		zap.String("order_id", req.OrderID),
		zap.String("payment_id", req.PaymentID),
		zap.Int("room_number", session.RoomNumber),
		zap.Int("amount", session.Amount),
	)

	return &response.PaymentResponse{
		OrderID:     req.OrderID,
		PaymentID:   req.PaymentID,
		RoomNumber:  session.RoomNumber,
		AmountPaid:  session.Amount,
		Status:      "SUCCESS",
		InvoiceName: invoice.Filename,
		ReceiptName: receipt.Filename,
	}, nil
}

func (s *billingService) CancelCheckout(ctx context.Context, req *request.CancelCheckoutRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s.mu.Lock()
	session, ok := s.sessions[req.OrderID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("checkout session for order %s not found", req.OrderID)
	}
	if session.State == CheckoutStateAwaitingConfirmation {
		session.State = CheckoutStateCancelled
	}
	s.mu.Unlock()

	// Ledger is untouched: the user keeps the room and can retry.
	s.log.Info("Checkout cancelled",
		zap.String("order_id", req.OrderID),
		zap.Int("room_number", session.RoomNumber),
	)

	return nil
}

func (s *billingService) GetReceipt(ctx context.Context, paymentID string) (*Document, error) {
	s.mu.Lock()
	receipt, ok := s.receipts[paymentID]
	s.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("receipt for payment %s not found", paymentID)
	}
	return receipt, nil
}

func (s *billingService) setState(orderID string, state CheckoutState) {
	s.mu.Lock()
	if session, ok := s.sessions[orderID]; ok {
		session.State = state
	}
	s.mu.Unlock()
}
