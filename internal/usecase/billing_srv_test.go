package usecase

import (
	"context"
	"fmt"
	"testing"

	"hotel-frontdesk/internal/data/entity"
	"hotel-frontdesk/internal/data/ledger"
	"hotel-frontdesk/internal/dto/request"
	"hotel-frontdesk/internal/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGateway struct {
	createErr     error
	verifyErr     error
	createdAmount int
	orderSeq      int
}

func (g *stubGateway) CreateOrder(ctx context.Context, amount, roomNumber int, guestName string) (*gateway.Order, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.createdAmount = amount
	g.orderSeq++
	return &gateway.Order{
		OrderID:  fmt.Sprintf("order_stub_%d", g.orderSeq),
		Amount:   amount * 100,
		Currency: "INR",
		KeyID:    "rzp_test_key",
	}, nil
}

func (g *stubGateway) VerifySignature(orderID, paymentID, signature string) error {
	return g.verifyErr
}

func billingFixture(t *testing.T) (ledger.Store, *stubGateway, BillingService) {
	t.Helper()
	store := ledger.NewMemoryStore()
	gw := &stubGateway{}
	service := NewBillingService(store, gw, "Grand Luxury Hotel", zap.NewNop())
	return store, gw, service
}

func roomWithFood(number int) entity.Room {
	room := bookedRoom(number, "luxury-single")
	room.FoodOrders = []entity.FoodOrder{
		{ItemNo: 1, Name: "Sandwich", Quantity: 3, Price: 150},
	}
	return room
}

func TestGetBillTotal(t *testing.T) {
	store, _, service := billingFixture(t)
	seedRooms(t, store, roomWithFood(7))

	bill, err := service.GetBill(context.Background(), 7)
	require.NoError(t, err)

	// luxury-single room charge 2200 plus Sandwich x3 = 150
	assert.Equal(t, 2200, bill.RoomCharge)
	assert.Equal(t, 2350, bill.Total)
	assert.Equal(t, "Luxury Single Room", bill.RoomTypeName)
	require.Len(t, bill.FoodOrders, 1)
}

func TestGetBillIsIdempotent(t *testing.T) {
	store, _, service := billingFixture(t)
	seedRooms(t, store, roomWithFood(7))
	ctx := context.Background()

	first, err := service.GetBill(ctx, 7)
	require.NoError(t, err)
	second, err := service.GetBill(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetBillUnknownRoom(t *testing.T) {
	_, _, service := billingFixture(t)

	_, err := service.GetBill(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateCheckoutOrder(t *testing.T) {
	store, gw, service := billingFixture(t)
	seedRooms(t, store, roomWithFood(7))

	order, err := service.CreateCheckoutOrder(context.Background(), &request.CreateCheckoutOrderRequest{RoomNumber: 7})
	require.NoError(t, err)

	// The gateway is asked for the bill total in major units and answers in
	// minor units.
	assert.Equal(t, 2350, gw.createdAmount)
	assert.Equal(t, 235000, order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "rzp_test_key", order.KeyID)
	assert.NotEmpty(t, order.OrderID)
}

func TestCreateCheckoutOrderGatewayFailure(t *testing.T) {
	store, gw, service := billingFixture(t)
	seedRooms(t, store, roomWithFood(7))
	gw.createErr = fmt.Errorf("gateway order creation failed with status 500")

	_, err := service.CreateCheckoutOrder(context.Background(), &request.CreateCheckoutOrderRequest{RoomNumber: 7})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gateway")

	// Ledger untouched by a failed order creation.
	rooms, loadErr := store.Load(context.Background())
	require.NoError(t, loadErr)
	assert.Len(t, rooms, 1)
}

func TestVerifyPaymentChecksOutExactlyThatRoom(t *testing.T) {
	store, _, service := billingFixture(t)
	seedRooms(t, store, roomWithFood(7), bookedRoom(3, "deluxe-double"))
	ctx := context.Background()

	order, err := service.CreateCheckoutOrder(ctx, &request.CreateCheckoutOrderRequest{RoomNumber: 7})
	require.NoError(t, err)

	payment, err := service.VerifyPayment(ctx, &request.VerifyPaymentRequest{
		OrderID:   order.OrderID,
		PaymentID: "pay_123",
		Signature: "sig",
	})
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", payment.Status)
	assert.Equal(t, 7, payment.RoomNumber)
	assert.Equal(t, 2350, payment.AmountPaid)
	assert.Equal(t, "invoice-room-7.txt", payment.InvoiceName)
	assert.Equal(t, "receipt-pay_123.txt", payment.ReceiptName)

	// Exactly the settled entry is gone.
	rooms, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, 3, rooms[0].RoomNumber)

	receipt, err := service.GetReceipt(ctx, "pay_123")
	require.NoError(t, err)
	assert.Contains(t, receipt.Content, "pay_123")
	assert.Contains(t, receipt.Content, "Amount Paid: Rs.2350")
}

func TestVerifyPaymentFailureLeavesLedgerUnchanged(t *testing.T) {
	store, gw, service := billingFixture(t)
	seedRooms(t, store, roomWithFood(7))
	ctx := context.Background()

	order, err := service.CreateCheckoutOrder(ctx, &request.CreateCheckoutOrderRequest{RoomNumber: 7})
	require.NoError(t, err)

	before, err := store.Load(ctx)
	require.NoError(t, err)

	gw.verifyErr = fmt.Errorf("gateway verification failed: invalid signature")
	_, err = service.VerifyPayment(ctx, &request.VerifyPaymentRequest{
		OrderID:   order.OrderID,
		PaymentID: "pay_bad",
		Signature: "tampered",
	})
	require.Error(t, err)

	after, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// The session is failed; a retry needs a fresh order.
	gw.verifyErr = nil
	_, err = service.VerifyPayment(ctx, &request.VerifyPaymentRequest{
		OrderID:   order.OrderID,
		PaymentID: "pay_bad",
		Signature: "sig",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid checkout state")
}

func TestCancelCheckoutLeavesLedgerUnchanged(t *testing.T) {
	store, _, service := billingFixture(t)
	seedRooms(t, store, roomWithFood(7))
	ctx := context.Background()

	order, err := service.CreateCheckoutOrder(ctx, &request.CreateCheckoutOrderRequest{RoomNumber: 7})
	require.NoError(t, err)

	require.NoError(t, service.CancelCheckout(ctx, &request.CancelCheckoutRequest{OrderID: order.OrderID}))

	rooms, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 1)

	// A cancelled checkout cannot be verified afterwards.
	_, err = service.VerifyPayment(ctx, &request.VerifyPaymentRequest{
		OrderID:   order.OrderID,
		PaymentID: "pay_late",
		Signature: "sig",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid checkout state")
}

func TestVerifyPaymentUnknownOrder(t *testing.T) {
	_, _, service := billingFixture(t)

	_, err := service.VerifyPayment(context.Background(), &request.VerifyPaymentRequest{
		OrderID:   "order_missing",
		PaymentID: "pay_1",
		Signature: "sig",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetReceiptUnknownPayment(t *testing.T) {
	_, _, service := billingFixture(t)

	_, err := service.GetReceipt(context.Background(), "pay_missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
