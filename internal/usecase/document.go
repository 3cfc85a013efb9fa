package usecase

import (
	"fmt"
	"strings"
	"time"

	"hotel-frontdesk/internal/data/entity"
)

// Document is a generated plain-text artifact offered as a download.
type Document struct {
	Filename string
	Content  string
}

const separator = "================================"

// RenderInvoice produces the itemized bill for a room. Pure: same entry and
// total always yield the same text.
func RenderInvoice(hotelName string, room *entity.Room, roomType *entity.RoomType, total int) Document {
	typeName := room.Type
	roomCharge := 0
	if roomType != nil {
		typeName = roomType.Name
		roomCharge = roomType.Price
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s - INVOICE\n", strings.ToUpper(hotelName))
	fmt.Fprintln(&b, separator)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Room Details:")
	fmt.Fprintf(&b, "Room Number: %d\n", room.RoomNumber)
	fmt.Fprintf(&b, "Room Type: %s\n", typeName)
	fmt.Fprintf(&b, "Guest Name: %s\n", room.Guest1.Name)
	fmt.Fprintf(&b, "Contact: %s\n", room.Guest1.Contact)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, separator)
	fmt.Fprintln(&b, "CHARGES BREAKDOWN")
	fmt.Fprintln(&b, separator)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Room Charge - %s: Rs.%d\n", typeName, roomCharge)
	if len(room.FoodOrders) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "Food Orders:")
		for _, order := range room.FoodOrders {
			fmt.Fprintf(&b, "  %s (Qty: %d): Rs.%d\n", order.Name, order.Quantity, order.Price)
		}
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, separator)
	fmt.Fprintf(&b, "TOTAL AMOUNT: Rs.%d\n", total)
	fmt.Fprintln(&b, separator)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Thank you for staying with %s\n", hotelName)
	fmt.Fprintln(&b, "We hope to serve you again soon!")

	return Document{
		Filename: fmt.Sprintf("invoice-room-%d.txt", room.RoomNumber),
		Content:  b.String(),
	}
}

// RenderReceipt produces the payment confirmation after a verified checkout.
func RenderReceipt(hotelName string, room *entity.Room, paymentID, orderID string, total int, paidAt time.Time) Document {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - PAYMENT RECEIPT\n", strings.ToUpper(hotelName))
	fmt.Fprintln(&b, separator)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Transaction Details:")
	fmt.Fprintf(&b, "Payment ID: %s\n", paymentID)
	fmt.Fprintf(&b, "Order ID: %s\n", orderID)
	fmt.Fprintf(&b, "Date: %s\n", paidAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Room Details:")
	fmt.Fprintf(&b, "Room Number: %d\n", room.RoomNumber)
	fmt.Fprintf(&b, "Guest Name: %s\n", room.Guest1.Name)
	fmt.Fprintf(&b, "Contact: %s\n", room.Guest1.Contact)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, separator)
	fmt.Fprintln(&b, "PAYMENT INFORMATION")
	fmt.Fprintln(&b, separator)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Amount Paid: Rs.%d\n", total)
	fmt.Fprintln(&b, "Payment Status: SUCCESS")
	fmt.Fprintln(&b, "Payment Method: Razorpay")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, separator)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Thank you for your payment!")
	fmt.Fprintln(&b, "This receipt confirms your successful transaction.")

	return Document{
		Filename: fmt.Sprintf("receipt-%s.txt", paymentID),
		Content:  b.String(),
	}
}
