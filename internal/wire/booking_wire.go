package wire

import (
	"hotel-frontdesk/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/booking - Book a room
	r.Post("/api/booking", bookingHandler.CreateBooking)

	// GET /api/bookings - List currently checked-in rooms
	r.Get("/api/bookings", bookingHandler.ListBookings)
}
