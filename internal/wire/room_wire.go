package wire

import (
	"hotel-frontdesk/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoom(r chi.Router, roomHandler *adaptor.RoomHandler) {
	// GET /api/rooms - Room catalog with availability counts
	r.Get("/api/rooms", roomHandler.ListRoomTypes)

	// GET /api/rooms/{typeID}/availability - Free room numbers for a type
	r.Get("/api/rooms/{typeID}/availability", roomHandler.GetAvailability)
}
