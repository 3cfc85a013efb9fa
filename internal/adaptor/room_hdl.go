package adaptor

import (
	"net/http"

	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// ListRoomTypes handles GET /api/rooms
func (h *RoomHandler) ListRoomTypes(w http.ResponseWriter, r *http.Request) {
	roomTypes, err := h.service.ListRoomTypes(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list room types")
		return
	}

	utils.ResponseSuccess(w, "success", roomTypes)
}

// GetAvailability handles GET /api/rooms/{typeID}/availability
func (h *RoomHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	typeID := chi.URLParam(r, "typeID")
	if typeID == "" {
		utils.ResponseBadRequest(w, "Room type is required", nil)
		return
	}

	availability, err := h.service.GetAvailability(r.Context(), typeID)
	if err != nil {
		handleServiceError(h.log, w, err, "get availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}
