package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-frontdesk/internal/dto/request"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/pkg/utils"

	"go.uber.org/zap"
)

type FoodHandler struct {
	service usecase.FoodService
	log     *zap.Logger
}

func NewFoodHandler(service usecase.FoodService, log *zap.Logger) *FoodHandler {
	return &FoodHandler{
		service: service,
		log:     log.With(zap.String("handler", "food")),
	}
}

// GetMenu handles GET /api/food/menu
func (h *FoodHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.GetMenu(r.Context()))
}

// AddOrder handles POST /api/food/order
func (h *FoodHandler) AddOrder(w http.ResponseWriter, r *http.Request) {
	var req request.AddFoodOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.AddOrder(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "add food order")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
