package wire

import (
	"hotel-frontdesk/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFood(r chi.Router, foodHandler *adaptor.FoodHandler) {
	// GET /api/food/menu - Food menu
	r.Get("/api/food/menu", foodHandler.GetMenu)

	// POST /api/food/order - Add a food order to a room
	r.Post("/api/food/order", foodHandler.AddOrder)
}
