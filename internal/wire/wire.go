package wire

import (
	"net/http"

	"hotel-frontdesk/internal/adaptor"
	"hotel-frontdesk/internal/data/ledger"
	"hotel-frontdesk/internal/gateway"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/pkg/middleware"
	"hotel-frontdesk/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers, and routes
func Wiring(store ledger.Store, gw gateway.PaymentGateway, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(store, gw, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireRoom(r, handler.Room)
	wireBooking(r, handler.Booking)
	wireFood(r, handler.Food)
	wireBilling(r, handler.Billing)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
