package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hotel-frontdesk/internal/dto/request"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BillingHandler struct {
	service usecase.BillingService
	log     *zap.Logger
}

func NewBillingHandler(service usecase.BillingService, log *zap.Logger) *BillingHandler {
	return &BillingHandler{
		service: service,
		log:     log.With(zap.String("handler", "billing")),
	}
}

func roomNumberParam(r *http.Request) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, "roomNumber"))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// GetBill handles GET /api/billing/{roomNumber}
func (h *BillingHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	roomNumber, ok := roomNumberParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Invalid room number", nil)
		return
	}

	bill, err := h.service.GetBill(r.Context(), roomNumber)
	if err != nil {
		handleServiceError(h.log, w, err, "get bill")
		return
	}

	utils.ResponseSuccess(w, "success", bill)
}

// DownloadInvoice handles GET /api/billing/{roomNumber}/invoice
func (h *BillingHandler) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
	roomNumber, ok := roomNumberParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Invalid room number", nil)
		return
	}

	invoice, err := h.service.GetInvoice(r.Context(), roomNumber)
	if err != nil {
		handleServiceError(h.log, w, err, "download invoice")
		return
	}

	utils.ResponseTextFile(w, invoice.Filename, invoice.Content)
}

// CreateCheckoutOrder handles POST /api/billing/order
func (h *BillingHandler) CreateCheckoutOrder(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCheckoutOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	order, err := h.service.CreateCheckoutOrder(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create checkout order")
		return
	}

	utils.ResponseCreated(w, "success", order)
}

// VerifyPayment handles POST /api/billing/verify
func (h *BillingHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	payment, err := h.service.VerifyPayment(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "verify payment")
		return
	}

	utils.ResponseSuccess(w, "Payment successful, room checked out", payment)
}

// CancelCheckout handles POST /api/billing/cancel
func (h *BillingHandler) CancelCheckout(w http.ResponseWriter, r *http.Request) {
	var req request.CancelCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.CancelCheckout(r.Context(), &req); err != nil {
		handleServiceError(h.log, w, err, "cancel checkout")
		return
	}

	// Neutral notice: the booking stays in place.
	utils.ResponseSuccess(w, "Payment cancelled", nil)
}

// DownloadReceipt handles GET /api/billing/receipt/{paymentID}
func (h *BillingHandler) DownloadReceipt(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	receipt, err := h.service.GetReceipt(r.Context(), paymentID)
	if err != nil {
		handleServiceError(h.log, w, err, "download receipt")
		return
	}

	utils.ResponseTextFile(w, receipt.Filename, receipt.Content)
}
