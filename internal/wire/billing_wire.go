package wire

import (
	"hotel-frontdesk/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBilling(r chi.Router, billingHandler *adaptor.BillingHandler) {
	r.Route("/api/billing", func(r chi.Router) {
		// POST /api/billing/order - Create a payment gateway order
		r.Post("/order", billingHandler.CreateCheckoutOrder)

		// POST /api/billing/verify - Verify payment and check the room out
		r.Post("/verify", billingHandler.VerifyPayment)

		// POST /api/billing/cancel - Abandon an open checkout
		r.Post("/cancel", billingHandler.CancelCheckout)

		// GET /api/billing/receipt/{paymentID} - Download a payment receipt
		r.Get("/receipt/{paymentID}", billingHandler.DownloadReceipt)

		// GET /api/billing/{roomNumber} - Bill summary
		r.Get("/{roomNumber}", billingHandler.GetBill)

		// GET /api/billing/{roomNumber}/invoice - Download the invoice
		r.Get("/{roomNumber}/invoice", billingHandler.DownloadInvoice)
	})
}
