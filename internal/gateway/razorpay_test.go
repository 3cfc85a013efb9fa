package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func signPayment(secret, orderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

func TestCreateOrder(t *testing.T) {
	var captured createOrderRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(createOrderResponse{
			ID:       "order_abc",
			Amount:   captured.Amount,
			Currency: captured.Currency,
		})
	}))
	defer server.Close()

	client := NewRazorpayClient(RazorpayConfig{
		BaseURL:   server.URL,
		KeyID:     "rzp_test_key",
		KeySecret: "secret",
	}, zap.NewNop())

	order, err := client.CreateOrder(context.Background(), 2350, 7, "Asha Rao")
	require.NoError(t, err)

	// Major units in, minor units over the wire.
	assert.Equal(t, 235000, captured.Amount)
	assert.Equal(t, "INR", captured.Currency)
	assert.Contains(t, captured.Receipt, "room_7_")
	assert.Equal(t, "7", captured.Notes["room_number"])
	assert.Equal(t, "Asha Rao", captured.Notes["guest_name"])

	assert.Equal(t, "order_abc", order.OrderID)
	assert.Equal(t, 235000, order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "rzp_test_key", order.KeyID)
}

func TestCreateOrderGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewRazorpayClient(RazorpayConfig{
		BaseURL:   server.URL,
		KeyID:     "rzp_test_key",
		KeySecret: "secret",
	}, zap.NewNop())

	_, err := client.CreateOrder(context.Background(), 100, 1, "Guest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gateway order creation failed")
}

func TestCreateOrderMissingCredentials(t *testing.T) {
	client := NewRazorpayClient(RazorpayConfig{}, zap.NewNop())

	_, err := client.CreateOrder(context.Background(), 100, 1, "Guest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials not configured")
}

func TestVerifySignature(t *testing.T) {
	client := NewRazorpayClient(RazorpayConfig{
		KeyID:     "rzp_test_key",
		KeySecret: "secret",
	}, zap.NewNop())

	good := signPayment("secret", "order_abc", "pay_123")
	assert.NoError(t, client.VerifySignature("order_abc", "pay_123", good))

	assert.Error(t, client.VerifySignature("order_abc", "pay_123", "tampered"))
	assert.Error(t, client.VerifySignature("order_abc", "pay_999", good))
	assert.Error(t, client.VerifySignature("", "pay_123", good))
}
