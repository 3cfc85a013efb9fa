// Package gateway talks to the external payment provider. The service layer
// depends on the PaymentGateway interface so tests can substitute a stub.
package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount, roomNumber int, guestName string) (*Order, error)
	VerifySignature(orderID, paymentID, signature string) error
}

// Order is the provider's created order. Amount is in minor currency units
// (paise): the provider expects and echoes amount x 100.
type Order struct {
	OrderID  string `json:"order_id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

type RazorpayConfig struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	Currency  string
}

type razorpayClient struct {
	config RazorpayConfig
	client *http.Client
	log    *zap.Logger
}

func NewRazorpayClient(config RazorpayConfig, log *zap.Logger) PaymentGateway {
	if config.BaseURL == "" {
		config.BaseURL = "https://api.razorpay.com"
	}
	if config.Currency == "" {
		config.Currency = "INR"
	}

	return &razorpayClient{
		config: config,
		client: &http.Client{Timeout: 15 * time.Second},
		log:    log.With(zap.String("gateway", "razorpay")),
	}
}

type createOrderRequest struct {
	Amount   int               `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

func (c *razorpayClient) CreateOrder(ctx context.Context, amount, roomNumber int, guestName string) (*Order, error) {
	if c.config.KeyID == "" || c.config.KeySecret == "" {
		return nil, fmt.Errorf("gateway credentials not configured")
	}

	if guestName == "" {
		guestName = "Guest"
	}

	body, err := json.Marshal(createOrderRequest{
		Amount:   amount * 100, // provider expects minor units
		Currency: c.config.Currency,
		Receipt:  fmt.Sprintf("room_%d_%d", roomNumber, time.Now().UnixMilli()),
		Notes: map[string]string{
			"room_number": fmt.Sprintf("%d", roomNumber),
			"guest_name":  guestName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.config.KeyID, c.config.KeySecret)

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("Gateway order request failed",
			zap.Error(err),
			zap.Int("room_number", roomNumber),
		)
		return nil, fmt.Errorf("gateway order request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Error("Gateway rejected order creation",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
			zap.Int("room_number", roomNumber),
		)
		return nil, fmt.Errorf("gateway order creation failed with status %d", resp.StatusCode)
	}

	var orderResp createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&orderResp); err != nil {
		return nil, fmt.Errorf("decode gateway order response: %w", err)
	}

	c.log.Info("Gateway order created",
		zap.String("order_id", orderResp.ID),
		zap.Int("amount", orderResp.Amount),
		zap.Int("room_number", roomNumber),
	)

	return &Order{
		OrderID:  orderResp.ID,
		Amount:   orderResp.Amount,
		Currency: orderResp.Currency,
		KeyID:    c.config.KeyID,
	}, nil
}

// VerifySignature checks the checkout callback signature: hex HMAC-SHA256 of
// "orderID|paymentID" keyed with the secret, compared in constant time.
func (c *razorpayClient) VerifySignature(orderID, paymentID, signature string) error {
	if orderID == "" || paymentID == "" || signature == "" {
		return fmt.Errorf("gateway verification failed: missing payment reference")
	}

	h := hmac.New(sha256.New, []byte(c.config.KeySecret))
	h.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(h.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		c.log.Warn("Payment signature mismatch",
			zap.String("order_id", orderID),
			zap.String("payment_id", paymentID),
		)
		return fmt.Errorf("gateway verification failed: invalid signature")
	}

	return nil
}
