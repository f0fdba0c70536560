package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"Gamestore/controllers"
	"Gamestore/services/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentEngine(checkout controllers.Checkout) *gin.Engine {
	r := newEngine()
	r.POST("/api/payment/process", asAlice, controllers.ProcessPayment(checkout))
	return r
}

func TestProcessPayment(t *testing.T) {
	for _, body := range []string{`{"amount": 29.99, "method": "credit_card"}`, `{"amount": "29.99", "method": "credit_card"}`} {
		checkout := &fakeCheckout{}
		w := do(paymentEngine(checkout), http.MethodPost, "/api/payment/process", body)

		require.Equal(t, http.StatusCreated, w.Code, body)
		var resp struct {
			Message       string `json:"message"`
			TransactionID uint   `json:"transactionId"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Payment successful", resp.Message)
		assert.Equal(t, uint(42), resp.TransactionID)

		assert.Equal(t, alice, checkout.who)
		assert.True(t, checkout.req.Amount.Equal(decimal.RequireFromString("29.99")))
		assert.Equal(t, "credit_card", checkout.req.Method)
	}
}

func TestProcessPaymentMalformedBody(t *testing.T) {
	checkout := &fakeCheckout{}
	w := do(paymentEngine(checkout), http.MethodPost, "/api/payment/process", `{"amount": "lots"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Amount and payment method are required", decodeMessage(t, w))
	assert.Equal(t, store.Identity{}, checkout.who)
}

func TestProcessPaymentErrors(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{store.ErrEmptyCart, http.StatusBadRequest, "Cart is empty"},
		{store.ErrCheckoutInProgress, http.StatusBadRequest, "Checkout already in progress"},
		{store.Invalid("Amount and payment method are required"), http.StatusBadRequest, "Amount and payment method are required"},
		{errDatabase, http.StatusInternalServerError, "Payment processing failed"},
	}
	for _, tc := range cases {
		w := do(paymentEngine(&fakeCheckout{err: tc.err}), http.MethodPost, "/api/payment/process", `{"amount": 10, "method": "paypal"}`)

		assert.Equal(t, tc.status, w.Code, tc.message)
		assert.Equal(t, tc.message, decodeMessage(t, w))
	}
}
