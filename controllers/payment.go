package controllers

import (
	"net/http"

	"Gamestore/services/store"
	"Gamestore/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type paymentRequest struct {
	// decimal.Decimal accepts both 29.99 and "29.99"
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
}

// @Summary Process payment
// @Description Simulates a payment and moves the caller's cart into their library
// @Tags payment
// @Accept json
// @Produce json
// @Param body body object{amount=number,method=string} true "Declared amount and payment method"
// @Success 201 {object} object{message=string,transactionId=integer}
// @Failure 400 {object} object{message=string}
// @Failure 401 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/payment/process [post]
func ProcessPayment(checkout Checkout) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req paymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, store.Invalid("Amount and payment method are required"), "")
			return
		}
		id, _ := utils.CurrentIdentity(c)
		transaction, err := checkout.ProcessPayment(c.Request.Context(), id, store.PaymentRequest{
			Amount: req.Amount,
			Method: req.Method,
		})
		if err != nil {
			utils.Fail(c, err, "Payment processing failed")
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":       "Payment successful",
			"transactionId": transaction.ID,
		})
	}
}
