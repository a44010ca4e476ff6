package controllers

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	apperrors "github.com/Greendayy/Ali-Express/errors"
	"github.com/Greendayy/Ali-Express/services"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

type PaymentController struct {
	Gateway services.PaymentGateway
	Logger  *zap.Logger
	Timeout time.Duration
}

type paymentIntentInput struct {
	// Amount in minor currency units.
	Amount int64 `json:"amount" binding:"required,min=1"`
	// Optional client-supplied key so retried requests do not create
	// duplicate intents. Also accepted as the Idempotency-Key header.
	IdempotencyKey string `json:"idempotencyKey"`
}

// CreatePaymentIntent asks the payments gateway for a new intent and returns
// the gateway's object verbatim, client secret included.
func (pc *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var input paymentIntentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperrors.Validation(bindingMessage(err), err))
		return
	}

	key := input.IdempotencyKey
	if key == "" {
		key = c.GetHeader("Idempotency-Key")
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), pc.Timeout)
	defer cancel()

	intent, err := pc.Gateway.CreatePaymentIntent(ctx, input.Amount, key)
	if err != nil {
		pc.Logger.Error("payment intent creation failed", zap.Int64("amount", input.Amount), zap.Error(err))
		respondError(c, translateStripeError(err))
		return
	}

	c.JSON(http.StatusOK, intent)
}

// translateStripeError maps gateway failures onto the error taxonomy:
// Stripe-signalled client faults keep their status and stable code, anything
// else is an upstream failure. Raw gateway messages never reach the client.
func translateStripeError(err error) *apperrors.Error {
	if gatewayExpired(err) {
		return apperrors.Timeout("Timed out creating payment intent", err)
	}

	var stripeErr *stripe.Error
	if stderrors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode >= 400 && stripeErr.HTTPStatusCode < 500 {
			msg := "Payment gateway rejected the request"
			if stripeErr.Code != "" {
				msg += ": " + string(stripeErr.Code)
			}
			return apperrors.New(stripeErr.HTTPStatusCode, msg, err)
		}
	}
	return apperrors.Upstream("Payment gateway error", err)
}
