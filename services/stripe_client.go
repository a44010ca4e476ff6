package services

import (
	"context"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
)

// PaymentGateway creates payment intents with the payments provider.
// Controllers depend on this interface so tests can swap in a fake.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, idempotencyKey string) (*stripe.PaymentIntent, error)
}

// StripeService is the real gateway. Currency is fixed per store; the request
// never chooses it.
type StripeService struct {
	Currency string
}

func NewStripeService(secretKey string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{Currency: string(stripe.CurrencyUSD)}
}

// CreatePaymentIntent asks Stripe for a new intent with automatic payment
// method selection. An empty idempotencyKey lets Stripe treat every call as
// fresh; callers that retry should pass the same key.
func (s *StripeService) CreatePaymentIntent(ctx context.Context, amount int64, idempotencyKey string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(s.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if idempotencyKey != "" {
		params.IdempotencyKey = stripe.String(idempotencyKey)
	}
	return paymentintent.New(params)
}
