// Package payment wraps the external payment-order collaborator. The
// rest of the system consumes only an amount and currency and receives
// an opaque order handle back.
package payment

import "context"

// Order is the provider's order handle
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Provider creates payment orders with an external processor. Amounts
// are in major currency units; implementations convert as required.
type Provider interface {
	CreateOrder(ctx context.Context, amount int64, currency string) (*Order, error)
}
