package transport

import (
	"net/http"

	"saral-shop/internal/middleware"
	"saral-shop/internal/payment"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateOrderRequest asks the payment collaborator for an order
type CreateOrderRequest struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency" validate:"required"`
}

// PaymentHandler forwards order creation to the payment provider
type PaymentHandler struct {
	provider payment.Provider
	logger   *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(provider payment.Provider, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{provider: provider, logger: logger}
}

// RegisterRoutes registers the order creation route
func (h *PaymentHandler) RegisterRoutes(r chi.Router) {
	r.Post("/create-order", h.CreateOrder)
}

// CreateOrder creates a payment order and returns the provider's
// opaque handle.
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.provider.CreateOrder(r.Context(), req.Amount, req.Currency)
	if err != nil {
		h.logger.Error("Payment order creation failed",
			zap.Int64("amount", req.Amount),
			zap.String("currency", req.Currency),
			zap.Error(err),
		)
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create payment order")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, order)
}
