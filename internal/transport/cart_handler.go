package transport

import (
	"net/http"

	"saral-shop/internal/middleware"
	"saral-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartProduct is the product portion of a cart-add request: the
// identity plus the snapshot fields captured at add time.
type CartProduct struct {
	ID          string  `json:"id" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	Size        string  `json:"size"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// AddCartItemRequest is the cart-add payload
type AddCartItemRequest struct {
	UserID  string      `json:"userId" validate:"required"`
	Product CartProduct `json:"product" validate:"required"`
}

// RemoveCartItemRequest identifies one cart line by its natural key
type RemoveCartItemRequest struct {
	UserID    string `json:"userId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size"`
}

// CartHandler handles HTTP requests for cart operations
type CartHandler struct {
	cart   service.CartService
	logger *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cart service.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{cart: cart, logger: logger}
}

// RegisterRoutes registers cart routes under the products API prefix
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products/cart", func(r chi.Router) {
		r.Post("/add", h.AddItem)
		r.Get("/{userID}", h.ListItems)
		r.Delete("/{userID}", h.ClearCart)
		r.Post("/remove", h.RemoveItem)
	})
}

// AddItem merges or inserts a cart line. A merge responds 200, a fresh
// line 201, mirroring the distinction callers rely on.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	item, created, err := h.cart.AddItem(r.Context(), service.AddCartItemInput{
		UserID:      userID,
		ProductID:   req.Product.ID,
		ProductName: req.Product.ProductName,
		Size:        req.Product.Size,
		Quantity:    req.Product.Quantity,
		Price:       req.Product.Price,
		Image:       req.Product.Image,
	})
	if err != nil {
		respondServiceError(w, h.logger, "cart_add", err,
			zap.String("user_id", req.UserID),
			zap.String("product_id", req.Product.ID),
			zap.String("size", req.Product.Size))
		return
	}

	if created {
		middleware.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "Item added to cart",
			"cartId":  item.ID,
		})
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Cart item quantity updated.",
	})
}

// ListItems returns all cart lines for a user; an empty cart is a
// valid, empty response.
func (h *CartHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	items, err := h.cart.ListItems(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.logger, "cart_list", err,
			zap.String("user_id", userID.String()))
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// ClearCart removes every line for the user
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := h.cart.ClearCart(r.Context(), userID); err != nil {
		respondServiceError(w, h.logger, "cart_clear", err,
			zap.String("user_id", userID.String()))
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Cart cleared"})
}

// RemoveItem deletes one (user, product, size) line; removing an
// absent line responds 404.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req RemoveCartItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := h.cart.RemoveItem(r.Context(), userID, req.ProductID, req.Size); err != nil {
		respondServiceError(w, h.logger, "cart_remove", err,
			zap.String("user_id", req.UserID),
			zap.String("product_id", req.ProductID),
			zap.String("size", req.Size))
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Item removed from cart"})
}
