package transport

import (
	"net/http"
	"time"

	"saral-shop/internal/middleware"
	"saral-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddReviewRequest is a complete review submission
type AddReviewRequest struct {
	ProductID    string `json:"productId" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	PurchaseDate string `json:"purchaseDate" validate:"required"`
	Experience   string `json:"experience" validate:"required"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Review       string `json:"review" validate:"required"`
}

// ReviewHandler handles HTTP requests for product reviews
type ReviewHandler struct {
	reviews service.ReviewService
	logger  *zap.Logger
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviews service.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, logger: logger}
}

// RegisterRoutes registers review routes under the products API prefix
func (h *ReviewHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/getReviewsByProductId/{productID}", h.ListByProduct)
		r.Post("/addReview", h.AddReview)
	})
}

// AddReview appends a review for a product
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	var req AddReviewRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid purchase date, expected YYYY-MM-DD")
		return
	}

	review, err := h.reviews.AddReview(r.Context(), service.AddReviewInput{
		ProductID:    req.ProductID,
		Name:         req.Name,
		Email:        req.Email,
		PurchaseDate: purchaseDate,
		Experience:   req.Experience,
		Rating:       req.Rating,
		Review:       req.Review,
	})
	if err != nil {
		respondServiceError(w, h.logger, "add_review", err,
			zap.String("product_id", req.ProductID))
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Review added successfully",
		"data":    review,
	})
}

// ListByProduct returns a product's reviews newest first. The ledger
// reports an empty list as a valid outcome; this endpoint surfaces it
// as 404 to match the storefront's contract.
func (h *ReviewHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	reviews, err := h.reviews.ListByProduct(r.Context(), productID)
	if err != nil {
		respondServiceError(w, h.logger, "list_reviews", err,
			zap.String("product_id", productID))
		return
	}

	if len(reviews) == 0 {
		middleware.RespondWithError(w, http.StatusNotFound, "No reviews found for this product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Reviews fetched successfully",
		"data":    reviews,
	})
}
