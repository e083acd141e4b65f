package service

import (
	"context"
	"time"

	"saral-shop/internal/domain"
	"saral-shop/internal/repository"

	"github.com/google/uuid"
)

// AddReviewInput carries a complete review submission; every field is
// mandatory.
type AddReviewInput struct {
	ProductID    string
	Name         string
	Email        string
	PurchaseDate time.Time
	Experience   string
	Rating       int
	Review       string
}

// ReviewService defines the review ledger: append and read back in
// reverse chronological order.
type ReviewService interface {
	AddReview(ctx context.Context, input AddReviewInput) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error)
}

type reviewService struct {
	reviews repository.ReviewRepository
}

// NewReviewService creates a new instance of ReviewService
func NewReviewService(reviews repository.ReviewRepository) ReviewService {
	return &reviewService{reviews: reviews}
}

// AddReview validates and appends a review
func (s *reviewService) AddReview(ctx context.Context, input AddReviewInput) (*domain.Review, error) {
	switch {
	case input.ProductID == "":
		return nil, domain.NewValidationError("productId", "product ID is required")
	case input.Name == "":
		return nil, domain.NewValidationError("name", "name is required")
	case input.Email == "":
		return nil, domain.NewValidationError("email", "email is required")
	case input.PurchaseDate.IsZero():
		return nil, domain.NewValidationError("purchaseDate", "purchase date is required")
	case input.Experience == "":
		return nil, domain.NewValidationError("experience", "experience is required")
	case input.Review == "":
		return nil, domain.NewValidationError("review", "review is required")
	case input.Rating < 1 || input.Rating > 5:
		return nil, domain.NewValidationError("rating", "rating must be between 1 and 5")
	}

	review := &domain.Review{
		ID:           uuid.New(),
		ProductID:    input.ProductID,
		Name:         input.Name,
		Email:        input.Email,
		PurchaseDate: input.PurchaseDate,
		Experience:   input.Experience,
		Rating:       input.Rating,
		Review:       input.Review,
		CreatedAt:    time.Now(),
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// ListByProduct returns the product's reviews newest first. Zero
// reviews is an empty slice, not an error; the transport layer decides
// how to present it.
func (s *reviewService) ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error) {
	if productID == "" {
		return nil, domain.NewValidationError("productId", "product ID is required")
	}
	return s.reviews.ListByProduct(ctx, productID)
}
