package service

import (
	"context"
	"time"

	"saral-shop/internal/domain"
	"saral-shop/internal/repository"

	"github.com/google/uuid"
)

// AddCartItemInput is a cart-add request: the product identity plus the
// denormalized snapshot captured at add time.
type AddCartItemInput struct {
	UserID      uuid.UUID
	ProductID   string
	ProductName string
	Size        string
	Quantity    int
	Price       float64
	Image       string
}

// CartService defines cart business logic. Lines merge on the
// (user, product, size) triple: adding an existing line sums quantities
// and leaves the original snapshot untouched.
type CartService interface {
	AddItem(ctx context.Context, input AddCartItemInput) (item *domain.CartItem, created bool, err error)
	ListItems(ctx context.Context, userID uuid.UUID) ([]*domain.CartItem, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, productID, size string) error
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type cartService struct {
	carts repository.CartRepository
}

// NewCartService creates a new instance of CartService
func NewCartService(carts repository.CartRepository) CartService {
	return &cartService{carts: carts}
}

// AddItem validates the input and merges or inserts the cart line
func (s *cartService) AddItem(ctx context.Context, input AddCartItemInput) (*domain.CartItem, bool, error) {
	if input.UserID == uuid.Nil {
		return nil, false, domain.NewValidationError("userId", "user ID is required")
	}
	if input.ProductID == "" {
		return nil, false, domain.NewValidationError("productId", "product ID is required")
	}
	if input.Quantity <= 0 {
		return nil, false, domain.NewValidationError("quantity", "quantity must be positive")
	}

	item := &domain.CartItem{
		ID:          uuid.New(),
		UserID:      input.UserID,
		ProductID:   input.ProductID,
		ProductName: input.ProductName,
		Size:        input.Size,
		Quantity:    input.Quantity,
		Price:       input.Price,
		Image:       input.Image,
		CreatedAt:   time.Now(),
	}

	created, err := s.carts.Upsert(ctx, item)
	if err != nil {
		return nil, false, err
	}

	return item, created, nil
}

// ListItems returns all cart lines for the user; an empty cart is an
// empty slice, never an error.
func (s *cartService) ListItems(ctx context.Context, userID uuid.UUID) ([]*domain.CartItem, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("userId", "user ID is required")
	}
	return s.carts.ListByUser(ctx, userID)
}

// RemoveItem deletes the exact (user, product, size) line. Removing a
// line that is not there reports ErrCartItemNotFound so callers can tell
// "already absent" from "removed".
func (s *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, productID, size string) error {
	if userID == uuid.Nil {
		return domain.NewValidationError("userId", "user ID is required")
	}
	if productID == "" {
		return domain.NewValidationError("productId", "product ID is required")
	}

	affected, err := s.carts.Remove(ctx, userID, productID, size)
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// ClearCart deletes every line for the user unconditionally
func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return domain.NewValidationError("userId", "user ID is required")
	}
	return s.carts.Clear(ctx, userID)
}
