package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"saral-shop/internal/domain"
)

// ErrReviewProductMissing reports an attempt to review a product that
// does not exist (the referential constraint rejected the insert).
var ErrReviewProductMissing = errors.New("reviewed product does not exist")

// ReviewRepository defines the interface for review data access.
// Reviews are append-only; there is no update path.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error)
}

type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new instance of ReviewRepository
func NewReviewRepository(db *sql.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// foreignKeyViolation is the Postgres SQLSTATE for FK failures
const foreignKeyViolation = "23503"

// Create appends a review for a product
func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (id, product_id, name, email, purchase_date, experience, rating, review, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		review.ID,
		review.ProductID,
		review.Name,
		review.Email,
		review.PurchaseDate,
		review.Experience,
		review.Rating,
		review.Review,
		review.CreatedAt,
	)

	if err != nil {
		if isSQLState(err, foreignKeyViolation) {
			return ErrReviewProductMissing
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// ListByProduct retrieves all reviews for a product in reverse
// chronological order. No reviews is a valid outcome, not an error.
func (r *reviewRepository) ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error) {
	query := `
		SELECT id, product_id, name, email, purchase_date, experience, rating, review, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*domain.Review{}
	for rows.Next() {
		review := &domain.Review{}
		err := rows.Scan(
			&review.ID,
			&review.ProductID,
			&review.Name,
			&review.Email,
			&review.PurchaseDate,
			&review.Experience,
			&review.Rating,
			&review.Review,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}
