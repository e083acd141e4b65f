package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"saral-shop/internal/domain"
)

var ErrOccasionAlreadyExists = errors.New("occasion with this name already exists")

// OccasionRepository defines the interface for occasion data access
type OccasionRepository interface {
	Create(ctx context.Context, occasion *domain.Occasion) error
	ListWithCounts(ctx context.Context, pg Pagination) ([]*domain.OccasionCount, int, error)
}

type occasionRepository struct {
	db *sql.DB
}

// NewOccasionRepository creates a new instance of OccasionRepository
func NewOccasionRepository(db *sql.DB) OccasionRepository {
	return &occasionRepository{db: db}
}

// Create inserts a new occasion; names are unique
func (r *occasionRepository) Create(ctx context.Context, occasion *domain.Occasion) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO occasions (name) VALUES ($1)`, occasion.Name,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrOccasionAlreadyExists
		}
		return fmt.Errorf("failed to create occasion: %w", err)
	}

	return nil
}

// ListWithCounts returns a page of occasions with per-occasion product
// counts. Products associate with occasions by value equality on the
// occasion attribute, and the outer join keeps zero-product occasions in
// the listing with a count of 0.
func (r *occasionRepository) ListWithCounts(ctx context.Context, pg Pagination) ([]*domain.OccasionCount, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM occasions`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count occasions: %w", err)
	}

	query := `
		SELECT o.name, COUNT(p.product_id)
		FROM occasions o
		LEFT JOIN products p ON p.occasion = o.name
		GROUP BY o.name
		ORDER BY o.name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, pg.Limit, pg.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list occasions: %w", err)
	}
	defer rows.Close()

	occasions := []*domain.OccasionCount{}
	for rows.Next() {
		oc := &domain.OccasionCount{}
		if err := rows.Scan(&oc.Name, &oc.ProductCount); err != nil {
			return nil, 0, fmt.Errorf("failed to scan occasion count: %w", err)
		}
		occasions = append(occasions, oc)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating occasions: %w", err)
	}

	return occasions, total, nil
}
