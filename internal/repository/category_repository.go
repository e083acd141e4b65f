package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"saral-shop/internal/domain"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("subcategory with this name already exists")
)

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	ListGrouped(ctx context.Context) ([]*domain.CategoryGroup, error)
	FindBySubcategory(ctx context.Context, subcategory string) (*domain.Category, error)
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create inserts a (category, subcategory) pair. Subcategory names are
// globally unique; a duplicate maps to ErrCategoryAlreadyExists.
func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (category_name, subcategory_name, image)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query,
		category.CategoryName,
		category.SubcategoryName,
		category.Image,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrCategoryAlreadyExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// ListGrouped returns one row per category name with its subcategories
// and a single representative image (the lexicographic minimum, matching
// how the storefront picks a tile image).
func (r *categoryRepository) ListGrouped(ctx context.Context) ([]*domain.CategoryGroup, error) {
	query := `
		SELECT category_name, MIN(image), STRING_AGG(subcategory_name, ',' ORDER BY subcategory_name)
		FROM categories
		GROUP BY category_name
		ORDER BY category_name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	groups := []*domain.CategoryGroup{}
	for rows.Next() {
		group := &domain.CategoryGroup{}
		var subcategories string
		if err := rows.Scan(&group.CategoryName, &group.Image, &subcategories); err != nil {
			return nil, fmt.Errorf("failed to scan category group: %w", err)
		}
		group.Subcategories = strings.Split(subcategories, ",")
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return groups, nil
}

// FindBySubcategory retrieves a category pair by its unique subcategory name
func (r *categoryRepository) FindBySubcategory(ctx context.Context, subcategory string) (*domain.Category, error) {
	query := `
		SELECT category_name, subcategory_name, image
		FROM categories
		WHERE subcategory_name = $1
	`

	category := &domain.Category{}
	err := r.db.QueryRowContext(ctx, query, subcategory).Scan(
		&category.CategoryName,
		&category.SubcategoryName,
		&category.Image,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category by subcategory: %w", err)
	}

	return category, nil
}
