package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"saral-shop/internal/domain"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product with this identifier already exists")
)

// minSerialWidth is the zero-padding floor for allocated identifiers.
// Serials above 99 simply grow more digits.
const minSerialWidth = 2

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	AllocateID(ctx context.Context, prefix string) (string, error)
	Create(ctx context.Context, product *domain.Product) error
	CreateWithAllocatedID(ctx context.Context, product *domain.Product, prefix string) (string, error)
	FindByID(ctx context.Context, productID string) (*domain.Product, error)
	SiblingSizes(ctx context.Context, name, category string) ([]string, error)
	List(ctx context.Context, filter ProductFilter, pg Pagination) ([]*domain.Product, int, error)
	CountByCategory(ctx context.Context, category string) (int, error)
	SizesByCategory(ctx context.Context, category, subcategory string) ([]domain.SizeCount, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `product_id, name, category, subcategory, occasion, price, stock, COALESCE(size, ''), image`

func scanProduct(row interface{ Scan(...interface{}) error }) (*domain.Product, error) {
	p := &domain.Product{}
	err := row.Scan(
		&p.ProductID,
		&p.Name,
		&p.Category,
		&p.Subcategory,
		&p.Occasion,
		&p.Price,
		&p.Stock,
		&p.Size,
		&p.Image,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// nextSerial computes the next identifier serial from existing IDs
// sharing the prefix. Identifiers whose suffix is not numeric are skipped
// rather than treated as fatal; the allocator favors robustness over
// strictness when old rows carry hand-written identifiers.
func nextSerial(ids []string, prefix string) int {
	max := 0
	for _, id := range ids {
		suffix := strings.TrimPrefix(id, prefix)
		n, err := strconv.Atoi(suffix)
		if err != nil || n < 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max + 1
}

func formatProductID(prefix string, serial int) string {
	return fmt.Sprintf("%s%0*d", prefix, minSerialWidth, serial)
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

func allocateID(ctx context.Context, q queryer, prefix string, forUpdate bool) (string, error) {
	query := `SELECT product_id FROM products WHERE product_id LIKE $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	rows, err := q.QueryContext(ctx, query, prefix+"%")
	if err != nil {
		return "", fmt.Errorf("failed to scan existing product identifiers: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("failed to scan product identifier: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("error iterating product identifiers: %w", err)
	}

	return formatProductID(prefix, nextSerial(ids, prefix)), nil
}

// AllocateID derives the next sequential product identifier for the
// prefix. The read is not serialized against concurrent allocations; a
// race surfaces later as ErrProductAlreadyExists on insert.
func (r *productRepository) AllocateID(ctx context.Context, prefix string) (string, error) {
	return allocateID(ctx, r.db, prefix, false)
}

// Create inserts a product under an already-chosen identifier
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (product_id, name, category, subcategory, occasion, price, stock, size, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		product.ProductID,
		product.Name,
		product.Category,
		product.Subcategory,
		product.Occasion,
		product.Price,
		product.Stock,
		product.Size,
		product.Image,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrProductAlreadyExists
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// CreateWithAllocatedID allocates the next identifier and inserts the
// product in one transaction. The identifier scan locks matching rows so
// two concurrent inserts cannot both observe the same maximum.
func (r *productRepository) CreateWithAllocatedID(ctx context.Context, product *domain.Product, prefix string) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := allocateID(ctx, tx, prefix, true)
	if err != nil {
		return "", err
	}

	query := `
		INSERT INTO products (product_id, name, category, subcategory, occasion, price, stock, size, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9)
	`
	_, err = tx.ExecContext(
		ctx,
		query,
		id,
		product.Name,
		product.Category,
		product.Subcategory,
		product.Occasion,
		product.Price,
		product.Stock,
		product.Size,
		product.Image,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrProductAlreadyExists
		}
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit product creation: %w", err)
	}

	product.ProductID = id
	return id, nil
}

// FindByID retrieves a product by its allocated identifier
func (r *productRepository) FindByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE product_id = $1`, productColumns)

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, productID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// SiblingSizes returns the distinct sizes carried by products sharing
// the same name and category, for size selection on a detail page.
func (r *productRepository) SiblingSizes(ctx context.Context, name, category string) ([]string, error) {
	query := `
		SELECT DISTINCT COALESCE(size, '')
		FROM products
		WHERE name = $1 AND category = $2
	`

	rows, err := r.db.QueryContext(ctx, query, name, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list sibling sizes: %w", err)
	}
	defer rows.Close()

	sizes := []string{}
	for rows.Next() {
		var size string
		if err := rows.Scan(&size); err != nil {
			return nil, fmt.Errorf("failed to scan size: %w", err)
		}
		sizes = append(sizes, size)
	}

	return sizes, rows.Err()
}

// List retrieves the page of products matching the filter plus the total
// matching row count. The count query shares the filter's WHERE clause so
// totalPages stays consistent with the page contents.
func (r *productRepository) List(ctx context.Context, filter ProductFilter, pg Pagination) ([]*domain.Product, int, error) {
	whereClause, args, argIndex := filter.where(1)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM products %s", whereClause)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		%s
		ORDER BY product_id
		LIMIT $%d OFFSET $%d
	`, productColumns, whereClause, argIndex, argIndex+1)

	args = append(args, pg.Limit, pg.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating products: %w", err)
	}

	return products, total, nil
}

// CountByCategory returns the number of products in a category
func (r *productRepository) CountByCategory(ctx context.Context, category string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE category = $1`, category,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products by category: %w", err)
	}
	return count, nil
}

// SizesByCategory groups the non-empty sizes within a category, with the
// product count per size. An empty subcategory means no subcategory filter.
func (r *productRepository) SizesByCategory(ctx context.Context, category, subcategory string) ([]domain.SizeCount, error) {
	query := `
		SELECT size, COUNT(*)
		FROM products
		WHERE category = $1
		  AND ($2 = '' OR subcategory = $2)
		  AND size IS NOT NULL AND size <> ''
		GROUP BY size
		ORDER BY size
	`

	rows, err := r.db.QueryContext(ctx, query, category, subcategory)
	if err != nil {
		return nil, fmt.Errorf("failed to list sizes by category: %w", err)
	}
	defer rows.Close()

	sizes := []domain.SizeCount{}
	for rows.Next() {
		var sc domain.SizeCount
		if err := rows.Scan(&sc.Size, &sc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan size count: %w", err)
		}
		sizes = append(sizes, sc)
	}

	return sizes, rows.Err()
}
