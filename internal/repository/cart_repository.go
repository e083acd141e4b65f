package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"saral-shop/internal/domain"

	"github.com/google/uuid"
)

var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the interface for cart data access. Lines are
// keyed by the (user, product, size) triple.
type CartRepository interface {
	Upsert(ctx context.Context, item *domain.CartItem) (created bool, err error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.CartItem, error)
	Remove(ctx context.Context, userID uuid.UUID, productID, size string) (int64, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartRepository struct {
	db *sql.DB
}

// NewCartRepository creates a new instance of CartRepository
func NewCartRepository(db *sql.DB) CartRepository {
	return &cartRepository{db: db}
}

const cartColumns = `id, user_id, product_id, product_name, size, quantity, price, image, created_at`

// Upsert inserts a cart line or, when the (user, product, size) key
// already exists, adds the quantity onto the existing line in a single
// atomic statement. Snapshot columns are never rewritten on merge, so the
// name, price and image captured at first add survive. Returns whether a
// new line was created.
func (r *cartRepository) Upsert(ctx context.Context, item *domain.CartItem) (bool, error) {
	query := `
		INSERT INTO cart_items (id, user_id, product_id, product_name, size, quantity, price, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, product_id, size)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, quantity
	`

	var (
		id       uuid.UUID
		quantity int
	)
	err := r.db.QueryRowContext(
		ctx,
		query,
		item.ID,
		item.UserID,
		item.ProductID,
		item.ProductName,
		item.Size,
		item.Quantity,
		item.Price,
		item.Image,
		item.CreatedAt,
	).Scan(&id, &quantity)

	if err != nil {
		return false, fmt.Errorf("failed to upsert cart item: %w", err)
	}

	// A merge returns the existing row's id, not the candidate one
	created := id == item.ID

	item.ID = id
	item.Quantity = quantity
	return created, nil
}

// ListByUser retrieves all cart lines for a user. An empty cart yields
// an empty slice, not an error.
func (r *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.CartItem, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at
	`, cartColumns)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	items := []*domain.CartItem{}
	for rows.Next() {
		item := &domain.CartItem{}
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ProductID,
			&item.ProductName,
			&item.Size,
			&item.Quantity,
			&item.Price,
			&item.Image,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

// Remove deletes the line matching the exact (user, product, size)
// triple and returns the number of rows deleted, so callers can tell
// "already absent" from "removed".
func (r *cartRepository) Remove(ctx context.Context, userID uuid.UUID, productID, size string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2 AND size = $3`,
		userID, productID, size,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to remove cart item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}

// Clear deletes every cart line for the user unconditionally
func (r *cartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE user_id = $1`, userID,
	); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
