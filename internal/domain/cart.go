package domain

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one cart line, uniquely keyed by (user, product, size).
// Name, price, size and image are denormalized snapshots taken when the
// line was first added; merging quantities never rewrites them.
type CartItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	ProductID   string    `json:"product_id" db:"product_id"`
	ProductName string    `json:"product_name" db:"product_name"`
	Size        string    `json:"size" db:"size"`
	Quantity    int       `json:"quantity" db:"quantity"`
	Price       float64   `json:"price" db:"price"`
	Image       string    `json:"image" db:"image"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
