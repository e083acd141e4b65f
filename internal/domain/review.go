package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is an append-only product review. Reviews are never updated and
// are removed only when their product is deleted (cascading constraint).
type Review struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ProductID    string    `json:"productId" db:"product_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PurchaseDate time.Time `json:"purchaseDate" db:"purchase_date"`
	Experience   string    `json:"experience" db:"experience"`
	Rating       int       `json:"rating" db:"rating"`
	Review       string    `json:"review" db:"review"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
