package models

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingListItemFilter holds filter criteria for shopping list queries
type ShoppingListItemFilter struct {
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	StoreID   *uuid.UUID `json:"store_id,omitempty"`
	Limit     int        `json:"limit,omitempty"`
	Offset    int        `json:"offset,omitempty"`
}

type ShoppingListItem struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	ProductID uuid.UUID  `json:"product_id" db:"product_id"`
	StoreID   *uuid.UUID `json:"store_id" db:"store_id"`
	Quantity  float64    `json:"quantity" db:"quantity"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}
