package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItemFilter holds filter criteria for inventory item list queries
type InventoryItemFilter struct {
	LocationID *uuid.UUID `json:"location_id,omitempty"`
	ProductID  *uuid.UUID `json:"product_id,omitempty"`
	StoreID    *uuid.UUID `json:"store_id,omitempty"`
	Limit      int        `json:"limit,omitempty"`
	Offset     int        `json:"offset,omitempty"`
}

type InventoryItem struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	ProductID  uuid.UUID  `json:"product_id" db:"product_id"`
	LocationID uuid.UUID  `json:"location_id" db:"location_id"`
	StoreID    *uuid.UUID `json:"store_id" db:"store_id"`
	Quantity   float64    `json:"quantity" db:"quantity"`
	Price      float64    `json:"price" db:"price"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}
