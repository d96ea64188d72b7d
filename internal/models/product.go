package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductFilter holds filter criteria for product list queries
type ProductFilter struct {
	Name   *string `json:"name,omitempty"`  // Case-insensitive substring match on name
	Brand  *string `json:"brand,omitempty"` // Case-insensitive substring match on brand
	Limit  int     `json:"limit,omitempty"`
	Offset int     `json:"offset,omitempty"`
}

type Product struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Brand     *string   `json:"brand" db:"brand"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
