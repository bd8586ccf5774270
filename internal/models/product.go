package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	CategoryID  *uuid.UUID `json:"category_id" db:"category_id"`
	Name        string     `json:"name" db:"name"`
	Price       float64    `json:"price" db:"price"`
	ImageURL    *string    `json:"image_url" db:"image_url"`
	Special     bool       `json:"special" db:"special"`
	Description string     `json:"description" db:"description"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// AvailableProduct is a product row joined with its category, restricted to
// products offered by at least one restaurant right now.
type AvailableProduct struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Special      bool      `json:"special"`
	Description  string    `json:"description"`
	ImageURL     *string   `json:"image_url"`
	CategoryID   *uuid.UUID `json:"category_id"`
	CategoryName *string    `json:"category_name"`
}
