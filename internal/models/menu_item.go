package models

import (
	"time"

	"github.com/google/uuid"
)

// MenuItem links a restaurant to a product it lists. A listed product may
// still be marked unavailable. One row per (restaurant, product) pair.
type MenuItem struct {
	ID           uuid.UUID `json:"id" db:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id" db:"restaurant_id"`
	ProductID    uuid.UUID `json:"product_id" db:"product_id"`
	Availability bool      `json:"availability" db:"availability"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// MenuListing is the projection the availability index is built from.
type MenuListing struct {
	ProductID    uuid.UUID `json:"product_id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
}

// RestaurantSet is a set of restaurant IDs.
type RestaurantSet map[uuid.UUID]struct{}

// AvailabilityIndex maps a product to the restaurants currently offering it.
// Products nobody offers map to an empty, non-nil set.
type AvailabilityIndex map[uuid.UUID]RestaurantSet
