package repositories

import (
	"context"

	"foodcart/internal/models"

	"github.com/google/uuid"
)

type MenuItemRepository interface {
	// Upsert inserts the (restaurant, product) pair or, if it already
	// exists, updates its availability flag.
	Upsert(ctx context.Context, item *models.MenuItem) error
	Delete(ctx context.Context, restaurantID, productID uuid.UUID) error
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*models.MenuItem, error)
	// ListAvailable returns all (product, restaurant) pairs with
	// availability = TRUE.
	ListAvailable(ctx context.Context) ([]*models.MenuListing, error)
}

type menuItemRepo struct {
	db DB
}

func NewMenuItemRepo(db DB) MenuItemRepository {
	return &menuItemRepo{db: db}
}

func (r *menuItemRepo) Upsert(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, restaurant_id, product_id, availability, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (restaurant_id, product_id)
		DO UPDATE SET availability = EXCLUDED.availability, updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, item.ID, item.RestaurantID, item.ProductID, item.Availability)
	return err
}

func (r *menuItemRepo) Delete(ctx context.Context, restaurantID, productID uuid.UUID) error {
	query := `DELETE FROM menu_items WHERE restaurant_id = $1 AND product_id = $2`
	_, err := r.db.Exec(ctx, query, restaurantID, productID)
	return err
}

func (r *menuItemRepo) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*models.MenuItem, error) {
	query := `
		SELECT id, restaurant_id, product_id, availability, created_at, updated_at
		FROM menu_items
		WHERE restaurant_id = $1
	`
	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.MenuItem
	for rows.Next() {
		item := &models.MenuItem{}
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.ProductID, &item.Availability, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *menuItemRepo) ListAvailable(ctx context.Context) ([]*models.MenuListing, error) {
	query := `
		SELECT product_id, restaurant_id
		FROM menu_items
		WHERE availability = TRUE
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*models.MenuListing
	for rows.Next() {
		listing := &models.MenuListing{}
		if err := rows.Scan(&listing.ProductID, &listing.RestaurantID); err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}
