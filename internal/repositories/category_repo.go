package repositories

import (
	"context"

	"foodcart/internal/models"

	"github.com/google/uuid"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.ProductCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProductCategory, error)
	List(ctx context.Context) ([]*models.ProductCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepo struct {
	db DB
}

func NewCategoryRepo(db DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *models.ProductCategory) error {
	query := `INSERT INTO product_categories (id, name) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, category.ID, category.Name)
	return err
}

func (r *categoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ProductCategory, error) {
	category := &models.ProductCategory{}
	query := `SELECT id, name FROM product_categories WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]*models.ProductCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM product_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.ProductCategory
	for rows.Next() {
		category := &models.ProductCategory{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *categoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM product_categories WHERE id = $1`, id)
	return err
}
