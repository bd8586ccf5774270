package repositories

import (
	"context"

	"foodcart/internal/models"

	"github.com/google/uuid"
)

type BannerRepository interface {
	Create(ctx context.Context, banner *models.Banner) error
	List(ctx context.Context) ([]*models.Banner, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bannerRepo struct {
	db DB
}

func NewBannerRepo(db DB) BannerRepository {
	return &bannerRepo{db: db}
}

func (r *bannerRepo) Create(ctx context.Context, banner *models.Banner) error {
	query := `
		INSERT INTO banners (id, title, image_url, text, sort_order)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, banner.ID, banner.Title, banner.ImageURL, banner.Text, banner.SortOrder)
	return err
}

func (r *bannerRepo) List(ctx context.Context) ([]*models.Banner, error) {
	query := `
		SELECT id, title, image_url, text, sort_order
		FROM banners
		ORDER BY sort_order
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banners []*models.Banner
	for rows.Next() {
		banner := &models.Banner{}
		if err := rows.Scan(&banner.ID, &banner.Title, &banner.ImageURL, &banner.Text, &banner.SortOrder); err != nil {
			return nil, err
		}
		banners = append(banners, banner)
	}
	return banners, rows.Err()
}

func (r *bannerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	return err
}
