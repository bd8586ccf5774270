package repositories

import (
	"context"
	"errors"
	"time"

	"foodcart/internal/models"

	"github.com/jackc/pgx/v5"
)

type GeoPointRepository interface {
	// GetByAddress returns (nil, nil) when the address has never been
	// resolved.
	GetByAddress(ctx context.Context, address string) (*models.GeoPoint, error)
	// Insert stores a freshly resolved point. When a concurrent insert for
	// the same address wins the race, the winner's row is returned instead
	// of an error.
	Insert(ctx context.Context, point *models.GeoPoint) (*models.GeoPoint, error)
	UpdateCoords(ctx context.Context, point *models.GeoPoint) error
	ListOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]*models.GeoPoint, error)
}

type geoPointRepo struct {
	db DB
}

func NewGeoPointRepo(db DB) GeoPointRepository {
	return &geoPointRepo{db: db}
}

func (r *geoPointRepo) GetByAddress(ctx context.Context, address string) (*models.GeoPoint, error) {
	point := &models.GeoPoint{}
	query := `
		SELECT address, lon, lat, updated_at
		FROM geopoints
		WHERE address = $1
	`
	err := r.db.QueryRow(ctx, query, address).Scan(&point.Address, &point.Lon, &point.Lat, &point.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return point, nil
}

func (r *geoPointRepo) Insert(ctx context.Context, point *models.GeoPoint) (*models.GeoPoint, error) {
	query := `
		INSERT INTO geopoints (address, lon, lat, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (address) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, point.Address, point.Lon, point.Lat)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		// Lost the race: a concurrent resolve inserted first. Degrade to a
		// read of the winner's row.
		winner, err := r.GetByAddress(ctx, point.Address)
		if err != nil {
			return nil, err
		}
		if winner != nil {
			return winner, nil
		}
	}
	return point, nil
}

func (r *geoPointRepo) UpdateCoords(ctx context.Context, point *models.GeoPoint) error {
	query := `
		UPDATE geopoints
		SET lon = $1, lat = $2, updated_at = NOW()
		WHERE address = $3
	`
	_, err := r.db.Exec(ctx, query, point.Lon, point.Lat, point.Address)
	return err
}

func (r *geoPointRepo) ListOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]*models.GeoPoint, error) {
	query := `
		SELECT address, lon, lat, updated_at
		FROM geopoints
		WHERE updated_at < $1
		ORDER BY updated_at
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []*models.GeoPoint
	for rows.Next() {
		point := &models.GeoPoint{}
		if err := rows.Scan(&point.Address, &point.Lon, &point.Lat, &point.UpdatedAt); err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, rows.Err()
}
