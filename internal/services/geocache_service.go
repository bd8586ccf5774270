package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"foodcart/internal/geocoder"
	"foodcart/internal/metrics"
	"foodcart/internal/models"
	"foodcart/internal/repositories"
)

// GeocodeError reports that an address could not be resolved to coordinates.
// It is never swallowed: no default coordinate is ever substituted.
type GeocodeError struct {
	Address string
	Err     error
}

func (e *GeocodeError) Error() string {
	return fmt.Sprintf("geocode %q: %v", e.Address, e.Err)
}

func (e *GeocodeError) Unwrap() error { return e.Err }

// GeoCacheService resolves addresses through the geopoint cache, calling the
// external provider only for addresses never seen before.
type GeoCacheService interface {
	Resolve(ctx context.Context, address string) (lon, lat float64, err error)
	// RefreshOlderThan re-resolves cached points whose entries predate the
	// cutoff. Failures for individual addresses are counted and skipped.
	RefreshOlderThan(ctx context.Context, cutoff time.Time, limit int) (refreshed int, err error)
}

type geoCacheService struct {
	geoRepo  repositories.GeoPointRepository
	provider geocoder.Provider
	metrics  *metrics.Registry
}

func NewGeoCacheService(geoRepo repositories.GeoPointRepository, provider geocoder.Provider, registry *metrics.Registry) GeoCacheService {
	return &geoCacheService{
		geoRepo:  geoRepo,
		provider: provider,
		metrics:  registry,
	}
}

func (s *geoCacheService) Resolve(ctx context.Context, address string) (float64, float64, error) {
	address = strings.TrimSpace(address)

	point, err := s.geoRepo.GetByAddress(ctx, address)
	if err != nil {
		return 0, 0, err
	}
	if point != nil {
		if s.metrics != nil {
			s.metrics.GeocodeHits.Inc()
		}
		return point.Lon, point.Lat, nil
	}

	if s.metrics != nil {
		s.metrics.GeocodeMisses.Inc()
	}
	lon, lat, err := s.provider.Geocode(ctx, address)
	if err != nil {
		if s.metrics != nil {
			s.metrics.GeocodeFailures.Inc()
		}
		return 0, 0, &GeocodeError{Address: address, Err: err}
	}

	// Concurrent first-time resolves may race here; Insert degrades a lost
	// race to a read of the winner's row.
	stored, err := s.geoRepo.Insert(ctx, &models.GeoPoint{Address: address, Lon: lon, Lat: lat})
	if err != nil {
		return 0, 0, err
	}
	return stored.Lon, stored.Lat, nil
}

func (s *geoCacheService) RefreshOlderThan(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	stale, err := s.geoRepo.ListOlderThan(ctx, cutoff, limit)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, point := range stale {
		lon, lat, err := s.provider.Geocode(ctx, point.Address)
		if err != nil {
			if s.metrics != nil {
				s.metrics.GeocodeFailures.Inc()
			}
			continue
		}
		point.Lon = lon
		point.Lat = lat
		if err := s.geoRepo.UpdateCoords(ctx, point); err != nil {
			return refreshed, err
		}
		refreshed++
	}
	return refreshed, nil
}
