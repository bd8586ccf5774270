package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"foodcart/internal/models"
	"foodcart/internal/repositories"

	"github.com/google/uuid"
)

// RankedRestaurant is one entry of a distance-sorted candidate list.
type RankedRestaurant struct {
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	DistanceKM   float64   `json:"distance_km"`
}

// RankingService orders candidate restaurants by distance from a delivery
// address.
type RankingService interface {
	// RankByDistance resolves the order address and every candidate
	// restaurant address through the geocode cache and sorts ascending by
	// great-circle distance, ties broken by restaurant ID. Any failed
	// resolution fails the whole ranking; there is no partial output.
	RankByDistance(ctx context.Context, orderAddress string, candidates models.RestaurantSet) ([]RankedRestaurant, error)
}

type rankingService struct {
	restaurantRepo repositories.RestaurantRepository
	geoCache       GeoCacheService
}

func NewRankingService(restaurantRepo repositories.RestaurantRepository, geoCache GeoCacheService) RankingService {
	return &rankingService{
		restaurantRepo: restaurantRepo,
		geoCache:       geoCache,
	}
}

func (s *rankingService) RankByDistance(ctx context.Context, orderAddress string, candidates models.RestaurantSet) ([]RankedRestaurant, error) {
	ranked := []RankedRestaurant{}
	if len(candidates) == 0 {
		return ranked, nil
	}

	orderLon, orderLat, err := s.geoCache.Resolve(ctx, orderAddress)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}
	restaurants, err := s.restaurantRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, restaurant := range restaurants {
		lon, lat, err := s.geoCache.Resolve(ctx, restaurant.Address)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, RankedRestaurant{
			RestaurantID: restaurant.ID,
			Name:         restaurant.Name,
			DistanceKM:   haversineKM(orderLat, orderLon, lat, lon),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].DistanceKM != ranked[j].DistanceKM {
			return ranked[i].DistanceKM < ranked[j].DistanceKM
		}
		return strings.Compare(ranked[i].RestaurantID.String(), ranked[j].RestaurantID.String()) < 0
	})

	return ranked, nil
}

const earthRadiusKM = 6371.0

// haversineKM is the great-circle distance between two coordinates.
func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKM * math.Asin(math.Sqrt(a))
}
