package services

import (
	"context"

	"foodcart/internal/models"

	"github.com/google/uuid"
)

// MatchingService computes which restaurants can prepare an entire order.
type MatchingService interface {
	// MatchRestaurants intersects the availability sets of the distinct
	// ordered products. An order with no products yields an empty set, and
	// so does an order containing any product nobody offers. An empty
	// result is a normal business outcome, not an error.
	MatchRestaurants(ctx context.Context, productIDs []uuid.UUID) (models.RestaurantSet, error)
}

type matchingService struct {
	availability AvailabilityService
}

func NewMatchingService(availability AvailabilityService) MatchingService {
	return &matchingService{availability: availability}
}

func (s *matchingService) MatchRestaurants(ctx context.Context, productIDs []uuid.UUID) (models.RestaurantSet, error) {
	distinct := make(map[uuid.UUID]struct{}, len(productIDs))
	for _, id := range productIDs {
		distinct[id] = struct{}{}
	}

	// Intersecting over zero sets is ambiguous; "no fulfillable restaurant"
	// is the safe reading, never "all restaurants".
	if len(distinct) == 0 {
		return models.RestaurantSet{}, nil
	}

	index, err := s.availability.BuildIndex(ctx)
	if err != nil {
		return nil, err
	}

	var result models.RestaurantSet
	for productID := range distinct {
		offering := index[productID]
		if result == nil {
			result = make(models.RestaurantSet, len(offering))
			for restaurantID := range offering {
				result[restaurantID] = struct{}{}
			}
			continue
		}
		for restaurantID := range result {
			if _, ok := offering[restaurantID]; !ok {
				delete(result, restaurantID)
			}
		}
		if len(result) == 0 {
			break
		}
	}

	return result, nil
}
