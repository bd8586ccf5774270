package services

import (
	"context"

	"foodcart/internal/models"
	"foodcart/internal/repositories"
)

// AvailabilityService derives the product -> offering-restaurants index from
// the current menu state.
type AvailabilityService interface {
	// BuildIndex returns a fresh point-in-time snapshot. Every known
	// product is present; products nobody offers map to an empty set.
	BuildIndex(ctx context.Context) (models.AvailabilityIndex, error)
}

type availabilityService struct {
	menuItemRepo repositories.MenuItemRepository
	productRepo  repositories.ProductRepository
}

func NewAvailabilityService(menuItemRepo repositories.MenuItemRepository, productRepo repositories.ProductRepository) AvailabilityService {
	return &availabilityService{
		menuItemRepo: menuItemRepo,
		productRepo:  productRepo,
	}
}

func (s *availabilityService) BuildIndex(ctx context.Context) (models.AvailabilityIndex, error) {
	productIDs, err := s.productRepo.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	index := make(models.AvailabilityIndex, len(productIDs))
	for _, id := range productIDs {
		index[id] = models.RestaurantSet{}
	}

	listings, err := s.menuItemRepo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	for _, listing := range listings {
		set, ok := index[listing.ProductID]
		if !ok {
			set = models.RestaurantSet{}
			index[listing.ProductID] = set
		}
		set[listing.RestaurantID] = struct{}{}
	}

	return index, nil
}
