package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"foodcart/internal/caching"
	"foodcart/internal/models"
	"foodcart/internal/repositories"

	"github.com/google/uuid"
)

const availableProductsTTL = 5 * time.Minute

type ProductServiceInterface interface {
	// ListAvailable serves the customer-facing product listing through the
	// redis cache.
	ListAvailable(ctx context.Context) ([]*models.AvailableProduct, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]*models.Product, error)
	// SetMenuItem upserts a (restaurant, product) listing and invalidates
	// the availability-derived cache.
	SetMenuItem(ctx context.Context, item *models.MenuItem) error
}

type productService struct {
	productRepo  repositories.ProductRepository
	menuItemRepo repositories.MenuItemRepository
	cache        caching.CacheService
}

func NewProductService(productRepo repositories.ProductRepository, menuItemRepo repositories.MenuItemRepository, cache caching.CacheService) ProductServiceInterface {
	return &productService{
		productRepo:  productRepo,
		menuItemRepo: menuItemRepo,
		cache:        cache,
	}
}

func (s *productService) ListAvailable(ctx context.Context) ([]*models.AvailableProduct, error) {
	if s.cache != nil {
		cached, err := s.cache.GetAvailableProducts(ctx)
		if err != nil {
			log.Printf("WARN: available-products cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	products, err := s.productRepo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAvailableProducts(ctx, products, availableProductsTTL); err != nil {
			log.Printf("WARN: available-products cache write failed: %v", err)
		}
	}
	return products, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *productService) UpdateProduct(ctx context.Context, product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) ListProducts(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	return s.productRepo.List(ctx, limit, offset)
}

func (s *productService) SetMenuItem(ctx context.Context, item *models.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if err := s.menuItemRepo.Upsert(ctx, item); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *productService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAvailableProducts(ctx); err != nil {
		log.Printf("WARN: available-products cache invalidation failed: %v", err)
	}
}

func validateProduct(product *models.Product) error {
	if product.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if product.Price < 0 {
		return fmt.Errorf("product price must not be negative")
	}
	return nil
}
