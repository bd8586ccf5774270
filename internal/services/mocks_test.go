package services

import (
	"context"
	"time"

	"foodcart/internal/events"
	"foodcart/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) Upsert(ctx context.Context, item *models.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Delete(ctx context.Context, restaurantID, productID uuid.UUID) error {
	args := m.Called(ctx, restaurantID, productID)
	return args.Error(0)
}

func (m *MockMenuItemRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*models.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).([]*models.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) ListAvailable(ctx context.Context) ([]*models.MenuListing, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.MenuListing), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockProductRepository) ListAvailable(ctx context.Context) ([]*models.AvailableProduct, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.AvailableProduct), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*models.Product), args.Error(1)
}

type MockGeoPointRepository struct {
	mock.Mock
}

func (m *MockGeoPointRepository) GetByAddress(ctx context.Context, address string) (*models.GeoPoint, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GeoPoint), args.Error(1)
}

func (m *MockGeoPointRepository) Insert(ctx context.Context, point *models.GeoPoint) (*models.GeoPoint, error) {
	args := m.Called(ctx, point)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GeoPoint), args.Error(1)
}

func (m *MockGeoPointRepository) UpdateCoords(ctx context.Context, point *models.GeoPoint) error {
	args := m.Called(ctx, point)
	return args.Error(0)
}

func (m *MockGeoPointRepository) ListOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]*models.GeoPoint, error) {
	args := m.Called(ctx, cutoff, limit)
	return args.Get(0).([]*models.GeoPoint), args.Error(1)
}

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Geocode(ctx context.Context, address string) (float64, float64, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(float64), args.Get(1).(float64), args.Error(2)
}

type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Restaurant, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, restaurant *models.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRestaurantRepository) List(ctx context.Context, limit, offset int) ([]*models.Restaurant, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Restaurant), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateWithLines(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, status string, limit, offset int) ([]*models.Order, error) {
	args := m.Called(ctx, status, limit, offset)
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) AssignRestaurant(ctx context.Context, id, restaurantID uuid.UUID) error {
	args := m.Called(ctx, id, restaurantID)
	return args.Error(0)
}

func (m *MockOrderRepository) MarkCalled(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishOrderPlaced(ctx context.Context, event events.OrderPlaced) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) BuildIndex(ctx context.Context) (models.AvailabilityIndex, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.AvailabilityIndex), args.Error(1)
}
