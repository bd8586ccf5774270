package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"foodcart/internal/common"
	"foodcart/internal/events"
	"foodcart/internal/metrics"
	"foodcart/internal/models"
	"foodcart/internal/repositories"

	"github.com/google/uuid"
)

// OrderItemRequest is one requested position of a new order.
type OrderItemRequest struct {
	ProductID uuid.UUID
	Quantity  int
}

// CandidateList is the operator view of restaurants able to prepare an
// order, distance-sorted. Unfulfillable means no restaurant offers every
// ordered product — a business outcome, not a failure.
type CandidateList struct {
	Unfulfillable bool               `json:"unfulfillable"`
	Restaurants   []RankedRestaurant `json:"restaurants"`
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, order *models.Order, items []OrderItemRequest) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, status string, limit, offset int) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	// AssignRestaurant accepts only restaurants from the order's current
	// match set.
	AssignRestaurant(ctx context.Context, id, restaurantID uuid.UUID) error
	MarkCalled(ctx context.Context, id uuid.UUID) error
	MarkDelivered(ctx context.Context, id uuid.UUID) error
	// RankCandidates matches the order's products against current menus
	// and ranks the capable restaurants by distance.
	RankCandidates(ctx context.Context, orderID uuid.UUID) (*CandidateList, error)
}

type orderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	matching    MatchingService
	ranking     RankingService
	publisher   events.Publisher
	metrics     *metrics.Registry
}

func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository,
	matching MatchingService, ranking RankingService, publisher events.Publisher, registry *metrics.Registry) OrderServiceInterface {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		matching:    matching,
		ranking:     ranking,
		publisher:   publisher,
		metrics:     registry,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, order *models.Order, items []OrderItemRequest) error {
	if err := common.ValidateRequiredString(order.FirstName, "firstname"); err != nil {
		return err
	}
	if err := common.ValidateRequiredString(order.LastName, "lastname"); err != nil {
		return err
	}
	if err := common.ValidateRequiredString(order.Address, "address"); err != nil {
		return err
	}
	phone, err := common.NormalizePhoneNumber(order.PhoneNumber)
	if err != nil {
		return err
	}
	order.PhoneNumber = phone

	if len(items) == 0 {
		return fmt.Errorf("order must contain at least one product")
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return fmt.Errorf("quantity must be at least 1")
		}
	}

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.Status = models.OrderStatusNew
	if order.PaymentMethod == "" {
		order.PaymentMethod = models.PaymentCashOnDelivery
	}
	if !models.ValidPaymentMethod(order.PaymentMethod) {
		return fmt.Errorf("unknown payment method %q", order.PaymentMethod)
	}
	order.CreatedAt = time.Now()

	productIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return err
	}
	priceByID := make(map[uuid.UUID]float64, len(products))
	for _, product := range products {
		priceByID[product.ID] = product.Price
	}

	order.Lines = make([]*models.OrderLine, 0, len(items))
	for _, item := range items {
		price, ok := priceByID[item.ProductID]
		if !ok {
			return fmt.Errorf("unknown product %s", item.ProductID)
		}
		// Price is frozen here; later product price changes must not
		// rewrite the order's history.
		order.Lines = append(order.Lines, &models.OrderLine{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}

	if err := s.orderRepo.CreateWithLines(ctx, order); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.OrdersPlaced.Inc()
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, events.NewOrderPlaced(order)); err != nil {
			log.Printf("WARN: failed to publish order event for %s: %v", order.ID, err)
		}
	}

	return nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *orderService) ListOrders(ctx context.Context, status string, limit, offset int) ([]*models.Order, error) {
	if status != "" && !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("unknown order status %q", status)
	}
	return s.orderRepo.List(ctx, status, limit, offset)
}

func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("unknown order status %q", status)
	}
	return s.orderRepo.UpdateStatus(ctx, id, status)
}

func (s *orderService) AssignRestaurant(ctx context.Context, id, restaurantID uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	productIDs := make([]uuid.UUID, 0, len(order.Lines))
	for _, line := range order.Lines {
		productIDs = append(productIDs, line.ProductID)
	}
	capable, err := s.matching.MatchRestaurants(ctx, productIDs)
	if err != nil {
		return err
	}
	if _, ok := capable[restaurantID]; !ok {
		return fmt.Errorf("restaurant %s cannot prepare order %s", restaurantID, id)
	}

	return s.orderRepo.AssignRestaurant(ctx, id, restaurantID)
}

func (s *orderService) MarkCalled(ctx context.Context, id uuid.UUID) error {
	return s.orderRepo.MarkCalled(ctx, id)
}

func (s *orderService) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	return s.orderRepo.MarkDelivered(ctx, id)
}

func (s *orderService) RankCandidates(ctx context.Context, orderID uuid.UUID) (*CandidateList, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	productIDs := make([]uuid.UUID, 0, len(order.Lines))
	for _, line := range order.Lines {
		productIDs = append(productIDs, line.ProductID)
	}
	capable, err := s.matching.MatchRestaurants(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	if len(capable) == 0 {
		return &CandidateList{Unfulfillable: true, Restaurants: []RankedRestaurant{}}, nil
	}

	ranked, err := s.ranking.RankByDistance(ctx, order.Address, capable)
	if err != nil {
		return nil, err
	}
	return &CandidateList{Restaurants: ranked}, nil
}
