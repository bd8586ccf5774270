package repositories

import (
	"context"
	"fmt"

	"foodcart/internal/models"

	"github.com/google/uuid"
)

type OrderRepository interface {
	// CreateWithLines persists the order and all of its lines in a single
	// transaction: either everything is recorded or nothing is.
	CreateWithLines(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, status string, limit, offset int) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	AssignRestaurant(ctx context.Context, id, restaurantID uuid.UUID) error
	// MarkCalled and MarkDelivered set their timestamp once; repeated calls
	// keep the original value.
	MarkCalled(ctx context.Context, id uuid.UUID) error
	MarkDelivered(ctx context.Context, id uuid.UUID) error
}

type orderRepo struct {
	db DB
}

func NewOrderRepo(db DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) CreateWithLines(ctx context.Context, order *models.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	orderQuery := `
		INSERT INTO orders (id, firstname, lastname, phonenumber, address, status, payment_method, comment, restaurant_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`
	_, err = tx.Exec(ctx, orderQuery, order.ID, order.FirstName, order.LastName, order.PhoneNumber, order.Address, order.Status, order.PaymentMethod, order.Comment, order.RestaurantID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	lineQuery := `
		INSERT INTO order_lines (id, order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, line := range order.Lines {
		if _, err := tx.Exec(ctx, lineQuery, line.ID, line.OrderID, line.ProductID, line.Quantity, line.Price); err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order := &models.Order{}
	query := `
		SELECT id, firstname, lastname, phonenumber, address, status, payment_method, comment, restaurant_id, created_at, called_at, delivered_at
		FROM orders
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&order.ID, &order.FirstName, &order.LastName, &order.PhoneNumber, &order.Address, &order.Status, &order.PaymentMethod, &order.Comment, &order.RestaurantID, &order.CreatedAt, &order.CalledAt, &order.DeliveredAt)
	if err != nil {
		return nil, err
	}

	lines, err := r.linesByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Lines = lines
	return order, nil
}

func (r *orderRepo) linesByOrder(ctx context.Context, orderID uuid.UUID) ([]*models.OrderLine, error) {
	query := `
		SELECT id, order_id, product_id, quantity, price
		FROM order_lines
		WHERE order_id = $1
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []*models.OrderLine
	for rows.Next() {
		line := &models.OrderLine{}
		if err := rows.Scan(&line.ID, &line.OrderID, &line.ProductID, &line.Quantity, &line.Price); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *orderRepo) List(ctx context.Context, status string, limit, offset int) ([]*models.Order, error) {
	query := `
		SELECT id, firstname, lastname, phonenumber, address, status, payment_method, comment, restaurant_id, created_at, called_at, delivered_at
		FROM orders
	`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.ID, &order.FirstName, &order.LastName, &order.PhoneNumber, &order.Address, &order.Status, &order.PaymentMethod, &order.Comment, &order.RestaurantID, &order.CreatedAt, &order.CalledAt, &order.DeliveredAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE orders SET status = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}

func (r *orderRepo) AssignRestaurant(ctx context.Context, id, restaurantID uuid.UUID) error {
	query := `UPDATE orders SET restaurant_id = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, restaurantID, id)
	return err
}

func (r *orderRepo) MarkCalled(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE orders SET called_at = NOW() WHERE id = $1 AND called_at IS NULL`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *orderRepo) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE orders SET delivered_at = NOW() WHERE id = $1 AND delivered_at IS NULL`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
