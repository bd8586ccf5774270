package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusNew        = "new"
	OrderStatusInProgress = "in_progress"
	OrderStatusDone       = "done"
)

const (
	PaymentCashOnDelivery = "cash"
	PaymentCardOnline     = "card"
)

type Order struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	FirstName     string     `json:"firstname" db:"firstname"`
	LastName      string     `json:"lastname" db:"lastname"`
	PhoneNumber   string     `json:"phonenumber" db:"phonenumber"`
	Address       string     `json:"address" db:"address"`
	Status        string     `json:"status" db:"status"`
	PaymentMethod string     `json:"payment_method" db:"payment_method"`
	Comment       *string    `json:"comment" db:"comment"`
	RestaurantID  *uuid.UUID `json:"restaurant_id" db:"restaurant_id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	CalledAt      *time.Time `json:"called_at" db:"called_at"`
	DeliveredAt   *time.Time `json:"delivered_at" db:"delivered_at"`

	Lines []*OrderLine `json:"lines,omitempty" db:"-"`
}

// Total is the historical order value: line prices were captured at
// placement, so later product price changes do not affect it.
func (o *Order) Total() float64 {
	var total float64
	for _, line := range o.Lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// OrderLine is one ordered position. Price is the product price at the
// moment the order was placed and is never recalculated.
type OrderLine struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OrderID   uuid.UUID `json:"order_id" db:"order_id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Price     float64   `json:"price" db:"price"`
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusNew, OrderStatusInProgress, OrderStatusDone:
		return true
	}
	return false
}

func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCashOnDelivery, PaymentCardOnline:
		return true
	}
	return false
}
