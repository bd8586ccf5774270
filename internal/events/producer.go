package events

import (
	"context"
	"encoding/json"
	"time"

	"foodcart/internal/models"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// OrderPlaced is the event published when an order is accepted.
type OrderPlaced struct {
	OrderID       uuid.UUID `json:"order_id"`
	PhoneNumber   string    `json:"phonenumber"`
	Address       string    `json:"address"`
	PaymentMethod string    `json:"payment_method"`
	Total         float64   `json:"total"`
	PlacedAt      time.Time `json:"placed_at"`
}

type Publisher interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlaced) error
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(address, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(address),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Producer) PublishOrderPlaced(ctx context.Context, event OrderPlaced) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: payload,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// NewOrderPlaced builds the event payload from a persisted order.
func NewOrderPlaced(order *models.Order) OrderPlaced {
	return OrderPlaced{
		OrderID:       order.ID,
		PhoneNumber:   order.PhoneNumber,
		Address:       order.Address,
		PaymentMethod: order.PaymentMethod,
		Total:         order.Total(),
		PlacedAt:      order.CreatedAt,
	}
}
