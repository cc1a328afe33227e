// Package notify publishes order events to a RabbitMQ fanout exchange so
// admin-side consumers can react to new orders. Everything here is
// best-effort: an unreachable broker never blocks a checkout.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/vijetacafe/cafeserve/internal/order"
)

const exchange = "cafe.orders"

type orderCreatedEvent struct {
	OrderID     string `json:"order_id"`
	OrderCode   string `json:"order_code"`
	TotalAmount int    `json:"total_amount"`
	ItemCount   int    `json:"item_count"`
	CreatedAt   string `json:"created_at"`
}

type Publisher struct {
	conn *amqp091.Connection
	ch   *amqp091.Channel
}

// New dials the broker and declares the fanout exchange.
func New(url string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &Publisher{conn: conn, ch: ch}, nil
}

// OrderCreated publishes a new-order event. Safe on a nil receiver, which is
// how the server runs when no broker is configured.
func (p *Publisher) OrderCreated(ctx context.Context, o *order.Order) error {
	if p == nil {
		return nil
	}
	created, _ := o.CreatedAt.Time()
	body, err := json.Marshal(orderCreatedEvent{
		OrderID:     o.ID,
		OrderCode:   o.Code,
		TotalAmount: o.TotalAmount,
		ItemCount:   len(o.Items),
		CreatedAt:   created.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return p.ch.PublishWithContext(ctx, exchange, "", false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
		Timestamp:   time.Now(),
	})
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
