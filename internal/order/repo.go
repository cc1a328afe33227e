package order

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrUnavailable means the store could not be reached at all. Callers
	// degrade (local order id, empty admin list) instead of failing.
	ErrUnavailable = errors.New("order store unavailable")
	ErrNotFound    = errors.New("order not found")
)

// Gateway is the order persistence boundary. Every call site must tolerate
// ErrUnavailable.
type Gateway interface {
	Create(ctx context.Context, o *Order) (string, error)
	ListRecent(ctx context.Context, limit int) ([]Order, error)
	UpdateStatus(ctx context.Context, id, orderStatus, paymentStatus string) error
}

type PGGateway struct{ db *pgxpool.Pool }

// NewPGGateway accepts a nil pool: every operation then reports
// ErrUnavailable, which is exactly the degraded mode the app runs in when
// Postgres could not be reached at startup.
func NewPGGateway(db *pgxpool.Pool) *PGGateway { return &PGGateway{db: db} }

func (g *PGGateway) Create(ctx context.Context, o *Order) (string, error) {
	if g.db == nil {
		return "", ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	items, err := json.Marshal(o.Items)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	created, _ := o.CreatedAt.Time()
	if _, err := g.db.Exec(ctx, `
		INSERT INTO orders (id, code, customer_name, items, total_amount, order_status, payment_status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$8)
	`, id, o.Code, o.CustomerName, items, o.TotalAmount, o.OrderStatus, o.PaymentStatus, created); err != nil {
		return "", err
	}
	return id, nil
}

func (g *PGGateway) ListRecent(ctx context.Context, limit int) ([]Order, error) {
	if g.db == nil {
		return nil, ErrUnavailable
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := g.db.Query(ctx, `
		SELECT id, code, customer_name, items, total_amount, order_status, payment_status, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var (
			o       Order
			items   []byte
			created time.Time
			updated time.Time
		)
		if err := rows.Scan(&o.ID, &o.Code, &o.CustomerName, &items, &o.TotalAmount, &o.OrderStatus, &o.PaymentStatus, &created, &updated); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}
		o.CreatedAt = At(created)
		o.UpdatedAt = At(updated)
		out = append(out, o)
	}
	return out, rows.Err()
}

func (g *PGGateway) UpdateStatus(ctx context.Context, id, orderStatus, paymentStatus string) error {
	if g.db == nil {
		return ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := g.db.Exec(ctx, `
		UPDATE orders
		SET order_status = $2, payment_status = $3, updated_at = NOW()
		WHERE id::text = $1
	`, id, orderStatus, paymentStatus)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
