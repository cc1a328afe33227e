package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vijetacafe/cafeserve/internal/cart"
	"github.com/vijetacafe/cafeserve/internal/menu"
)

var (
	ErrCartEmpty = errors.New("cart is empty")

	// ErrPersistence means the store was reachable but rejected the write.
	// Checkout must abort and the cart stays intact.
	ErrPersistence = errors.New("order could not be stored")
)

// ValidationError reports bad user input on checkout.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Outcome tells which persistence path an assembled order took.
type Outcome int

const (
	// Stored means the gateway accepted the order and assigned its id.
	Stored Outcome = iota
	// StoredLocally means the gateway was unavailable; the order carries its
	// own code as id and is invisible to the admin view, but checkout
	// proceeds.
	StoredLocally
)

// Assembler converts a cart plus a menu snapshot into an immutable Order and
// hands it to the persistence gateway.
type Assembler struct {
	gw  Gateway
	now func() time.Time
}

func NewAssembler(gw Gateway) *Assembler {
	return &Assembler{gw: gw, now: time.Now}
}

// CreateOrder builds and stores an order from the cart against the supplied
// menu snapshot.
//
// Cart entries whose id is missing from the snapshot are silently dropped:
// the menu may have drifted between cart creation and checkout. Lines follow
// the snapshot's order, so item sequence is stable. customerName is optional;
// when present it must be at least 2 characters after trimming.
//
// The cart is cleared only on success. On ErrUnavailable from the gateway the
// order is still returned, identified by its own code (StoredLocally); any
// other gateway error aborts the checkout with ErrPersistence.
func (a *Assembler) CreateOrder(ctx context.Context, c cart.Cart, snapshot []menu.Item, customerName string) (*Order, Outcome, error) {
	if len(c) == 0 {
		return nil, 0, ErrCartEmpty
	}

	name := strings.TrimSpace(customerName)
	if name != "" && utf8.RuneCountInString(name) < 2 {
		return nil, 0, &ValidationError{Field: "customer_name", Reason: "must be at least 2 characters"}
	}

	var (
		lines []Line
		total int
	)
	for _, item := range snapshot {
		qty, ok := c[item.ID]
		if !ok || qty <= 0 {
			continue
		}
		lineTotal := item.Price * qty
		total += lineTotal
		lines = append(lines, Line{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: qty,
			Total:    lineTotal,
		})
	}

	now := a.now().UTC()
	o := &Order{
		Code:          NewCode(),
		CustomerName:  name,
		Items:         lines,
		TotalAmount:   total,
		OrderStatus:   StatusOpen,
		PaymentStatus: PaymentPending,
		CreatedAt:     At(now),
		UpdatedAt:     At(now),
	}

	outcome := Stored
	id, err := a.gw.Create(ctx, o)
	switch {
	case err == nil:
		o.ID = id
	case errors.Is(err, ErrUnavailable):
		log.Printf("[order] store unavailable, using local order id %s", o.Code)
		o.ID = o.Code
		outcome = StoredLocally
	default:
		return nil, 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	c.Clear()
	return o, outcome, nil
}
