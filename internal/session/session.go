// Package session is the keyed session-state store: session id -> state, with
// a TTL. It is independent of any transport; the HTTP layer only carries the
// session id in a cookie.
package session

import (
	"context"

	"github.com/vijetacafe/cafeserve/internal/cart"
	"github.com/vijetacafe/cafeserve/internal/payment"
)

// State is everything the app remembers about one visitor. LastOrder keeps
// the confirmed order's code and total so the success page can render even
// when the store update failed.
type State struct {
	Cart           cart.Cart        `json:"cart,omitempty"`
	PendingPayment *payment.Pending `json:"pending_payment,omitempty"`
	LastOrder      *payment.Pending `json:"last_order,omitempty"`
	Admin          bool             `json:"admin,omitempty"`
}

func NewState() *State {
	return &State{Cart: cart.New()}
}

// Store persists session state. Get returns a fresh empty state for an
// unknown or expired id, never an error for mere absence. Implementations
// hand back independent copies; mutations are only visible after Put.
type Store interface {
	Get(ctx context.Context, id string) (*State, error)
	Put(ctx context.Context, id string, st *State) error
	Delete(ctx context.Context, id string) error
}
