// Package cart implements the session-scoped shopping cart: a mapping of menu
// item id to desired quantity. Operations mutate the cart in place; the caller
// is responsible for writing the session back.
package cart

import "errors"

var (
	ErrEmptyItemID = errors.New("item id is required")
	ErrNotInCart   = errors.New("item not in cart")
)

type Cart map[string]int

func New() Cart { return Cart{} }

// Add increments the quantity for itemID, creating the entry if absent.
func (c Cart) Add(itemID string, qty int) error {
	if itemID == "" {
		return ErrEmptyItemID
	}
	c[itemID] += qty
	return nil
}

// Adjust adds delta to an existing entry. A resulting quantity of zero or
// below removes the entry entirely; negative quantities never persist.
func (c Cart) Adjust(itemID string, delta int) error {
	if _, ok := c[itemID]; !ok {
		return ErrNotInCart
	}
	c[itemID] += delta
	if c[itemID] <= 0 {
		delete(c, itemID)
	}
	return nil
}

// Remove deletes the entry for itemID. Removing an absent id is a no-op.
func (c Cart) Remove(itemID string) {
	delete(c, itemID)
}

// TotalCount is the sum of all quantities, used for the cart badge.
func (c Cart) TotalCount() int {
	n := 0
	for _, qty := range c {
		n += qty
	}
	return n
}

// Clear empties the cart in place.
func (c Cart) Clear() {
	for id := range c {
		delete(c, id)
	}
}
