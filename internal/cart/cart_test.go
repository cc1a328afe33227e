package cart

import (
	"errors"
	"testing"
)

func TestAddCreatesAndIncrements(t *testing.T) {
	c := New()
	if err := c.Add("3", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := c.Add("3", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if c["3"] != 3 {
		t.Fatalf("quantity=%d, expected 3", c["3"])
	}
}

func TestAddEmptyItemID(t *testing.T) {
	c := New()
	if err := c.Add("", 1); !errors.Is(err, ErrEmptyItemID) {
		t.Fatalf("err=%v, expected ErrEmptyItemID", err)
	}
	if len(c) != 0 {
		t.Fatalf("cart should stay empty, got %v", c)
	}
}

func TestAdjustRemovesAtZeroOrBelow(t *testing.T) {
	c := Cart{"3": 2}
	if err := c.Adjust("3", -1); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if c["3"] != 1 {
		t.Fatalf("quantity=%d, expected 1", c["3"])
	}
	if err := c.Adjust("3", -5); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if _, ok := c["3"]; ok {
		t.Fatalf("entry should be removed, cart=%v", c)
	}
}

func TestAdjustUnknownItem(t *testing.T) {
	c := New()
	if err := c.Adjust("99", 1); !errors.Is(err, ErrNotInCart) {
		t.Fatalf("err=%v, expected ErrNotInCart", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := Cart{"1": 1}
	c.Remove("1")
	c.Remove("1") // absent id is a no-op
	if len(c) != 0 {
		t.Fatalf("cart=%v, expected empty", c)
	}
}

// A cart built from any sequence of operations never holds a quantity <= 0
// and TotalCount matches the entries actually present.
func TestOperationSequenceInvariants(t *testing.T) {
	c := New()
	ops := []func() error{
		func() error { return c.Add("3", 2) },
		func() error { return c.Add("16", 1) },
		func() error { return c.Adjust("3", -1) },
		func() error { return c.Add("5", 4) },
		func() error { return c.Adjust("5", -4) },
		func() error { c.Remove("16"); return nil },
		func() error { return c.Add("16", 2) },
	}
	for i, op := range ops {
		if err := op(); err != nil {
			t.Fatalf("op %d: %v", i, err)
		}
		sum := 0
		for id, qty := range c {
			if qty <= 0 {
				t.Fatalf("op %d: entry %q has quantity %d", i, id, qty)
			}
			sum += qty
		}
		if got := c.TotalCount(); got != sum {
			t.Fatalf("op %d: TotalCount=%d, sum=%d", i, got, sum)
		}
	}
	if c.TotalCount() != 3 { // 1× "3" + 2× "16"
		t.Fatalf("final count=%d, expected 3", c.TotalCount())
	}
}

func TestClear(t *testing.T) {
	c := Cart{"1": 1, "2": 2}
	c.Clear()
	if len(c) != 0 || c.TotalCount() != 0 {
		t.Fatalf("cart=%v, expected empty", c)
	}
}
