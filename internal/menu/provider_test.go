package menu

import (
	"context"
	"errors"
	"testing"
)

type stubRepo struct {
	items []Item
	err   error
}

func (s *stubRepo) List(ctx context.Context) ([]Item, error) { return s.items, s.err }

func TestCatalogLive(t *testing.T) {
	repo := &stubRepo{items: []Item{{ID: "1", Name: "Chai", Price: 10, Category: "Tea"}}}
	items, src := NewProvider(repo).Catalog(context.Background())
	if src != SourceLive {
		t.Fatalf("source=%s, expected live", src)
	}
	if len(items) != 1 || items[0].Name != "Chai" {
		t.Fatalf("items=%v", items)
	}
}

func TestCatalogFallsBackOnError(t *testing.T) {
	repo := &stubRepo{err: errors.New("boom")}
	items, src := NewProvider(repo).Catalog(context.Background())
	if src != SourceFallback {
		t.Fatalf("source=%s, expected fallback", src)
	}
	if len(items) == 0 {
		t.Fatal("fallback catalog is empty")
	}
}

func TestCatalogFallsBackOnEmptyStore(t *testing.T) {
	items, src := NewProvider(&stubRepo{}).Catalog(context.Background())
	if src != SourceFallback {
		t.Fatalf("source=%s, expected fallback", src)
	}
	if len(items) == 0 {
		t.Fatal("fallback catalog is empty")
	}
}

func TestSampleContainsExpectedEntries(t *testing.T) {
	byID := Lookup(Sample())
	if it := byID["3"]; it.Name != "Masala Tea" || it.Price != 10 {
		t.Fatalf(`item "3" = %+v, expected Masala Tea at 10`, it)
	}
	if it := byID["16"]; it.Name != "Veg Sandwich" || it.Price != 40 {
		t.Fatalf(`item "16" = %+v, expected Veg Sandwich at 40`, it)
	}
	for _, it := range Sample() {
		if it.Price < 0 {
			t.Fatalf("negative price on %+v", it)
		}
	}
}

func TestGroupByCategoryPreservesFirstSeenOrder(t *testing.T) {
	items := []Item{
		{ID: "1", Category: "Tea"},
		{ID: "2", Category: "Coffee"},
		{ID: "3", Category: "Tea"},
		{ID: "4", Category: ""},
	}
	groups := GroupByCategory(items)
	want := []string{"Tea", "Coffee", "Others"}
	if len(groups) != len(want) {
		t.Fatalf("groups=%d, expected %d", len(groups), len(want))
	}
	for i, g := range groups {
		if g.Name != want[i] {
			t.Fatalf("group %d = %s, expected %s", i, g.Name, want[i])
		}
	}
	if len(groups[0].Items) != 2 {
		t.Fatalf("Tea items=%d, expected 2", len(groups[0].Items))
	}
}
