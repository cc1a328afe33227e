package menu

// Item is a sellable catalog entry. Prices are whole rupees.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
}

// CategoryGroup is a display grouping of items sharing a category.
type CategoryGroup struct {
	Name  string
	Items []Item
}

// GroupByCategory groups items for display, preserving first-seen category
// order. Items with an empty category land under "Others".
func GroupByCategory(items []Item) []CategoryGroup {
	var out []CategoryGroup
	index := map[string]int{}
	for _, it := range items {
		cat := it.Category
		if cat == "" {
			cat = "Others"
		}
		i, ok := index[cat]
		if !ok {
			i = len(out)
			index[cat] = i
			out = append(out, CategoryGroup{Name: cat})
		}
		out[i].Items = append(out[i].Items, it)
	}
	return out
}

// Lookup builds an id -> item index of a menu snapshot.
func Lookup(items []Item) map[string]Item {
	m := make(map[string]Item, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return m
}
