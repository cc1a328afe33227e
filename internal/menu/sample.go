package menu

// Sample is the built-in catalog served whenever the menu store is empty or
// unreachable. Returns a fresh copy so callers can never mutate the fallback.
func Sample() []Item {
	return []Item{
		{ID: "1", Name: "Ginger Chai", Price: 15, Category: "Tea"},
		{ID: "2", Name: "Elaichi Chai", Price: 15, Category: "Tea"},
		{ID: "3", Name: "Masala Tea", Price: 10, Category: "Tea"},
		{ID: "4", Name: "Green Tea", Price: 20, Category: "Tea"},
		{ID: "5", Name: "Black Tea", Price: 10, Category: "Tea"},
		{ID: "6", Name: "Filter Coffee", Price: 25, Category: "Coffee"},
		{ID: "7", Name: "Cold Coffee", Price: 50, Category: "Coffee"},
		{ID: "8", Name: "Espresso", Price: 40, Category: "Coffee"},
		{ID: "9", Name: "Cappuccino", Price: 60, Category: "Coffee"},
		{ID: "10", Name: "Samosa", Price: 15, Category: "Snacks"},
		{ID: "11", Name: "Kachori", Price: 15, Category: "Snacks"},
		{ID: "12", Name: "Vada Pav", Price: 20, Category: "Snacks"},
		{ID: "13", Name: "Poha", Price: 25, Category: "Snacks"},
		{ID: "14", Name: "Maggi", Price: 30, Category: "Snacks"},
		{ID: "15", Name: "Bread Pakora", Price: 20, Category: "Snacks"},
		{ID: "16", Name: "Veg Sandwich", Price: 40, Category: "Snacks"},
		{ID: "17", Name: "Paneer Sandwich", Price: 60, Category: "Snacks"},
		{ID: "18", Name: "Gulab Jamun", Price: 30, Category: "Desserts"},
	}
}
