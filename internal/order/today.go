package order

import "time"

// FilterToday keeps the orders whose createdAt falls on the same calendar day
// as now, in now's (the server's) time zone. Stored instants are UTC-derived,
// so the boundary of "today" is the server's local midnight, not the
// customer's; that asymmetry is deliberate and matches how the admin reads
// the dashboard. Orders with a missing or undecodable createdAt are excluded.
// Input order is preserved (the gateway already returns newest first).
func FilterToday(orders []Order, now time.Time) []Order {
	y, m, d := now.Date()
	loc := now.Location()

	var out []Order
	for _, o := range orders {
		t, ok := o.CreatedAt.Time()
		if !ok {
			continue
		}
		oy, om, od := t.In(loc).Date()
		if oy == y && om == m && od == d {
			out = append(out, o)
		}
	}
	return out
}
