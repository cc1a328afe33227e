package order

// Order lifecycle. Payment status mirrors order status in this model: there is
// no partial-payment state, an order is PAID in both fields or in neither.
const (
	StatusOpen = "OPEN"
	StatusPaid = "PAID"

	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
)

// Line is one priced row of an order. Derived from a cart entry and a menu
// snapshot at assembly time, never mutated afterwards.
type Line struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Total    int    `json:"total"`
}

// Order is the immutable order record. ID is assigned by the store; when the
// store is unavailable it falls back to the human-facing Code. Field names on
// the wire match the stored document schema.
type Order struct {
	ID            string    `json:"orderId"`
	Code          string    `json:"orderCode"`
	CustomerName  string    `json:"customerName,omitempty"`
	Items         []Line    `json:"items"`
	TotalAmount   int       `json:"totalAmount"`
	OrderStatus   string    `json:"orderStatus"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     Timestamp `json:"createdAt"`
	UpdatedAt     Timestamp `json:"updatedAt"`
}
