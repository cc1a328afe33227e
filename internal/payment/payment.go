// Package payment implements the UPI deep-link payment stub. No gateway
// verification happens: the link is handed to the customer and the PAID
// transition is triggered manually.
package payment

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/vijetacafe/cafeserve/internal/order"
)

// Pending is the session-held projection of a freshly created order, carried
// from checkout to the payment and success pages.
type Pending struct {
	OrderID   string `json:"order_id"`
	OrderCode string `json:"order_code"`
	Total     int    `json:"total"`
}

// Payee identifies the receiving UPI account.
type Payee struct {
	ID   string
	Name string
}

// Link builds the UPI deep link for a pending payment. Field order and the
// percent-encoded note are fixed; UPI apps are picky about both.
func Link(p Pending, payee Payee) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%d&cu=INR&tn=Order%%20%s",
		payee.ID, url.PathEscape(payee.Name), p.Total, p.OrderCode)
}

// FailedConfirmation records a manual confirmation whose store update did not
// go through. The admin endpoints expose these so a PENDING row next to a
// customer on the success page is explainable.
type FailedConfirmation struct {
	OrderID   string    `json:"order_id"`
	OrderCode string    `json:"order_code"`
	At        time.Time `json:"at"`
	Reason    string    `json:"reason"`
}

// Stub flips orders to PAID on manual confirmation.
type Stub struct {
	gw  order.Gateway
	now func() time.Time

	mu     sync.Mutex
	failed []FailedConfirmation
}

func NewStub(gw order.Gateway) *Stub {
	return &Stub{gw: gw, now: time.Now}
}

// Confirm marks the referenced order PAID/PAID. The update is retried once;
// if it still fails the failure is recorded for the admin view and returned.
// Callers keep the customer flow going regardless: the success page renders
// from the session-held code and total, not from the store.
func (s *Stub) Confirm(ctx context.Context, p Pending) error {
	err := s.gw.UpdateStatus(ctx, p.OrderID, order.StatusPaid, order.PaymentPaid)
	if err != nil {
		err = s.gw.UpdateStatus(ctx, p.OrderID, order.StatusPaid, order.PaymentPaid)
	}
	if err == nil {
		return nil
	}

	log.Printf("[payment] confirm failed for order %s: %v", p.OrderCode, err)
	s.mu.Lock()
	s.failed = append(s.failed, FailedConfirmation{
		OrderID:   p.OrderID,
		OrderCode: p.OrderCode,
		At:        s.now().UTC(),
		Reason:    err.Error(),
	})
	s.mu.Unlock()
	return err
}

// FailedConfirmations returns a copy of the recorded failures, newest last.
func (s *Stub) FailedConfirmations() []FailedConfirmation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]FailedConfirmation(nil), s.failed...)
}
