package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vijetacafe/cafeserve/internal/cart"
	"github.com/vijetacafe/cafeserve/internal/menu"
	"github.com/vijetacafe/cafeserve/internal/notify"
	"github.com/vijetacafe/cafeserve/internal/order"
	"github.com/vijetacafe/cafeserve/internal/payment"
	"github.com/vijetacafe/cafeserve/internal/session"
)

func currentSession(c *gin.Context) (string, *session.State) {
	sid := c.GetString("sid")
	st := c.MustGet("sess").(*session.State)
	return sid, st
}

func saveSession(c *gin.Context, store session.Store) {
	sid, st := currentSession(c)
	if err := store.Put(c.Request.Context(), sid, st); err != nil {
		log.Printf("[session] save failed for %s: %v", sid, err)
	}
}

// cartLine is the cart page's view of one entry, priced against the current
// menu snapshot.
type cartLine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Total    int    `json:"total"`
}

func cartLines(ct cart.Cart, snapshot []menu.Item) ([]cartLine, int) {
	var (
		lines []cartLine
		total int
	)
	for _, item := range snapshot {
		qty, ok := ct[item.ID]
		if !ok {
			continue
		}
		lineTotal := item.Price * qty
		total += lineTotal
		lines = append(lines, cartLine{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: qty,
			Total:    lineTotal,
		})
	}
	return lines, total
}

func indexHandler(menus *menu.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, st := currentSession(c)
		items, _ := menus.Catalog(c.Request.Context())
		c.HTML(http.StatusOK, "index.html", gin.H{
			"Groups":    menu.GroupByCategory(items),
			"CartCount": st.Cart.TotalCount(),
		})
	}
}

func addToCartHandler(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, st := currentSession(c)

		qty := 1
		if v := c.PostForm("quantity"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid quantity"})
				return
			}
			qty = n
		}
		if err := st.Cart.Add(c.PostForm("item_id"), qty); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
			return
		}
		saveSession(c, store)
		c.JSON(http.StatusOK, gin.H{"status": "success", "cart_count": st.Cart.TotalCount()})
	}
}

func viewCartHandler(menus *menu.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, st := currentSession(c)
		snapshot, _ := menus.Catalog(c.Request.Context())
		lines, total := cartLines(st.Cart, snapshot)
		c.HTML(http.StatusOK, "cart.html", gin.H{
			"Lines":     lines,
			"Total":     total,
			"CartCount": st.Cart.TotalCount(),
			"Error":     c.Query("error"),
		})
	}
}

func updateCartHandler(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, st := currentSession(c)

		delta, err := strconv.Atoi(c.PostForm("change"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid change"})
			return
		}
		if err := st.Cart.Adjust(c.PostForm("item_id"), delta); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "error": err.Error()})
			return
		}
		saveSession(c, store)
		c.JSON(http.StatusOK, gin.H{"status": "success", "cart_count": st.Cart.TotalCount()})
	}
}

func removeFromCartHandler(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, st := currentSession(c)
		st.Cart.Remove(c.PostForm("item_id"))
		saveSession(c, store)
		c.JSON(http.StatusOK, gin.H{"status": "success", "cart_count": st.Cart.TotalCount()})
	}
}

func checkoutHandler(store session.Store, menus *menu.Provider, asm *order.Assembler, notifier *notify.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		_, st := currentSession(c)

		snapshot, _ := menus.Catalog(ctx)
		o, outcome, err := asm.CreateOrder(ctx, st.Cart, snapshot, c.PostForm("customer_name"))
		if err != nil {
			var ve *order.ValidationError
			switch {
			case errors.Is(err, order.ErrCartEmpty):
				c.Redirect(http.StatusSeeOther, "/cart")
			case errors.As(err, &ve):
				c.Redirect(http.StatusSeeOther, "/cart?error=name")
			default:
				// Store reachable but write rejected: cart stays intact.
				log.Printf("[checkout] %v", err)
				c.Redirect(http.StatusSeeOther, "/cart?error=save")
			}
			return
		}

		st.PendingPayment = &payment.Pending{
			OrderID:   o.ID,
			OrderCode: o.Code,
			Total:     o.TotalAmount,
		}
		saveSession(c, store)

		if outcome == order.StoredLocally {
			log.Printf("[checkout] order %s created with local id only", o.Code)
		}
		if err := notifier.OrderCreated(ctx, o); err != nil {
			log.Printf("[checkout] notify failed for order %s: %v", o.Code, err)
		}
		c.Redirect(http.StatusSeeOther, "/payment")
	}
}

func paymentPageHandler(payee payment.Payee) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, st := currentSession(c)
		if st.PendingPayment == nil {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		c.HTML(http.StatusOK, "payment.html", gin.H{
			"Pending": st.PendingPayment,
			"UPILink": payment.Link(*st.PendingPayment, payee),
			"UPIID":   payee.ID,
		})
	}
}

func confirmPaymentHandler(store session.Store, payments *payment.Stub) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, st := currentSession(c)
		if st.PendingPayment == nil {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}

		// A failed store update is logged and recorded for the admin view,
		// never surfaced to the customer.
		if err := payments.Confirm(c.Request.Context(), *st.PendingPayment); err != nil {
			log.Printf("[payment] order %s left PENDING in store", st.PendingPayment.OrderCode)
		}

		st.LastOrder = st.PendingPayment
		st.PendingPayment = nil
		saveSession(c, store)
		c.Redirect(http.StatusSeeOther, "/order/success")
	}
}

func successHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, st := currentSession(c)
		if st.LastOrder == nil {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		c.HTML(http.StatusOK, "success.html", gin.H{
			"Total":     st.LastOrder.Total,
			"OrderCode": st.LastOrder.OrderCode,
		})
	}
}
