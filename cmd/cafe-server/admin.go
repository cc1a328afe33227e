package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/vijetacafe/cafeserve/internal/config"
	"github.com/vijetacafe/cafeserve/internal/httpx"
	"github.com/vijetacafe/cafeserve/internal/order"
	"github.com/vijetacafe/cafeserve/internal/payment"
	"github.com/vijetacafe/cafeserve/internal/session"
)

func adminLoginAllowed(cfg config.Config, email, password string) bool {
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		return false
	}
	if !strings.EqualFold(strings.TrimSpace(email), cfg.AdminEmail) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(password)) == nil
}

func adminLoginFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, st := currentSession(c)
		if st.Admin {
			c.Redirect(http.StatusSeeOther, "/admin/dashboard")
			return
		}
		c.HTML(http.StatusOK, "admin_login.html", gin.H{})
	}
}

func adminLoginHandler(store session.Store, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, st := currentSession(c)
		if !adminLoginAllowed(cfg, c.PostForm("email"), c.PostForm("password")) {
			c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{"Error": "invalid credentials"})
			return
		}
		st.Admin = true
		saveSession(c, store)
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
	}
}

func adminDashboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, st := currentSession(c)
		if !st.Admin {
			c.Redirect(http.StatusSeeOther, "/admin")
			return
		}
		c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{})
	}
}

// adminLiveOrdersHandler feeds the polling dashboard: recent orders plus any
// payment confirmations that never reached the store.
func adminLiveOrdersHandler(gw order.Gateway, payments *payment.Stub) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, st := currentSession(c)
		if !st.Admin {
			c.JSON(http.StatusUnauthorized, gin.H{"orders": []order.Order{}})
			return
		}
		orders, err := gw.ListRecent(c.Request.Context(), 100)
		if err != nil {
			log.Printf("[admin] list orders failed: %v", err)
			orders = nil
		}
		if orders == nil {
			orders = []order.Order{}
		}
		failed := payments.FailedConfirmations()
		if failed == nil {
			failed = []payment.FailedConfirmation{}
		}
		c.JSON(http.StatusOK, gin.H{
			"orders":               orders,
			"failed_confirmations": failed,
		})
	}
}

func adminTodayOrdersHandler(gw order.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, st := currentSession(c)
		if !st.Admin {
			c.JSON(http.StatusUnauthorized, gin.H{"orders": []order.Order{}})
			return
		}
		orders, err := gw.ListRecent(c.Request.Context(), 100)
		if err != nil {
			log.Printf("[admin] list orders failed: %v", err)
			orders = nil
		}
		today := order.FilterToday(orders, time.Now())
		if today == nil {
			today = []order.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": today})
	}
}

func adminLogoutHandler(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, _ := currentSession(c)
		if err := store.Delete(c.Request.Context(), sid); err != nil {
			log.Printf("[session] delete failed for %s: %v", sid, err)
		}
		c.SetCookie(httpx.SessionCookie, "", -1, "/", "", false, true)
		c.Redirect(http.StatusSeeOther, "/")
	}
}
