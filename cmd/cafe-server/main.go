package main

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vijetacafe/cafeserve/internal/config"
	"github.com/vijetacafe/cafeserve/internal/database"
	"github.com/vijetacafe/cafeserve/internal/httpx"
	"github.com/vijetacafe/cafeserve/internal/menu"
	"github.com/vijetacafe/cafeserve/internal/notify"
	"github.com/vijetacafe/cafeserve/internal/order"
	"github.com/vijetacafe/cafeserve/internal/payment"
	"github.com/vijetacafe/cafeserve/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Postgres is optional at runtime: without it the shop still sells from
	// the sample menu and orders get local ids.
	pool, err := database.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Printf("[main] postgres unavailable, running degraded: %v", err)
		pool = nil
	} else {
		defer pool.Close()
		if err := database.EnsureSchema(ctx, pool); err != nil {
			log.Printf("[main] schema bootstrap failed: %v", err)
		}
	}

	var sessions session.Store
	if cfg.RedisAddr != "" {
		rs := session.NewRedis(cfg.RedisAddr, cfg.SessionTTL)
		defer rs.Close()
		sessions = rs
	} else {
		mem := session.NewMemory(cfg.SessionTTL)
		defer mem.Close()
		sessions = mem
	}

	var notifier *notify.Publisher
	if cfg.AMQPURL != "" {
		notifier, err = notify.New(cfg.AMQPURL)
		if err != nil {
			log.Printf("[main] amqp unavailable, notifications disabled: %v", err)
			notifier = nil
		} else {
			defer notifier.Close()
		}
	}

	gw := order.NewPGGateway(pool)
	deps := serverDeps{
		cfg:      cfg,
		menus:    menu.NewProvider(menu.NewPGRepo(pool)),
		sessions: sessions,
		orders:   gw,
		asm:      order.NewAssembler(gw),
		payments: payment.NewStub(gw),
		notifier: notifier,
	}

	srv := &http.Server{Addr: cfg.Addr, Handler: newRouter(deps)}
	go func() {
		log.Printf("[main] cafe-server listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[main] server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[main] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] shutdown: %v", err)
	}
}

type serverDeps struct {
	cfg      config.Config
	menus    *menu.Provider
	sessions session.Store
	orders   order.Gateway
	asm      *order.Assembler
	payments *payment.Stub
	notifier *notify.Publisher
}

func newRouter(d serverDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.Session(d.sessions, d.cfg.SessionTTL))
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	payee := payment.Payee{ID: d.cfg.UPIPayeeID, Name: d.cfg.UPIPayeeName}

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	r.GET("/", indexHandler(d.menus))
	r.POST("/cart/add", addToCartHandler(d.sessions))
	r.GET("/cart", viewCartHandler(d.menus))
	r.POST("/cart/update", updateCartHandler(d.sessions))
	r.POST("/cart/remove", removeFromCartHandler(d.sessions))
	r.POST("/orders", checkoutHandler(d.sessions, d.menus, d.asm, d.notifier))
	r.GET("/payment", paymentPageHandler(payee))
	r.POST("/payment/confirm", confirmPaymentHandler(d.sessions, d.payments))
	r.GET("/order/success", successHandler())

	admin := r.Group("/admin")
	admin.GET("", adminLoginFormHandler())
	admin.POST("", adminLoginHandler(d.sessions, d.cfg))
	admin.GET("/dashboard", adminDashboardHandler())
	admin.GET("/orders/live", adminLiveOrdersHandler(d.orders, d.payments))
	admin.GET("/orders/today", adminTodayOrdersHandler(d.orders))
	admin.GET("/logout", adminLogoutHandler(d.sessions))

	return r
}
