package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/dailybudgetmart/backend/internal/config"
	"github.com/dailybudgetmart/backend/internal/events"
	"github.com/dailybudgetmart/backend/internal/httpserver"
	"github.com/dailybudgetmart/backend/internal/metrics"
	"github.com/dailybudgetmart/backend/internal/repo"
	"github.com/dailybudgetmart/backend/internal/search"
	"github.com/dailybudgetmart/backend/internal/service"
	"github.com/dailybudgetmart/backend/internal/webhook"
	pkgdb "github.com/dailybudgetmart/backend/pkg/db"
	"github.com/dailybudgetmart/backend/pkg/logging"
	loggingmw "github.com/dailybudgetmart/backend/pkg/middleware/logging"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", "dailybudgetmart")
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := pkgdb.Migrate(db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	store := &repo.GormRepo{DB: db}
	dispatcher := webhook.NewDispatcher(store)

	var producer *events.Producer
	if cfg.KafkaAddress != "" {
		producer = events.NewProducer(cfg.KafkaAddress)
	}

	searchSvc := &search.Service{Repo: store}
	if cfg.ESURL != "" {
		es, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			logger.Warn("elasticsearch unavailable, falling back to store search", "error", err)
		} else {
			searchSvc.ES = es
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())
	e.Use(metrics.Middleware())

	httpserver.Register(e, &httpserver.Deps{
		Tenant:   &httpserver.TenantHTTP{Svc: &service.TenantService{Repo: store}},
		Admin:    &httpserver.AdminHTTP{Svc: &service.AuthService{Repo: store, JWTSecret: []byte(cfg.JWTSecret)}},
		Theme:    &httpserver.ThemeHTTP{Svc: &service.ThemeService{Repo: store}},
		Product:  &httpserver.ProductHTTP{Svc: &service.CatalogService{Repo: store, Producer: producer, Search: searchSvc}},
		Customer: &httpserver.CustomerHTTP{Svc: &service.CustomerService{Repo: store}},
		Coupon:   &httpserver.CouponHTTP{Svc: &service.CouponService{Repo: store}},
		Webhook:  &httpserver.WebhookHTTP{Svc: &service.WebhookService{Repo: store}},
		Order:    &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: store, Hooks: dispatcher, Producer: producer}},
		Search:   &httpserver.SearchHTTP{Svc: searchSvc},
		System:   &httpserver.SystemHTTP{DB: db},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("dailybudgetmart listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	dispatcher.Flush()
	if producer != nil {
		_ = producer.Close()
	}
	_ = pkgdb.Close(db)

	log.Println("dailybudgetmart stopped")
}
