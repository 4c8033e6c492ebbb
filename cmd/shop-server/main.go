package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/cors"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/bibbys86/mark-app-eks/internal/cart"
	"github.com/bibbys86/mark-app-eks/internal/catalog"
	"github.com/bibbys86/mark-app-eks/internal/checkout"
	"github.com/bibbys86/mark-app-eks/internal/config"
	"github.com/bibbys86/mark-app-eks/internal/db"
	"github.com/bibbys86/mark-app-eks/internal/events"
	httpserver "github.com/bibbys86/mark-app-eks/internal/http"
	"github.com/bibbys86/mark-app-eks/internal/logging"
	"github.com/bibbys86/mark-app-eks/internal/middleware"
	"github.com/bibbys86/mark-app-eks/internal/order"
	"github.com/bibbys86/mark-app-eks/web"
)

// defaultCartSession is the demo cart created at first boot, matching
// the seeded storefront walkthrough.
const defaultCartSession = "8c85c569-a597-4a15-9436-32e7270ed42c"

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found; using system environment")
	}

	cfg := config.Load()

	logger := logging.New()
	slog.SetDefault(logger)

	// The APM tracer comes up before the database so boot-time queries
	// are traced too. Log injection happens via logging.WithTrace.
	tracer.Start(
		tracer.WithService(cfg.DDService),
		tracer.WithEnv(cfg.DDEnv),
		tracer.WithServiceVersion(cfg.DDVersion),
	)
	defer tracer.Stop()

	if err := db.RunMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("run migrations", "err", err)
		os.Exit(1)
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer database.Close()

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer bootCancel()

	catalogRepo := catalog.NewRepository(database)
	if err := catalog.Seed(bootCtx, catalogRepo, logger); err != nil {
		logger.Error("seed catalog", "err", err)
		os.Exit(1)
	}

	cartRepo := cart.NewRepository(database)
	if _, err := cartRepo.Create(bootCtx, defaultCartSession); err != nil {
		logger.Error("create default cart", "err", err)
		os.Exit(1)
	}

	orderRepo := order.NewRepository(database)
	checkoutSvc := checkout.NewService(database)

	var publisher *events.Publisher
	if cfg.RabbitURL != "" {
		conn, err := amqp.Dial(cfg.RabbitURL)
		if err != nil {
			logger.Error("dial rabbitmq", "err", err)
			os.Exit(1)
		}
		defer conn.Close()

		publisher, err = events.NewPublisher(conn)
		if err != nil {
			logger.Error("create publisher", "err", err)
			os.Exit(1)
		}
	}

	router := httpserver.NewRouter(httpserver.Deps{
		Logger:    logger,
		Carts:     cartRepo,
		Catalog:   catalogRepo,
		Orders:    orderRepo,
		Checkout:  checkoutSvc,
		Publisher: publisher,
		Static:    web.Handler(),
	})

	// CORS allows the RUM-APM correlation headers through, so browser
	// traces link up with backend spans.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin",
			"x-datadog-trace-id", "x-datadog-parent-id", "x-datadog-origin", "x-datadog-sampling-priority",
			"traceparent", "tracestate",
			"b3", "X-B3-TraceId", "X-B3-SpanId", "X-B3-Sampled",
		},
	}).Handler(router)

	handler := middleware.RequestLog(logger)(middleware.Recover(logger)(corsHandler))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "service", cfg.DDService)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "err", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", "err", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Error("publisher close", "err", err)
	}
}
