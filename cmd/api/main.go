package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ricartefelipe/payments-ledger/config"
	httpHandler "github.com/ricartefelipe/payments-ledger/internal/adapter/http/handler"
	"github.com/ricartefelipe/payments-ledger/internal/adapter/gateway"
	pgStorage "github.com/ricartefelipe/payments-ledger/internal/adapter/storage/postgres"
	redisStorage "github.com/ricartefelipe/payments-ledger/internal/adapter/storage/redis"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"
	"github.com/ricartefelipe/payments-ledger/internal/service"
	"github.com/ricartefelipe/payments-ledger/pkg/clock"
	"github.com/ricartefelipe/payments-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting payments ledger API")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Repositories
	tenantRepo := pgStorage.NewTenantRepo(pool)
	intentRepo := pgStorage.NewPaymentIntentRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	refundRepo := pgStorage.NewRefundRepo(pool)
	outboxRepo := pgStorage.NewOutboxRepo(pool)
	webhookRepo := pgStorage.NewWebhookRepo(pool)
	reconRepo := pgStorage.NewReconciliationRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	idempotencyRepo := pgStorage.NewIdempotencyRepo(pool)

	// Redis-backed stores
	chaosStore := redisStorage.NewChaosStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)

	clk := clock.Real{}

	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry(), cfg.JWT.Issuer)

	intentSvc := service.NewPaymentIntentService(
		intentRepo,
		ledgerRepo,
		refundRepo,
		outboxRepo,
		transactor,
		clk,
		log,
	)

	reconEngine := service.NewReconciliationEngine(
		intentRepo,
		reconRepo,
		outboxRepo,
		transactor,
		clk,
		log,
	)

	// Wired for completeness even though the API process doesn't drive the
	// gateway directly; reconciliation reads the Gateway port via the
	// scheduler started in the worker process.
	_ = gateway.NewDecorator(gateway.NewFake(cfg.Chaos.FailureRate), cfg.Gateway, log)

	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		TenantRepo:       tenantRepo,
		PaymentIntent:    intentSvc,
		RefundRepo:       refundRepo,
		LedgerRepo:       ledgerRepo,
		WebhookRepo:      webhookRepo,
		ReconRepo:        reconRepo,
		ReconEngine:      reconEngine,
		ChaosStore:       chaosStore,
		TokenSvc:         tokenSvc,
		RateLimitStore:   rateLimitStore,
		HealthCheckers:   []ports.HealthChecker{pgHealth, redisHealth},
		IdempotencyCache: idempotencyCache,
		IdempotencyRepo:  idempotencyRepo,
		Transactor:       transactor,
		Clock:            clk,
		IdempotencyTTL:   cfg.Idempotency.TTL(),
		Logger:           log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
