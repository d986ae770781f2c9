// Command worker runs the background process: the outbox dispatcher, the
// broker consumer(s), the webhook dispatcher, and the reconciliation
// scheduler, each as an independent concurrent task sharing one process
// lifetime and one shutdown signal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ricartefelipe/payments-ledger/config"
	"github.com/ricartefelipe/payments-ledger/internal/adapter/broker"
	"github.com/ricartefelipe/payments-ledger/internal/adapter/gateway"
	pgStorage "github.com/ricartefelipe/payments-ledger/internal/adapter/storage/postgres"
	"github.com/ricartefelipe/payments-ledger/internal/adapter/webhooksender"
	"github.com/ricartefelipe/payments-ledger/internal/service"
	"github.com/ricartefelipe/payments-ledger/pkg/clock"
	"github.com/ricartefelipe/payments-ledger/pkg/logger"

	"github.com/google/uuid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	log.Info().Msg("starting payments ledger worker")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgresql")
	}
	defer pool.Close()

	conn, err := broker.Connect(cfg.RabbitMQ, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}
	defer conn.Close()

	if err := conn.DeclareExternal(ctx, cfg.Orders); err != nil {
		log.Fatal().Err(err).Msg("failed to declare orders topology")
	}
	if err := conn.DeclareExternal(ctx, cfg.SaaS); err != nil {
		log.Fatal().Err(err).Msg("failed to declare saas topology")
	}

	intentRepo := pgStorage.NewPaymentIntentRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	refundRepo := pgStorage.NewRefundRepo(pool)
	outboxRepo := pgStorage.NewOutboxRepo(pool)
	tenantRepo := pgStorage.NewTenantRepo(pool)
	webhookRepo := pgStorage.NewWebhookRepo(pool)
	deliveryRepo := pgStorage.NewWebhookDeliveryRepo(pool)
	reconRepo := pgStorage.NewReconciliationRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	clk := clock.Real{}
	workerID := workerIdentity()

	intentSvc := service.NewPaymentIntentService(intentRepo, ledgerRepo, refundRepo, outboxRepo, transactor, clk, log)

	gw := gateway.NewDecorator(gateway.NewFake(cfg.Chaos.FailureRate), cfg.Gateway, log)

	publisher := broker.NewPublisher(conn, cfg.RabbitMQ)
	outboxDispatcher := service.NewOutboxDispatcher(
		outboxRepo, transactor, publisher, workerID,
		cfg.Outbox.BatchSize, cfg.Outbox.LockTimeout, cfg.Outbox.MaxAttempts, clk, log,
	)

	sender := webhooksender.New(cfg.Webhook.HTTPTimeout)
	webhookDispatcher := service.NewWebhookDispatcher(
		webhookRepo, deliveryRepo, transactor, sender,
		cfg.Webhook.RetryDelays(), cfg.Outbox.BatchSize, clk, log,
	)

	reconEngine := service.NewReconciliationEngine(intentRepo, reconRepo, outboxRepo, transactor, clk, log)
	reconScheduler := service.NewReconciliationScheduler(tenantRepo, intentRepo, gw, reconEngine, 5*time.Minute, "", log)

	inboundHandlers := service.NewInboundHandlers(intentSvc, intentRepo, tenantRepo, ledgerRepo, outboxRepo, transactor, clk, log)

	var wg sync.WaitGroup

	runTicked := func(name string, interval time.Duration, tick func(context.Context)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Info().Str("task", name).Dur("interval", interval).Msg("background task started")
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					log.Info().Str("task", name).Msg("background task stopped")
					return
				case <-ticker.C:
					tick(ctx)
				}
			}
		}()
	}

	runTicked("outbox_dispatcher", cfg.Outbox.PollInterval, func(ctx context.Context) {
		if _, err := outboxDispatcher.Dispatch(ctx); err != nil {
			log.Error().Err(err).Msg("outbox dispatch cycle failed")
		}
	})

	runTicked("webhook_dispatcher", cfg.Webhook.PollInterval, func(ctx context.Context) {
		if _, err := webhookDispatcher.Dispatch(ctx); err != nil {
			log.Error().Err(err).Msg("webhook dispatch cycle failed")
		}
	})

	wg.Add(1)
	go func() {
		defer wg.Done()
		reconScheduler.Start(ctx)
	}()

	consumer := broker.NewConsumer(conn, log)
	consumeQueue := func(name, queue string, prefetch int) {
		if queue == "" {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consumer.Consume(ctx, queue, prefetch, inboundHandlers.Handle); err != nil && ctx.Err() == nil {
				log.Error().Err(err).Str("queue", queue).Msg("broker consumer exited")
			}
			log.Info().Str("task", name).Msg("background task stopped")
		}()
	}

	consumeQueue("main_consumer", cfg.RabbitMQ.MainQueue, 10)
	consumeQueue("orders_consumer", cfg.Orders.Queue, 10)
	consumeQueue("saas_consumer", cfg.SaaS.Queue, 10)

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, waiting for background tasks to drain")
	wg.Wait()
	log.Info().Msg("worker exited")
}

// workerIdentity derives a per-process worker id for outbox lease claims,
// distinguishing concurrent dispatcher instances.
func workerIdentity() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "worker"
	}
	return fmt.Sprintf("%s-%s", host, uuid.New().String()[:8])
}
