package service

import (
	"context"
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ReconciliationScheduler drives ReconciliationEngineImpl on a fixed
// interval (or, if cronExpr is set, on a cron schedule), sweeping every
// tenant's gateway-tracked intents each run.
type ReconciliationScheduler struct {
	tenantRepo ports.TenantRepository
	intentRepo ports.PaymentIntentRepository
	gateway    ports.Gateway
	engine     ports.ReconciliationEngine
	interval   time.Duration
	cronExpr   string
	log        zerolog.Logger
	stop       chan struct{}
}

// NewReconciliationScheduler creates a scheduler. cronExpr empty means use
// interval instead.
func NewReconciliationScheduler(
	tenantRepo ports.TenantRepository,
	intentRepo ports.PaymentIntentRepository,
	gateway ports.Gateway,
	engine ports.ReconciliationEngine,
	interval time.Duration,
	cronExpr string,
	log zerolog.Logger,
) *ReconciliationScheduler {
	return &ReconciliationScheduler{
		tenantRepo: tenantRepo,
		intentRepo: intentRepo,
		gateway:    gateway,
		engine:     engine,
		interval:   interval,
		cronExpr:   cronExpr,
		log:        log,
		stop:       make(chan struct{}),
	}
}

// Start blocks, running a sweep on every tick until ctx is canceled or Stop
// is called.
func (s *ReconciliationScheduler) Start(ctx context.Context) {
	if s.cronExpr != "" {
		s.startCron(ctx)
		return
	}
	s.startTicker(ctx)
}

func (s *ReconciliationScheduler) startTicker(ctx context.Context) {
	s.log.Info().Dur("interval", s.interval).Msg("reconciliation scheduler started (ticker)")
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("reconciliation scheduler stopped")
			return
		case <-s.stop:
			s.log.Info().Msg("reconciliation scheduler stopped")
			return
		case <-ticker.C:
			s.runAllTenants(ctx)
		}
	}
}

func (s *ReconciliationScheduler) startCron(ctx context.Context) {
	s.log.Info().Str("cron", s.cronExpr).Msg("reconciliation scheduler started (cron)")
	c := cron.New()
	if _, err := c.AddFunc(s.cronExpr, func() { s.runAllTenants(ctx) }); err != nil {
		s.log.Error().Err(err).Str("cron", s.cronExpr).Msg("invalid reconciliation cron expression, falling back to ticker")
		s.startTicker(ctx)
		return
	}
	c.Start()
	defer c.Stop()

	select {
	case <-ctx.Done():
	case <-s.stop:
	}
	s.log.Info().Msg("reconciliation scheduler stopped")
}

// Stop signals Start to return.
func (s *ReconciliationScheduler) Stop() {
	close(s.stop)
}

func (s *ReconciliationScheduler) runAllTenants(ctx context.Context) {
	tenantIDs, err := s.tenantRepo.ListIDs(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("reconciliation sweep: list tenants failed")
		return
	}
	for _, tenantID := range tenantIDs {
		if err := s.runOneTenant(ctx, tenantID); err != nil {
			s.log.Error().Err(err).Str("tenant_id", tenantID.String()).Msg("reconciliation sweep failed for tenant")
		}
	}
}

// runOneTenant fetches the gateway's current view of every intent this
// tenant still tracks a gateway_ref for, then hands the batch to the
// reconciliation engine.
func (s *ReconciliationScheduler) runOneTenant(ctx context.Context, tenantID uuid.UUID) error {
	intents, err := s.intentRepo.ListWithGatewayRef(ctx, tenantID)
	if err != nil {
		return err
	}
	if len(intents) == 0 {
		return nil
	}

	gatewayTxns := make([]domain.GatewayTransaction, 0, len(intents))
	for _, intent := range intents {
		res, err := s.gateway.GetStatus(ctx, ports.GatewayRequest{GatewayRef: *intent.GatewayRef})
		if err != nil {
			s.log.Error().Err(err).Str("gateway_ref", *intent.GatewayRef).Msg("gateway status lookup failed during reconciliation sweep")
			continue
		}
		if !res.Success {
			continue
		}
		amount, err := decimal.NewFromString(res.Amount)
		if err != nil {
			amount = intent.Amount
		}
		gatewayTxns = append(gatewayTxns, domain.GatewayTransaction{
			GatewayRef: res.GatewayRef,
			Amount:     amount,
			Currency:   intent.Currency,
			Status:     string(res.Status),
		})
	}

	_, err = s.engine.Reconcile(ctx, tenantID, gatewayTxns)
	return err
}
