package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"
	"github.com/ricartefelipe/payments-ledger/pkg/apperror"
	"github.com/ricartefelipe/payments-ledger/pkg/clock"
	"github.com/ricartefelipe/payments-ledger/pkg/correlation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// ReconciliationEngineImpl implements ports.ReconciliationEngine: diffs a
// batch of gateway transactions against local PaymentIntent state and
// records typed discrepancies, all in one transaction.
type ReconciliationEngineImpl struct {
	intentRepo ports.PaymentIntentRepository
	reconRepo  ports.ReconciliationRepository
	outboxRepo ports.OutboxRepository
	transactor ports.DBTransactor
	clock      clock.Clock
	log        zerolog.Logger
}

// NewReconciliationEngine creates a new ReconciliationEngineImpl.
func NewReconciliationEngine(
	intentRepo ports.PaymentIntentRepository,
	reconRepo ports.ReconciliationRepository,
	outboxRepo ports.OutboxRepository,
	transactor ports.DBTransactor,
	clk clock.Clock,
	log zerolog.Logger,
) *ReconciliationEngineImpl {
	return &ReconciliationEngineImpl{
		intentRepo: intentRepo,
		reconRepo:  reconRepo,
		outboxRepo: outboxRepo,
		transactor: transactor,
		clock:      clk,
		log:        log,
	}
}

// Reconcile diffs gatewayTxns against local state for tenantID in one
// transaction: step 1 checks every gateway transaction against its local
// intent (by gateway_ref); step 2 flags local intents with a gateway_ref
// that the gateway no longer reports; step 3 emits one outbox event
// summarizing the run if anything was found.
func (e *ReconciliationEngineImpl) Reconcile(ctx context.Context, tenantID uuid.UUID, gatewayTxns []domain.GatewayTransaction) ([]domain.ReconciliationDiscrepancy, error) {
	tx, err := e.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	now := e.clock.Now()
	seen := make(map[string]bool, len(gatewayTxns))
	var discrepancies []domain.ReconciliationDiscrepancy

	for _, gw := range gatewayTxns {
		seen[gw.GatewayRef] = true

		intent, err := e.intentRepo.GetByGatewayRef(ctx, tenantID, gw.GatewayRef)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lookup intent by gateway ref: %w", err))
		}

		if intent == nil {
			actualStatus := gw.Status
			details, _ := json.Marshal(gw)
			d := domain.ReconciliationDiscrepancy{
				ID:              uuid.New(),
				TenantID:        tenantID,
				DiscrepancyType: domain.DiscrepancyMissingLocal,
				GatewayRef:      &gw.GatewayRef,
				ActualAmount:    &gw.Amount,
				ActualStatus:    &actualStatus,
				Details:         details,
				CreatedAt:       now,
			}
			if err := e.reconRepo.Create(ctx, tx, &d); err != nil {
				return nil, apperror.InternalError(fmt.Errorf("record missing_local discrepancy: %w", err))
			}
			discrepancies = append(discrepancies, d)
			continue
		}

		if !intent.Amount.Equal(gw.Amount) {
			actualStatus := gw.Status
			details, _ := json.Marshal(gw)
			d := domain.ReconciliationDiscrepancy{
				ID:              uuid.New(),
				TenantID:        tenantID,
				PaymentIntentID: &intent.ID,
				DiscrepancyType: domain.DiscrepancyAmountMismatch,
				GatewayRef:      &gw.GatewayRef,
				ExpectedAmount:  &intent.Amount,
				ActualAmount:    &gw.Amount,
				ActualStatus:    &actualStatus,
				Details:         details,
				CreatedAt:       now,
			}
			if err := e.reconRepo.Create(ctx, tx, &d); err != nil {
				return nil, apperror.InternalError(fmt.Errorf("record amount_mismatch discrepancy: %w", err))
			}
			discrepancies = append(discrepancies, d)
		}

		if expected := domain.ExpectedGatewayStatuses(intent.Status); expected != nil && !expected[gw.Status] {
			expectedStatus, actualStatus := string(intent.Status), gw.Status
			details, _ := json.Marshal(gw)
			d := domain.ReconciliationDiscrepancy{
				ID:              uuid.New(),
				TenantID:        tenantID,
				PaymentIntentID: &intent.ID,
				DiscrepancyType: domain.DiscrepancyStatusMismatch,
				GatewayRef:      &gw.GatewayRef,
				ExpectedStatus:  &expectedStatus,
				ActualStatus:    &actualStatus,
				Details:         details,
				CreatedAt:       now,
			}
			if err := e.reconRepo.Create(ctx, tx, &d); err != nil {
				return nil, apperror.InternalError(fmt.Errorf("record status_mismatch discrepancy: %w", err))
			}
			discrepancies = append(discrepancies, d)
		}
	}

	withRef, err := e.intentRepo.ListWithGatewayRef(ctx, tenantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list intents with gateway ref: %w", err))
	}
	for _, intent := range withRef {
		if intent.GatewayRef == nil || seen[*intent.GatewayRef] {
			continue
		}
		expectedStatus := string(intent.Status)
		details, _ := json.Marshal(intent)
		d := domain.ReconciliationDiscrepancy{
			ID:              uuid.New(),
			TenantID:        tenantID,
			PaymentIntentID: &intent.ID,
			DiscrepancyType: domain.DiscrepancyMissingRemote,
			GatewayRef:      intent.GatewayRef,
			ExpectedAmount:  &intent.Amount,
			ExpectedStatus:  &expectedStatus,
			Details:         details,
			CreatedAt:       now,
		}
		if err := e.reconRepo.Create(ctx, tx, &d); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("record missing_remote discrepancy: %w", err))
		}
		discrepancies = append(discrepancies, d)
	}

	if len(discrepancies) > 0 {
		if err := e.emitSummary(ctx, tx, tenantID, discrepancies, now); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	e.log.Info().Str("tenant_id", tenantID.String()).Int("discrepancies", len(discrepancies)).Msg("reconciliation run completed")
	return discrepancies, nil
}

// Resolve flips a discrepancy's resolved flag; idempotent since Resolve
// only asserts the row exists, not that it was previously unresolved.
func (e *ReconciliationEngineImpl) Resolve(ctx context.Context, tenantID, discrepancyID uuid.UUID) error {
	if err := e.reconRepo.Resolve(ctx, tenantID, discrepancyID); err != nil {
		return apperror.InternalError(fmt.Errorf("resolve discrepancy: %w", err))
	}
	return nil
}

func (e *ReconciliationEngineImpl) emitSummary(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, discrepancies []domain.ReconciliationDiscrepancy, now time.Time) error {
	typeSet := map[domain.DiscrepancyType]bool{}
	var types []domain.DiscrepancyType
	for _, d := range discrepancies {
		if !typeSet[d.DiscrepancyType] {
			typeSet[d.DiscrepancyType] = true
			types = append(types, d.DiscrepancyType)
		}
	}

	payload := map[string]any{
		"tenant_id":         tenantID,
		"discrepancy_count": len(discrepancies),
		"types":             types,
		"correlation_id":    correlation.CorrelationID(ctx),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("marshal reconciliation summary: %w", err))
	}

	event := &domain.OutboxEvent{
		ID:            uuid.New(),
		TenantID:      tenantID,
		EventType:     domain.EventReconciliationDiscrepancy,
		AggregateType: "reconciliation_run",
		AggregateID:   uuid.New(),
		Payload:       body,
		Status:        domain.OutboxStatusPending,
		AvailableAt:   now,
		CreatedAt:     now,
	}
	if err := e.outboxRepo.Insert(ctx, tx, event); err != nil {
		return apperror.InternalError(fmt.Errorf("insert outbox event: %w", err))
	}
	return nil
}
