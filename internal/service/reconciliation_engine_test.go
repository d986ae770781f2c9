package service

import (
	"context"
	"testing"
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports/mocks"
	"github.com/ricartefelipe/payments-ledger/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconTestDeps struct {
	engine     *ReconciliationEngineImpl
	intentRepo *mocks.MockPaymentIntentRepository
	reconRepo  *mocks.MockReconciliationRepository
	outboxRepo *mocks.MockOutboxRepository
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupReconEngine(t *testing.T) *reconTestDeps {
	ctrl := gomock.NewController(t)
	d := &reconTestDeps{
		intentRepo: mocks.NewMockPaymentIntentRepository(ctrl),
		reconRepo:  mocks.NewMockReconciliationRepository(ctrl),
		outboxRepo: mocks.NewMockOutboxRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.engine = NewReconciliationEngine(
		d.intentRepo, d.reconRepo, d.outboxRepo, d.transactor,
		clock.NewFrozen(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
		zerolog.Nop(),
	)
	return d
}

// TestReconciliationEngine_Reconcile_S6 mirrors the scenario where a local
// AUTHORIZED intent's amount disagrees with the gateway, and the gateway
// reports a transaction the engine has no local record of.
func TestReconciliationEngine_Reconcile_S6(t *testing.T) {
	d := setupReconEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	tx := &mockTx{}
	piA := uuid.New()
	refA := "pi_A"

	localIntent := &domain.PaymentIntent{
		ID: piA, TenantID: tenantID, GatewayRef: &refA,
		Amount: decimal.RequireFromString("10"), Currency: domain.CurrencyUSD,
		Status: domain.PaymentIntentStatusAuthorized,
	}

	gatewayTxns := []domain.GatewayTransaction{
		{GatewayRef: "pi_A", Amount: decimal.RequireFromString("11"), Currency: domain.CurrencyUSD, Status: "requires_capture"},
		{GatewayRef: "pi_B", Amount: decimal.RequireFromString("5"), Currency: domain.CurrencyUSD, Status: "succeeded"},
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.intentRepo.EXPECT().GetByGatewayRef(ctx, tenantID, "pi_A").Return(localIntent, nil)
	d.intentRepo.EXPECT().GetByGatewayRef(ctx, tenantID, "pi_B").Return(nil, nil)
	d.intentRepo.EXPECT().ListWithGatewayRef(ctx, tenantID).Return([]domain.PaymentIntent{*localIntent}, nil)

	var created []domain.ReconciliationDiscrepancy
	d.reconRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, disc *domain.ReconciliationDiscrepancy) error {
			created = append(created, *disc)
			return nil
		}).Times(2)
	d.outboxRepo.EXPECT().Insert(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, e *domain.OutboxEvent) error {
			assert.Equal(t, domain.EventReconciliationDiscrepancy, e.EventType)
			return nil
		})

	discs, err := d.engine.Reconcile(ctx, tenantID, gatewayTxns)
	require.NoError(t, err)
	require.Len(t, discs, 2)

	var types []domain.DiscrepancyType
	for _, disc := range discs {
		types = append(types, disc.DiscrepancyType)
	}
	assert.ElementsMatch(t, []domain.DiscrepancyType{domain.DiscrepancyAmountMismatch, domain.DiscrepancyMissingLocal}, types)
}

func TestReconciliationEngine_Reconcile_MissingRemote(t *testing.T) {
	d := setupReconEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	tx := &mockTx{}
	id := uuid.New()
	ref := "pi_gone"

	localIntent := domain.PaymentIntent{
		ID: id, TenantID: tenantID, GatewayRef: &ref,
		Amount: decimal.RequireFromString("20"), Currency: domain.CurrencyUSD,
		Status: domain.PaymentIntentStatusSettled,
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.intentRepo.EXPECT().ListWithGatewayRef(ctx, tenantID).Return([]domain.PaymentIntent{localIntent}, nil)
	d.reconRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, disc *domain.ReconciliationDiscrepancy) error {
			assert.Equal(t, domain.DiscrepancyMissingRemote, disc.DiscrepancyType)
			return nil
		})
	d.outboxRepo.EXPECT().Insert(ctx, tx, gomock.Any()).Return(nil)

	discs, err := d.engine.Reconcile(ctx, tenantID, nil)
	require.NoError(t, err)
	require.Len(t, discs, 1)
	assert.Equal(t, domain.DiscrepancyMissingRemote, discs[0].DiscrepancyType)
}

func TestReconciliationEngine_Reconcile_NoDiscrepancies_NoOutboxEvent(t *testing.T) {
	d := setupReconEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	tx := &mockTx{}
	id := uuid.New()
	ref := "pi_ok"

	localIntent := &domain.PaymentIntent{
		ID: id, TenantID: tenantID, GatewayRef: &ref,
		Amount: decimal.RequireFromString("20"), Currency: domain.CurrencyUSD,
		Status: domain.PaymentIntentStatusSettled,
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.intentRepo.EXPECT().GetByGatewayRef(ctx, tenantID, "pi_ok").Return(localIntent, nil)
	d.intentRepo.EXPECT().ListWithGatewayRef(ctx, tenantID).Return([]domain.PaymentIntent{*localIntent}, nil)

	discs, err := d.engine.Reconcile(ctx, tenantID, []domain.GatewayTransaction{
		{GatewayRef: "pi_ok", Amount: decimal.RequireFromString("20"), Currency: domain.CurrencyUSD, Status: "succeeded"},
	})
	require.NoError(t, err)
	assert.Empty(t, discs)
}

func TestReconciliationEngine_Resolve(t *testing.T) {
	d := setupReconEngine(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()

	d.reconRepo.EXPECT().Resolve(ctx, tenantID, id).Return(nil)

	err := d.engine.Resolve(ctx, tenantID, id)
	require.NoError(t, err)
}
