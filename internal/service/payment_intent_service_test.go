package service

import (
	"context"
	"testing"
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports/mocks"
	"github.com/ricartefelipe/payments-ledger/pkg/apperror"
	"github.com/ricartefelipe/payments-ledger/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type intentTestDeps struct {
	svc        *PaymentIntentServiceImpl
	intentRepo *mocks.MockPaymentIntentRepository
	ledgerRepo *mocks.MockLedgerRepository
	refundRepo *mocks.MockRefundRepository
	outboxRepo *mocks.MockOutboxRepository
	transactor *mocks.MockDBTransactor
	clk        *clock.Frozen
	ctrl       *gomock.Controller
}

func setupIntentService(t *testing.T) *intentTestDeps {
	ctrl := gomock.NewController(t)
	d := &intentTestDeps{
		intentRepo: mocks.NewMockPaymentIntentRepository(ctrl),
		ledgerRepo: mocks.NewMockLedgerRepository(ctrl),
		refundRepo: mocks.NewMockRefundRepository(ctrl),
		outboxRepo: mocks.NewMockOutboxRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		clk:        clock.NewFrozen(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)),
		ctrl:       ctrl,
	}
	d.svc = NewPaymentIntentService(
		d.intentRepo, d.ledgerRepo, d.refundRepo, d.outboxRepo,
		d.transactor, d.clk, zerolog.Nop(),
	)
	return d
}

// mockTx implements pgx.Tx for testing.
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func TestPaymentIntentService_Create_Success(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	tx := &mockTx{}

	req := ports.CreateIntentRequest{
		TenantID:    tenantID,
		Amount:      "100.00",
		Currency:    "usd",
		CustomerRef: "order:ORD-1",
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.intentRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, p *domain.PaymentIntent) error {
			assert.Equal(t, domain.PaymentIntentStatusCreated, p.Status)
			assert.Equal(t, domain.CurrencyUSD, p.Currency)
			assert.True(t, p.Amount.Equal(decimal.RequireFromString("100.00")))
			return nil
		})
	d.outboxRepo.EXPECT().Insert(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, e *domain.OutboxEvent) error {
			assert.Equal(t, domain.EventPaymentIntentCreated, e.EventType)
			assert.Equal(t, tenantID, e.TenantID)
			return nil
		})

	intent, err := d.svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentIntentStatusCreated, intent.Status)
}

func TestPaymentIntentService_Create_InvalidAmount(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Create(context.Background(), ports.CreateIntentRequest{
		TenantID: uuid.New(), Amount: "0", Currency: "USD",
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.KindInvalidArgument, appErr.Kind)
}

func TestPaymentIntentService_Create_UnsupportedCurrency(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Create(context.Background(), ports.CreateIntentRequest{
		TenantID: uuid.New(), Amount: "10.00", Currency: "XYZ",
	})
	require.Error(t, err)
}

func TestPaymentIntentService_Confirm_TransitionsCreatedToAuthorized(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()
	tx := &mockTx{}

	existing := &domain.PaymentIntent{
		ID: id, TenantID: tenantID, Status: domain.PaymentIntentStatusCreated,
		Amount: decimal.RequireFromString("50.00"), Currency: domain.CurrencyUSD,
		CustomerRef: "order:ORD-2",
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.intentRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, id).Return(existing, nil)
	d.intentRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, p *domain.PaymentIntent) error {
			assert.Equal(t, domain.PaymentIntentStatusAuthorized, p.Status)
			return nil
		})
	d.outboxRepo.EXPECT().Insert(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, e *domain.OutboxEvent) error {
			assert.Equal(t, domain.EventPaymentAuthorized, e.EventType)
			return nil
		})

	intent, err := d.svc.Confirm(ctx, tenantID, id)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentIntentStatusAuthorized, intent.Status)
}

func TestPaymentIntentService_Confirm_IdempotentOnSettled(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()
	tx := &mockTx{}

	existing := &domain.PaymentIntent{ID: id, TenantID: tenantID, Status: domain.PaymentIntentStatusSettled}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.intentRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, id).Return(existing, nil)

	intent, err := d.svc.Confirm(ctx, tenantID, id)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentIntentStatusSettled, intent.Status)
}

func TestPaymentIntentService_Confirm_ConflictWhenAlreadyAuthorized(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()
	tx := &mockTx{}

	existing := &domain.PaymentIntent{ID: id, TenantID: tenantID, Status: domain.PaymentIntentStatusAuthorized}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.intentRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, id).Return(existing, nil)

	_, err := d.svc.Confirm(ctx, tenantID, id)
	require.Error(t, err)
}

func TestPaymentIntentService_PostLedgerForAuthorized_PostsBalancedEntryAndSettles(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()
	tx := &mockTx{}

	existing := &domain.PaymentIntent{
		ID: id, TenantID: tenantID, Status: domain.PaymentIntentStatusAuthorized,
		Amount: decimal.RequireFromString("75.00"), Currency: domain.CurrencyUSD,
		CustomerRef: "order:ORD-3",
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.intentRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, id).Return(existing, nil)
	d.ledgerRepo.EXPECT().GetAccountConfig(ctx, tx, tenantID, domain.AccountCodeCash).Return(nil, nil)
	d.ledgerRepo.EXPECT().GetAccountConfig(ctx, tx, tenantID, domain.AccountCodeRevenue).Return(nil, nil)
	d.ledgerRepo.EXPECT().CreateEntry(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, e *domain.LedgerEntry) error {
			require.Len(t, e.Lines, 2)
			var debit, credit decimal.Decimal
			for _, l := range e.Lines {
				if l.Side == domain.LedgerSideDebit {
					debit = l.Amount
				} else {
					credit = l.Amount
				}
			}
			assert.True(t, debit.Equal(credit))
			return nil
		})
	d.intentRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, p *domain.PaymentIntent) error {
			assert.Equal(t, domain.PaymentIntentStatusSettled, p.Status)
			return nil
		})
	d.outboxRepo.EXPECT().Insert(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, e *domain.OutboxEvent) error {
			assert.Equal(t, domain.EventPaymentSettled, e.EventType)
			return nil
		})

	intent, err := d.svc.PostLedgerForAuthorized(ctx, tenantID, id)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentIntentStatusSettled, intent.Status)
}

func TestPaymentIntentService_PostLedgerForAuthorized_NoOpWhenAlreadySettled(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()
	tx := &mockTx{}

	existing := &domain.PaymentIntent{ID: id, TenantID: tenantID, Status: domain.PaymentIntentStatusSettled}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.intentRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, id).Return(existing, nil)

	intent, err := d.svc.PostLedgerForAuthorized(ctx, tenantID, id)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentIntentStatusSettled, intent.Status)
}

func TestPaymentIntentService_Refund_PartialMarksPartiallyRefunded(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()
	tx := &mockTx{}

	existing := &domain.PaymentIntent{
		ID: id, TenantID: tenantID, Status: domain.PaymentIntentStatusSettled,
		Amount: decimal.RequireFromString("100.00"), Currency: domain.CurrencyUSD,
	}

	req := ports.RefundIntentRequest{TenantID: tenantID, PaymentIntentID: id, Amount: "40.00", Reason: "customer request"}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.intentRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, id).Return(existing, nil)
	d.refundRepo.EXPECT().SumNonFailed(ctx, tx, tenantID, id).Return("0", nil)
	d.ledgerRepo.EXPECT().GetAccountConfig(ctx, tx, tenantID, domain.AccountCodeCash).Return(nil, nil)
	d.ledgerRepo.EXPECT().GetAccountConfig(ctx, tx, tenantID, domain.AccountCodeRefundExpense).Return(nil, nil)
	d.refundRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.ledgerRepo.EXPECT().CreateEntry(ctx, tx, gomock.Any()).Return(nil)
	d.intentRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, p *domain.PaymentIntent) error {
			assert.Equal(t, domain.PaymentIntentStatusPartiallyRefunded, p.Status)
			return nil
		})
	d.refundRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, r *domain.Refund) error {
			assert.Equal(t, domain.RefundStatusCompleted, r.Status)
			return nil
		})
	d.outboxRepo.EXPECT().Insert(ctx, tx, gomock.Any()).Return(nil)

	refund, err := d.svc.Refund(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.RefundStatusCompleted, refund.Status)
}

func TestPaymentIntentService_Refund_ExceedsRemainingAmount(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()
	tx := &mockTx{}

	existing := &domain.PaymentIntent{
		ID: id, TenantID: tenantID, Status: domain.PaymentIntentStatusPartiallyRefunded,
		Amount: decimal.RequireFromString("100.00"), Currency: domain.CurrencyUSD,
	}

	req := ports.RefundIntentRequest{TenantID: tenantID, PaymentIntentID: id, Amount: "30.00"}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.intentRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, id).Return(existing, nil)
	d.refundRepo.EXPECT().SumNonFailed(ctx, tx, tenantID, id).Return("80.00", nil)

	_, err := d.svc.Refund(ctx, req)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, apperror.KindUnprocessable, appErr.Kind)
}

func TestPaymentIntentService_Refund_RejectsWhenNotRefundable(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()
	tx := &mockTx{}

	existing := &domain.PaymentIntent{ID: id, TenantID: tenantID, Status: domain.PaymentIntentStatusCreated}
	req := ports.RefundIntentRequest{TenantID: tenantID, PaymentIntentID: id, Amount: "10.00"}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.intentRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, id).Return(existing, nil)

	_, err := d.svc.Refund(ctx, req)
	require.Error(t, err)
}

func TestPaymentIntentService_Get_NotFound(t *testing.T) {
	d := setupIntentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()

	d.intentRepo.EXPECT().GetByID(ctx, tenantID, id).Return(nil, nil)

	_, err := d.svc.Get(ctx, tenantID, id)
	require.Error(t, err)
}
