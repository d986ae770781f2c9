package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"
	"github.com/ricartefelipe/payments-ledger/pkg/apperror"
	"github.com/ricartefelipe/payments-ledger/pkg/clock"
	"github.com/ricartefelipe/payments-ledger/pkg/correlation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const orderRefPrefix = "order:"

// PaymentIntentServiceImpl implements ports.PaymentIntentService: the
// intent state machine coupled to double-entry ledger posting, all inside
// one database transaction per operation.
type PaymentIntentServiceImpl struct {
	intentRepo ports.PaymentIntentRepository
	ledgerRepo ports.LedgerRepository
	refundRepo ports.RefundRepository
	outboxRepo ports.OutboxRepository
	transactor ports.DBTransactor
	clock      clock.Clock
	log        zerolog.Logger
}

// NewPaymentIntentService creates a new PaymentIntentServiceImpl.
func NewPaymentIntentService(
	intentRepo ports.PaymentIntentRepository,
	ledgerRepo ports.LedgerRepository,
	refundRepo ports.RefundRepository,
	outboxRepo ports.OutboxRepository,
	transactor ports.DBTransactor,
	clk clock.Clock,
	log zerolog.Logger,
) *PaymentIntentServiceImpl {
	return &PaymentIntentServiceImpl{
		intentRepo: intentRepo,
		ledgerRepo: ledgerRepo,
		refundRepo: refundRepo,
		outboxRepo: outboxRepo,
		transactor: transactor,
		clock:      clk,
		log:        log,
	}
}

// Create validates and inserts a new CREATED intent, emitting
// payment.intent.created in the same transaction.
func (s *PaymentIntentServiceImpl) Create(ctx context.Context, req ports.CreateIntentRequest) (*domain.PaymentIntent, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.Sign() <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	currency := domain.Currency(strings.ToUpper(req.Currency))
	if !domain.SupportedCurrencies[currency] {
		return nil, apperror.ErrUnsupportedCurrency(req.Currency)
	}

	now := s.clock.Now()
	intent := &domain.PaymentIntent{
		ID:          uuid.New(),
		TenantID:    req.TenantID,
		Amount:      amount,
		Currency:    currency,
		Status:      domain.PaymentIntentStatusCreated,
		CustomerRef: req.CustomerRef,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.intentRepo.Create(ctx, tx, intent); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create payment intent: %w", err))
	}

	payload := map[string]any{
		"payment_intent_id": intent.ID,
		"amount":            intent.Amount.StringFixed(2),
		"currency":          intent.Currency,
		"customer_ref":      intent.CustomerRef,
		"correlation_id":    correlation.CorrelationID(ctx),
	}
	if err := s.emitEvent(ctx, tx, intent.TenantID, domain.EventPaymentIntentCreated, "payment_intent", intent.ID, payload, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("payment_intent_id", intent.ID.String()).Str("tenant_id", intent.TenantID.String()).Msg("payment intent created")
	return intent, nil
}

// Confirm authorizes a CREATED intent. It is idempotent on SETTLED/FAILED
// (returns current state) and a conflict on every other non-CREATED status.
func (s *PaymentIntentServiceImpl) Confirm(ctx context.Context, tenantID, id uuid.UUID) (*domain.PaymentIntent, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	intent, err := s.intentRepo.GetByIDForUpdate(ctx, tx, tenantID, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment intent: %w", err))
	}
	if intent == nil {
		return nil, apperror.ErrNotFound("payment intent")
	}

	switch intent.Status {
	case domain.PaymentIntentStatusSettled, domain.PaymentIntentStatusFailed:
		return intent, nil
	case domain.PaymentIntentStatusCreated:
		// falls through to the transition below
	default:
		return nil, apperror.ErrInvalidTransition(string(intent.Status), "confirm")
	}

	now := s.clock.Now()
	intent.Status = domain.PaymentIntentStatusAuthorized
	intent.UpdatedAt = now

	if err := s.intentRepo.Update(ctx, tx, intent); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment intent: %w", err))
	}

	payload := map[string]any{
		"payment_intent_id": intent.ID,
		"amount":            intent.Amount.StringFixed(2),
		"currency":          intent.Currency,
		"customer_ref":      intent.CustomerRef,
		"correlation_id":    correlation.CorrelationID(ctx),
	}
	if orderID, ok := orderIDFromCustomerRef(intent.CustomerRef); ok {
		payload["order_id"] = orderID
	}
	if err := s.emitEvent(ctx, tx, intent.TenantID, domain.EventPaymentAuthorized, "payment_intent", intent.ID, payload, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("payment_intent_id", intent.ID.String()).Msg("payment intent authorized")
	return intent, nil
}

// PostLedgerForAuthorized settles an AUTHORIZED intent: posts a balanced
// CASH/REVENUE entry and transitions it to SETTLED. A no-op (returns
// current state) on any other status, since the inbound consumer may
// redeliver payment.authorized at least once.
func (s *PaymentIntentServiceImpl) PostLedgerForAuthorized(ctx context.Context, tenantID, id uuid.UUID) (*domain.PaymentIntent, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	intent, err := s.intentRepo.GetByIDForUpdate(ctx, tx, tenantID, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment intent: %w", err))
	}
	if intent == nil {
		return nil, apperror.ErrNotFound("payment intent")
	}
	if intent.Status != domain.PaymentIntentStatusAuthorized {
		return intent, nil
	}

	now := s.clock.Now()
	cashAccount, err := s.resolveAccount(ctx, tx, tenantID, domain.AccountCodeCash)
	if err != nil {
		return nil, err
	}
	revenueAccount, err := s.resolveAccount(ctx, tx, tenantID, domain.AccountCodeRevenue)
	if err != nil {
		return nil, err
	}

	entry := domain.NewBalancedEntry(uuid.New(), tenantID, intent.ID, now, cashAccount, revenueAccount, intent.Amount, intent.Currency)
	if err := s.ledgerRepo.CreateEntry(ctx, tx, &entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("post settlement entry: %w", err))
	}

	intent.Status = domain.PaymentIntentStatusSettled
	intent.UpdatedAt = now
	if err := s.intentRepo.Update(ctx, tx, intent); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment intent: %w", err))
	}

	payload := map[string]any{
		"tenant_id":         tenantID,
		"payment_intent_id": intent.ID,
		"status":            string(intent.Status),
		"amount":            intent.Amount.StringFixed(2),
		"currency":          intent.Currency,
		"correlation_id":    correlation.CorrelationID(ctx),
	}
	if orderID, ok := orderIDFromCustomerRef(intent.CustomerRef); ok {
		payload["order_id"] = orderID
	}
	if err := s.emitEvent(ctx, tx, intent.TenantID, domain.EventPaymentSettled, "payment_intent", intent.ID, payload, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("payment_intent_id", intent.ID.String()).Msg("payment intent settled")
	return intent, nil
}

// Refund applies a (possibly partial) refund to a SETTLED or
// PARTIALLY_REFUNDED intent, posting a balanced REFUND_EXPENSE/CASH entry.
func (s *PaymentIntentServiceImpl) Refund(ctx context.Context, req ports.RefundIntentRequest) (*domain.Refund, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.Sign() <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	intent, err := s.intentRepo.GetByIDForUpdate(ctx, tx, req.TenantID, req.PaymentIntentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment intent: %w", err))
	}
	if intent == nil {
		return nil, apperror.ErrNotFound("payment intent")
	}
	if !intent.CanRefund() {
		return nil, apperror.ErrInvalidTransition(string(intent.Status), "refund")
	}

	existingStr, err := s.refundRepo.SumNonFailed(ctx, tx, req.TenantID, req.PaymentIntentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sum existing refunds: %w", err))
	}
	existing, err := decimal.NewFromString(existingStr)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("parse existing refund total: %w", err))
	}

	total := existing.Add(amount)
	if total.GreaterThan(intent.Amount) {
		return nil, apperror.ErrRefundExceedsAmount()
	}

	now := s.clock.Now()
	cashAccount, err := s.resolveAccount(ctx, tx, req.TenantID, domain.AccountCodeCash)
	if err != nil {
		return nil, err
	}
	refundExpenseAccount, err := s.resolveAccount(ctx, tx, req.TenantID, domain.AccountCodeRefundExpense)
	if err != nil {
		return nil, err
	}

	refund := &domain.Refund{
		ID:              uuid.New(),
		TenantID:        req.TenantID,
		PaymentIntentID: intent.ID,
		Amount:          amount,
		Status:          domain.RefundStatusPending,
		CreatedAt:       now,
	}
	if req.Reason != "" {
		refund.Reason = &req.Reason
	}
	if err := s.refundRepo.Create(ctx, tx, refund); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create refund: %w", err))
	}

	entry := domain.NewBalancedEntry(uuid.New(), req.TenantID, intent.ID, now, refundExpenseAccount, cashAccount, amount, intent.Currency)
	if err := s.ledgerRepo.CreateEntry(ctx, tx, &entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("post refund entry: %w", err))
	}

	if total.Equal(intent.Amount) {
		intent.Status = domain.PaymentIntentStatusRefunded
	} else {
		intent.Status = domain.PaymentIntentStatusPartiallyRefunded
	}
	intent.UpdatedAt = now
	if err := s.intentRepo.Update(ctx, tx, intent); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment intent: %w", err))
	}

	refund.Status = domain.RefundStatusCompleted
	if err := s.refundRepo.Update(ctx, tx, refund); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("complete refund: %w", err))
	}

	payload := map[string]any{
		"payment_intent_id": intent.ID,
		"refund_id":         refund.ID,
		"amount":            refund.Amount.StringFixed(2),
		"currency":          intent.Currency,
		"reason":            req.Reason,
		"payment_status":    string(intent.Status),
		"correlation_id":    correlation.CorrelationID(ctx),
	}
	if err := s.emitEvent(ctx, tx, intent.TenantID, domain.EventPaymentRefunded, "payment_intent", intent.ID, payload, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("refund_id", refund.ID.String()).Str("payment_intent_id", intent.ID.String()).Msg("refund completed")
	return refund, nil
}

// Get fetches an intent without locking.
func (s *PaymentIntentServiceImpl) Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.PaymentIntent, error) {
	intent, err := s.intentRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payment intent: %w", err))
	}
	if intent == nil {
		return nil, apperror.ErrNotFound("payment intent")
	}
	return intent, nil
}

// resolveAccount returns the tenant's configured account label for code,
// falling back to the literal code when no AccountConfig override exists.
func (s *PaymentIntentServiceImpl) resolveAccount(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, code string) (string, error) {
	cfg, err := s.ledgerRepo.GetAccountConfig(ctx, tx, tenantID, code)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("resolve account %s: %w", code, err))
	}
	if cfg == nil {
		return code, nil
	}
	return cfg.Label, nil
}

// emitEvent writes an OutboxEvent within tx. Business code never mutates
// the row again; the outbox dispatcher is the exclusive mutator after
// insert.
func (s *PaymentIntentServiceImpl) emitEvent(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, eventType, aggregateType string, aggregateID uuid.UUID, payload map[string]any, now time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("marshal outbox payload: %w", err))
	}
	event := &domain.OutboxEvent{
		ID:            uuid.New(),
		TenantID:      tenantID,
		EventType:     eventType,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Payload:       body,
		Status:        domain.OutboxStatusPending,
		AvailableAt:   now,
		CreatedAt:     now,
	}
	if err := s.outboxRepo.Insert(ctx, tx, event); err != nil {
		return apperror.InternalError(fmt.Errorf("insert outbox event: %w", err))
	}
	return nil
}

// orderIDFromCustomerRef extracts the order id from a customer_ref of the
// form "order:<order_id>", as produced by the charge handler.
func orderIDFromCustomerRef(customerRef string) (string, bool) {
	if strings.HasPrefix(customerRef, orderRefPrefix) {
		return strings.TrimPrefix(customerRef, orderRefPrefix), true
	}
	return "", false
}
