package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"
	"github.com/ricartefelipe/payments-ledger/pkg/clock"
	"github.com/ricartefelipe/payments-ledger/pkg/correlation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	routingKeyPaymentAuthorized   = "payment.authorized"
	routingKeyChargeRequested     = "payment.charge_requested"
	routingKeyOrderConfirmed      = "order.confirmed"
	routingKeyTenantCreated       = "tenant.created"
	routingKeyTenantUpdated       = "tenant.updated"
	routingKeyTenantDeleted       = "tenant.deleted"
	headerCorrelationID           = "X-Correlation-Id"
	headerTenantID                = "X-Tenant-Id"
	deletedNamePrefix             = "[DELETED] "
)

// InboundHandlers dispatches broker deliveries by routing key to the
// appropriate business operation, matching ports.MessageHandler.
type InboundHandlers struct {
	intentSvc  ports.PaymentIntentService
	intentRepo ports.PaymentIntentRepository
	tenantRepo ports.TenantRepository
	ledgerRepo ports.LedgerRepository
	outboxRepo ports.OutboxRepository
	transactor ports.DBTransactor
	clock      clock.Clock
	log        zerolog.Logger
}

// NewInboundHandlers creates InboundHandlers.
func NewInboundHandlers(
	intentSvc ports.PaymentIntentService,
	intentRepo ports.PaymentIntentRepository,
	tenantRepo ports.TenantRepository,
	ledgerRepo ports.LedgerRepository,
	outboxRepo ports.OutboxRepository,
	transactor ports.DBTransactor,
	clk clock.Clock,
	log zerolog.Logger,
) *InboundHandlers {
	return &InboundHandlers{
		intentSvc:  intentSvc,
		intentRepo: intentRepo,
		tenantRepo: tenantRepo,
		ledgerRepo: ledgerRepo,
		outboxRepo: outboxRepo,
		transactor: transactor,
		clock:      clk,
		log:        log,
	}
}

// Handle implements ports.MessageHandler. It sets ambient correlation and
// tenant context for the duration of the call, then dispatches on routing
// key.
func (h *InboundHandlers) Handle(ctx context.Context, msg ports.InboundMessage) error {
	var raw map[string]any
	if err := json.Unmarshal(msg.Body, &raw); err != nil {
		return fmt.Errorf("parse message body: %w", err)
	}

	ctx = h.withAmbientContext(ctx, msg, raw)

	switch msg.RoutingKey {
	case routingKeyPaymentAuthorized:
		return h.handlePaymentAuthorized(ctx, raw)
	case routingKeyChargeRequested, routingKeyOrderConfirmed:
		return h.handleCharge(ctx, raw)
	case routingKeyTenantCreated, routingKeyTenantUpdated, routingKeyTenantDeleted:
		return h.handleTenantSync(ctx, msg.RoutingKey, raw)
	default:
		h.log.Warn().Str("routing_key", msg.RoutingKey).Msg("inbound consumer: no handler for routing key, acking")
		return nil
	}
}

func (h *InboundHandlers) withAmbientContext(ctx context.Context, msg ports.InboundMessage, raw map[string]any) context.Context {
	corrID := msg.Headers[headerCorrelationID]
	if corrID == "" {
		corrID, _ = firstString(raw, "correlation_id", "correlationId")
	}
	if corrID != "" {
		ctx = correlation.WithCorrelationID(ctx, corrID)
	}
	ctx = correlation.EnsureCorrelationID(ctx)

	tenantID := msg.Headers[headerTenantID]
	if tenantID == "" {
		tenantID, _ = firstString(raw, "tenant_id", "tenantId")
	}
	if tenantID == "" {
		tenantID, _ = firstString(raw, "id")
	}
	if tenantID != "" {
		ctx = correlation.WithTenantID(ctx, tenantID)
	}
	return ctx
}

// handlePaymentAuthorized drives ledger posting for an intent the gateway
// (or an upstream system) has already authorized.
func (h *InboundHandlers) handlePaymentAuthorized(ctx context.Context, raw map[string]any) error {
	tenantIDStr, ok := firstString(raw, "tenant_id", "tenantId")
	if !ok {
		return fmt.Errorf("payment.authorized: missing tenant_id")
	}
	intentIDStr, ok := firstString(raw, "payment_intent_id", "paymentIntentId")
	if !ok {
		return fmt.Errorf("payment.authorized: missing payment_intent_id")
	}

	tenantID, err := uuid.Parse(tenantIDStr)
	if err != nil {
		return fmt.Errorf("payment.authorized: invalid tenant_id: %w", err)
	}
	intentID, err := uuid.Parse(intentIDStr)
	if err != nil {
		return fmt.Errorf("payment.authorized: invalid payment_intent_id: %w", err)
	}

	if _, err := h.intentSvc.PostLedgerForAuthorized(ctx, tenantID, intentID); err != nil {
		return fmt.Errorf("post ledger for authorized intent: %w", err)
	}
	return nil
}

// chargeEvent is the normalized shape of a payment.charge_requested or
// order.confirmed event, whichever snake_case or camelCase form the
// upstream system used.
type chargeEvent struct {
	OrderID     string
	TenantID    uuid.UUID
	TotalAmount string
	Currency    string
	CustomerRef string
}

// normalizeChargePayload accepts either snake_case or camelCase field
// names, since payment.charge_requested and order.confirmed may originate
// from different upstream producers.
func normalizeChargePayload(raw map[string]any) (chargeEvent, error) {
	orderID, ok := firstString(raw, "order_id", "orderId")
	if !ok {
		return chargeEvent{}, fmt.Errorf("charge event: missing order_id")
	}
	tenantIDStr, ok := firstString(raw, "tenant_id", "tenantId")
	if !ok {
		return chargeEvent{}, fmt.Errorf("charge event: missing tenant_id")
	}
	tenantID, err := uuid.Parse(tenantIDStr)
	if err != nil {
		return chargeEvent{}, fmt.Errorf("charge event: invalid tenant_id: %w", err)
	}
	amount, ok := firstAmount(raw, "total_amount", "totalAmount")
	if !ok {
		return chargeEvent{}, fmt.Errorf("charge event: missing total_amount")
	}
	currency, ok := firstString(raw, "currency")
	if !ok {
		return chargeEvent{}, fmt.Errorf("charge event: missing currency")
	}
	customerRef, ok := firstString(raw, "customer_ref", "customerRef")
	if !ok {
		customerRef = orderRefPrefix + orderID
	}

	return chargeEvent{
		OrderID:     orderID,
		TenantID:    tenantID,
		TotalAmount: amount,
		Currency:    currency,
		CustomerRef: customerRef,
	}, nil
}

// handleCharge dedupes on (tenant_id, customer_ref) and, if no intent
// exists yet, inserts one directly as AUTHORIZED — the charge is
// pre-authorized upstream, so CREATED is skipped.
func (h *InboundHandlers) handleCharge(ctx context.Context, raw map[string]any) error {
	event, err := normalizeChargePayload(raw)
	if err != nil {
		return err
	}

	existing, err := h.intentRepo.GetByCustomerRef(ctx, event.TenantID, event.CustomerRef)
	if err != nil {
		return fmt.Errorf("lookup existing intent by customer_ref: %w", err)
	}
	if existing != nil {
		h.log.Info().Str("customer_ref", event.CustomerRef).Str("tenant_id", event.TenantID.String()).
			Msg("charge handler: intent already exists, skipping")
		return nil
	}

	amount, err := decimal.NewFromString(event.TotalAmount)
	if err != nil || amount.Sign() <= 0 {
		return fmt.Errorf("charge event: invalid total_amount %q", event.TotalAmount)
	}
	currency := domain.Currency(strings.ToUpper(event.Currency))
	if !domain.SupportedCurrencies[currency] {
		return fmt.Errorf("charge event: unsupported currency %q", event.Currency)
	}

	tx, err := h.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := h.clock.Now()
	intent := &domain.PaymentIntent{
		ID:          uuid.New(),
		TenantID:    event.TenantID,
		Amount:      amount,
		Currency:    currency,
		Status:      domain.PaymentIntentStatusAuthorized,
		CustomerRef: event.CustomerRef,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.intentRepo.Create(ctx, tx, intent); err != nil {
		return fmt.Errorf("insert payment intent: %w", err)
	}

	if err := h.emitEvent(ctx, tx, event.TenantID, domain.EventPaymentAuthorized, "payment_intent", intent.ID, map[string]any{
		"payment_intent_id": intent.ID,
		"tenant_id":          event.TenantID,
		"order_id":           event.OrderID,
		"amount":             intent.Amount.StringFixed(2),
		"currency":           string(intent.Currency),
	}, now); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	h.log.Info().Str("payment_intent_id", intent.ID.String()).Str("order_id", event.OrderID).Msg("charge handler: intent created from inbound event")
	return nil
}

// handleTenantSync applies tenant.created|updated|deleted events.
func (h *InboundHandlers) handleTenantSync(ctx context.Context, routingKey string, raw map[string]any) error {
	idStr, ok := firstString(raw, "id", "tenant_id", "tenantId")
	if !ok {
		return fmt.Errorf("tenant sync: missing id")
	}
	tenantID, err := uuid.Parse(idStr)
	if err != nil {
		return fmt.Errorf("tenant sync: invalid id: %w", err)
	}

	tx, err := h.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	existing, err := h.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("lookup tenant: %w", err)
	}

	switch routingKey {
	case routingKeyTenantCreated:
		if existing != nil {
			h.log.Info().Str("tenant_id", tenantID.String()).Msg("tenant sync: tenant already exists, skipping create")
			return nil
		}
		name, _ := firstString(raw, "name")
		plan, _ := firstString(raw, "plan")
		region, _ := firstString(raw, "region")
		tenant := &domain.Tenant{
			ID:        tenantID,
			Name:      name,
			Plan:      domain.Plan(plan),
			Region:    region,
			CreatedAt: h.clock.Now(),
		}
		if err := h.tenantRepo.Create(ctx, tx, tenant); err != nil {
			return fmt.Errorf("create tenant: %w", err)
		}
		if err := h.ledgerRepo.SeedDefaultAccounts(ctx, tx, tenantID); err != nil {
			return fmt.Errorf("seed default accounts: %w", err)
		}

	case routingKeyTenantUpdated:
		if existing == nil {
			return fmt.Errorf("tenant sync: update for unknown tenant %s", tenantID)
		}
		if name, ok := firstString(raw, "name"); ok {
			existing.Name = name
		}
		if plan, ok := firstString(raw, "plan"); ok {
			existing.Plan = domain.Plan(plan)
		}
		if region, ok := firstString(raw, "region"); ok {
			existing.Region = region
		}
		if err := h.tenantRepo.Update(ctx, tx, existing); err != nil {
			return fmt.Errorf("update tenant: %w", err)
		}

	case routingKeyTenantDeleted:
		if existing == nil {
			h.log.Info().Str("tenant_id", tenantID.String()).Msg("tenant sync: delete for unknown tenant, skipping")
			return nil
		}
		if !strings.HasPrefix(existing.Name, deletedNamePrefix) {
			existing.Name = deletedNamePrefix + existing.Name
		}
		if err := h.tenantRepo.Update(ctx, tx, existing); err != nil {
			return fmt.Errorf("soft-delete tenant: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// emitEvent writes an OutboxEvent within tx, mirroring
// PaymentIntentServiceImpl.emitEvent.
func (h *InboundHandlers) emitEvent(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, eventType, aggregateType string, aggregateID uuid.UUID, payload map[string]any, now time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal outbox payload: %w", err)
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
	if err := h.outboxRepo.Insert(ctx, tx, event); err != nil {
		return fmt.Errorf("insert outbox event: %w", err)
	}
	return nil
}

// firstString returns the first key present in raw as a string, in order.
func firstString(raw map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// firstAmount returns the first key present in raw as a decimal string,
// accepting either a JSON string or a JSON number.
func firstAmount(raw map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case string:
			if n != "" {
				return n, true
			}
		case float64:
			return decimal.NewFromFloat(n).String(), true
		}
	}
	return "", false
}
