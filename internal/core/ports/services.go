package ports

import (
	"context"
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil on miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// PaymentIntentService owns the intent state machine: creates intents,
// confirms (authorizes), drives settlement, applies refunds.
type PaymentIntentService interface {
	Create(ctx context.Context, req CreateIntentRequest) (*domain.PaymentIntent, error)
	Confirm(ctx context.Context, tenantID, id uuid.UUID) (*domain.PaymentIntent, error)
	PostLedgerForAuthorized(ctx context.Context, tenantID, id uuid.UUID) (*domain.PaymentIntent, error)
	Refund(ctx context.Context, req RefundIntentRequest) (*domain.Refund, error)
	Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.PaymentIntent, error)
}

// CreateIntentRequest holds validated input for PaymentIntentService.Create.
type CreateIntentRequest struct {
	TenantID    uuid.UUID
	Amount      string // decimal string, parsed by the service
	Currency    string
	CustomerRef string
}

// RefundIntentRequest holds validated input for PaymentIntentService.Refund.
type RefundIntentRequest struct {
	TenantID        uuid.UUID
	PaymentIntentID uuid.UUID
	Amount          string
	Reason          string
}

// OutboxPublisher publishes a single claimed outbox event to the broker.
// Implemented by the broker adapter, consumed by the dispatcher.
type OutboxPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte, headers map[string]string) error
}

// WebhookSender performs the outbound HTTP call for one webhook delivery
// attempt.
type WebhookSender interface {
	Send(ctx context.Context, url string, body []byte, signature string) (statusCode int, err error)
}

// ReconciliationEngine diffs a batch of gateway transactions against local
// state and records typed discrepancies.
type ReconciliationEngine interface {
	Reconcile(ctx context.Context, tenantID uuid.UUID, gatewayTxns []domain.GatewayTransaction) ([]domain.ReconciliationDiscrepancy, error)
	Resolve(ctx context.Context, tenantID, discrepancyID uuid.UUID) error
}

// ChaosStore holds per-tenant fault-injection knobs in the KV store, keyed
// as "chaos:<tenant>".
type ChaosStore interface {
	Get(ctx context.Context, tenantID uuid.UUID) (*ChaosSettings, error)
	Set(ctx context.Context, tenantID uuid.UUID, settings ChaosSettings) error
}

// ChaosSettings are the fault-injection knobs exposed at /admin/chaos.
type ChaosSettings struct {
	FailureRate      float64       `json:"failure_rate"`
	LatencyInjection time.Duration `json:"latency_injection"`
}

// TokenService issues and validates the bearer tokens used by the HTTP
// API's authentication middleware. Authorization depth (RBAC/ABAC) is out
// of core scope; this carries only tenant and subject identity.
type TokenService interface {
	Generate(tenantID uuid.UUID, subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims is the validated identity carried by a bearer token.
type TokenClaims struct {
	TenantID uuid.UUID
	Subject  string
}
