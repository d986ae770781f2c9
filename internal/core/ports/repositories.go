package ports

import (
	"context"
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TenantRepository persists tenants synced from inbound tenant events.
type TenantRepository interface {
	Create(ctx context.Context, tx pgx.Tx, t *domain.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	Update(ctx context.Context, tx pgx.Tx, t *domain.Tenant) error
	// ListIDs returns every known tenant id, for scheduled jobs that must
	// sweep all tenants (e.g. the reconciliation scheduler).
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

// PaymentIntentRepository persists PaymentIntent rows. Methods accepting
// pgx.Tx and suffixed ForUpdate take a row-level lock and must run inside an
// open transaction.
type PaymentIntentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, p *domain.PaymentIntent) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.PaymentIntent, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID, id uuid.UUID) (*domain.PaymentIntent, error)
	GetByCustomerRef(ctx context.Context, tenantID uuid.UUID, customerRef string) (*domain.PaymentIntent, error)
	GetByGatewayRef(ctx context.Context, tenantID uuid.UUID, gatewayRef string) (*domain.PaymentIntent, error)
	Update(ctx context.Context, tx pgx.Tx, p *domain.PaymentIntent) error
	ListWithGatewayRef(ctx context.Context, tenantID uuid.UUID) ([]domain.PaymentIntent, error)
}

// LedgerRepository persists LedgerEntry aggregates (entry + lines) and
// per-tenant account configuration.
type LedgerRepository interface {
	CreateEntry(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error
	ListEntries(ctx context.Context, tenantID uuid.UUID, from, to time.Time, limit int) ([]domain.LedgerEntry, error)
	AccountBalances(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]AccountBalance, error)
	RevenueByPeriod(ctx context.Context, tenantID uuid.UUID, from, to time.Time, granularity string) ([]RevenuePeriod, error)

	GetAccountConfig(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, code string) (*domain.AccountConfig, error)
	SeedDefaultAccounts(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID) error
}

// AccountBalance is one row of the account-balances report.
type AccountBalance struct {
	Account      string
	Currency     domain.Currency
	DebitTotal   string
	CreditTotal  string
}

// RevenuePeriod is one row of the revenue-by-period report.
type RevenuePeriod struct {
	PeriodStart time.Time
	Currency    domain.Currency
	Amount      string
}

// RefundRepository persists Refund rows.
type RefundRepository interface {
	Create(ctx context.Context, tx pgx.Tx, r *domain.Refund) error
	Update(ctx context.Context, tx pgx.Tx, r *domain.Refund) error
	ListByPaymentIntent(ctx context.Context, tenantID, paymentIntentID uuid.UUID) ([]domain.Refund, error)
	SumNonFailed(ctx context.Context, tx pgx.Tx, tenantID, paymentIntentID uuid.UUID) (string, error)
}

// OutboxRepository is the durable queue of domain events written in the
// same transaction as the business state that produced them.
type OutboxRepository interface {
	Insert(ctx context.Context, tx pgx.Tx, e *domain.OutboxEvent) error
	// ClaimBatch locks up to limit PENDING rows ready for dispatch using
	// FOR UPDATE SKIP LOCKED, stamping locked_at/locked_by, and returns them.
	ClaimBatch(ctx context.Context, tx pgx.Tx, limit int, lockTimeout time.Duration, workerID string, now time.Time) ([]domain.OutboxEvent, error)
	MarkSent(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
	MarkFailed(ctx context.Context, tx pgx.Tx, id uuid.UUID, attempts int, availableAt time.Time, dead bool) error
}

// WebhookRepository persists webhook endpoint subscriptions.
type WebhookRepository interface {
	Create(ctx context.Context, e *domain.WebhookEndpoint) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.WebhookEndpoint, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.WebhookEndpoint, error)
	ListActiveForEvent(ctx context.Context, tenantID uuid.UUID, eventType string) ([]domain.WebhookEndpoint, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// WebhookDeliveryRepository persists WebhookDelivery attempts.
type WebhookDeliveryRepository interface {
	Insert(ctx context.Context, tx pgx.Tx, d *domain.WebhookDelivery) error
	ClaimBatch(ctx context.Context, tx pgx.Tx, limit int, now time.Time) ([]domain.WebhookDelivery, error)
	Update(ctx context.Context, tx pgx.Tx, d *domain.WebhookDelivery) error
}

// ReconciliationRepository persists discrepancies found by the
// reconciliation engine.
type ReconciliationRepository interface {
	Create(ctx context.Context, tx pgx.Tx, d *domain.ReconciliationDiscrepancy) error
	List(ctx context.Context, tenantID uuid.UUID, resolved *bool) ([]domain.ReconciliationDiscrepancy, error)
	Resolve(ctx context.Context, tenantID, id uuid.UUID) error
}

// IdempotencyRepository is the DB-backed fallback behind the Redis fast
// path for request idempotency.
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, rec *domain.IdempotencyRecord) error
	Get(ctx context.Context, key string) (*domain.IdempotencyRecord, error)
}
