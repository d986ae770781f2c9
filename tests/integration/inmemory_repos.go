// Package integration exercises the HTTP surface end to end against
// hand-rolled in-memory implementations of the core ports, the same way the
// service-layer tests fake a single transaction with mockTx. No Postgres or
// Redis is involved; these repos exist only to drive the real handlers,
// services, and middleware through realistic request/response cycles.
package integration

import (
	"context"
	"sync"
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// fakeTx is a no-op pgx.Tx: embedding the interface satisfies every method
// the code under test never calls. It also doubles as the release point for
// the row locks fakePaymentIntentRepo.GetByIDForUpdate hands out, the same
// way a real transaction holds a FOR UPDATE lock until commit or rollback.
type fakeTx struct {
	pgx.Tx
	mu       sync.Mutex
	released bool
	onDone   []func()
}

func (t *fakeTx) addOnDone(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onDone = append(t.onDone, fn)
}

func (t *fakeTx) release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.released {
		return
	}
	t.released = true
	for _, fn := range t.onDone {
		fn()
	}
}

func (t *fakeTx) Commit(_ context.Context) error   { t.release(); return nil }
func (t *fakeTx) Rollback(_ context.Context) error { t.release(); return nil }

// fakeTransactor hands out fakeTx values; there is no real database, so
// Begin never fails.
type fakeTransactor struct{}

func (fakeTransactor) Begin(_ context.Context) (pgx.Tx, error) { return &fakeTx{}, nil }

// --- tenants ---

type fakeTenantRepo struct {
	mu      sync.Mutex
	tenants map[uuid.UUID]domain.Tenant
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{tenants: map[uuid.UUID]domain.Tenant{}}
}

func (r *fakeTenantRepo) Create(_ context.Context, _ pgx.Tx, t *domain.Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tenants[t.ID] = *t
	return nil
}

func (r *fakeTenantRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tenants[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &t, nil
}

func (r *fakeTenantRepo) Update(_ context.Context, _ pgx.Tx, t *domain.Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tenants[t.ID] = *t
	return nil
}

func (r *fakeTenantRepo) ListIDs(_ context.Context) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(r.tenants))
	for id := range r.tenants {
		ids = append(ids, id)
	}
	return ids, nil
}

// --- payment intents ---

type fakePaymentIntentRepo struct {
	mu      sync.Mutex
	intents map[uuid.UUID]domain.PaymentIntent
	rowMu   sync.Mutex
	rowLock map[uuid.UUID]*sync.Mutex
}

func newFakePaymentIntentRepo() *fakePaymentIntentRepo {
	return &fakePaymentIntentRepo{
		intents: map[uuid.UUID]domain.PaymentIntent{},
		rowLock: map[uuid.UUID]*sync.Mutex{},
	}
}

// lockFor returns the mutex guarding row-level access to a single intent,
// creating it on first use.
func (r *fakePaymentIntentRepo) lockFor(id uuid.UUID) *sync.Mutex {
	r.rowMu.Lock()
	defer r.rowMu.Unlock()
	l, ok := r.rowLock[id]
	if !ok {
		l = &sync.Mutex{}
		r.rowLock[id] = l
	}
	return l
}

func (r *fakePaymentIntentRepo) Create(_ context.Context, _ pgx.Tx, p *domain.PaymentIntent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intents[p.ID] = *p
	return nil
}

func (r *fakePaymentIntentRepo) GetByID(_ context.Context, tenantID, id uuid.UUID) (*domain.PaymentIntent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.intents[id]
	if !ok || p.TenantID != tenantID {
		return nil, pgx.ErrNoRows
	}
	cp := p
	return &cp, nil
}

// GetByIDForUpdate blocks until any concurrent holder of this row's lock
// commits or rolls back, mirroring Postgres's SELECT ... FOR UPDATE. The
// lock is released when tx completes, not when this call returns.
func (r *fakePaymentIntentRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID, id uuid.UUID) (*domain.PaymentIntent, error) {
	lock := r.lockFor(id)
	lock.Lock()
	if ft, ok := tx.(*fakeTx); ok {
		ft.addOnDone(lock.Unlock)
	} else {
		lock.Unlock()
	}
	return r.GetByID(ctx, tenantID, id)
}

func (r *fakePaymentIntentRepo) GetByCustomerRef(_ context.Context, tenantID uuid.UUID, customerRef string) (*domain.PaymentIntent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.intents {
		if p.TenantID == tenantID && p.CustomerRef == customerRef {
			cp := p
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakePaymentIntentRepo) GetByGatewayRef(_ context.Context, tenantID uuid.UUID, gatewayRef string) (*domain.PaymentIntent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.intents {
		if p.TenantID == tenantID && p.GatewayRef != nil && *p.GatewayRef == gatewayRef {
			cp := p
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakePaymentIntentRepo) Update(_ context.Context, _ pgx.Tx, p *domain.PaymentIntent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intents[p.ID] = *p
	return nil
}

func (r *fakePaymentIntentRepo) ListWithGatewayRef(_ context.Context, tenantID uuid.UUID) ([]domain.PaymentIntent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.PaymentIntent{}
	for _, p := range r.intents {
		if p.TenantID == tenantID && p.GatewayRef != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

// --- ledger ---

type fakeLedgerRepo struct {
	mu       sync.Mutex
	entries  []domain.LedgerEntry
	accounts map[string]domain.AccountConfig // tenantID:code
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{accounts: map[string]domain.AccountConfig{}}
}

func acctKey(tenantID uuid.UUID, code string) string { return tenantID.String() + ":" + code }

func (r *fakeLedgerRepo) CreateEntry(_ context.Context, _ pgx.Tx, e *domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *e)
	return nil
}

func (r *fakeLedgerRepo) ListEntries(_ context.Context, tenantID uuid.UUID, _, _ time.Time, limit int) ([]domain.LedgerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.LedgerEntry{}
	for _, e := range r.entries {
		if e.TenantID == tenantID {
			out = append(out, e)
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *fakeLedgerRepo) AccountBalances(_ context.Context, tenantID uuid.UUID, _, _ time.Time) ([]ports.AccountBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	type totals struct{ debit, credit decimal.Decimal }
	byAccount := map[string]totals{}
	byCurrency := map[string]domain.Currency{}
	for _, e := range r.entries {
		if e.TenantID != tenantID {
			continue
		}
		for _, l := range e.Lines {
			t := byAccount[l.Account]
			switch l.Side {
			case domain.LedgerSideDebit:
				t.debit = t.debit.Add(l.Amount)
			case domain.LedgerSideCredit:
				t.credit = t.credit.Add(l.Amount)
			}
			byAccount[l.Account] = t
			byCurrency[l.Account] = l.Currency
		}
	}

	out := make([]ports.AccountBalance, 0, len(byAccount))
	for account, t := range byAccount {
		out = append(out, ports.AccountBalance{
			Account:     account,
			Currency:    byCurrency[account],
			DebitTotal:  t.debit.String(),
			CreditTotal: t.credit.String(),
		})
	}
	return out, nil
}

func (r *fakeLedgerRepo) RevenueByPeriod(_ context.Context, _ uuid.UUID, _, _ time.Time, _ string) ([]ports.RevenuePeriod, error) {
	return []ports.RevenuePeriod{}, nil
}

func (r *fakeLedgerRepo) GetAccountConfig(_ context.Context, _ pgx.Tx, tenantID uuid.UUID, code string) (*domain.AccountConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cfg, ok := r.accounts[acctKey(tenantID, code)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &cfg, nil
}

func (r *fakeLedgerRepo) SeedDefaultAccounts(_ context.Context, _ pgx.Tx, tenantID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cfg := range domain.DefaultAccountConfigs(tenantID) {
		r.accounts[acctKey(tenantID, cfg.Code)] = cfg
	}
	return nil
}

// --- refunds ---

type fakeRefundRepo struct {
	mu      sync.Mutex
	refunds map[uuid.UUID]domain.Refund
}

func newFakeRefundRepo() *fakeRefundRepo {
	return &fakeRefundRepo{refunds: map[uuid.UUID]domain.Refund{}}
}

func (r *fakeRefundRepo) Create(_ context.Context, _ pgx.Tx, rf *domain.Refund) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refunds[rf.ID] = *rf
	return nil
}

func (r *fakeRefundRepo) Update(_ context.Context, _ pgx.Tx, rf *domain.Refund) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refunds[rf.ID] = *rf
	return nil
}

func (r *fakeRefundRepo) ListByPaymentIntent(_ context.Context, tenantID, paymentIntentID uuid.UUID) ([]domain.Refund, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Refund{}
	for _, rf := range r.refunds {
		if rf.TenantID == tenantID && rf.PaymentIntentID == paymentIntentID {
			out = append(out, rf)
		}
	}
	return out, nil
}

func (r *fakeRefundRepo) SumNonFailed(_ context.Context, _ pgx.Tx, tenantID, paymentIntentID uuid.UUID) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for _, rf := range r.refunds {
		if rf.TenantID == tenantID && rf.PaymentIntentID == paymentIntentID && rf.Status != domain.RefundStatusFailed {
			total = total.Add(rf.Amount)
		}
	}
	return total.String(), nil
}

// --- outbox ---

type fakeOutboxRepo struct {
	mu     sync.Mutex
	events map[uuid.UUID]domain.OutboxEvent
}

func newFakeOutboxRepo() *fakeOutboxRepo {
	return &fakeOutboxRepo{events: map[uuid.UUID]domain.OutboxEvent{}}
}

func (r *fakeOutboxRepo) Insert(_ context.Context, _ pgx.Tx, e *domain.OutboxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[e.ID] = *e
	return nil
}

func (r *fakeOutboxRepo) ClaimBatch(_ context.Context, _ pgx.Tx, limit int, _ time.Duration, workerID string, now time.Time) ([]domain.OutboxEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.OutboxEvent{}
	for id, e := range r.events {
		if e.Status != domain.OutboxStatusPending || e.AvailableAt.After(now) {
			continue
		}
		lockedAt := now
		e.LockedAt = &lockedAt
		e.LockedBy = &workerID
		r.events[id] = e
		out = append(out, e)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *fakeOutboxRepo) MarkSent(_ context.Context, _ pgx.Tx, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return pgx.ErrNoRows
	}
	e.Status = domain.OutboxStatusSent
	r.events[id] = e
	return nil
}

func (r *fakeOutboxRepo) MarkFailed(_ context.Context, _ pgx.Tx, id uuid.UUID, attempts int, availableAt time.Time, dead bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return pgx.ErrNoRows
	}
	e.Attempts = attempts
	e.AvailableAt = availableAt
	if dead {
		e.Status = domain.OutboxStatusDead
	} else {
		e.Status = domain.OutboxStatusPending
	}
	r.events[id] = e
	return nil
}

// --- webhooks ---

type fakeWebhookRepo struct {
	mu        sync.Mutex
	endpoints map[uuid.UUID]domain.WebhookEndpoint
}

func newFakeWebhookRepo() *fakeWebhookRepo {
	return &fakeWebhookRepo{endpoints: map[uuid.UUID]domain.WebhookEndpoint{}}
}

func (r *fakeWebhookRepo) Create(_ context.Context, e *domain.WebhookEndpoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endpoints[e.ID] = *e
	return nil
}

func (r *fakeWebhookRepo) GetByID(_ context.Context, tenantID, id uuid.UUID) (*domain.WebhookEndpoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.endpoints[id]
	if !ok || e.TenantID != tenantID {
		return nil, pgx.ErrNoRows
	}
	return &e, nil
}

func (r *fakeWebhookRepo) List(_ context.Context, tenantID uuid.UUID) ([]domain.WebhookEndpoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.WebhookEndpoint{}
	for _, e := range r.endpoints {
		if e.TenantID == tenantID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeWebhookRepo) ListActiveForEvent(_ context.Context, tenantID uuid.UUID, eventType string) ([]domain.WebhookEndpoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.WebhookEndpoint{}
	for _, e := range r.endpoints {
		if e.TenantID == tenantID && e.IsActive && e.Matches(eventType) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeWebhookRepo) Delete(_ context.Context, tenantID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.endpoints[id]
	if !ok || e.TenantID != tenantID {
		return pgx.ErrNoRows
	}
	delete(r.endpoints, id)
	return nil
}

// --- webhook deliveries ---

type fakeWebhookDeliveryRepo struct {
	mu         sync.Mutex
	deliveries map[uuid.UUID]domain.WebhookDelivery
}

func newFakeWebhookDeliveryRepo() *fakeWebhookDeliveryRepo {
	return &fakeWebhookDeliveryRepo{deliveries: map[uuid.UUID]domain.WebhookDelivery{}}
}

func (r *fakeWebhookDeliveryRepo) Insert(_ context.Context, _ pgx.Tx, d *domain.WebhookDelivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deliveries[d.ID] = *d
	return nil
}

func (r *fakeWebhookDeliveryRepo) ClaimBatch(_ context.Context, _ pgx.Tx, limit int, now time.Time) ([]domain.WebhookDelivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.WebhookDelivery{}
	for _, d := range r.deliveries {
		if d.Status != domain.WebhookDeliveryStatusPending && d.Status != domain.WebhookDeliveryStatusRetrying {
			continue
		}
		if d.NextRetryAt != nil && d.NextRetryAt.After(now) {
			continue
		}
		out = append(out, d)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *fakeWebhookDeliveryRepo) Update(_ context.Context, _ pgx.Tx, d *domain.WebhookDelivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deliveries[d.ID] = *d
	return nil
}

// --- reconciliation ---

type fakeReconciliationRepo struct {
	mu            sync.Mutex
	discrepancies map[uuid.UUID]domain.ReconciliationDiscrepancy
}

func newFakeReconciliationRepo() *fakeReconciliationRepo {
	return &fakeReconciliationRepo{discrepancies: map[uuid.UUID]domain.ReconciliationDiscrepancy{}}
}

func (r *fakeReconciliationRepo) Create(_ context.Context, _ pgx.Tx, d *domain.ReconciliationDiscrepancy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.discrepancies[d.ID] = *d
	return nil
}

func (r *fakeReconciliationRepo) List(_ context.Context, tenantID uuid.UUID, resolved *bool) ([]domain.ReconciliationDiscrepancy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.ReconciliationDiscrepancy{}
	for _, d := range r.discrepancies {
		if d.TenantID != tenantID {
			continue
		}
		if resolved != nil && d.Resolved != *resolved {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeReconciliationRepo) Resolve(_ context.Context, tenantID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.discrepancies[id]
	if !ok || d.TenantID != tenantID {
		return pgx.ErrNoRows
	}
	d.Resolved = true
	r.discrepancies[id] = d
	return nil
}

// --- idempotency ---

type fakeIdempotencyRepo struct {
	mu      sync.Mutex
	records map[string]domain.IdempotencyRecord
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{records: map[string]domain.IdempotencyRecord{}}
}

func (r *fakeIdempotencyRepo) Create(_ context.Context, _ pgx.Tx, rec *domain.IdempotencyRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[rec.Key]; exists {
		return nil
	}
	r.records[rec.Key] = *rec
	return nil
}

func (r *fakeIdempotencyRepo) Get(_ context.Context, key string) (*domain.IdempotencyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[key]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// --- idempotency cache (in-memory Redis fast-path stand-in) ---

type fakeIdempotencyCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newFakeIdempotencyCache() *fakeIdempotencyCache {
	return &fakeIdempotencyCache{items: map[string][]byte{}}
}

func (c *fakeIdempotencyCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (c *fakeIdempotencyCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

// --- chaos store ---

type fakeChaosStore struct {
	mu       sync.Mutex
	settings map[uuid.UUID]ports.ChaosSettings
}

func newFakeChaosStore() *fakeChaosStore {
	return &fakeChaosStore{settings: map[uuid.UUID]ports.ChaosSettings{}}
}

func (s *fakeChaosStore) Get(_ context.Context, tenantID uuid.UUID) (*ports.ChaosSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, ok := s.settings[tenantID]
	if !ok {
		return &ports.ChaosSettings{}, nil
	}
	return &cs, nil
}

func (s *fakeChaosStore) Set(_ context.Context, tenantID uuid.UUID, settings ports.ChaosSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[tenantID] = settings
	return nil
}
