package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.LedgerRepository.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// CreateEntry inserts a LedgerEntry and its lines within a database
// transaction. Lines cascade-delete with their entry at the schema level.
func (r *LedgerRepo) CreateEntry(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	if !e.IsBalanced() {
		return fmt.Errorf("ledger entry %s is not balanced", e.ID)
	}

	_, err := tx.Exec(ctx,
		`INSERT INTO ledger_entries (id, tenant_id, payment_intent_id, posted_at) VALUES ($1, $2, $3, $4)`,
		e.ID, e.TenantID, e.PaymentIntentID, e.PostedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}

	for _, l := range e.Lines {
		_, err := tx.Exec(ctx,
			`INSERT INTO ledger_lines (id, tenant_id, entry_id, side, account, amount, currency)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			l.ID, l.TenantID, l.EntryID, l.Side, l.Account, l.Amount, l.Currency,
		)
		if err != nil {
			return fmt.Errorf("insert ledger line: %w", err)
		}
	}
	return nil
}

// ListEntries returns entries posted in [from, to], each with its lines,
// bounded by limit.
func (r *LedgerRepo) ListEntries(ctx context.Context, tenantID uuid.UUID, from, to time.Time, limit int) ([]domain.LedgerEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, tenant_id, payment_intent_id, posted_at FROM ledger_entries
		 WHERE tenant_id = $1 AND posted_at BETWEEN $2 AND $3
		 ORDER BY posted_at ASC LIMIT $4`,
		tenantID, from, to, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.TenantID, &e.PaymentIntentID, &e.PostedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entries: %w", err)
	}

	for i := range entries {
		lines, err := r.linesForEntry(ctx, entries[i].ID)
		if err != nil {
			return nil, err
		}
		entries[i].Lines = lines
	}
	return entries, nil
}

func (r *LedgerRepo) linesForEntry(ctx context.Context, entryID uuid.UUID) ([]domain.LedgerLine, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, tenant_id, entry_id, side, account, amount, currency FROM ledger_lines WHERE entry_id = $1`,
		entryID,
	)
	if err != nil {
		return nil, fmt.Errorf("list ledger lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.LedgerLine
	for rows.Next() {
		var l domain.LedgerLine
		if err := rows.Scan(&l.ID, &l.TenantID, &l.EntryID, &l.Side, &l.Account, &l.Amount, &l.Currency); err != nil {
			return nil, fmt.Errorf("scan ledger line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// AccountBalances aggregates debit/credit totals per (account, currency) in
// a date range.
func (r *LedgerRepo) AccountBalances(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]ports.AccountBalance, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT l.account, l.currency,
			COALESCE(SUM(l.amount) FILTER (WHERE l.side = 'DEBIT'), 0) AS debit_total,
			COALESCE(SUM(l.amount) FILTER (WHERE l.side = 'CREDIT'), 0) AS credit_total
		 FROM ledger_lines l
		 JOIN ledger_entries e ON e.id = l.entry_id
		 WHERE l.tenant_id = $1 AND e.posted_at BETWEEN $2 AND $3
		 GROUP BY l.account, l.currency
		 ORDER BY l.account`,
		tenantID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("account balances: %w", err)
	}
	defer rows.Close()

	var out []ports.AccountBalance
	for rows.Next() {
		var b ports.AccountBalance
		if err := rows.Scan(&b.Account, &b.Currency, &b.DebitTotal, &b.CreditTotal); err != nil {
			return nil, fmt.Errorf("scan account balance: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// RevenueByPeriod aggregates REVENUE credits per bucket of the given
// granularity (day, week, month).
func (r *LedgerRepo) RevenueByPeriod(ctx context.Context, tenantID uuid.UUID, from, to time.Time, granularity string) ([]ports.RevenuePeriod, error) {
	trunc := "day"
	switch granularity {
	case "week", "month":
		trunc = granularity
	}

	rows, err := r.pool.Query(ctx,
		`SELECT date_trunc($1, e.posted_at) AS period, l.currency, SUM(l.amount) AS total
		 FROM ledger_lines l
		 JOIN ledger_entries e ON e.id = l.entry_id
		 WHERE l.tenant_id = $2 AND l.side = 'CREDIT' AND l.account = $3
		   AND e.posted_at BETWEEN $4 AND $5
		 GROUP BY period, l.currency
		 ORDER BY period ASC`,
		trunc, tenantID, domain.AccountCodeRevenue, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("revenue by period: %w", err)
	}
	defer rows.Close()

	var out []ports.RevenuePeriod
	for rows.Next() {
		var p ports.RevenuePeriod
		if err := rows.Scan(&p.PeriodStart, &p.Currency, &p.Amount); err != nil {
			return nil, fmt.Errorf("scan revenue period: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetAccountConfig resolves a per-tenant account code, reading within the
// caller's transaction (no row lock is taken). Returns nil,
// nil if the tenant has no override for code (callers fall back to the
// literal code as the account name).
func (r *LedgerRepo) GetAccountConfig(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, code string) (*domain.AccountConfig, error) {
	query := `SELECT tenant_id, code, label, account_type FROM account_configs WHERE tenant_id = $1 AND code = $2`
	cfg := &domain.AccountConfig{}
	err := tx.QueryRow(ctx, query, tenantID, code).Scan(&cfg.TenantID, &cfg.Code, &cfg.Label, &cfg.AccountType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account config: %w", err)
	}
	return cfg, nil
}

// SeedDefaultAccounts inserts the default CASH/REVENUE/REFUND_EXPENSE
// account configs for a newly synced tenant.
func (r *LedgerRepo) SeedDefaultAccounts(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID) error {
	for _, a := range domain.DefaultAccountConfigs(tenantID) {
		_, err := tx.Exec(ctx,
			`INSERT INTO account_configs (tenant_id, code, label, account_type) VALUES ($1, $2, $3, $4)
			 ON CONFLICT (tenant_id, code) DO NOTHING`,
			a.TenantID, a.Code, a.Label, a.AccountType,
		)
		if err != nil {
			return fmt.Errorf("seed account config %s: %w", a.Code, err)
		}
	}
	return nil
}
