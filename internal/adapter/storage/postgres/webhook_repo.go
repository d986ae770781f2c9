package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WebhookRepo implements ports.WebhookRepository.
type WebhookRepo struct {
	pool Pool
}

// NewWebhookRepo creates a PostgreSQL-backed WebhookRepo.
func NewWebhookRepo(pool Pool) *WebhookRepo {
	return &WebhookRepo{pool: pool}
}

// Create inserts a new webhook subscription.
func (r *WebhookRepo) Create(ctx context.Context, e *domain.WebhookEndpoint) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO webhook_endpoints (id, tenant_id, url, secret, events, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.TenantID, e.URL, e.Secret, e.Events, e.IsActive, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook endpoint: %w", err)
	}
	return nil
}

// GetByID fetches a subscription scoped to its tenant.
func (r *WebhookRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.WebhookEndpoint, error) {
	query := `SELECT id, tenant_id, url, secret, events, is_active, created_at FROM webhook_endpoints WHERE tenant_id = $1 AND id = $2`
	e, err := r.scan(r.pool.QueryRow(ctx, query, tenantID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

// List returns every subscription for a tenant.
func (r *WebhookRepo) List(ctx context.Context, tenantID uuid.UUID) ([]domain.WebhookEndpoint, error) {
	query := `SELECT id, tenant_id, url, secret, events, is_active, created_at FROM webhook_endpoints WHERE tenant_id = $1`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list webhook endpoints: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListActiveForEvent returns every active endpoint eligible for eventType,
// i.e. whose events array contains the type or the wildcard "*".
func (r *WebhookRepo) ListActiveForEvent(ctx context.Context, tenantID uuid.UUID, eventType string) ([]domain.WebhookEndpoint, error) {
	query := `SELECT id, tenant_id, url, secret, events, is_active, created_at
		FROM webhook_endpoints
		WHERE tenant_id = $1 AND is_active = true AND (events && ARRAY[$2, '*']::text[])`
	rows, err := r.pool.Query(ctx, query, tenantID, eventType)
	if err != nil {
		return nil, fmt.Errorf("list active webhook endpoints: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// Delete removes a subscription scoped to its tenant.
func (r *WebhookRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM webhook_endpoints WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete webhook endpoint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("webhook endpoint not found: %s", id)
	}
	return nil
}

func (r *WebhookRepo) scan(row pgx.Row) (*domain.WebhookEndpoint, error) {
	e := &domain.WebhookEndpoint{}
	err := row.Scan(&e.ID, &e.TenantID, &e.URL, &e.Secret, &e.Events, &e.IsActive, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *WebhookRepo) scanAll(rows pgx.Rows) ([]domain.WebhookEndpoint, error) {
	var out []domain.WebhookEndpoint
	for rows.Next() {
		e := domain.WebhookEndpoint{}
		if err := rows.Scan(&e.ID, &e.TenantID, &e.URL, &e.Secret, &e.Events, &e.IsActive, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan webhook endpoint row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
