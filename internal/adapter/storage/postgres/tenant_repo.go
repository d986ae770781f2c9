package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TenantRepo implements ports.TenantRepository.
type TenantRepo struct {
	pool Pool
}

// NewTenantRepo creates a new TenantRepo.
func NewTenantRepo(pool Pool) *TenantRepo {
	return &TenantRepo{pool: pool}
}

// Create inserts a tenant within a database transaction.
func (r *TenantRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Tenant) error {
	query := `INSERT INTO tenants (id, name, plan, region, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := tx.Exec(ctx, query, t.ID, t.Name, t.Plan, t.Region, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID fetches a tenant by UUID.
func (r *TenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	query := `SELECT id, name, plan, region, created_at FROM tenants WHERE id = $1`
	t := &domain.Tenant{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Plan, &t.Region, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant by id: %w", err)
	}
	return t, nil
}

// ListIDs returns every tenant id known to the system.
func (r *TenantRepo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM tenants ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list tenant ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan tenant id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Update patches a tenant's mutable fields within a database transaction.
func (r *TenantRepo) Update(ctx context.Context, tx pgx.Tx, t *domain.Tenant) error {
	query := `UPDATE tenants SET name = $1, plan = $2, region = $3 WHERE id = $4`
	tag, err := tx.Exec(ctx, query, t.Name, t.Plan, t.Region, t.ID)
	if err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tenant not found: %s", t.ID)
	}
	return nil
}
