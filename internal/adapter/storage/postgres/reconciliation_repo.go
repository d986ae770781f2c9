package postgres

import (
	"context"
	"fmt"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ReconciliationRepo implements ports.ReconciliationRepository.
type ReconciliationRepo struct {
	pool Pool
}

// NewReconciliationRepo creates a new ReconciliationRepo.
func NewReconciliationRepo(pool Pool) *ReconciliationRepo {
	return &ReconciliationRepo{pool: pool}
}

// Create inserts a discrepancy found by a reconciliation run.
func (r *ReconciliationRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.ReconciliationDiscrepancy) error {
	query := `INSERT INTO reconciliation_discrepancies
		(id, tenant_id, payment_intent_id, discrepancy_type, gateway_ref, expected_amount, actual_amount,
		 expected_status, actual_status, resolved, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := tx.Exec(ctx, query,
		d.ID, d.TenantID, d.PaymentIntentID, d.DiscrepancyType, d.GatewayRef, d.ExpectedAmount, d.ActualAmount,
		d.ExpectedStatus, d.ActualStatus, d.Resolved, d.Details, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reconciliation discrepancy: %w", err)
	}
	return nil
}

// List returns discrepancies for a tenant, optionally filtered by resolved
// state.
func (r *ReconciliationRepo) List(ctx context.Context, tenantID uuid.UUID, resolved *bool) ([]domain.ReconciliationDiscrepancy, error) {
	query := `SELECT id, tenant_id, payment_intent_id, discrepancy_type, gateway_ref, expected_amount, actual_amount,
		expected_status, actual_status, resolved, details, created_at
		FROM reconciliation_discrepancies WHERE tenant_id = $1`
	args := []any{tenantID}
	if resolved != nil {
		query += " AND resolved = $2"
		args = append(args, *resolved)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reconciliation discrepancies: %w", err)
	}
	defer rows.Close()

	var out []domain.ReconciliationDiscrepancy
	for rows.Next() {
		var d domain.ReconciliationDiscrepancy
		if err := rows.Scan(&d.ID, &d.TenantID, &d.PaymentIntentID, &d.DiscrepancyType, &d.GatewayRef,
			&d.ExpectedAmount, &d.ActualAmount, &d.ExpectedStatus, &d.ActualStatus, &d.Resolved, &d.Details, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reconciliation discrepancy: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Resolve marks a discrepancy resolved.
func (r *ReconciliationRepo) Resolve(ctx context.Context, tenantID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE reconciliation_discrepancies SET resolved = true WHERE tenant_id = $1 AND id = $2`,
		tenantID, id,
	)
	if err != nil {
		return fmt.Errorf("resolve reconciliation discrepancy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reconciliation discrepancy not found: %s", id)
	}
	return nil
}
