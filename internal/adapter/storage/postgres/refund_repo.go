package postgres

import (
	"context"
	"fmt"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RefundRepo implements ports.RefundRepository.
type RefundRepo struct {
	pool Pool
}

// NewRefundRepo creates a new RefundRepo.
func NewRefundRepo(pool Pool) *RefundRepo {
	return &RefundRepo{pool: pool}
}

// Create inserts a refund within a database transaction.
func (r *RefundRepo) Create(ctx context.Context, tx pgx.Tx, ref *domain.Refund) error {
	query := `INSERT INTO refunds (id, tenant_id, payment_intent_id, amount, reason, status, gateway_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := tx.Exec(ctx, query, ref.ID, ref.TenantID, ref.PaymentIntentID, ref.Amount, ref.Reason, ref.Status, ref.GatewayRef, ref.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert refund: %w", err)
	}
	return nil
}

// Update persists status/gateway_ref changes within a database transaction.
func (r *RefundRepo) Update(ctx context.Context, tx pgx.Tx, ref *domain.Refund) error {
	query := `UPDATE refunds SET status = $1, gateway_ref = $2 WHERE tenant_id = $3 AND id = $4`
	tag, err := tx.Exec(ctx, query, ref.Status, ref.GatewayRef, ref.TenantID, ref.ID)
	if err != nil {
		return fmt.Errorf("update refund: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("refund not found: %s", ref.ID)
	}
	return nil
}

// ListByPaymentIntent lists every refund against one intent.
func (r *RefundRepo) ListByPaymentIntent(ctx context.Context, tenantID, paymentIntentID uuid.UUID) ([]domain.Refund, error) {
	query := `SELECT id, tenant_id, payment_intent_id, amount, reason, status, gateway_ref, created_at
		FROM refunds WHERE tenant_id = $1 AND payment_intent_id = $2 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, tenantID, paymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("list refunds: %w", err)
	}
	defer rows.Close()

	var out []domain.Refund
	for rows.Next() {
		var ref domain.Refund
		if err := rows.Scan(&ref.ID, &ref.TenantID, &ref.PaymentIntentID, &ref.Amount, &ref.Reason, &ref.Status, &ref.GatewayRef, &ref.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan refund: %w", err)
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

// SumNonFailed returns the sum of non-FAILED refund amounts against an
// intent, read within the same transaction that will insert the new refund
// so the saturation check and the insert are atomic under the intent's
// FOR UPDATE lock.
func (r *RefundRepo) SumNonFailed(ctx context.Context, tx pgx.Tx, tenantID, paymentIntentID uuid.UUID) (string, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM refunds WHERE tenant_id = $1 AND payment_intent_id = $2 AND status != $3`
	var sum string
	err := tx.QueryRow(ctx, query, tenantID, paymentIntentID, domain.RefundStatusFailed).Scan(&sum)
	if err != nil {
		return "", fmt.Errorf("sum non-failed refunds: %w", err)
	}
	return sum, nil
}
