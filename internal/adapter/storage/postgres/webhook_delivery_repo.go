package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WebhookDeliveryRepo implements ports.WebhookDeliveryRepository.
type WebhookDeliveryRepo struct {
	pool Pool
}

// NewWebhookDeliveryRepo creates a new WebhookDeliveryRepo.
func NewWebhookDeliveryRepo(pool Pool) *WebhookDeliveryRepo {
	return &WebhookDeliveryRepo{pool: pool}
}

// Insert writes a new delivery attempt row within a database transaction.
func (r *WebhookDeliveryRepo) Insert(ctx context.Context, tx pgx.Tx, d *domain.WebhookDelivery) error {
	query := `INSERT INTO webhook_deliveries
		(id, endpoint_id, tenant_id, event_type, payload, status, attempts, last_attempt_at, response_code, next_retry_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := tx.Exec(ctx, query,
		d.ID, d.EndpointID, d.TenantID, d.EventType, d.Payload, d.Status, d.Attempts,
		d.LastAttemptAt, d.ResponseCode, d.NextRetryAt, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook delivery: %w", err)
	}
	return nil
}

// ClaimBatch locks up to limit deliveries that are due for (re)attempt —
// PENDING rows, or RETRYING rows whose next_retry_at has elapsed — using
// FOR UPDATE SKIP LOCKED so concurrent dispatchers don't double-send.
func (r *WebhookDeliveryRepo) ClaimBatch(ctx context.Context, tx pgx.Tx, limit int, now time.Time) ([]domain.WebhookDelivery, error) {
	rows, err := tx.Query(ctx,
		`SELECT id, endpoint_id, tenant_id, event_type, payload, status, attempts, last_attempt_at, response_code, next_retry_at, created_at
		 FROM webhook_deliveries
		 WHERE status = $1 OR (status = $2 AND next_retry_at <= $3)
		 ORDER BY created_at ASC
		 LIMIT $4
		 FOR UPDATE SKIP LOCKED`,
		domain.WebhookDeliveryStatusPending, domain.WebhookDeliveryStatusRetrying, now, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("claim webhook delivery batch: %w", err)
	}
	defer rows.Close()

	var out []domain.WebhookDelivery
	for rows.Next() {
		var d domain.WebhookDelivery
		if err := rows.Scan(&d.ID, &d.EndpointID, &d.TenantID, &d.EventType, &d.Payload, &d.Status,
			&d.Attempts, &d.LastAttemptAt, &d.ResponseCode, &d.NextRetryAt, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan claimed webhook delivery: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Update persists the result of a delivery attempt within a database
// transaction.
func (r *WebhookDeliveryRepo) Update(ctx context.Context, tx pgx.Tx, d *domain.WebhookDelivery) error {
	query := `UPDATE webhook_deliveries
		SET status = $1, attempts = $2, last_attempt_at = $3, response_code = $4, next_retry_at = $5
		WHERE id = $6`
	tag, err := tx.Exec(ctx, query, d.Status, d.Attempts, d.LastAttemptAt, d.ResponseCode, d.NextRetryAt, d.ID)
	if err != nil {
		return fmt.Errorf("update webhook delivery: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("webhook delivery not found: %s", d.ID)
	}
	return nil
}
