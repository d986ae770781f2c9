package postgres

import (
	"fmt"
	"time"

	"context"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OutboxRepo implements ports.OutboxRepository.
type OutboxRepo struct {
	pool Pool
}

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo(pool Pool) *OutboxRepo {
	return &OutboxRepo{pool: pool}
}

// Insert writes a new outbox event within a business transaction. Business
// code must never mutate a row after this call; only the dispatcher does.
func (r *OutboxRepo) Insert(ctx context.Context, tx pgx.Tx, e *domain.OutboxEvent) error {
	query := `INSERT INTO outbox_events
		(id, tenant_id, event_type, aggregate_type, aggregate_id, payload, status, attempts, available_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := tx.Exec(ctx, query,
		e.ID, e.TenantID, e.EventType, e.AggregateType, e.AggregateID, e.Payload, e.Status, e.Attempts, e.AvailableAt, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert outbox event: %w", err)
	}
	return nil
}

// ClaimBatch locks up to limit PENDING rows ready for dispatch using
// FOR UPDATE SKIP LOCKED so concurrent dispatchers partition work without
// blocking each other, and stamps locked_at/locked_by on the claimed rows.
func (r *OutboxRepo) ClaimBatch(ctx context.Context, tx pgx.Tx, limit int, lockTimeout time.Duration, workerID string, now time.Time) ([]domain.OutboxEvent, error) {
	staleBefore := now.Add(-lockTimeout)

	rows, err := tx.Query(ctx,
		`SELECT id, tenant_id, event_type, aggregate_type, aggregate_id, payload, status, attempts, available_at, locked_at, locked_by, created_at
		 FROM outbox_events
		 WHERE status = $1 AND available_at <= $2 AND (locked_at IS NULL OR locked_at < $3)
		 ORDER BY created_at ASC
		 LIMIT $4
		 FOR UPDATE SKIP LOCKED`,
		domain.OutboxStatusPending, now, staleBefore, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("claim outbox batch: %w", err)
	}

	var claimed []domain.OutboxEvent
	for rows.Next() {
		var e domain.OutboxEvent
		if err := rows.Scan(&e.ID, &e.TenantID, &e.EventType, &e.AggregateType, &e.AggregateID, &e.Payload,
			&e.Status, &e.Attempts, &e.AvailableAt, &e.LockedAt, &e.LockedBy, &e.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan claimed outbox event: %w", err)
		}
		claimed = append(claimed, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate claimed outbox events: %w", err)
	}

	for _, e := range claimed {
		_, err := tx.Exec(ctx, `UPDATE outbox_events SET locked_at = $1, locked_by = $2 WHERE id = $3`, now, workerID, e.ID)
		if err != nil {
			return nil, fmt.Errorf("lock outbox event %s: %w", e.ID, err)
		}
	}
	return claimed, nil
}

// MarkSent marks a claimed event SENT and clears its lock.
func (r *OutboxRepo) MarkSent(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	_, err := tx.Exec(ctx,
		`UPDATE outbox_events SET status = $1, locked_at = NULL, locked_by = NULL WHERE id = $2`,
		domain.OutboxStatusSent, id,
	)
	if err != nil {
		return fmt.Errorf("mark outbox event sent: %w", err)
	}
	return nil
}

// MarkFailed records a failed publish attempt: stores the attempts count the
// caller passes, clears the lock, and either schedules a retry at
// availableAt or marks the event DEAD.
func (r *OutboxRepo) MarkFailed(ctx context.Context, tx pgx.Tx, id uuid.UUID, attempts int, availableAt time.Time, dead bool) error {
	status := domain.OutboxStatusPending
	if dead {
		status = domain.OutboxStatusDead
	}
	_, err := tx.Exec(ctx,
		`UPDATE outbox_events SET status = $1, attempts = $2, available_at = $3, locked_at = NULL, locked_by = NULL WHERE id = $4`,
		status, attempts, availableAt, id,
	)
	if err != nil {
		return fmt.Errorf("mark outbox event failed: %w", err)
	}
	return nil
}
