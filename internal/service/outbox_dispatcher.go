package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"
	"github.com/ricartefelipe/payments-ledger/pkg/clock"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OutboxDispatcher claims PENDING outbox rows and publishes them to the
// broker, retrying with capped exponential backoff and dead-lettering
// after max_attempts.
type OutboxDispatcher struct {
	outboxRepo  ports.OutboxRepository
	transactor  ports.DBTransactor
	publisher   ports.OutboxPublisher
	workerID    string
	batchSize   int
	lockTimeout time.Duration
	maxAttempts int
	clock       clock.Clock
	log         zerolog.Logger
}

// NewOutboxDispatcher creates an OutboxDispatcher.
func NewOutboxDispatcher(
	outboxRepo ports.OutboxRepository,
	transactor ports.DBTransactor,
	publisher ports.OutboxPublisher,
	workerID string,
	batchSize int,
	lockTimeout time.Duration,
	maxAttempts int,
	clk clock.Clock,
	log zerolog.Logger,
) *OutboxDispatcher {
	return &OutboxDispatcher{
		outboxRepo:  outboxRepo,
		transactor:  transactor,
		publisher:   publisher,
		workerID:    workerID,
		batchSize:   batchSize,
		lockTimeout: lockTimeout,
		maxAttempts: maxAttempts,
		clock:       clk,
		log:         log,
	}
}

// outboxEnvelope is the wire shape of every published event: the stored
// payload, merged with the tenant id.
type outboxEnvelope map[string]any

// Dispatch runs one claim-publish-settle cycle and returns how many events
// it claimed.
func (d *OutboxDispatcher) Dispatch(ctx context.Context) (int, error) {
	claimTx, err := d.transactor.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin claim tx: %w", err)
	}

	now := d.clock.Now()
	batch, err := d.outboxRepo.ClaimBatch(ctx, claimTx, d.batchSize, d.lockTimeout, d.workerID, now)
	if err != nil {
		_ = claimTx.Rollback(ctx)
		return 0, fmt.Errorf("claim outbox batch: %w", err)
	}
	if err := claimTx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit claim tx: %w", err)
	}

	for i := range batch {
		d.publishOne(ctx, &batch[i])
	}
	return len(batch), nil
}

// publishOne publishes a single claimed event and settles its status in
// its own transaction, so one event's failure never blocks the batch.
func (d *OutboxDispatcher) publishOne(ctx context.Context, e *domain.OutboxEvent) {
	body, err := envelope(e)
	if err != nil {
		d.log.Error().Err(err).Str("event_id", e.ID.String()).Msg("outbox: failed to build envelope, dead-lettering")
		d.settle(ctx, e.ID, e.Attempts+1, d.clock.Now(), true)
		return
	}

	headers := map[string]string{
		"X-Correlation-Id": correlationIDFromPayload(e.Payload),
		"X-Tenant-Id":      e.TenantID.String(),
	}

	if err := d.publisher.Publish(ctx, e.EventType, body, headers); err != nil {
		d.log.Warn().Err(err).Str("event_id", e.ID.String()).Int("attempts", e.Attempts).Msg("outbox: publish failed")
		attempts := e.Attempts + 1
		if attempts >= d.maxAttempts {
			d.settle(ctx, e.ID, attempts, d.clock.Now(), true)
			return
		}
		availableAt := d.clock.Now().Add(backoffWithJitter(attempts))
		d.settleRetry(ctx, e.ID, attempts, availableAt)
		return
	}

	d.markSent(ctx, e.ID)
}

func (d *OutboxDispatcher) markSent(ctx context.Context, id uuid.UUID) {
	tx, err := d.transactor.Begin(ctx)
	if err != nil {
		d.log.Error().Err(err).Msg("outbox: begin settle tx failed")
		return
	}
	if err := d.outboxRepo.MarkSent(ctx, tx, id); err != nil {
		_ = tx.Rollback(ctx)
		d.log.Error().Err(err).Msg("outbox: mark sent failed")
		return
	}
	if err := tx.Commit(ctx); err != nil {
		d.log.Error().Err(err).Msg("outbox: commit settle tx failed")
	}
}

func (d *OutboxDispatcher) settle(ctx context.Context, id uuid.UUID, attempts int, availableAt time.Time, dead bool) {
	tx, err := d.transactor.Begin(ctx)
	if err != nil {
		d.log.Error().Err(err).Msg("outbox: begin settle tx failed")
		return
	}
	if err := d.outboxRepo.MarkFailed(ctx, tx, id, attempts, availableAt, dead); err != nil {
		_ = tx.Rollback(ctx)
		d.log.Error().Err(err).Msg("outbox: mark failed failed")
		return
	}
	if err := tx.Commit(ctx); err != nil {
		d.log.Error().Err(err).Msg("outbox: commit settle tx failed")
	}
}

func (d *OutboxDispatcher) settleRetry(ctx context.Context, id uuid.UUID, attempts int, availableAt time.Time) {
	d.settle(ctx, id, attempts, availableAt, false)
}

// backoffWithJitter implements spec's retry formula:
// min(60, 2^min(6, attempts)) + jitter in [0,1) seconds.
func backoffWithJitter(attempts int) time.Duration {
	exp := math.Pow(2, float64(min(6, attempts)))
	seconds := math.Min(60, exp) + rand.Float64()
	return time.Duration(seconds * float64(time.Second))
}

// envelope builds the published body: the stored payload merged with the
// tenant id, per the spec's "payload ∪ {tenant_id}" wire contract.
func envelope(e *domain.OutboxEvent) ([]byte, error) {
	var fields outboxEnvelope
	if err := json.Unmarshal(e.Payload, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal outbox payload: %w", err)
	}
	if fields == nil {
		fields = outboxEnvelope{}
	}
	fields["tenant_id"] = e.TenantID.String()
	return json.Marshal(fields)
}

// correlationIDFromPayload extracts the correlation_id field from a raw
// outbox payload, used to populate the X-Correlation-Id publish header.
func correlationIDFromPayload(payload []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(payload, &fields); err != nil {
		return ""
	}
	if v, ok := fields["correlation_id"]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
