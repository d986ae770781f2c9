package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"
	"github.com/ricartefelipe/payments-ledger/pkg/clock"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WebhookDispatcher enqueues outbound event notifications and drives their
// delivery. Enqueue writes deliveries in a transaction of its own, separate
// from the one that raised the event; Dispatch is a claim-based polling loop, replacing a
// goroutine-per-delivery fire-and-forget with one that survives restarts.
type WebhookDispatcher struct {
	endpointRepo ports.WebhookRepository
	deliveryRepo ports.WebhookDeliveryRepository
	transactor   ports.DBTransactor
	sender       ports.WebhookSender
	retryDelays  []time.Duration
	batchSize    int
	clock        clock.Clock
	log          zerolog.Logger
}

// NewWebhookDispatcher creates a WebhookDispatcher. retryDelays is the
// ladder applied after each failed attempt; len(retryDelays) is the total
// number of attempts before a delivery is marked FAILED, so the last delay
// in the ladder is never applied.
func NewWebhookDispatcher(
	endpointRepo ports.WebhookRepository,
	deliveryRepo ports.WebhookDeliveryRepository,
	transactor ports.DBTransactor,
	sender ports.WebhookSender,
	retryDelays []time.Duration,
	batchSize int,
	clk clock.Clock,
	log zerolog.Logger,
) *WebhookDispatcher {
	return &WebhookDispatcher{
		endpointRepo: endpointRepo,
		deliveryRepo: deliveryRepo,
		transactor:   transactor,
		sender:       sender,
		retryDelays:  retryDelays,
		batchSize:    batchSize,
		clock:        clk,
		log:          log,
	}
}

// Enqueue inserts one PENDING WebhookDelivery row per active endpoint
// subscribed to eventType. It begins and commits its own transaction; it
// does not join a caller's transaction, so a caller's rollback does not
// undo these inserts.
func (d *WebhookDispatcher) Enqueue(ctx context.Context, tenantID uuid.UUID, eventType string, payload any) error {
	endpoints, err := d.endpointRepo.ListActiveForEvent(ctx, tenantID, eventType)
	if err != nil {
		return fmt.Errorf("list active webhook endpoints: %w", err)
	}
	if len(endpoints) == 0 {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	tx, err := d.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := d.clock.Now()
	for _, ep := range endpoints {
		delivery := &domain.WebhookDelivery{
			ID:         uuid.New(),
			EndpointID: ep.ID,
			TenantID:   tenantID,
			EventType:  eventType,
			Payload:    body,
			Status:     domain.WebhookDeliveryStatusPending,
			CreatedAt:  now,
		}
		if err := d.deliveryRepo.Insert(ctx, tx, delivery); err != nil {
			return fmt.Errorf("insert webhook delivery: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Dispatch claims a batch of due deliveries (PENDING, or RETRYING past
// next_retry_at) and attempts each one, signing the body with the
// endpoint's secret and applying the retry ladder on failure.
func (d *WebhookDispatcher) Dispatch(ctx context.Context) (int, error) {
	tx, err := d.transactor.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	now := d.clock.Now()
	batch, err := d.deliveryRepo.ClaimBatch(ctx, tx, d.batchSize, now)
	if err != nil {
		return 0, fmt.Errorf("claim webhook delivery batch: %w", err)
	}

	for i := range batch {
		delivery := &batch[i]
		ep, err := d.endpointRepo.GetByID(ctx, delivery.TenantID, delivery.EndpointID)
		if err != nil {
			return 0, fmt.Errorf("load webhook endpoint: %w", err)
		}
		if ep == nil || !ep.IsActive {
			delivery.Status = domain.WebhookDeliveryStatusFailed
			delivery.NextRetryAt = nil
			if err := d.deliveryRepo.Update(ctx, tx, delivery); err != nil {
				return 0, fmt.Errorf("update webhook delivery: %w", err)
			}
			continue
		}

		d.attempt(ctx, delivery, ep, now)
		if err := d.deliveryRepo.Update(ctx, tx, delivery); err != nil {
			return 0, fmt.Errorf("update webhook delivery: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return len(batch), nil
}

// attempt performs one delivery attempt and advances delivery's state in
// place per the retry ladder.
func (d *WebhookDispatcher) attempt(ctx context.Context, delivery *domain.WebhookDelivery, ep *domain.WebhookEndpoint, now time.Time) {
	sig := sign(ep.Secret, delivery.Payload)
	status, err := d.sender.Send(ctx, ep.URL, delivery.Payload, sig)

	delivery.Attempts++
	delivery.LastAttemptAt = &now

	if err == nil && status >= 200 && status < 300 {
		delivery.Status = domain.WebhookDeliveryStatusDelivered
		delivery.ResponseCode = &status
		delivery.NextRetryAt = nil
		d.log.Info().Str("delivery_id", delivery.ID.String()).Int("attempt", delivery.Attempts).Msg("webhook delivered")
		return
	}

	if err == nil {
		delivery.ResponseCode = &status
	}

	if delivery.Attempts >= len(d.retryDelays) {
		delivery.Status = domain.WebhookDeliveryStatusFailed
		delivery.NextRetryAt = nil
		d.log.Warn().Str("delivery_id", delivery.ID.String()).Int("attempt", delivery.Attempts).Msg("webhook delivery exhausted retries")
		return
	}

	delivery.Status = domain.WebhookDeliveryStatusRetrying
	next := now.Add(d.retryDelays[delivery.Attempts-1])
	delivery.NextRetryAt = &next
	d.log.Warn().Str("delivery_id", delivery.ID.String()).Int("attempt", delivery.Attempts).Time("next_retry_at", next).Msg("webhook delivery failed, retrying")
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
