package domain

import (
	"time"

	"github.com/google/uuid"
)

// OutboxStatus is the delivery state of an OutboxEvent.
type OutboxStatus string

const (
	OutboxStatusPending OutboxStatus = "PENDING"
	OutboxStatusSent    OutboxStatus = "SENT"
	OutboxStatusDead    OutboxStatus = "DEAD"
)

// Outbound event type names, used as the AMQP routing key.
const (
	EventPaymentIntentCreated       = "payment.intent.created"
	EventPaymentAuthorized          = "payment.authorized"
	EventPaymentSettled             = "payment.settled"
	EventPaymentRefunded            = "payment.refunded"
	EventReconciliationDiscrepancy  = "reconciliation.discrepancy_found"
)

// OutboxEvent is written inside business transactions and never mutated by
// business code after insert; the dispatcher is the exclusive mutator after
// creation.
type OutboxEvent struct {
	ID            uuid.UUID      `json:"id"`
	TenantID      uuid.UUID      `json:"tenant_id"`
	EventType     string         `json:"event_type"`
	AggregateType string         `json:"aggregate_type"`
	AggregateID   uuid.UUID      `json:"aggregate_id"`
	Payload       []byte         `json:"payload"` // JSON
	Status        OutboxStatus   `json:"status"`
	Attempts      int            `json:"attempts"`
	AvailableAt   time.Time      `json:"available_at"`
	LockedAt      *time.Time     `json:"locked_at,omitempty"`
	LockedBy      *string        `json:"locked_by,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}
