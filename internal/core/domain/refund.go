package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefundStatus is the lifecycle state of a Refund.
type RefundStatus string

const (
	RefundStatusPending    RefundStatus = "PENDING"
	RefundStatusProcessing RefundStatus = "PROCESSING"
	RefundStatusCompleted  RefundStatus = "COMPLETED"
	RefundStatusFailed     RefundStatus = "FAILED"
)

// Refund is created together with its ledger entry inside one transaction.
type Refund struct {
	ID              uuid.UUID       `json:"id"`
	TenantID        uuid.UUID       `json:"tenant_id"`
	PaymentIntentID uuid.UUID       `json:"payment_intent_id"`
	Amount          decimal.Decimal `json:"amount"`
	Reason          *string         `json:"reason,omitempty"`
	Status          RefundStatus    `json:"status"`
	GatewayRef      *string         `json:"gateway_ref,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
