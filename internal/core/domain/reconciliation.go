package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscrepancyType classifies how local state and gateway state disagree.
type DiscrepancyType string

const (
	DiscrepancyMissingLocal   DiscrepancyType = "MISSING_LOCAL"
	DiscrepancyMissingRemote  DiscrepancyType = "MISSING_REMOTE"
	DiscrepancyAmountMismatch DiscrepancyType = "AMOUNT_MISMATCH"
	DiscrepancyStatusMismatch DiscrepancyType = "STATUS_MISMATCH"
)

// ReconciliationDiscrepancy records one disagreement found between a local
// PaymentIntent and the external gateway's view of the same transaction.
type ReconciliationDiscrepancy struct {
	ID               uuid.UUID        `json:"id"`
	TenantID         uuid.UUID        `json:"tenant_id"`
	PaymentIntentID  *uuid.UUID       `json:"payment_intent_id,omitempty"`
	DiscrepancyType  DiscrepancyType  `json:"discrepancy_type"`
	GatewayRef       *string          `json:"gateway_ref,omitempty"`
	ExpectedAmount   *decimal.Decimal `json:"expected_amount,omitempty"`
	ActualAmount     *decimal.Decimal `json:"actual_amount,omitempty"`
	ExpectedStatus   *string          `json:"expected_status,omitempty"`
	ActualStatus     *string          `json:"actual_status,omitempty"`
	Resolved         bool             `json:"resolved"`
	Details          []byte           `json:"details"` // JSON
	CreatedAt        time.Time        `json:"created_at"`
}

// GatewayTransaction is the external gateway's view of a transaction, as fed
// into the reconciliation engine.
type GatewayTransaction struct {
	GatewayRef string
	Amount     decimal.Decimal
	Currency   Currency
	Status     string
}

// expectedGatewayStatuses maps a local PaymentIntentStatus to the set of
// gateway statuses considered consistent with it. Gateway semantics for
// "requires_payment_method" may actually indicate an in-flight retry rather
// than terminal failure; the mapping is kept as given and flagged here for
// product review rather than guessed at.
var expectedGatewayStatuses = map[PaymentIntentStatus]map[string]bool{
	PaymentIntentStatusAuthorized: {"requires_capture": true, "requires_confirmation": true},
	PaymentIntentStatusSettled:    {"succeeded": true},
	PaymentIntentStatusFailed:     {"canceled": true, "requires_payment_method": true},
}

// ExpectedGatewayStatuses returns the set of gateway statuses consistent
// with a local intent's status, or nil if that local status has no declared
// expectation (no STATUS_MISMATCH should be raised in that case).
func ExpectedGatewayStatuses(status PaymentIntentStatus) map[string]bool {
	return expectedGatewayStatuses[status]
}
