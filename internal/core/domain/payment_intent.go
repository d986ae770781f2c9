package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency is a supported settlement currency.
type Currency string

const (
	CurrencyBRL Currency = "BRL"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// SupportedCurrencies lists every currency the ledger accepts.
var SupportedCurrencies = map[Currency]bool{
	CurrencyBRL: true,
	CurrencyUSD: true,
	CurrencyEUR: true,
}

// PaymentIntentStatus is the intent's position in the settlement state machine.
type PaymentIntentStatus string

const (
	PaymentIntentStatusCreated            PaymentIntentStatus = "CREATED"
	PaymentIntentStatusAuthorized         PaymentIntentStatus = "AUTHORIZED"
	PaymentIntentStatusSettled            PaymentIntentStatus = "SETTLED"
	PaymentIntentStatusFailed             PaymentIntentStatus = "FAILED"
	PaymentIntentStatusPartiallyRefunded  PaymentIntentStatus = "PARTIALLY_REFUNDED"
	PaymentIntentStatusRefunded           PaymentIntentStatus = "REFUNDED"
)

// PaymentIntent is the durable record of a customer's charge through its
// lifecycle from creation to settlement or refund.
type PaymentIntent struct {
	ID          uuid.UUID           `json:"id"`
	TenantID    uuid.UUID           `json:"tenant_id"`
	Amount      decimal.Decimal     `json:"amount"`
	Currency    Currency            `json:"currency"`
	Status      PaymentIntentStatus `json:"status"`
	CustomerRef string              `json:"customer_ref"`
	GatewayRef  *string             `json:"gateway_ref,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// IsTerminalForConfirm reports whether confirm() can no longer act on this
// intent — every status except CREATED is terminal with respect to confirm.
func (p *PaymentIntent) IsTerminalForConfirm() bool {
	return p.Status != PaymentIntentStatusCreated
}

// CanRefund reports whether the intent may receive a new refund.
func (p *PaymentIntent) CanRefund() bool {
	return p.Status == PaymentIntentStatusSettled || p.Status == PaymentIntentStatusPartiallyRefunded
}
