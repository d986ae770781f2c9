// Package dto defines the wire shapes exchanged with the HTTP API. Money
// is always a decimal string, never a float, to avoid precision loss
// crossing the JSON boundary.
package dto

import (
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"
)

// CreatePaymentIntentRequest is the body of POST /payment-intents.
type CreatePaymentIntentRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Currency    string `json:"currency" binding:"required"`
	CustomerRef string `json:"customer_ref" binding:"required"`
}

// RefundRequest is the body of POST /payment-intents/{id}/refund.
type RefundRequest struct {
	Amount string `json:"amount" binding:"required"`
	Reason string `json:"reason"`
}

// PaymentIntentResponse renders a domain.PaymentIntent.
type PaymentIntentResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	CustomerRef string    `json:"customer_ref"`
	GatewayRef  *string   `json:"gateway_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromPaymentIntent converts a domain.PaymentIntent to its wire shape.
func FromPaymentIntent(p *domain.PaymentIntent) PaymentIntentResponse {
	return PaymentIntentResponse{
		ID:          p.ID.String(),
		TenantID:    p.TenantID.String(),
		Amount:      p.Amount.StringFixed(2),
		Currency:    string(p.Currency),
		Status:      string(p.Status),
		CustomerRef: p.CustomerRef,
		GatewayRef:  p.GatewayRef,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// RefundResponse renders a domain.Refund.
type RefundResponse struct {
	ID              string    `json:"id"`
	PaymentIntentID string    `json:"payment_intent_id"`
	Amount          string    `json:"amount"`
	Reason          *string   `json:"reason,omitempty"`
	Status          string    `json:"status"`
	GatewayRef      *string   `json:"gateway_ref,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// FromRefund converts a domain.Refund to its wire shape.
func FromRefund(r *domain.Refund) RefundResponse {
	return RefundResponse{
		ID:              r.ID.String(),
		PaymentIntentID: r.PaymentIntentID.String(),
		Amount:          r.Amount.StringFixed(2),
		Reason:          r.Reason,
		Status:          string(r.Status),
		GatewayRef:      r.GatewayRef,
		CreatedAt:       r.CreatedAt,
	}
}

// LedgerLineResponse renders one leg of a ledger entry.
type LedgerLineResponse struct {
	Side     string `json:"side"`
	Account  string `json:"account"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// LedgerEntryResponse renders a domain.LedgerEntry.
type LedgerEntryResponse struct {
	ID              string                `json:"id"`
	PaymentIntentID string                `json:"payment_intent_id"`
	PostedAt        time.Time             `json:"posted_at"`
	Lines           []LedgerLineResponse  `json:"lines"`
}

// FromLedgerEntry converts a domain.LedgerEntry to its wire shape.
func FromLedgerEntry(e *domain.LedgerEntry) LedgerEntryResponse {
	lines := make([]LedgerLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = LedgerLineResponse{
			Side:     string(l.Side),
			Account:  l.Account,
			Amount:   l.Amount.StringFixed(2),
			Currency: string(l.Currency),
		}
	}
	return LedgerEntryResponse{
		ID:              e.ID.String(),
		PaymentIntentID: e.PaymentIntentID.String(),
		PostedAt:        e.PostedAt,
		Lines:           lines,
	}
}

// AccountBalanceResponse renders one row of the account-balances report.
type AccountBalanceResponse struct {
	Account     string `json:"account"`
	Currency    string `json:"currency"`
	DebitTotal  string `json:"debit_total"`
	CreditTotal string `json:"credit_total"`
}

// FromAccountBalance converts a ports.AccountBalance to its wire shape.
func FromAccountBalance(b ports.AccountBalance) AccountBalanceResponse {
	return AccountBalanceResponse{
		Account:     b.Account,
		Currency:    string(b.Currency),
		DebitTotal:  b.DebitTotal,
		CreditTotal: b.CreditTotal,
	}
}

// RevenuePeriodResponse renders one row of the revenue-by-period report.
type RevenuePeriodResponse struct {
	PeriodStart time.Time `json:"period_start"`
	Currency    string    `json:"currency"`
	Amount      string    `json:"amount"`
}

// FromRevenuePeriod converts a ports.RevenuePeriod to its wire shape.
func FromRevenuePeriod(p ports.RevenuePeriod) RevenuePeriodResponse {
	return RevenuePeriodResponse{
		PeriodStart: p.PeriodStart,
		Currency:    string(p.Currency),
		Amount:      p.Amount,
	}
}

// CreateWebhookRequest is the body of POST /webhooks.
type CreateWebhookRequest struct {
	URL    string   `json:"url" binding:"required"`
	Events []string `json:"events" binding:"required"`
}

// WebhookEndpointResponse renders a domain.WebhookEndpoint, never exposing
// the signing secret.
type WebhookEndpointResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Events    []string  `json:"events"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// FromWebhookEndpoint converts a domain.WebhookEndpoint to its wire shape.
func FromWebhookEndpoint(e *domain.WebhookEndpoint) WebhookEndpointResponse {
	return WebhookEndpointResponse{
		ID:        e.ID.String(),
		URL:       e.URL,
		Events:    e.Events,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
	}
}

// ReconciliationDiscrepancyResponse renders a domain.ReconciliationDiscrepancy.
type ReconciliationDiscrepancyResponse struct {
	ID              string     `json:"id"`
	PaymentIntentID *string    `json:"payment_intent_id,omitempty"`
	DiscrepancyType string     `json:"discrepancy_type"`
	GatewayRef      *string    `json:"gateway_ref,omitempty"`
	ExpectedAmount  *string    `json:"expected_amount,omitempty"`
	ActualAmount    *string    `json:"actual_amount,omitempty"`
	ExpectedStatus  *string    `json:"expected_status,omitempty"`
	ActualStatus    *string    `json:"actual_status,omitempty"`
	Resolved        bool       `json:"resolved"`
	CreatedAt       time.Time  `json:"created_at"`
}

// FromDiscrepancy converts a domain.ReconciliationDiscrepancy to its wire shape.
func FromDiscrepancy(d *domain.ReconciliationDiscrepancy) ReconciliationDiscrepancyResponse {
	out := ReconciliationDiscrepancyResponse{
		ID:              d.ID.String(),
		DiscrepancyType: string(d.DiscrepancyType),
		GatewayRef:      d.GatewayRef,
		ExpectedStatus:  d.ExpectedStatus,
		ActualStatus:    d.ActualStatus,
		Resolved:        d.Resolved,
		CreatedAt:       d.CreatedAt,
	}
	if d.PaymentIntentID != nil {
		s := d.PaymentIntentID.String()
		out.PaymentIntentID = &s
	}
	if d.ExpectedAmount != nil {
		s := d.ExpectedAmount.StringFixed(2)
		out.ExpectedAmount = &s
	}
	if d.ActualAmount != nil {
		s := d.ActualAmount.StringFixed(2)
		out.ActualAmount = &s
	}
	return out
}

// ChaosSettingsRequest is the body of PUT /admin/chaos.
type ChaosSettingsRequest struct {
	FailureRate           float64 `json:"failure_rate"`
	LatencyInjectionMillis int64  `json:"latency_injection_ms"`
}

// ChaosSettingsResponse renders the tenant's current fault-injection knobs.
type ChaosSettingsResponse struct {
	FailureRate           float64 `json:"failure_rate"`
	LatencyInjectionMillis int64  `json:"latency_injection_ms"`
}

// AuthTokenRequest is the body of POST /auth/token.
type AuthTokenRequest struct {
	TenantID string `json:"tenant_id" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthTokenResponse is the response of POST /auth/token.
type AuthTokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// PrincipalResponse is the response of GET /me.
type PrincipalResponse struct {
	TenantID string `json:"tenant_id"`
	Subject  string `json:"subject"`
}
