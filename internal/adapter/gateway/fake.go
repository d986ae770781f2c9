// Package gateway adapts the service to external payment gateways. Fake
// simulates one for local development and tests; Decorator wraps any
// ports.Gateway implementation with retry and circuit-breaking.
package gateway

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"sync"

	"github.com/ricartefelipe/payments-ledger/internal/core/ports"

	"github.com/shopspring/decimal"
)

type fakeEntry struct {
	status          ports.GatewayStatus
	amount          decimal.Decimal
	capturedAmount  decimal.Decimal
	refundedAmount  decimal.Decimal
}

// Fake simulates a payment gateway entirely in memory, for local
// development and integration tests.
type Fake struct {
	mu       sync.Mutex
	store    map[string]*fakeEntry
	failRate float64
}

// NewFake creates a Fake gateway. failRate in [0,1] randomly declines
// Authorize calls, exercising the caller's failure path.
func NewFake(failRate float64) *Fake {
	return &Fake{store: make(map[string]*fakeEntry), failRate: failRate}
}

func (f *Fake) shouldFail() bool {
	if f.failRate <= 0 {
		return false
	}
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return false
	}
	return float64(n.Int64())/1_000_000 < f.failRate
}

// Authorize creates a new in-memory authorization.
func (f *Fake) Authorize(ctx context.Context, req ports.GatewayRequest) (ports.GatewayResult, error) {
	if f.shouldFail() {
		return ports.GatewayResult{
			Success:      false,
			Status:       ports.GatewayStatusFailed,
			ErrorCode:    "card_declined",
			ErrorMessage: "simulated decline",
		}, nil
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return ports.GatewayResult{}, fmt.Errorf("parse amount: %w", err)
	}

	ref := "fake_" + randomHex(8)

	f.mu.Lock()
	f.store[ref] = &fakeEntry{
		status: ports.GatewayStatusAuthorized,
		amount: amount,
	}
	f.mu.Unlock()

	return ports.GatewayResult{Success: true, GatewayRef: ref, Status: ports.GatewayStatusAuthorized, Amount: amount.StringFixed(2)}, nil
}

// Capture marks a previously authorized transaction captured.
func (f *Fake) Capture(ctx context.Context, req ports.GatewayRequest) (ports.GatewayResult, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return ports.GatewayResult{}, fmt.Errorf("parse amount: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.store[req.GatewayRef]
	if !ok {
		return notFound(req.GatewayRef), nil
	}
	entry.status = ports.GatewayStatusCaptured
	entry.capturedAmount = amount
	return ports.GatewayResult{Success: true, GatewayRef: req.GatewayRef, Status: ports.GatewayStatusCaptured, Amount: entry.capturedAmount.StringFixed(2)}, nil
}

// Refund applies a (possibly partial) refund against a captured
// transaction.
func (f *Fake) Refund(ctx context.Context, req ports.GatewayRequest) (ports.GatewayResult, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return ports.GatewayResult{}, fmt.Errorf("parse amount: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.store[req.GatewayRef]
	if !ok {
		return notFound(req.GatewayRef), nil
	}
	entry.refundedAmount = entry.refundedAmount.Add(amount)
	if entry.refundedAmount.GreaterThanOrEqual(entry.capturedAmount) {
		entry.status = ports.GatewayStatusRefunded
	} else {
		entry.status = ports.GatewayStatusPartiallyRefunded
	}
	return ports.GatewayResult{Success: true, GatewayRef: req.GatewayRef, Status: entry.status, Amount: entry.capturedAmount.StringFixed(2)}, nil
}

// GetStatus reports the current simulated state of a transaction.
func (f *Fake) GetStatus(ctx context.Context, req ports.GatewayRequest) (ports.GatewayResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.store[req.GatewayRef]
	if !ok {
		return notFound(req.GatewayRef), nil
	}
	amount := entry.capturedAmount
	if amount.IsZero() {
		amount = entry.amount
	}
	return ports.GatewayResult{Success: true, GatewayRef: req.GatewayRef, Status: entry.status, Amount: amount.StringFixed(2)}, nil
}

func notFound(ref string) ports.GatewayResult {
	return ports.GatewayResult{
		Success:      false,
		GatewayRef:   ref,
		Status:       ports.GatewayStatusNotFound,
		ErrorCode:    "not_found",
		ErrorMessage: "gateway ref not found",
	}
}

func randomHex(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
