package gateway

import (
	"context"
	"errors"

	"github.com/ricartefelipe/payments-ledger/config"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// gatewayOp is one logical gateway call, closed over its request.
type gatewayOp func(ctx context.Context) (ports.GatewayResult, error)

// Decorator wraps a ports.Gateway with a retry ladder (exponential backoff
// plus jitter, via cenkalti/backoff) and a circuit breaker (sony/gobreaker),
// so every provider-specific adapter gets the same resilience behavior for
// free.
type Decorator struct {
	inner   ports.Gateway
	breaker *gobreaker.CircuitBreaker
	cfg     config.GatewayConfig
	log     zerolog.Logger
}

// NewDecorator wraps inner with retry and circuit-breaking per cfg.
func NewDecorator(inner ports.Gateway, cfg config.GatewayConfig, log zerolog.Logger) *Decorator {
	settings := gobreaker.Settings{
		Name:        "payment-gateway",
		MaxRequests: 1,
		Timeout:     cfg.CircuitRecoveryTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.CircuitFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("gateway circuit breaker state change")
		},
	}
	return &Decorator{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
		cfg:     cfg,
		log:     log,
	}
}

func (d *Decorator) Authorize(ctx context.Context, req ports.GatewayRequest) (ports.GatewayResult, error) {
	return d.call(ctx, "authorize", func(ctx context.Context) (ports.GatewayResult, error) {
		return d.inner.Authorize(ctx, req)
	})
}

func (d *Decorator) Capture(ctx context.Context, req ports.GatewayRequest) (ports.GatewayResult, error) {
	return d.call(ctx, "capture", func(ctx context.Context) (ports.GatewayResult, error) {
		return d.inner.Capture(ctx, req)
	})
}

func (d *Decorator) Refund(ctx context.Context, req ports.GatewayRequest) (ports.GatewayResult, error) {
	return d.call(ctx, "refund", func(ctx context.Context) (ports.GatewayResult, error) {
		return d.inner.Refund(ctx, req)
	})
}

func (d *Decorator) GetStatus(ctx context.Context, req ports.GatewayRequest) (ports.GatewayResult, error) {
	return d.call(ctx, "get_status", func(ctx context.Context) (ports.GatewayResult, error) {
		return d.inner.GetStatus(ctx, req)
	})
}

// call runs op through the circuit breaker, retrying retryable failures
// with exponential backoff + jitter up to cfg.MaxRetries times. A result
// with Success=false and IsRetryable=false is a business outcome (e.g.
// card_declined) and is never retried; only ErrorCode values present in
// ports.RetryableGatewayErrors trigger another attempt.
func (d *Decorator) call(ctx context.Context, operation string, op gatewayOp) (ports.GatewayResult, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = d.cfg.RetryBaseDelay
	bo.MaxInterval = d.cfg.RetryMaxDelay
	bo.MaxElapsedTime = 0 // bounded by MaxRetries below, not wall-clock
	ticker := backoff.WithMaxRetries(bo, uint64(d.cfg.MaxRetries))

	var result ports.GatewayResult
	attempt := func() error {
		res, err := d.breaker.Execute(func() (any, error) {
			r, callErr := op(ctx)
			if callErr != nil {
				return r, callErr
			}
			if !r.Success && ports.RetryableGatewayErrors[r.ErrorCode] {
				return r, errRetryableResult
			}
			return r, nil
		})
		if res != nil {
			result = res.(ports.GatewayResult)
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			result = ports.GatewayResult{
				Success:      false,
				Status:       ports.GatewayStatusFailed,
				ErrorCode:    ports.GatewayErrCircuitOpen,
				ErrorMessage: "circuit breaker is open, gateway temporarily unavailable",
				IsRetryable:  true,
			}
			return backoff.Permanent(err)
		}
		if errors.Is(err, errRetryableResult) {
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	err := backoff.Retry(attempt, backoff.WithContext(ticker, ctx))
	if err != nil && !errors.Is(err, errRetryableResult) && !errors.Is(err, gobreaker.ErrOpenState) {
		return result, err
	}
	return result, nil
}

var errRetryableResult = errors.New("retryable gateway result")
