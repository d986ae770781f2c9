package ports

import "context"

// GatewayStatus is the external gateway's view of a transaction's state.
type GatewayStatus string

const (
	GatewayStatusAuthorized        GatewayStatus = "AUTHORIZED"
	GatewayStatusCaptured          GatewayStatus = "CAPTURED"
	GatewayStatusFailed            GatewayStatus = "FAILED"
	GatewayStatusRefunded          GatewayStatus = "REFUNDED"
	GatewayStatusPartiallyRefunded GatewayStatus = "PARTIALLY_REFUNDED"
	GatewayStatusNotFound          GatewayStatus = "NOT_FOUND"
)

// Gateway error codes. Those listed in RetryableGatewayErrors are retried;
// any other code fails after the first attempt and still counts against the
// circuit breaker.
const (
	GatewayErrRateLimit         = "rate_limit"
	GatewayErrAPIConnection     = "api_connection_error"
	GatewayErrAPI               = "api_error"
	GatewayErrTimeout           = "timeout"
	GatewayErrCircuitOpen       = "circuit_open"
)

// RetryableGatewayErrors is the configured set of error codes the gateway
// adapter will retry.
var RetryableGatewayErrors = map[string]bool{
	GatewayErrRateLimit:     true,
	GatewayErrAPIConnection: true,
	GatewayErrAPI:           true,
	GatewayErrTimeout:       true,
}

// GatewayResult is the outcome of a single gateway call.
type GatewayResult struct {
	Success      bool
	GatewayRef   string
	Status       GatewayStatus
	Amount       string // decimal string, as currently known to the gateway
	ErrorCode    string
	ErrorMessage string
	IsRetryable  bool
}

// GatewayRequest carries the fields common to every gateway operation.
type GatewayRequest struct {
	IdempotencyKey string
	Amount         string
	Currency       string
	GatewayRef     string // required for Capture, Refund, GetStatus
}

// Gateway is the typed port to an external payment gateway. Every
// implementation (fake, stripe-flavored) is wrapped by the retry+circuit
// breaker decorator before being handed to callers.
type Gateway interface {
	Authorize(ctx context.Context, req GatewayRequest) (GatewayResult, error)
	Capture(ctx context.Context, req GatewayRequest) (GatewayResult, error)
	Refund(ctx context.Context, req GatewayRequest) (GatewayResult, error)
	GetStatus(ctx context.Context, req GatewayRequest) (GatewayResult, error)
}
