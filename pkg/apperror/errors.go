// Package apperror defines the typed domain errors used across the payments
// core. Every business function surfaces one of these so the HTTP layer can
// map it to a problem-details response without inspecting error strings.
package apperror

import (
	"fmt"
	"net/http"
)

// Kind is the domain-level error classification from the error handling
// design. Each kind maps to exactly one HTTP status.
type Kind string

const (
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
	KindUnauthorized    Kind = "UNAUTHORIZED"
	KindForbidden       Kind = "FORBIDDEN"
	KindNotFound        Kind = "NOT_FOUND"
	KindConflict        Kind = "CONFLICT"
	KindUnprocessable   Kind = "UNPROCESSABLE"
	KindRateLimited     Kind = "RATE_LIMITED"
	KindTransient       Kind = "TRANSIENT"
	KindInternal        Kind = "INTERNAL"
)

var httpStatusByKind = map[Kind]int{
	KindInvalidArgument: http.StatusBadRequest,
	KindUnauthorized:    http.StatusUnauthorized,
	KindForbidden:       http.StatusForbidden,
	KindNotFound:        http.StatusNotFound,
	KindConflict:        http.StatusConflict,
	KindUnprocessable:   http.StatusUnprocessableEntity,
	KindRateLimited:     http.StatusTooManyRequests,
	KindTransient:       http.StatusServiceUnavailable,
	KindInternal:        http.StatusInternalServerError,
}

// AppError is a structured error that maps to an HTTP problem-details
// response.
type AppError struct {
	Kind       Kind
	Message    string
	HTTPStatus int
	Err        error // wrapped internal error, never exposed to the client
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped internal error to errors.Is/errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError of the given kind.
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message, HTTPStatus: httpStatusByKind[kind]}
}

// Wrap creates an AppError of the given kind wrapping an internal error.
func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, HTTPStatus: httpStatusByKind[kind], Err: err}
}

// ---- Invalid argument (400) ----

func ErrInvalidAmount() *AppError {
	return New(KindInvalidArgument, "amount must be greater than zero")
}

func ErrUnsupportedCurrency(currency string) *AppError {
	return New(KindInvalidArgument, fmt.Sprintf("unsupported currency %q", currency))
}

func ErrMissingIdempotencyKey() *AppError {
	return New(KindInvalidArgument, "Idempotency-Key header is required")
}

func Validation(message string) *AppError {
	return New(KindInvalidArgument, message)
}

// ---- Unauthorized (401) ----

func ErrUnauthorized(message string) *AppError {
	return New(KindUnauthorized, message)
}

// ---- Forbidden (403) ----

func ErrForbidden(message string) *AppError {
	return New(KindForbidden, message)
}

// ---- Not found (404) ----

func ErrNotFound(entity string) *AppError {
	return New(KindNotFound, fmt.Sprintf("%s not found", entity))
}

// ---- Conflict (409) ----

func ErrConflict(message string) *AppError {
	return New(KindConflict, message)
}

func ErrInvalidTransition(from, action string) *AppError {
	return New(KindConflict, fmt.Sprintf("cannot %s payment intent in status %s", action, from))
}

// ---- Unprocessable (422) ----

func ErrRefundExceedsAmount() *AppError {
	return New(KindUnprocessable, "cumulative refund amount would exceed payment intent amount")
}

// ---- Rate limited (429) ----

func ErrRateLimited() *AppError {
	return New(KindRateLimited, "rate limit exceeded")
}

// ---- Transient (503) ----

func ErrCircuitOpen() *AppError {
	return New(KindTransient, "circuit breaker is open")
}

func ErrTransient(message string, err error) *AppError {
	return Wrap(KindTransient, message, err)
}

func ErrChaosInjected() *AppError {
	return New(KindTransient, "chaos fault injected")
}

// ---- Internal (500, not part of the spec's error table but needed for bugs) ----

func InternalError(err error) *AppError {
	return Wrap(KindInternal, "internal server error", err)
}
