package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New(KindInvalidArgument, "amount must be greater than zero"),
			expected: "[INVALID_ARGUMENT] amount must be greater than zero",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap(KindInternal, "db error", fmt.Errorf("connection refused")),
			expected: "[INTERNAL] db error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap(KindInternal, "wrapped", inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New(KindInvalidArgument, "test")
	assert.Nil(t, appErr.Unwrap())
}

func TestHTTPStatusByKind(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		kind       Kind
		httpStatus int
	}{
		{"InvalidAmount", ErrInvalidAmount(), KindInvalidArgument, http.StatusBadRequest},
		{"UnsupportedCurrency", ErrUnsupportedCurrency("XYZ"), KindInvalidArgument, http.StatusBadRequest},
		{"MissingIdempotencyKey", ErrMissingIdempotencyKey(), KindInvalidArgument, http.StatusBadRequest},
		{"Unauthorized", ErrUnauthorized("bad token"), KindUnauthorized, http.StatusUnauthorized},
		{"Forbidden", ErrForbidden("not allowed"), KindForbidden, http.StatusForbidden},
		{"NotFound", ErrNotFound("payment intent"), KindNotFound, http.StatusNotFound},
		{"Conflict", ErrConflict("already settled"), KindConflict, http.StatusConflict},
		{"InvalidTransition", ErrInvalidTransition("AUTHORIZED", "confirm"), KindConflict, http.StatusConflict},
		{"RefundExceedsAmount", ErrRefundExceedsAmount(), KindUnprocessable, http.StatusUnprocessableEntity},
		{"RateLimited", ErrRateLimited(), KindRateLimited, http.StatusTooManyRequests},
		{"CircuitOpen", ErrCircuitOpen(), KindTransient, http.StatusServiceUnavailable},
		{"ChaosInjected", ErrChaosInjected(), KindTransient, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("payment intent")
	assert.Contains(t, err.Message, "payment intent")
	assert.Equal(t, KindNotFound, err.Kind)
}

func TestInvalidTransitionMessage(t *testing.T) {
	err := ErrInvalidTransition("AUTHORIZED", "confirm")
	assert.Contains(t, err.Message, "AUTHORIZED")
	assert.Contains(t, err.Message, "confirm")
}

func TestTransientErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	transErr := ErrTransient("database unreachable", inner)
	assert.Equal(t, KindTransient, transErr.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, transErr.HTTPStatus)
	assert.True(t, errors.Is(transErr, inner))
}

func TestInternalError(t *testing.T) {
	inner := fmt.Errorf("unexpected nil pointer")
	err := InternalError(inner)
	assert.Equal(t, KindInternal, err.Kind)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.True(t, errors.Is(err, inner))
}
