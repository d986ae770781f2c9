// Package correlation carries the ambient correlation id, tenant id, and
// subject through a request or message-processing scope. It is threaded
// explicitly via context.Context rather than a package-level global, so
// every outbound event and log line can embed it.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const (
	correlationKey ctxKey = iota
	tenantKey
	subjectKey
)

// New generates a fresh correlation id.
func New() string {
	return uuid.New().String()
}

// WithCorrelationID returns a context carrying the given correlation id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey, id)
}

// CorrelationID extracts the correlation id, or "" if none was set.
func CorrelationID(ctx context.Context) string {
	v, _ := ctx.Value(correlationKey).(string)
	return v
}

// WithTenantID returns a context carrying the given tenant id.
func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantKey, tenantID)
}

// TenantID extracts the tenant id, or "" if none was set.
func TenantID(ctx context.Context) string {
	v, _ := ctx.Value(tenantKey).(string)
	return v
}

// WithSubject returns a context carrying the given subject (principal id).
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// Subject extracts the subject, or "" if none was set.
func Subject(ctx context.Context) string {
	v, _ := ctx.Value(subjectKey).(string)
	return v
}

// EnsureCorrelationID returns ctx unchanged if it already carries a
// correlation id, otherwise returns a context with a freshly generated one.
func EnsureCorrelationID(ctx context.Context) context.Context {
	if CorrelationID(ctx) != "" {
		return ctx
	}
	return WithCorrelationID(ctx, New())
}
