package domain

import (
	"fmt"
	"time"
)

// IdempotencyRecord is the DB-backed fallback behind the Redis fast path: a
// cached response body keyed by the caller-supplied idempotency key.
type IdempotencyRecord struct {
	Key          string    `json:"key"`
	ResponseJSON []byte    `json:"response_json"`
	CreatedAt    time.Time `json:"created_at"`
}

// BuildIdempotencyKey constructs the standard key format:
// idem:<tenant>:<op>:<resource>:<idempotency_key>.
func BuildIdempotencyKey(tenantID, op, resource, key string) string {
	return fmt.Sprintf("idem:%s:%s:%s:%s", tenantID, op, resource, key)
}
