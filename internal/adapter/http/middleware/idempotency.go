package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"
	"github.com/ricartefelipe/payments-ledger/pkg/clock"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// cachedResponse is the envelope stored behind an idempotency key: enough
// to replay the exact response a second request with the same key would
// have produced.
type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// bodyCaptureWriter tees every write to the real response writer and to an
// in-memory buffer, so the middleware can persist the exact bytes sent to
// the client without buffering the whole response before flushing it.
type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency memoizes a mutating handler's response per
// (tenant, op, resource, Idempotency-Key): a repeat request within ttl
// gets back the byte-identical body and status the first request produced,
// without re-running the handler. Requests without the header pass
// through unchanged; presence is enforced by the handler itself, which runs
// after this middleware.
func Idempotency(cache ports.IdempotencyCache, repo ports.IdempotencyRepository, transactor ports.DBTransactor, clk clock.Clock, ttl time.Duration, op string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			c.Next()
			return
		}

		tenantID, _ := c.Get(CtxTenantID)
		fullKey := domain.BuildIdempotencyKey(fmt.Sprintf("%v", tenantID), op, c.Param("id"), key)
		ctx := c.Request.Context()

		if replayed := lookupReplay(ctx, cache, repo, fullKey, log); replayed != nil {
			c.JSON(replayed.Status, replayed.Body)
			c.Abort()
			return
		}

		capture := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = capture
		c.Next()

		status := capture.Status()
		if status == 0 {
			status = http.StatusOK
		}
		encoded, err := json.Marshal(cachedResponse{Status: status, Body: json.RawMessage(capture.body.Bytes())})
		if err != nil {
			log.Warn().Err(err).Msg("idempotency: failed to encode response for caching")
			return
		}

		if err := cache.Set(ctx, fullKey, encoded, ttl); err != nil {
			log.Warn().Err(err).Str("key", fullKey).Msg("idempotency: cache write failed")
		}
		persistFallback(ctx, repo, transactor, fullKey, encoded, clk, log)
	}
}

// lookupReplay checks the Redis fast path first, falling back to the
// Postgres-backed store only when Redis errors or misses, matching the
// spec's two-tier design.
func lookupReplay(ctx context.Context, cache ports.IdempotencyCache, repo ports.IdempotencyRepository, key string, log zerolog.Logger) *cachedResponse {
	if raw, err := cache.Get(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("idempotency: cache read failed, falling back to db")
	} else if raw != nil {
		var resp cachedResponse
		if err := json.Unmarshal(raw, &resp); err == nil {
			return &resp
		}
	}

	rec, err := repo.Get(ctx, key)
	if err != nil || rec == nil {
		return nil
	}
	var resp cachedResponse
	if err := json.Unmarshal(rec.ResponseJSON, &resp); err != nil {
		return nil
	}
	return &resp
}

// persistFallback writes the response to the Postgres-backed idempotency
// store in its own transaction, best-effort: a failure here never fails
// the request, since the Redis write above already serves replays within
// its TTL.
func persistFallback(ctx context.Context, repo ports.IdempotencyRepository, transactor ports.DBTransactor, key string, encoded []byte, clk clock.Clock, log zerolog.Logger) {
	tx, err := transactor.Begin(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("idempotency: begin fallback tx failed")
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rec := &domain.IdempotencyRecord{Key: key, ResponseJSON: encoded, CreatedAt: clk.Now()}
	if err := repo.Create(ctx, tx, rec); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("idempotency: db fallback write failed")
		return
	}
	if err := tx.Commit(ctx); err != nil {
		log.Warn().Err(err).Msg("idempotency: commit fallback tx failed")
	}
}
