package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "github.com/ricartefelipe/payments-ledger/internal/adapter/storage/redis"
	"github.com/ricartefelipe/payments-ledger/pkg/apperror"
	"github.com/ricartefelipe/payments-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the two endpoint groups the API
// distinguishes: "read" (GETs) and "write" (everything that mutates
// state), each allowing the given number of requests per minute.
// SetupRouter passes fixed limits (600 read, 120 write); the
// RATE_LIMIT_READ_PER_MIN / RATE_LIMIT_WRITE_PER_MIN config values are not
// read by the router.
func DefaultRateLimitRules(readPerMin, writePerMin int) map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"read":  {Limit: int64(readPerMin), Window: time.Minute},
		"write": {Limit: int64(writePerMin), Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := extractIdentifier(c)
		key := fmt.Sprintf("%s:%s", identifier, group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimited())
			c.Abort()
			return
		}

		c.Next()
	}
}

// ByMethod picks the "read" rule for GET/HEAD and "write" for everything
// else, so one RateLimiter registration covers a whole route group.
func ByMethod(store *redisStore.RateLimitStore, rules map[string]RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		group := "write"
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" {
			group = "read"
		}
		RateLimiter(store, group, rules[group], log)(c)
	}
}

// extractIdentifier determines the rate limit key source: the
// tenant stamped by JWTAuth when present, falling back to client IP for
// unauthenticated routes (e.g. /auth/token itself).
func extractIdentifier(c *gin.Context) string {
	if tid, exists := c.Get(CtxTenantID); exists {
		return fmt.Sprintf("%v", tid)
	}
	return c.ClientIP()
}
