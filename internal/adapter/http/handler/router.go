package handler

import (
	"net/http"
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/adapter/http/middleware"
	redisStore "github.com/ricartefelipe/payments-ledger/internal/adapter/storage/redis"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"
	"github.com/ricartefelipe/payments-ledger/pkg/clock"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	TenantRepo       ports.TenantRepository
	PaymentIntent    ports.PaymentIntentService
	RefundRepo       ports.RefundRepository
	LedgerRepo       ports.LedgerRepository
	WebhookRepo      ports.WebhookRepository
	ReconRepo        ports.ReconciliationRepository
	ReconEngine      ports.ReconciliationEngine
	ChaosStore       ports.ChaosStore
	TokenSvc         ports.TokenService
	RateLimitStore   *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers   []ports.HealthChecker
	IdempotencyCache ports.IdempotencyCache
	IdempotencyRepo  ports.IdempotencyRepository
	Transactor       ports.DBTransactor
	Clock            clock.Clock
	IdempotencyTTL   time.Duration
	Logger           zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.CorrelationID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	healthHandler := NewHealthHandler(deps.HealthCheckers)
	r.GET("/healthz", healthHandler.Live)
	r.GET("/readyz", healthHandler.Ready)
	r.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, "# payments-ledger metrics scrape point\n")
	})

	rules := middleware.DefaultRateLimitRules(600, 120)
	rl := func(c *gin.Context) { c.Next() }
	if deps.RateLimitStore != nil {
		rl = middleware.ByMethod(deps.RateLimitStore, rules, deps.Logger)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	v1 := r.Group("/v1")

	// --- Public: token issuance ---
	authHandler := NewAuthHandler(deps.TenantRepo, deps.TokenSvc)
	v1.POST("/auth/token", rl, authHandler.IssueToken)

	// --- Authenticated API ---
	api := v1.Group("", jwtAuth, rl)

	api.GET("/me", authHandler.Me)

	confirmIdempotency := func(c *gin.Context) { c.Next() }
	refundIdempotency := func(c *gin.Context) { c.Next() }
	if deps.IdempotencyCache != nil && deps.IdempotencyRepo != nil && deps.Transactor != nil && deps.Clock != nil {
		confirmIdempotency = middleware.Idempotency(deps.IdempotencyCache, deps.IdempotencyRepo, deps.Transactor, deps.Clock, deps.IdempotencyTTL, "confirm", deps.Logger)
		refundIdempotency = middleware.Idempotency(deps.IdempotencyCache, deps.IdempotencyRepo, deps.Transactor, deps.Clock, deps.IdempotencyTTL, "refund", deps.Logger)
	}

	intentHandler := NewPaymentIntentHandler(deps.PaymentIntent, deps.RefundRepo)
	intents := api.Group("/payment-intents")
	{
		intents.POST("", intentHandler.Create)
		intents.GET("/:id", intentHandler.Get)
		intents.POST("/:id/confirm", confirmIdempotency, intentHandler.Confirm)
		intents.POST("/:id/refund", refundIdempotency, intentHandler.Refund)
		intents.GET("/:id/refunds", intentHandler.ListRefunds)
	}

	ledgerHandler := NewLedgerHandler(deps.LedgerRepo)
	api.GET("/ledger/entries", ledgerHandler.ListEntries)

	reports := api.Group("/reports")
	{
		reports.GET("/account-balances", ledgerHandler.AccountBalances)
		reports.GET("/revenue", ledgerHandler.RevenueByPeriod)
	}

	webhookHandler := NewWebhookHandler(deps.WebhookRepo)
	webhooks := api.Group("/webhooks")
	{
		webhooks.POST("", webhookHandler.Create)
		webhooks.GET("", webhookHandler.List)
		webhooks.DELETE("/:id", webhookHandler.Delete)
	}

	reconHandler := NewReconciliationHandler(deps.ReconRepo, deps.ReconEngine)
	recon := api.Group("/reconciliation/discrepancies")
	{
		recon.GET("", reconHandler.ListDiscrepancies)
		recon.POST("/:id/resolve", reconHandler.Resolve)
	}

	chaosHandler := NewChaosHandler(deps.ChaosStore)
	admin := api.Group("/admin/chaos")
	{
		admin.GET("", chaosHandler.Get)
		admin.PUT("", chaosHandler.Put)
	}

	return r
}
