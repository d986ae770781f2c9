package handler

import (
	"net/http"

	"github.com/ricartefelipe/payments-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	checkers []ports.HealthChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(checkers []ports.HealthChecker) *HealthHandler {
	return &HealthHandler{checkers: checkers}
}

// Live handles GET /healthz: the process is up, nothing more.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready handles GET /readyz: every dependency must answer.
func (h *HealthHandler) Ready(c *gin.Context) {
	results := make(gin.H, len(h.checkers))
	healthy := true

	for _, checker := range h.checkers {
		if err := checker.Ping(c.Request.Context()); err != nil {
			results[checker.Name()] = err.Error()
			healthy = false
			continue
		}
		results[checker.Name()] = "ok"
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"status": results})
}
