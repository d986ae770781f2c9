package handler

import (
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/adapter/http/dto"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"
	"github.com/ricartefelipe/payments-ledger/pkg/apperror"
	"github.com/ricartefelipe/payments-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// ChaosHandler serves the per-tenant fault-injection knobs used to exercise
// the gateway decorator's retry and circuit-breaking paths in staging.
type ChaosHandler struct {
	store ports.ChaosStore
}

// NewChaosHandler creates a new ChaosHandler.
func NewChaosHandler(store ports.ChaosStore) *ChaosHandler {
	return &ChaosHandler{store: store}
}

// Get handles GET /admin/chaos.
func (h *ChaosHandler) Get(c *gin.Context) {
	tenantID, ok := tenantFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing tenant"))
		return
	}

	settings, err := h.store.Get(c.Request.Context(), tenantID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.ChaosSettingsResponse{
		FailureRate:            settings.FailureRate,
		LatencyInjectionMillis: settings.LatencyInjection.Milliseconds(),
	})
}

// Put handles PUT /admin/chaos.
func (h *ChaosHandler) Put(c *gin.Context) {
	tenantID, ok := tenantFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing tenant"))
		return
	}

	var req dto.ChaosSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	settings := ports.ChaosSettings{
		FailureRate:      req.FailureRate,
		LatencyInjection: time.Duration(req.LatencyInjectionMillis) * time.Millisecond,
	}

	if err := h.store.Set(c.Request.Context(), tenantID, settings); err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.ChaosSettingsResponse{
		FailureRate:            settings.FailureRate,
		LatencyInjectionMillis: settings.LatencyInjection.Milliseconds(),
	})
}
