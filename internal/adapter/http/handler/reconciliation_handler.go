package handler

import (
	"github.com/ricartefelipe/payments-ledger/internal/adapter/http/dto"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"
	"github.com/ricartefelipe/payments-ledger/pkg/apperror"
	"github.com/ricartefelipe/payments-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReconciliationHandler serves discrepancy listing and resolution.
type ReconciliationHandler struct {
	reconRepo ports.ReconciliationRepository
	engine    ports.ReconciliationEngine
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconRepo ports.ReconciliationRepository, engine ports.ReconciliationEngine) *ReconciliationHandler {
	return &ReconciliationHandler{reconRepo: reconRepo, engine: engine}
}

// ListDiscrepancies handles GET /reconciliation/discrepancies.
func (h *ReconciliationHandler) ListDiscrepancies(c *gin.Context) {
	tenantID, ok := tenantFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing tenant"))
		return
	}

	var resolved *bool
	if v := c.Query("resolved"); v != "" {
		b := v == "true"
		resolved = &b
	}

	discrepancies, err := h.reconRepo.List(c.Request.Context(), tenantID, resolved)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	out := make([]dto.ReconciliationDiscrepancyResponse, len(discrepancies))
	for i := range discrepancies {
		out[i] = dto.FromDiscrepancy(&discrepancies[i])
	}
	response.OK(c, out)
}

// Resolve handles POST /reconciliation/discrepancies/:id/resolve.
func (h *ReconciliationHandler) Resolve(c *gin.Context) {
	tenantID, ok := tenantFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing tenant"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid discrepancy id"))
		return
	}

	if err := h.engine.Resolve(c.Request.Context(), tenantID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"resolved": true})
}
