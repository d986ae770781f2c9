package handler

import (
	"github.com/ricartefelipe/payments-ledger/internal/adapter/http/dto"
	"github.com/ricartefelipe/payments-ledger/internal/adapter/http/middleware"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"
	"github.com/ricartefelipe/payments-ledger/pkg/apperror"
	"github.com/ricartefelipe/payments-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentIntentHandler serves payment-intent and refund endpoints.
type PaymentIntentHandler struct {
	svc        ports.PaymentIntentService
	refundRepo ports.RefundRepository
}

// NewPaymentIntentHandler creates a new PaymentIntentHandler.
func NewPaymentIntentHandler(svc ports.PaymentIntentService, refundRepo ports.RefundRepository) *PaymentIntentHandler {
	return &PaymentIntentHandler{svc: svc, refundRepo: refundRepo}
}

func tenantFromCtx(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxTenantID)
	if !ok {
		return uuid.UUID{}, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// Create handles POST /payment-intents.
func (h *PaymentIntentHandler) Create(c *gin.Context) {
	tenantID, ok := tenantFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing tenant"))
		return
	}

	var req dto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	intent, err := h.svc.Create(c.Request.Context(), ports.CreateIntentRequest{
		TenantID:    tenantID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		CustomerRef: req.CustomerRef,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromPaymentIntent(intent))
}

// Get handles GET /payment-intents/:id.
func (h *PaymentIntentHandler) Get(c *gin.Context) {
	tenantID, ok := tenantFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing tenant"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid payment intent id"))
		return
	}

	intent, err := h.svc.Get(c.Request.Context(), tenantID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromPaymentIntent(intent))
}

// Confirm handles POST /payment-intents/:id/confirm. It requires an
// Idempotency-Key header since confirmation changes the intent's status and
// writes a payment.authorized outbox event, so a client retry must replay
// the first response rather than run the transition again.
func (h *PaymentIntentHandler) Confirm(c *gin.Context) {
	tenantID, ok := tenantFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing tenant"))
		return
	}

	if c.GetHeader("Idempotency-Key") == "" {
		response.Error(c, apperror.ErrMissingIdempotencyKey())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid payment intent id"))
		return
	}

	intent, err := h.svc.Confirm(c.Request.Context(), tenantID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromPaymentIntent(intent))
}

// Refund handles POST /payment-intents/:id/refund. Requires Idempotency-Key
// for the same reason as Confirm.
func (h *PaymentIntentHandler) Refund(c *gin.Context) {
	tenantID, ok := tenantFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing tenant"))
		return
	}

	if c.GetHeader("Idempotency-Key") == "" {
		response.Error(c, apperror.ErrMissingIdempotencyKey())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid payment intent id"))
		return
	}

	var req dto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	refund, err := h.svc.Refund(c.Request.Context(), ports.RefundIntentRequest{
		TenantID:        tenantID,
		PaymentIntentID: id,
		Amount:          req.Amount,
		Reason:          req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromRefund(refund))
}

// ListRefunds handles GET /payment-intents/:id/refunds.
func (h *PaymentIntentHandler) ListRefunds(c *gin.Context) {
	tenantID, ok := tenantFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing tenant"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid payment intent id"))
		return
	}

	refunds, err := h.refundRepo.ListByPaymentIntent(c.Request.Context(), tenantID, id)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	out := make([]dto.RefundResponse, len(refunds))
	for i := range refunds {
		out[i] = dto.FromRefund(&refunds[i])
	}
	response.OK(c, out)
}
