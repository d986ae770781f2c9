package handler

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/adapter/http/dto"
	"github.com/ricartefelipe/payments-ledger/internal/core/domain"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"
	"github.com/ricartefelipe/payments-ledger/pkg/apperror"
	"github.com/ricartefelipe/payments-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WebhookHandler serves tenant-managed webhook endpoint subscriptions.
type WebhookHandler struct {
	repo ports.WebhookRepository
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(repo ports.WebhookRepository) *WebhookHandler {
	return &WebhookHandler{repo: repo}
}

func newWebhookSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Create handles POST /webhooks.
func (h *WebhookHandler) Create(c *gin.Context) {
	tenantID, ok := tenantFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing tenant"))
		return
	}

	var req dto.CreateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	secret, err := newWebhookSecret()
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	endpoint := &domain.WebhookEndpoint{
		ID:        uuid.New(),
		TenantID:  tenantID,
		URL:       req.URL,
		Secret:    secret,
		Events:    req.Events,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.repo.Create(c.Request.Context(), endpoint); err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.Created(c, dto.FromWebhookEndpoint(endpoint))
}

// List handles GET /webhooks.
func (h *WebhookHandler) List(c *gin.Context) {
	tenantID, ok := tenantFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing tenant"))
		return
	}

	endpoints, err := h.repo.List(c.Request.Context(), tenantID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	out := make([]dto.WebhookEndpointResponse, len(endpoints))
	for i := range endpoints {
		out[i] = dto.FromWebhookEndpoint(&endpoints[i])
	}
	response.OK(c, out)
}

// Delete handles DELETE /webhooks/:id.
func (h *WebhookHandler) Delete(c *gin.Context) {
	tenantID, ok := tenantFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing tenant"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid webhook id"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), tenantID, id); err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, gin.H{"deleted": true})
}
