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

// AuthHandler issues bearer tokens. Tenant identity is externally
// provisioned (synced via inbound tenant events), so this does not own a
// credential store; it only mints a token once the caller proves it knows
// the tenant id, matching the out-of-core auth surface.
type AuthHandler struct {
	tenantRepo ports.TenantRepository
	tokenSvc   ports.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(tenantRepo ports.TenantRepository, tokenSvc ports.TokenService) *AuthHandler {
	return &AuthHandler{tenantRepo: tenantRepo, tokenSvc: tokenSvc}
}

// IssueToken handles POST /auth/token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.AuthTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid tenant_id"))
		return
	}

	if t, err := h.tenantRepo.GetByID(c.Request.Context(), tenantID); err != nil || t == nil {
		response.Error(c, apperror.ErrUnauthorized("unknown tenant"))
		return
	}

	token, expiresAt, err := h.tokenSvc.Generate(tenantID, req.Email)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.AuthTokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}

// Me handles GET /me.
func (h *AuthHandler) Me(c *gin.Context) {
	tenantID, ok := tenantFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing tenant"))
		return
	}
	subject, _ := c.Get(middleware.CtxSubject)

	response.OK(c, dto.PrincipalResponse{
		TenantID: tenantID.String(),
		Subject:  subject.(string),
	})
}
