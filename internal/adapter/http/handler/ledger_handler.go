package handler

import (
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/adapter/http/dto"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports"
	"github.com/ricartefelipe/payments-ledger/pkg/apperror"
	"github.com/ricartefelipe/payments-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// LedgerHandler serves the ledger-entries listing and the account-balances
// and revenue-by-period reports, all read directly off LedgerRepository:
// reporting is a query concern, not a service with its own rules.
type LedgerHandler struct {
	ledgerRepo ports.LedgerRepository
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerRepo ports.LedgerRepository) *LedgerHandler {
	return &LedgerHandler{ledgerRepo: ledgerRepo}
}

func parseRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now

	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return from, to, err
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return from, to, err
		}
		to = t
	}
	return from, to, nil
}

// ListEntries handles GET /ledger/entries.
func (h *LedgerHandler) ListEntries(c *gin.Context) {
	tenantID, ok := tenantFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing tenant"))
		return
	}

	from, to, err := parseRange(c)
	if err != nil {
		response.Error(c, apperror.Validation("invalid from/to timestamp"))
		return
	}

	limit := 100
	entries, err := h.ledgerRepo.ListEntries(c.Request.Context(), tenantID, from, to, limit)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	out := make([]dto.LedgerEntryResponse, len(entries))
	for i := range entries {
		out[i] = dto.FromLedgerEntry(&entries[i])
	}
	response.OK(c, out)
}

// AccountBalances handles GET /reports/account-balances.
func (h *LedgerHandler) AccountBalances(c *gin.Context) {
	tenantID, ok := tenantFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing tenant"))
		return
	}

	from, to, err := parseRange(c)
	if err != nil {
		response.Error(c, apperror.Validation("invalid from/to timestamp"))
		return
	}

	balances, err := h.ledgerRepo.AccountBalances(c.Request.Context(), tenantID, from, to)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	out := make([]dto.AccountBalanceResponse, len(balances))
	for i, b := range balances {
		out[i] = dto.FromAccountBalance(b)
	}
	response.OK(c, out)
}

// RevenueByPeriod handles GET /reports/revenue.
func (h *LedgerHandler) RevenueByPeriod(c *gin.Context) {
	tenantID, ok := tenantFromCtx(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized("missing tenant"))
		return
	}

	from, to, err := parseRange(c)
	if err != nil {
		response.Error(c, apperror.Validation("invalid from/to timestamp"))
		return
	}

	granularity := c.DefaultQuery("granularity", "day")

	periods, err := h.ledgerRepo.RevenueByPeriod(c.Request.Context(), tenantID, from, to, granularity)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	out := make([]dto.RevenuePeriodResponse, len(periods))
	for i, p := range periods {
		out[i] = dto.FromRevenuePeriod(p)
	}
	response.OK(c, out)
}
