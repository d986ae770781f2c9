// Package response renders the HTTP envelopes used by the API: a plain data
// envelope for success, and a problem-details envelope for errors so every
// failure carries the same shape and a correlation id.
package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/ricartefelipe/payments-ledger/pkg/apperror"
	"github.com/ricartefelipe/payments-ledger/pkg/correlation"

	"github.com/gin-gonic/gin"
)

// SuccessEnvelope is the standard success envelope.
type SuccessEnvelope struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// Problem is a problem-details error envelope.
type Problem struct {
	Title         string `json:"title"`
	Status        int    `json:"status"`
	Detail        string `json:"detail"`
	Instance      string `json:"instance,omitempty"`
	CorrelationID string `json:"correlation_id"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope(c, data))
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, envelope(c, data))
}

func envelope(c *gin.Context, data interface{}) SuccessEnvelope {
	requestID := correlation.CorrelationID(c.Request.Context())
	if requestID == "" {
		requestID = correlation.New()
	}
	return SuccessEnvelope{
		Data:      data,
		RequestID: requestID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Error renders err as a problem-details response. Known *apperror.AppError
// kinds map to their declared HTTP status; anything else is a 500 and the
// underlying error is never leaked to the client.
func Error(c *gin.Context, err error) {
	corrID := correlation.CorrelationID(c.Request.Context())

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, Problem{
			Title:         string(appErr.Kind),
			Status:        appErr.HTTPStatus,
			Detail:        appErr.Message,
			Instance:      c.Request.URL.Path,
			CorrelationID: corrID,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Problem{
		Title:         string(apperror.KindInternal),
		Status:        http.StatusInternalServerError,
		Detail:        "internal server error",
		Instance:      c.Request.URL.Path,
		CorrelationID: corrID,
	})
}
