package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ricartefelipe/payments-ledger/pkg/apperror"
	"github.com/ricartefelipe/payments-ledger/pkg/correlation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestContext builds a gin context with a request whose context carries
// corrID as the correlation id (none when corrID is empty).
func newTestContext(w *httptest.ResponseRecorder, corrID string) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if corrID != "" {
		req = req.WithContext(correlation.WithCorrelationID(req.Context(), corrID))
	}
	c.Request = req
	return c
}

func TestOK(t *testing.T) {
	w := httptest.NewRecorder()
	c := newTestContext(w, "test-req-123")

	OK(c, map[string]string{"status": "healthy"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SuccessEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "test-req-123", resp.RequestID)
	assert.NotEmpty(t, resp.Timestamp)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "healthy", data["status"])
}

func TestCreated(t *testing.T) {
	w := httptest.NewRecorder()
	c := newTestContext(w, "test-req-456")

	Created(c, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SuccessEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "test-req-456", resp.RequestID)
}

func TestError_AppError(t *testing.T) {
	w := httptest.NewRecorder()
	c := newTestContext(w, "test-req-789")

	Error(c, apperror.ErrRefundExceedsAmount())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNPROCESSABLE", resp.Title)
	assert.Equal(t, "cumulative refund amount would exceed payment intent amount", resp.Detail)
	assert.Equal(t, "test-req-789", resp.CorrelationID)
	assert.NotEmpty(t, resp.Instance)
}

func TestError_WrappedAppError(t *testing.T) {
	w := httptest.NewRecorder()
	c := newTestContext(w, "")

	wrappedErr := fmt.Errorf("outer: %w", apperror.ErrUnauthorized("invalid signature"))
	Error(c, wrappedErr)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNAUTHORIZED", resp.Title)
}

func TestError_UnknownError(t *testing.T) {
	w := httptest.NewRecorder()
	c := newTestContext(w, "")

	Error(c, fmt.Errorf("something unexpected"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INTERNAL", resp.Title)
	assert.Equal(t, "internal server error", resp.Detail)
}

func TestOK_GeneratesRequestID_WhenMissing(t *testing.T) {
	w := httptest.NewRecorder()
	c := newTestContext(w, "")
	// No correlation id on the request context.

	OK(c, nil)

	var resp SuccessEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID, "should generate a UUID when request_id is missing")
}
