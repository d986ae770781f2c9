package integration

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrency_ConfirmIsSerialized fires many concurrent confirm
// requests at the same CREATED intent. The row lock GetByIDForUpdate takes
// inside Confirm must serialize them: exactly one transitions
// CREATED -> AUTHORIZED, every other sees a non-CREATED status and is
// rejected as a conflict.
func TestConcurrency_ConfirmIsSerialized(t *testing.T) {
	app := newTestApp(t)
	tenantID := app.seedTenant(t)
	token := app.bearerToken(t, tenantID)

	_, body := app.doJSON(t, http.MethodPost, "/v1/payment-intents", token, map[string]string{
		"amount":       "200.00",
		"currency":     "USD",
		"customer_ref": "order:ORD-CONCUR-1",
	}, nil)
	intentID := body["data"].(map[string]interface{})["id"].(string)
	path := fmt.Sprintf("/v1/payment-intents/%s/confirm", intentID)

	const attempts = 25
	var ok, conflict int64
	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			resp, _ := app.doJSON(t, http.MethodPost, path, token, nil, map[string]string{
				"Idempotency-Key": uuid.NewString(),
			})
			switch resp.StatusCode {
			case http.StatusOK:
				atomic.AddInt64(&ok, 1)
			case http.StatusConflict:
				atomic.AddInt64(&conflict, 1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, ok, "exactly one confirm should win the race")
	assert.EqualValues(t, attempts-1, conflict, "every other confirm should see a conflict")

	id := uuid.MustParse(intentID)
	intent, err := app.intentRepo.GetByID(context.Background(), tenantID, id)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentIntentStatusAuthorized, intent.Status)
}

// TestConcurrency_RefundSaturation fires many concurrent refund requests
// that together would exceed the payment intent's amount. The row lock
// must keep the cumulative-refund check correct under concurrency: the
// accepted refunds' total must never exceed the original amount.
func TestConcurrency_RefundSaturation(t *testing.T) {
	app := newTestApp(t)
	tenantID := app.seedTenant(t)
	token := app.bearerToken(t, tenantID)

	_, body := app.doJSON(t, http.MethodPost, "/v1/payment-intents", token, map[string]string{
		"amount":       "100.00",
		"currency":     "USD",
		"customer_ref": "order:ORD-CONCUR-2",
	}, nil)
	intentID := body["data"].(map[string]interface{})["id"].(string)

	confirmPath := fmt.Sprintf("/v1/payment-intents/%s/confirm", intentID)
	resp, _ := app.doJSON(t, http.MethodPost, confirmPath, token, nil, map[string]string{"Idempotency-Key": uuid.NewString()})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	id := uuid.MustParse(intentID)
	intent, err := app.intentRepo.GetByID(context.Background(), tenantID, id)
	require.NoError(t, err)
	intent.Status = domain.PaymentIntentStatusSettled
	require.NoError(t, app.intentRepo.Update(context.Background(), nil, intent))

	const attempts = 15 // 15 * 10.00 = 150.00, against a 100.00 ceiling
	refundPath := fmt.Sprintf("/v1/payment-intents/%s/refund", intentID)
	var accepted int64
	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			resp, _ := app.doJSON(t, http.MethodPost, refundPath, token, map[string]string{"amount": "10.00"}, map[string]string{
				"Idempotency-Key": uuid.NewString(),
			})
			if resp.StatusCode == http.StatusCreated {
				atomic.AddInt64(&accepted, 1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 10, accepted, "only enough refunds to exactly saturate the intent amount should be accepted")

	refunds, err := app.refundRepo.ListByPaymentIntent(context.Background(), tenantID, id)
	require.NoError(t, err)
	total := decimal.Zero
	for _, r := range refunds {
		if r.Status != domain.RefundStatusFailed {
			total = total.Add(r.Amount)
		}
	}
	assert.True(t, total.LessThanOrEqual(decimal.RequireFromString("100.00")))
}
