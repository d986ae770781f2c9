package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"
	"github.com/ricartefelipe/payments-ledger/internal/core/ports/mocks"
	"github.com/ricartefelipe/payments-ledger/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type webhookTestDeps struct {
	dispatcher   *WebhookDispatcher
	endpointRepo *mocks.MockWebhookRepository
	deliveryRepo *mocks.MockWebhookDeliveryRepository
	transactor   *mocks.MockDBTransactor
	sender       *mocks.MockWebhookSender
	clk          *clock.Frozen
	ctrl         *gomock.Controller
}

func setupWebhookDispatcher(t *testing.T) *webhookTestDeps {
	ctrl := gomock.NewController(t)
	d := &webhookTestDeps{
		endpointRepo: mocks.NewMockWebhookRepository(ctrl),
		deliveryRepo: mocks.NewMockWebhookDeliveryRepository(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		sender:       mocks.NewMockWebhookSender(ctrl),
		clk:          clock.NewFrozen(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
		ctrl:         ctrl,
	}
	retryDelays := []time.Duration{60 * time.Second, 300 * time.Second, 1800 * time.Second}
	d.dispatcher = NewWebhookDispatcher(d.endpointRepo, d.deliveryRepo, d.transactor, d.sender, retryDelays, 50, d.clk, zerolog.Nop())
	return d
}

func TestWebhookDispatcher_Enqueue_InsertsPendingPerActiveEndpoint(t *testing.T) {
	d := setupWebhookDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	tx := &mockTx{}

	endpoints := []domain.WebhookEndpoint{
		{ID: uuid.New(), TenantID: tenantID, URL: "https://a.example.com", IsActive: true},
		{ID: uuid.New(), TenantID: tenantID, URL: "https://b.example.com", IsActive: true},
	}

	d.endpointRepo.EXPECT().ListActiveForEvent(ctx, tenantID, "payment.settled").Return(endpoints, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)

	var inserted []domain.WebhookDelivery
	d.deliveryRepo.EXPECT().Insert(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, del *domain.WebhookDelivery) error {
			inserted = append(inserted, *del)
			return nil
		}).Times(2)

	err := d.dispatcher.Enqueue(ctx, tenantID, "payment.settled", map[string]string{"payment_intent_id": "pi_1"})
	require.NoError(t, err)
	require.Len(t, inserted, 2)
	for _, del := range inserted {
		assert.Equal(t, domain.WebhookDeliveryStatusPending, del.Status)
		assert.Equal(t, "payment.settled", del.EventType)
		var payload map[string]string
		require.NoError(t, json.Unmarshal(del.Payload, &payload))
		assert.Equal(t, "pi_1", payload["payment_intent_id"])
	}
}

func TestWebhookDispatcher_Enqueue_NoActiveEndpoints_Skips(t *testing.T) {
	d := setupWebhookDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()

	d.endpointRepo.EXPECT().ListActiveForEvent(ctx, tenantID, "payment.settled").Return(nil, nil)

	err := d.dispatcher.Enqueue(ctx, tenantID, "payment.settled", map[string]string{})
	require.NoError(t, err)
}

func TestWebhookDispatcher_Dispatch_SuccessMarksDelivered(t *testing.T) {
	d := setupWebhookDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	tx := &mockTx{}
	endpoint := domain.WebhookEndpoint{ID: uuid.New(), TenantID: tenantID, URL: "https://a.example.com", Secret: "s3cr3t", IsActive: true}
	delivery := domain.WebhookDelivery{ID: uuid.New(), EndpointID: endpoint.ID, TenantID: tenantID, EventType: "payment.settled", Payload: []byte(`{"a":1}`), Status: domain.WebhookDeliveryStatusPending}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.deliveryRepo.EXPECT().ClaimBatch(ctx, tx, 50, d.clk.Now()).Return([]domain.WebhookDelivery{delivery}, nil)
	d.endpointRepo.EXPECT().GetByID(ctx, tenantID, endpoint.ID).Return(&endpoint, nil)
	d.sender.EXPECT().Send(ctx, endpoint.URL, delivery.Payload, gomock.Any()).Return(200, nil)
	d.deliveryRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, del *domain.WebhookDelivery) error {
			assert.Equal(t, domain.WebhookDeliveryStatusDelivered, del.Status)
			assert.Equal(t, 1, del.Attempts)
			assert.Nil(t, del.NextRetryAt)
			return nil
		})

	n, err := d.dispatcher.Dispatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWebhookDispatcher_Dispatch_FailureSchedulesRetry(t *testing.T) {
	d := setupWebhookDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	tx := &mockTx{}
	endpoint := domain.WebhookEndpoint{ID: uuid.New(), TenantID: tenantID, URL: "https://a.example.com", Secret: "s3cr3t", IsActive: true}
	delivery := domain.WebhookDelivery{ID: uuid.New(), EndpointID: endpoint.ID, TenantID: tenantID, Status: domain.WebhookDeliveryStatusPending, Attempts: 0}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.deliveryRepo.EXPECT().ClaimBatch(ctx, tx, 50, d.clk.Now()).Return([]domain.WebhookDelivery{delivery}, nil)
	d.endpointRepo.EXPECT().GetByID(ctx, tenantID, endpoint.ID).Return(&endpoint, nil)
	d.sender.EXPECT().Send(ctx, endpoint.URL, delivery.Payload, gomock.Any()).Return(0, errors.New("connection refused"))
	d.deliveryRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, del *domain.WebhookDelivery) error {
			assert.Equal(t, domain.WebhookDeliveryStatusRetrying, del.Status)
			assert.Equal(t, 1, del.Attempts)
			require.NotNil(t, del.NextRetryAt)
			assert.Equal(t, d.clk.Now().Add(60*time.Second), *del.NextRetryAt)
			return nil
		})

	n, err := d.dispatcher.Dispatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWebhookDispatcher_Dispatch_ExhaustedRetriesMarksFailed(t *testing.T) {
	d := setupWebhookDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	tx := &mockTx{}
	endpoint := domain.WebhookEndpoint{ID: uuid.New(), TenantID: tenantID, URL: "https://a.example.com", Secret: "s3cr3t", IsActive: true}
	delivery := domain.WebhookDelivery{ID: uuid.New(), EndpointID: endpoint.ID, TenantID: tenantID, Status: domain.WebhookDeliveryStatusRetrying, Attempts: 2}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.deliveryRepo.EXPECT().ClaimBatch(ctx, tx, 50, d.clk.Now()).Return([]domain.WebhookDelivery{delivery}, nil)
	d.endpointRepo.EXPECT().GetByID(ctx, tenantID, endpoint.ID).Return(&endpoint, nil)
	d.sender.EXPECT().Send(ctx, endpoint.URL, delivery.Payload, gomock.Any()).Return(500, nil)
	d.deliveryRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, del *domain.WebhookDelivery) error {
			assert.Equal(t, domain.WebhookDeliveryStatusFailed, del.Status)
			assert.Equal(t, 3, del.Attempts)
			assert.Nil(t, del.NextRetryAt)
			return nil
		})

	n, err := d.dispatcher.Dispatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWebhookDispatcher_Dispatch_InactiveEndpointMarksFailed(t *testing.T) {
	d := setupWebhookDispatcher(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	tx := &mockTx{}
	endpoint := domain.WebhookEndpoint{ID: uuid.New(), TenantID: tenantID, IsActive: false}
	delivery := domain.WebhookDelivery{ID: uuid.New(), EndpointID: endpoint.ID, TenantID: tenantID, Status: domain.WebhookDeliveryStatusPending}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.deliveryRepo.EXPECT().ClaimBatch(ctx, tx, 50, d.clk.Now()).Return([]domain.WebhookDelivery{delivery}, nil)
	d.endpointRepo.EXPECT().GetByID(ctx, tenantID, endpoint.ID).Return(&endpoint, nil)
	d.deliveryRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, del *domain.WebhookDelivery) error {
			assert.Equal(t, domain.WebhookDeliveryStatusFailed, del.Status)
			return nil
		})

	n, err := d.dispatcher.Dispatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
