package domain

import (
	"time"

	"github.com/google/uuid"
)

// WebhookDeliveryStatus is the delivery state of a WebhookDelivery.
type WebhookDeliveryStatus string

const (
	WebhookDeliveryStatusPending   WebhookDeliveryStatus = "PENDING"
	WebhookDeliveryStatusRetrying  WebhookDeliveryStatus = "RETRYING"
	WebhookDeliveryStatusDelivered WebhookDeliveryStatus = "DELIVERED"
	WebhookDeliveryStatusFailed    WebhookDeliveryStatus = "FAILED"
)

// WebhookEndpoint is a tenant's subscription to outbound event notifications.
type WebhookEndpoint struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	URL       string    `json:"url"`
	Secret    string    `json:"-"` // 32-byte hex, never exposed
	Events    []string  `json:"events"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Matches reports whether eventType is eligible for delivery to this
// endpoint: either it's listed explicitly, or the endpoint subscribes to "*".
func (e WebhookEndpoint) Matches(eventType string) bool {
	for _, want := range e.Events {
		if want == "*" || want == eventType {
			return true
		}
	}
	return false
}

// WebhookDelivery is one attempted (or pending) delivery of an event to a
// single endpoint.
type WebhookDelivery struct {
	ID            uuid.UUID             `json:"id"`
	EndpointID    uuid.UUID             `json:"endpoint_id"`
	TenantID      uuid.UUID             `json:"tenant_id"`
	EventType     string                `json:"event_type"`
	Payload       []byte                `json:"payload"`
	Status        WebhookDeliveryStatus `json:"status"`
	Attempts      int                   `json:"attempts"`
	LastAttemptAt *time.Time            `json:"last_attempt_at,omitempty"`
	ResponseCode  *int                  `json:"response_code,omitempty"`
	NextRetryAt   *time.Time            `json:"next_retry_at,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}
