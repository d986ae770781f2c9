// Package webhooksender implements ports.WebhookSender over net/http.
package webhooksender

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"
)

// HTTPDoer is the subset of *http.Client the sender needs, so tests can
// substitute a fake round tripper without spinning up a server.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Sender posts signed webhook bodies to tenant-configured endpoints.
type Sender struct {
	client HTTPDoer
}

// New creates a Sender with a bounded-timeout HTTP client.
func New(timeout time.Duration) *Sender {
	return &Sender{client: &http.Client{Timeout: timeout}}
}

// NewWithClient creates a Sender over a caller-supplied HTTPDoer, for tests.
func NewWithClient(client HTTPDoer) *Sender {
	return &Sender{client: client}
}

// Send POSTs body to url with the X-Signature header set to the hex HMAC
// the dispatcher computed, returning the response status code.
func (s *Sender) Send(ctx context.Context, url string, body []byte, signature string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Signature", signature)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("send webhook: %w", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}
