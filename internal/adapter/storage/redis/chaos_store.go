package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ricartefelipe/payments-ledger/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ChaosStore implements ports.ChaosStore using Redis, keyed chaos:<tenant>.
type ChaosStore struct {
	client *goredis.Client
}

// NewChaosStore creates a new Redis-backed chaos settings store.
func NewChaosStore(client *goredis.Client) *ChaosStore {
	return &ChaosStore{client: client}
}

func (s *ChaosStore) key(tenantID uuid.UUID) string {
	return fmt.Sprintf("chaos:%s", tenantID)
}

// Get returns the tenant's fault-injection settings, or nil if none were
// ever configured.
func (s *ChaosStore) Get(ctx context.Context, tenantID uuid.UUID) (*ports.ChaosSettings, error) {
	raw, err := s.client.Get(ctx, s.key(tenantID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis chaos get: %w", err)
	}

	var settings ports.ChaosSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("unmarshal chaos settings: %w", err)
	}
	return &settings, nil
}

// Set persists the tenant's fault-injection settings with no expiry; an
// operator clears chaos mode explicitly rather than letting it lapse.
func (s *ChaosStore) Set(ctx context.Context, tenantID uuid.UUID, settings ports.ChaosSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal chaos settings: %w", err)
	}
	if err := s.client.Set(ctx, s.key(tenantID), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis chaos set: %w", err)
	}
	return nil
}
