package redis

// Package redis provides Redis-based adapters for the m360 system.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/monastery360/m360-api/internal/domain/auth"
	"github.com/monastery360/m360-api/internal/ports"
)

// IdentitySlot persists the gateway's current-identity slot in Redis so
// the session survives process restarts and is shared across replicas.
// The in-memory slot remains the default for single-process use.
type IdentitySlot struct {
	client redis.UniversalClient
	key    string
}

var _ ports.IdentitySlot = (*IdentitySlot)(nil)

// NewIdentitySlot creates a Redis-backed identity slot.
func NewIdentitySlot(client redis.UniversalClient) *IdentitySlot {
	return &IdentitySlot{client: client, key: "session:current"}
}

// NewIdentitySlotWithKey creates a Redis identity slot under a custom key.
func NewIdentitySlotWithKey(client redis.UniversalClient, key string) *IdentitySlot {
	return &IdentitySlot{client: client, key: key}
}

func (s *IdentitySlot) Put(ctx context.Context, id domainauth.Identity) error {
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	// No TTL: the slot has no expiry semantics, only explicit invalidation.
	return s.client.Set(ctx, s.key, data, 0).Err()
}

func (s *IdentitySlot) Get(ctx context.Context) (domainauth.Identity, bool, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Identity{}, false, nil
		}
		return domainauth.Identity{}, false, fmt.Errorf("redis get: %w", err)
	}

	var id domainauth.Identity
	if unmarshalErr := json.Unmarshal([]byte(data), &id); unmarshalErr != nil {
		return domainauth.Identity{}, false, fmt.Errorf("unmarshal identity: %w", unmarshalErr)
	}
	return id, true, nil
}

func (s *IdentitySlot) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
