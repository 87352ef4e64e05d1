package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/utilize/marketplace-api/internal/core/domain"
	"github.com/utilize/marketplace-api/internal/core/ports"
)

const (
	defaultIdempotencyTTL = 24 * time.Hour

	// pendingMarker holds a claimed key until its purchase is stored.
	pendingMarker = "pending"
	// pendingTTL bounds how long a crashed request can block its key.
	pendingTTL = 30 * time.Second
)

// IdempotencyStore maps Idempotency-Key headers to the purchase they created.
// Key format: idempotency:purchase:<owner email>:<key>
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore wraps client. Completed keys expire after ttl, or after
// a day when ttl is not positive.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Claim reserves key with SETNX. Exactly one concurrent caller gets
// claimed=true; the others see the recorded purchase id, or
// domain.ErrPurchaseInProgress while the claim is still pending.
func (s *IdempotencyStore) Claim(ctx context.Context, key ports.IdempotencyKey) (string, bool, error) {
	k := s.key(key)

	// A second round covers a pending claim expiring between SETNX and GET.
	for attempt := 0; attempt < 2; attempt++ {
		ok, err := s.client.SetNX(ctx, k, pendingMarker, s.pendingTTL()).Result()
		if err != nil {
			return "", false, fmt.Errorf("idempotency claim: %w", err)
		}
		if ok {
			return "", true, nil
		}

		id, err := s.client.Get(ctx, k).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return "", false, fmt.Errorf("idempotency claim: %w", err)
		}
		if id == pendingMarker {
			return "", false, domain.ErrPurchaseInProgress
		}
		return id, false, nil
	}
	return "", false, domain.ErrPurchaseInProgress
}

// Complete records purchaseID for a key previously claimed by the caller.
func (s *IdempotencyStore) Complete(ctx context.Context, key ports.IdempotencyKey, purchaseID string) error {
	if err := s.client.Set(ctx, s.key(key), purchaseID, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency complete: %w", err)
	}
	return nil
}

// Release drops a claim whose purchase could not be stored so the client can retry.
func (s *IdempotencyStore) Release(ctx context.Context, key ports.IdempotencyKey) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) pendingTTL() time.Duration {
	if s.ttl < pendingTTL {
		return s.ttl
	}
	return pendingTTL
}

func (s *IdempotencyStore) key(key ports.IdempotencyKey) string {
	return "idempotency:purchase:" + key.Owner + ":" + key.Key
}
