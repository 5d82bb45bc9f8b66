package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/furnworld/storefront/internal/domain"
	apperrors "github.com/furnworld/storefront/pkg/errors"
)

const cartKeyPrefix = "cart:"

// cartSchemaVersion is the current version of the persisted cart payload.
// Bump it when the cart shape changes in a way old readers cannot handle.
const cartSchemaVersion = 1

// cartEnvelope wraps the persisted cart with a schema version so a future
// shape change can be detected at load time instead of silently misparsing.
type cartEnvelope struct {
	SchemaVersion int          `json:"schema_version"`
	Cart          *domain.Cart `json:"cart"`
}

// CartRepository implements repository.CartRepository using Redis.
type CartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartRepository creates a new Redis-backed cart repository.
func NewCartRepository(client *redis.Client, ttl time.Duration) *CartRepository {
	return &CartRepository{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves a cart by its ID from Redis. Payloads that cannot be parsed,
// or that carry a schema version newer than this build understands, are
// discarded and reported as not found so the caller starts from an empty
// cart instead of failing.
func (r *CartRepository) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	key := cartKeyPrefix + cartID

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFound("cart", cartID)
		}
		return nil, fmt.Errorf("redis get cart: %w", err)
	}

	cart, ok := decodeCart(data)
	if !ok {
		// Stale or corrupt payload. Drop it so the next Save starts clean.
		_ = r.client.Del(ctx, key).Err()
		return nil, apperrors.NotFound("cart", cartID)
	}

	return cart, nil
}

// Save persists a cart to Redis with the configured TTL. The payload is
// wrapped in a versioned envelope.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	key := cartKeyPrefix + cart.ID

	data, err := json.Marshal(cartEnvelope{
		SchemaVersion: cartSchemaVersion,
		Cart:          cart,
	})
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}

	return nil
}

// Delete removes a cart from Redis by its ID.
func (r *CartRepository) Delete(ctx context.Context, cartID string) error {
	key := cartKeyPrefix + cartID

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del cart: %w", err)
	}

	return nil
}

// decodeCart parses a persisted payload into a cart. Version 0 payloads are
// the legacy bare cart shape written before the envelope existed and are
// migrated in place. Versions newer than cartSchemaVersion are rejected.
func decodeCart(data []byte) (*domain.Cart, bool) {
	var env cartEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, false
	}

	switch {
	case env.SchemaVersion == cartSchemaVersion && env.Cart != nil:
		return env.Cart, true
	case env.SchemaVersion == 0:
		var cart domain.Cart
		if err := json.Unmarshal(data, &cart); err != nil || cart.ID == "" {
			return nil, false
		}
		return &cart, true
	default:
		return nil, false
	}
}
