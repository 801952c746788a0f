package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"

	pkgerrors "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/errors"
)

type guestCartStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	GuestCartKey(token string) string
}

// guestLines maps product ID to quantity, the shape stored in Redis.
type guestLines map[uuid.UUID]int

// GuestStore keeps anonymous carts in Redis, keyed by an opaque token the
// browser holds. Entries expire after the configured TTL and the TTL refreshes
// on every write.
type GuestStore struct {
	store guestCartStore
	ttl   time.Duration
}

// NewGuestStore wires the Redis-backed guest cart storage.
func NewGuestStore(store guestCartStore, ttl time.Duration) (*GuestStore, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "guest cart store is required")
	}
	if ttl <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "guest cart ttl must be positive")
	}
	return &GuestStore{store: store, ttl: ttl}, nil
}

// NewToken mints a fresh guest cart token.
func (g *GuestStore) NewToken() string {
	return uuid.NewString()
}

// Load returns the lines stored under token. A missing or expired token reads
// as an empty cart.
func (g *GuestStore) Load(ctx context.Context, token string) (guestLines, error) {
	raw, err := g.store.Get(ctx, g.store.GuestCartKey(token))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return guestLines{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to load guest cart")
	}

	var lines guestLines
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "corrupt guest cart payload")
	}
	if lines == nil {
		lines = guestLines{}
	}
	return lines, nil
}

// Save writes the lines under token and refreshes the TTL. Empty carts delete
// the key instead of storing an empty document.
func (g *GuestStore) Save(ctx context.Context, token string, lines guestLines) error {
	key := g.store.GuestCartKey(token)
	if len(lines) == 0 {
		if err := g.store.Del(ctx, key); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to clear guest cart")
		}
		return nil
	}

	payload, err := json.Marshal(lines)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to encode guest cart")
	}
	if err := g.store.Set(ctx, key, payload, g.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to save guest cart")
	}
	return nil
}

// Delete drops the guest cart entirely.
func (g *GuestStore) Delete(ctx context.Context, token string) error {
	if err := g.store.Del(ctx, g.store.GuestCartKey(token)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to delete guest cart")
	}
	return nil
}
