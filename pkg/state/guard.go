package state

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/dmitrymomot/fblogin/pkg/cache"
)

// Guard makes every state value single-use.
//
// A consumed value is remembered for as long as it could still pass Decode,
// so the store never grows past the states issued within one max age.
type Guard struct {
	store cache.Cache[int64]
	ttl   time.Duration
	now   func() time.Time
}

// NewGuard remembers consumed states in store for ttl.
// Pass Codec.MaxAge as ttl.
func NewGuard(store cache.Cache[int64], ttl time.Duration) *Guard {
	if ttl <= 0 {
		ttl = DefaultMaxAge
	}
	return &Guard{store: store, ttl: ttl, now: time.Now}
}

// Consume marks value as used. It returns ErrReused if value was consumed
// before, and ErrStoreUnavailable joined with the cause if the store failed.
// Concurrent calls with the same value succeed exactly once.
func (g *Guard) Consume(ctx context.Context, value string) error {
	added, err := g.store.Add(ctx, key(value), g.now().Unix(), g.ttl)
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if !added {
		return ErrReused
	}
	return nil
}

// key hashes the state so raw identity tokens never reach the store.
func key(value string) string {
	sum := sha256.Sum256([]byte(value))
	return "state:" + hex.EncodeToString(sum[:])
}
