package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Cache is a generic key-value store with per-entry TTL.
//
// TTL semantics for Set and Add:
//   - Positive duration: entry expires after this duration
//   - Zero: the store's default TTL applies
//   - Negative: entry never expires
type Cache[V any] interface {
	// Get returns ErrNotFound if the key is missing or expired.
	Get(ctx context.Context, key string) (V, error)

	// Set stores value under key, replacing any previous entry.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// Add stores value only if key is absent or expired.
	// It reports whether the value was stored. The check and the write are
	// a single atomic step, so of two concurrent Adds exactly one wins.
	Add(ctx context.Context, key string, value V, ttl time.Duration) (bool, error)

	Delete(ctx context.Context, key string) error

	Has(ctx context.Context, key string) (bool, error)

	// Close releases resources held by the store itself.
	Close() error
}

// Marshaler converts values to bytes for backends that store raw bytes.
type Marshaler[V any] interface {
	Marshal(v V) ([]byte, error)
	Unmarshal(data []byte) (V, error)
}

type jsonMarshaler[V any] struct{}

func (jsonMarshaler[V]) Marshal(v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrMarshal, err)
	}
	return data, nil
}

func (jsonMarshaler[V]) Unmarshal(data []byte) (V, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(ErrUnmarshal, err)
	}
	return v, nil
}
