package cache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fblogin/pkg/cache"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newMemory[V any](t *testing.T, opts ...cache.MemoryOption) *cache.Memory[V] {
	t.Helper()
	opts = append([]cache.MemoryOption{cache.WithCleanupInterval(0)}, opts...)
	c := cache.NewMemory[V](opts...)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestMemory_GetSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := newMemory[string](t)

	_, err := c.Get(ctx, "missing")
	require.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, c.Set(ctx, "k", "v1", time.Minute))
	require.NoError(t, c.Set(ctx, "k", "v2", time.Minute))

	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v2", v)

	require.NoError(t, c.Delete(ctx, "k"))
	ok, err := c.Has(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemory_Expiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	c := newMemory[int](t, cache.WithClock(clock.Now), cache.WithDefaultTTL(time.Minute))

	require.NoError(t, c.Set(ctx, "ttl", 1, 10*time.Second))
	require.NoError(t, c.Set(ctx, "default", 2, 0))
	require.NoError(t, c.Set(ctx, "forever", 3, -1))

	clock.Advance(10 * time.Second)
	_, err := c.Get(ctx, "ttl")
	require.ErrorIs(t, err, cache.ErrNotFound)

	ok, _ := c.Has(ctx, "default")
	require.True(t, ok)

	clock.Advance(time.Hour)
	ok, _ = c.Has(ctx, "default")
	require.False(t, ok)

	v, err := c.Get(ctx, "forever")
	require.NoError(t, err)
	require.Equal(t, 3, v)
}

func TestMemory_Add(t *testing.T) {
	t.Parallel()

	t.Run("second add loses", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		c := newMemory[int64](t)

		ok, err := c.Add(ctx, "state", 1, time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = c.Add(ctx, "state", 2, time.Minute)
		require.NoError(t, err)
		require.False(t, ok)

		v, err := c.Get(ctx, "state")
		require.NoError(t, err)
		require.Equal(t, int64(1), v)
	})

	t.Run("expired key can be added again", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
		c := newMemory[int64](t, cache.WithClock(clock.Now))

		ok, err := c.Add(ctx, "state", 1, time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		clock.Advance(time.Minute)

		ok, err = c.Add(ctx, "state", 2, time.Minute)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("exactly one concurrent winner", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		c := newMemory[int](t)

		var (
			wg   sync.WaitGroup
			wins atomic.Int32
		)
		for i := range 64 {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				ok, err := c.Add(ctx, "race", i, time.Minute)
				if err == nil && ok {
					wins.Add(1)
				}
			}(i)
		}
		wg.Wait()

		require.Equal(t, int32(1), wins.Load())
	})
}

func TestMemory_Closed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := cache.NewMemory[string](cache.WithCleanupInterval(0))
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	require.ErrorIs(t, c.Set(ctx, "k", "v", 0), cache.ErrClosed)
	_, err := c.Add(ctx, "k", "v", 0)
	require.ErrorIs(t, err, cache.ErrClosed)
	require.ErrorIs(t, c.Delete(ctx, "k"), cache.ErrClosed)
}

func TestMemory_Janitor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := cache.NewMemory[string](cache.WithCleanupInterval(10 * time.Millisecond))
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Set(ctx, "short", "v", 5*time.Millisecond))
	require.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 10*time.Millisecond)
}
