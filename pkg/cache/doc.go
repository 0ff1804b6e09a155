// Package cache provides a small generic key-value store with TTLs and an
// atomic set-if-absent operation.
//
// Two backends implement [Cache]:
//
//   - [Memory]: process-local map behind a mutex, for single-instance deployments and tests
//   - [Redis]: shared store on go-redis, for deployments with more than one instance
//
// # Set-if-absent
//
// [Cache.Add] stores a value only if the key is not already present and
// reports whether it did. The OAuth state replay guard is built on it: the
// first callback that presents a state wins, every later one loses.
//
//	ok, err := c.Add(ctx, digest, time.Now().Unix(), 10*time.Minute)
//	if err != nil {
//	    return err
//	}
//	if !ok {
//	    return state.ErrReused
//	}
//
// # TTL Semantics
//
// Positive TTL expires the entry after that duration, zero applies the
// configured default, and a negative TTL keeps the entry until deleted.
package cache
