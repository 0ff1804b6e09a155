package state

import "time"

// DefaultMaxAge bounds how long a login attempt may take between issuing the
// dialog URL and the provider calling back.
const DefaultMaxAge = 10 * time.Minute

// MinSecretLength is the minimum HMAC key size in bytes.
const MinSecretLength = 32

// Option configures a Codec.
type Option func(*Codec)

// WithMaxAge sets how long an encoded state stays valid.
// Non-positive values keep the default.
func WithMaxAge(d time.Duration) Option {
	return func(c *Codec) {
		if d > 0 {
			c.maxAge = d
		}
	}
}

// WithClock overrides the time source for issuing and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}
