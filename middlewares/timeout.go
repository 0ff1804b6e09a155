package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/fblogin/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout puts a deadline on the request context. Handlers pass the context
// to outbound calls (the token exchange), so those calls are cancelled when it
// expires. If the deadline has passed when the chain returns and nothing was
// written yet, a *TimeoutError is returned for the error handler (504).
//
// The chain runs on the request goroutine, so a timed out handler can never
// write concurrently with the error handler.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			parent := c.Context()
			ctx, cancel := context.WithTimeout(parent, timeout)
			defer cancel()

			c.SetContext(ctx)
			err := next(c)
			c.SetContext(parent)

			if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Written() {
				c.LogWarn("request timeout", "timeout", timeout.String())
				return &TimeoutError{Duration: timeout, Err: err}
			}
			return err
		}
	}
}
