package middlewares

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/fblogin/internal"
)

// AccessLog logs one line per request with method, path, status, size and
// duration. The query string is left out because the OAuth callback carries
// the authorization code and the signed state there.
func AccessLog() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Duration("duration", time.Since(start)),
			}
			if rw, ok := c.Response().(*internal.ResponseWriter); ok && rw.Written() {
				attrs = append(attrs, slog.Int("status", rw.Status()), slog.Int64("size", rw.Size()))
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}
			c.LogInfo("request completed", attrs...)
			return err
		}
	}
}
