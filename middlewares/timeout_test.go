package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fblogin/internal"
	"github.com/dmitrymomot/fblogin/middlewares"
)

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("fast handler unaffected", func(t *testing.T) {
		t.Parallel()

		var errs []error
		w := serve(httptest.NewRequest(http.MethodGet, "/test", nil), func(c internal.Context) error {
			_, ok := c.Deadline()
			require.True(t, ok)
			return c.String(http.StatusOK, "ok")
		}, &errs, middlewares.Timeout(time.Second))

		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, errs)
	})

	t.Run("slow handler gets TimeoutError", func(t *testing.T) {
		t.Parallel()

		var errs []error
		handlerErr := errors.New("upstream cancelled")
		w := serve(httptest.NewRequest(http.MethodGet, "/test", nil), func(c internal.Context) error {
			<-c.Done()
			return handlerErr
		}, &errs, middlewares.Timeout(20*time.Millisecond))

		require.Equal(t, http.StatusTeapot, w.Code)
		require.Len(t, errs, 1)

		te, ok := middlewares.AsTimeoutError(errs[0])
		require.True(t, ok)
		require.Equal(t, 20*time.Millisecond, te.Duration)
		require.ErrorIs(t, errs[0], handlerErr)
	})

	t.Run("non-positive uses default", func(t *testing.T) {
		t.Parallel()

		var deadline time.Time
		serve(httptest.NewRequest(http.MethodGet, "/test", nil), func(c internal.Context) error {
			deadline, _ = c.Deadline()
			return nil
		}, nil, middlewares.Timeout(0))

		require.WithinDuration(t, time.Now().Add(middlewares.DefaultTimeout), deadline, 5*time.Second)
	})
}
