package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fblogin/internal"
	"github.com/dmitrymomot/fblogin/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("panic becomes PanicError with stack", func(t *testing.T) {
		t.Parallel()

		var errs []error
		w := serve(httptest.NewRequest(http.MethodGet, "/test", nil), func(c internal.Context) error {
			panic("boom")
		}, &errs, middlewares.Recover())

		require.Equal(t, http.StatusTeapot, w.Code)
		require.Len(t, errs, 1)

		pe, ok := middlewares.AsPanicError(errs[0])
		require.True(t, ok)
		require.Equal(t, "boom", pe.Value)
		require.NotEmpty(t, pe.Stack)
		require.Equal(t, "panic: boom", pe.Error())
	})

	t.Run("stack disabled", func(t *testing.T) {
		t.Parallel()

		var errs []error
		serve(httptest.NewRequest(http.MethodGet, "/test", nil), func(c internal.Context) error {
			panic(42)
		}, &errs, middlewares.Recover(middlewares.WithRecoverDisablePrintStack()))

		require.Len(t, errs, 1)
		pe, ok := middlewares.AsPanicError(errs[0])
		require.True(t, ok)
		require.Equal(t, 42, pe.Value)
		require.Nil(t, pe.Stack)
	})

	t.Run("stack size limit", func(t *testing.T) {
		t.Parallel()

		var errs []error
		serve(httptest.NewRequest(http.MethodGet, "/test", nil), func(c internal.Context) error {
			panic("small")
		}, &errs, middlewares.Recover(middlewares.WithRecoverStackSize(64)))

		pe, ok := middlewares.AsPanicError(errs[0])
		require.True(t, ok)
		require.LessOrEqual(t, len(pe.Stack), 64)
	})

	t.Run("no panic passes through", func(t *testing.T) {
		t.Parallel()

		var errs []error
		w := serve(httptest.NewRequest(http.MethodGet, "/test", nil), func(c internal.Context) error {
			return c.String(http.StatusOK, "ok")
		}, &errs, middlewares.Recover())

		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, errs)
	})
}
