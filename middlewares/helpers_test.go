package middlewares_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/dmitrymomot/fblogin/internal"
)

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

// serve runs a single GET /test request through an app built with mw and the
// given handler. Errors are rendered as "<status>: <message>" plain text.
func serve(req *http.Request, h internal.HandlerFunc, errs *[]error, mw ...internal.Middleware) *httptest.ResponseRecorder {
	app := internal.New(
		internal.WithMiddleware(mw...),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			if errs != nil {
				*errs = append(*errs, err)
			}
			return c.String(http.StatusTeapot, err.Error())
		}),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/test", h)
		})),
	)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}
