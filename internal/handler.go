package internal

// Handler declares routes on a router.
//
// Example:
//
//	type FacebookHandler struct {
//	    provider *oauth.FacebookProvider
//	}
//
//	func (h *FacebookHandler) Routes(r fblogin.Router) {
//	    r.GET("/user/login", h.login)
//	    r.GET("/oauth/callback", h.callback)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands it to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
//
// Example:
//
//	func RequireJSON(next fblogin.HandlerFunc) fblogin.HandlerFunc {
//	    return func(c fblogin.Context) error {
//	        if c.Header("Accept") != "application/json" {
//	            return c.Error(http.StatusNotAcceptable, "json only")
//	        }
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
