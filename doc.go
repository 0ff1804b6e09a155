// Package fblogin is a small HTTP service framework and the home of the
// "Login with Facebook" backend.
//
// The framework lives in an internal package and is re-exported here: an App
// built on chi, a Context with JSON, redirect and logging helpers, typed
// HTTPError values rendered by a single ErrorHandler, health probes, and a
// runtime with graceful shutdown.
//
// # Login Flow
//
// The handlers package serves two routes:
//
//   - GET /api/facebook/user/login returns {"login": "<dialog url>"}. The dialog
//     URL carries a signed state holding the caller's identity token and the
//     requested permissions.
//   - GET /api/facebook/oauth/callback verifies and consumes the state,
//     exchanges the code for an access token with one outbound call and
//     redirects (302) to the index page.
//
// # Wiring
//
//	provider, _ := oauth.NewFacebookProvider(cfg.Facebook)
//	codec, _ := state.NewCodec(cfg.StateSecret, state.WithMaxAge(cfg.StateMaxAge))
//	guard := state.NewGuard(cache.NewMemory[int64](), codec.MaxAge())
//
//	app := fblogin.New(
//	    fblogin.WithLogger("fblogin", middlewares.RequestIDExtractor()),
//	    fblogin.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.AccessLog(),
//	        middlewares.Recover(),
//	        middlewares.Timeout(15*time.Second),
//	    ),
//	    fblogin.WithErrorHandler(handlers.ErrorHandler),
//	    fblogin.WithHandlers(handlers.NewFacebook(provider, codec, guard, handlers.FacebookConfig{
//	        IndexURL: "http://localhost:8000/index",
//	    })),
//	    fblogin.WithHealthChecks(),
//	)
//	err := app.Run(":8080", fblogin.ShutdownTimeout(10*time.Second))
//
// See cmd/server for the complete, environment-driven setup.
package fblogin
