// Package internal provides the core types and implementation behind the
// fblogin HTTP framework.
//
// This package is internal and should not be imported directly. Import
// "github.com/dmitrymomot/fblogin" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: Orchestrates routing, middleware, health endpoints, and graceful shutdown
//   - Context: Request/response access plus JSON, redirect, and logging helpers
//   - Router: Interface handlers use to declare routes and groups
//   - Handler: Implemented by types that declare routes on a router
//   - HandlerFunc: Route handler signature that returns an error
//   - Middleware: Wraps handlers to add cross-cutting concerns
//   - ErrorHandler: Renders errors returned from handlers
//   - Extractor: Reads a value (such as a bearer token) from ordered request sources
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed to any call that expects
// one. Deadline, Done, Err and Value delegate to the request context:
//
//	func (h *Facebook) callback(c fblogin.Context) error {
//	    record, err := h.provider.Exchange(c, c.Query("code"))
//	    if err != nil {
//	        return err
//	    }
//	    return c.Redirect(http.StatusFound, h.indexURL)
//	}
//
// # Application Structure
//
//	app := internal.New(
//	    internal.WithHandlers(facebookHandler),
//	    internal.WithMiddleware(requestIDMiddleware, recoverMiddleware),
//	    internal.WithHealthChecks(internal.WithReadinessCheck("redis", redisCheck)),
//	)
//
// Handlers receive dependencies via constructor injection, not context helpers.
//
// # Error Handling
//
// Handlers return errors instead of writing error responses. The configured
// ErrorHandler decides how to render them. Without one, a plain 500 is written.
// Errors returned after the response has been written are only logged.
//
// # Response Writer
//
// Every request is served through a single ResponseWriter that tracks status,
// size, and whether headers were flushed. OnBeforeWrite hooks run exactly once,
// right before the first header write.
//
// # Server Lifecycle
//
// Run listens, reports the bound address through OnReady, and blocks until
// SIGINT, SIGTERM, or cancellation of the base context. Shutdown stops the HTTP
// server first and then runs shutdown hooks in registration order.
package internal
