// Package middlewares provides the request-scoped middleware of the fblogin server.
//
// # Request ID
//
// RequestID reuses a well-formed X-Request-ID (or X-Correlation-ID) from the
// caller or generates a UUIDv4, stores it in the request context and echoes it
// in the X-Request-ID response header. Pair it with RequestIDExtractor so every
// log line carries request_id:
//
//	app := fblogin.New(
//	    fblogin.WithLogger("api", middlewares.RequestIDExtractor()),
//	    fblogin.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Access Log
//
// AccessLog writes one "request completed" line with method, path, status,
// size and duration. The query string is never logged.
//
// # Recover
//
// Recover converts a panic into a *PanicError with the stack attached and logs it.
//
// # Timeout
//
// Timeout attaches a deadline to the request context and reports a
// *TimeoutError when the chain returns after the deadline without having
// written a response. Outbound calls made with the request context, such as the
// OAuth token exchange, are cancelled when the deadline passes.
//
// # Ordering
//
// Register RequestID first so the other middleware and the error handler can
// read the ID, then AccessLog, Recover and Timeout:
//
//	fblogin.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.AccessLog(),
//	    middlewares.Recover(),
//	    middlewares.Timeout(15*time.Second),
//	)
package middlewares
