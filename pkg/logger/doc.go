// Package logger builds the service's structured JSON loggers on top of
// log/slog, with per-request attribute extraction and optional Sentry delivery.
//
// # Basic Usage
//
//	log := logger.New(logger.ParseLevel(os.Getenv("LOG_LEVEL")), middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "oauth callback completed")
//	// {"level":"INFO","msg":"oauth callback completed","request_id":"..."}
//
// Extractors run on every log call, so values stored in the request context
// after the logger was built still show up.
//
// # Sentry
//
// NewWithSentry fans records out to stdout and Sentry. Errors become Sentry
// issues; warnings are stored as logs. With an empty DSN, or when the SDK
// fails to initialize, it falls back to stdout only. Register SentryFlush as a
// shutdown hook to drain buffered events.
//
// # Levels
//
// Sensitive values such as identity tokens and signed state are only ever
// logged at debug level by the handlers. ParseLevel defaults to info, so they
// stay out of production logs unless debug is enabled explicitly.
package logger
