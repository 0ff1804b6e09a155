// Package redis opens and manages the go-redis client that backs the shared
// OAuth state replay store.
//
// Redis is optional. When REDIS_URL is empty the server keeps consumed states
// in process memory, which is only correct for a single instance.
//
//	cfg := redis.Config{URL: os.Getenv("REDIS_URL")}
//	client, err := redis.Open(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	app := fblogin.New(fblogin.WithHealthChecks(
//	    fblogin.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	))
//	return app.Run(addr, fblogin.ShutdownHook(redis.Shutdown(client)))
//
// Open retries the initial ping with linear backoff (RetryAttempts times,
// RetryInterval apart) so the service survives Redis starting a little later.
// Errors are joined with [ErrEmptyConnectionURL], [ErrFailedToParseURL],
// [ErrConnectionFailed] or [ErrHealthcheckFailed].
package redis
