// Command server runs the Facebook login service.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/fblogin"
	"github.com/dmitrymomot/fblogin/handlers"
	"github.com/dmitrymomot/fblogin/middlewares"
	"github.com/dmitrymomot/fblogin/pkg/cache"
	"github.com/dmitrymomot/fblogin/pkg/logger"
	"github.com/dmitrymomot/fblogin/pkg/oauth"
	"github.com/dmitrymomot/fblogin/pkg/redis"
	"github.com/dmitrymomot/fblogin/pkg/state"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Sentry, logger.ParseLevel(cfg.LogLevel),
		middlewares.RequestIDExtractor(),
	).With(slog.String("app", "fblogin"))

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	provider, err := oauth.NewFacebookProvider(cfg.Facebook)
	if err != nil {
		return err
	}

	codec, err := state.NewCodec(cfg.StateSecret, state.WithMaxAge(cfg.StateMaxAge))
	if err != nil {
		return err
	}

	var (
		store     cache.Cache[int64]
		readiness []fblogin.HealthOption
		hooks     []fblogin.RunOption
	)
	if cfg.Redis.Enabled() {
		client, err := redis.Open(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		store = cache.NewRedis[int64](client, nil, cache.WithPrefix("fblogin"))
		readiness = append(readiness, fblogin.WithReadinessCheck("redis", redis.Healthcheck(client)))
		hooks = append(hooks, fblogin.ShutdownHook(redis.Shutdown(client)))
		log.Info("replay store: redis")
	} else {
		mem := cache.NewMemory[int64]()
		store = mem
		hooks = append(hooks, fblogin.ShutdownHook(func(context.Context) error { return mem.Close() }))
		log.Warn("replay store: memory, single instance only")
	}

	app := fblogin.New(
		fblogin.WithCustomLogger(log),
		fblogin.WithMiddleware(
			middlewares.RequestID(),
			middlewares.AccessLog(),
			middlewares.Recover(),
			middlewares.Timeout(cfg.RequestTimeout),
		),
		fblogin.WithErrorHandler(handlers.ErrorHandler),
		fblogin.WithNotFoundHandler(handlers.NotFound),
		fblogin.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		fblogin.WithHealthChecks(readiness...),
		fblogin.WithHandlers(handlers.NewFacebook(
			provider,
			codec,
			state.NewGuard(store, codec.MaxAge()),
			cfg.Handler,
		)),
	)

	opts := append([]fblogin.RunOption{
		fblogin.Logger(log),
		fblogin.WithContext(ctx),
		fblogin.ShutdownTimeout(cfg.ShutdownTimeout),
		fblogin.OnReady(func(addr string) {
			log.Info("server listening",
				slog.String("addr", addr),
				slog.String("redirect_url", cfg.Facebook.RedirectURL),
			)
		}),
	}, hooks...)
	opts = append(opts, fblogin.ShutdownHook(logger.SentryFlush()))

	return app.Run(cfg.HTTPAddr, opts...)
}
