package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/fblogin/handlers"
	"github.com/dmitrymomot/fblogin/pkg/logger"
	"github.com/dmitrymomot/fblogin/pkg/oauth"
	"github.com/dmitrymomot/fblogin/pkg/redis"
)

// Config is the server configuration, read from the environment.
type Config struct {
	Facebook oauth.FacebookConfig
	Handler  handlers.FacebookConfig
	Redis    redis.Config
	Sentry   logger.SentryConfig

	StateSecret     string        `env:"STATE_SECRET,required,notEmpty,unset"`
	StateMaxAge     time.Duration `env:"STATE_MAX_AGE" envDefault:"10m"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

func loadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
