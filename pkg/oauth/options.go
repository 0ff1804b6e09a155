package oauth

import (
	"net/http"
	"time"
)

// Option configures a provider.
type Option func(*options)

type options struct {
	httpClient *http.Client
	timeout    time.Duration
}

// WithHTTPClient sets the client used for the token exchange.
// Tests point it at an httptest server; production code may add tracing transports.
// The client's Timeout is overridden by the exchange timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithExchangeTimeout bounds the single outbound token request.
// It takes precedence over FacebookConfig.ExchangeTimeout.
func WithExchangeTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}
