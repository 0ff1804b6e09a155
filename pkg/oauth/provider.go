package oauth

import "context"

// Provider abstracts the two OAuth2 steps the login flow needs.
type Provider interface {
	// Name returns the provider identifier, e.g. "facebook".
	Name() string

	// AuthCodeURL returns the login dialog URL carrying state and the requested permissions.
	AuthCodeURL(state string, perms []string) string

	// TokenURL returns the token endpoint. It holds no secrets and is safe to log.
	TokenURL() string

	// Exchange trades an authorization code for an access token with one outbound call.
	// Every failure is reported wrapped in ErrExchangeFailed.
	Exchange(ctx context.Context, code string) (*AccessTokenRecord, error)
}
