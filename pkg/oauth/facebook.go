package oauth

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// FacebookProviderName is the identifier for the Facebook provider.
const FacebookProviderName = "facebook"

// FacebookProvider implements Provider for Facebook Login.
type FacebookProvider struct {
	config     *oauth2.Config
	httpClient *http.Client
	timeout    time.Duration
}

// NewFacebookProvider validates cfg and creates the provider.
// Empty endpoint URLs fall back to the Graph API v2.12 defaults.
func NewFacebookProvider(cfg FacebookConfig, opts ...Option) (*FacebookProvider, error) {
	if cfg.AppID == "" {
		return nil, ErrMissingClientID
	}
	if cfg.AppSecret == "" {
		return nil, ErrMissingClientSecret
	}
	if cfg.RedirectURL == "" {
		return nil, ErrMissingRedirectURL
	}

	dialogURL := cmp.Or(cfg.DialogURL, FacebookDialogURL)
	tokenURL := cmp.Or(cfg.TokenURL, FacebookTokenURL)
	for _, raw := range []string{dialogURL, tokenURL, cfg.RedirectURL} {
		if err := validateEndpoint(raw); err != nil {
			return nil, err
		}
	}

	o := options{timeout: cfg.ExchangeTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.timeout <= 0 {
		o.timeout = defaultExchangeTimeout
	}

	// Copy so the caller's client keeps its own Timeout.
	client := &http.Client{}
	if o.httpClient != nil {
		*client = *o.httpClient
	}
	client.Timeout = o.timeout

	return &FacebookProvider{
		config: &oauth2.Config{
			ClientID:     cfg.AppID,
			ClientSecret: cfg.AppSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  dialogURL,
				TokenURL: tokenURL,
				// Credentials go in the form body. Auto-detection would retry
				// with the other style and issue a second request.
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: client,
		timeout:    o.timeout,
	}, nil
}

// Name returns the provider identifier.
func (p *FacebookProvider) Name() string {
	return FacebookProviderName
}

// AuthCodeURL builds the login dialog URL with client_id, redirect_uri,
// response_type=code, state and, when perms is not empty, a comma-joined scope.
// The app secret is never part of this URL.
func (p *FacebookProvider) AuthCodeURL(state string, perms []string) string {
	var opts []oauth2.AuthCodeOption
	if len(perms) > 0 {
		opts = append(opts, oauth2.SetAuthURLParam("scope", strings.Join(perms, ",")))
	}
	return p.config.AuthCodeURL(state, opts...)
}

// TokenURL returns the token endpoint, which holds no secrets and is safe to log.
func (p *FacebookProvider) TokenURL() string {
	return p.config.Endpoint.TokenURL
}

// Exchange trades code for an access token. It performs exactly one request,
// bounded by the exchange timeout, and never retries.
func (p *FacebookProvider) Exchange(ctx context.Context, code string) (*AccessTokenRecord, error) {
	if code == "" {
		return nil, errors.Join(ErrExchangeFailed, ErrMissingCode)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	tok, err := p.config.Exchange(context.WithValue(ctx, oauth2.HTTPClient, p.httpClient), code)
	if err != nil {
		return nil, errors.Join(ErrExchangeFailed, fmt.Errorf("exchange code: %w", err))
	}
	if tok.AccessToken == "" {
		return nil, errors.Join(ErrExchangeFailed, errors.New("response missing access_token"))
	}

	return newAccessTokenRecord(tok), nil
}

// ErrorCode returns the provider's error code (e.g. "invalid_grant") or the
// HTTP status of a failed exchange, for logging. It returns "" for other errors.
func ErrorCode(err error) string {
	var re *oauth2.RetrieveError
	if !errors.As(err, &re) {
		return ""
	}
	if re.ErrorCode != "" {
		return re.ErrorCode
	}
	if re.Response != nil {
		return fmt.Sprintf("http_%d", re.Response.StatusCode)
	}
	return ""
}

func validateEndpoint(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Join(ErrInvalidEndpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Join(ErrInvalidEndpoint, fmt.Errorf("%q is not an absolute http(s) URL", raw))
	}
	return nil
}

var _ Provider = (*FacebookProvider)(nil)
