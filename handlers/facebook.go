package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/fblogin"
	"github.com/dmitrymomot/fblogin/pkg/oauth"
	"github.com/dmitrymomot/fblogin/pkg/state"
)

// Route paths, relative to FacebookPrefix.
const (
	FacebookPrefix       = "/api/facebook"
	FacebookLoginPath    = "/user/login"
	FacebookCallbackPath = "/oauth/callback"
)

// FacebookConfig configures the Facebook login handler.
type FacebookConfig struct {
	// IndexURL is where the browser lands after a successful callback.
	IndexURL string `env:"INDEX_URL" envDefault:"http://localhost:8000/index"`
}

// Facebook serves the two Facebook login endpoints.
type Facebook struct {
	provider oauth.Provider
	codec    *state.Codec
	guard    *state.Guard
	identity fblogin.Extractor
	indexURL string
}

// NewFacebook creates the handler. A nil guard disables replay protection,
// leaving the state valid until it expires.
func NewFacebook(provider oauth.Provider, codec *state.Codec, guard *state.Guard, cfg FacebookConfig) *Facebook {
	return &Facebook{
		provider: provider,
		codec:    codec,
		guard:    guard,
		identity: fblogin.NewExtractor(
			fblogin.FromBearerToken(),
			fblogin.FromHeader("Authorization"),
		),
		indexURL: cfg.IndexURL,
	}
}

// Routes implements fblogin.Handler.
func (h *Facebook) Routes(r fblogin.Router) {
	r.Route(FacebookPrefix, func(r fblogin.Router) {
		r.GET(FacebookLoginPath, h.login)
		r.GET(FacebookCallbackPath, h.callback)
	})
}

type loginResponse struct {
	Login string `json:"login"`
}

// login issues the Facebook dialog URL for the caller's identity token.
func (h *Facebook) login(c fblogin.Context) error {
	token, ok := h.identity.Extract(c)
	if !ok {
		return fblogin.ErrBadRequest("missing identity token",
			fblogin.WithErrorCode("missing_identity_token"))
	}

	perms := parsePermissions(c.QueryValues("perms"))

	value, err := h.codec.Encode(token, perms)
	if err != nil {
		return fblogin.ErrInternal("failed to build login url", fblogin.WithError(err))
	}
	loginURL := h.provider.AuthCodeURL(value, perms)

	c.LogInfo("facebook login url issued",
		slog.String("provider", h.provider.Name()),
		slog.Int("permissions", len(perms)),
		slog.String("dialog_host", hostOf(loginURL)),
	)
	c.LogDebug("facebook login url",
		slog.String("identity_token", token),
		slog.Any("permissions", perms),
		slog.String("url", loginURL),
	)

	return c.JSON(http.StatusOK, loginResponse{Login: loginURL})
}

// callback completes the login: it checks the state, exchanges the code
// and sends the browser to the index page.
func (h *Facebook) callback(c fblogin.Context) error {
	if reason := c.Query("error"); reason != "" {
		c.LogInfo("facebook login not completed",
			slog.String("error", reason),
			slog.String("error_reason", c.Query("error_reason")),
		)
		msg := c.QueryDefault("error_description", "login was not completed")
		return fblogin.ErrBadRequest(msg, fblogin.WithErrorCode("provider_denied"))
	}

	code, raw := c.Query("code"), c.Query("state")
	if code == "" {
		return fblogin.ErrBadRequest("missing code", fblogin.WithErrorCode("missing_code"))
	}
	if raw == "" {
		return fblogin.ErrBadRequest("missing state", fblogin.WithErrorCode("missing_state"))
	}

	c.LogInfo("facebook callback received", slog.Int("state_length", len(raw)))

	payload, err := h.codec.Decode(raw)
	if err != nil {
		return stateError(err)
	}
	if h.guard != nil {
		if err := h.guard.Consume(c, raw); err != nil {
			return stateError(err)
		}
	}

	c.LogDebug("facebook state accepted",
		slog.String("identity_token", payload.Token),
		slog.Any("permissions", payload.Permissions),
	)
	c.LogInfo("facebook token exchange",
		slog.String("provider", h.provider.Name()),
		slog.String("token_url", h.provider.TokenURL()),
	)

	record, err := h.provider.Exchange(c, code)
	if err != nil {
		c.LogWarn("facebook token exchange failed",
			slog.String("provider_error", oauth.ErrorCode(err)),
			slog.String("error", err.Error()),
		)
		return fblogin.ErrBadGateway("token exchange with provider failed",
			fblogin.WithErrorCode("provider_exchange_failed"),
			fblogin.WithError(err),
		)
	}

	c.LogDebug("facebook token received", slog.Any("token", record))
	c.LogInfo("facebook login completed", slog.String("redirect", h.indexURL))

	return c.Redirect(http.StatusFound, h.indexURL)
}

// stateError maps codec and guard failures to client-facing errors.
func stateError(err error) error {
	switch {
	case errors.Is(err, state.ErrExpired):
		return fblogin.ErrBadRequest("state expired",
			fblogin.WithErrorCode("expired_state"), fblogin.WithError(err))
	case errors.Is(err, state.ErrInvalidSignature):
		return fblogin.ErrBadRequest("invalid state",
			fblogin.WithErrorCode("invalid_signature"), fblogin.WithError(err))
	case errors.Is(err, state.ErrReused):
		return fblogin.ErrBadRequest("state already used",
			fblogin.WithErrorCode("state_reused"), fblogin.WithError(err))
	case state.IsInvalid(err):
		return fblogin.ErrBadRequest("invalid state",
			fblogin.WithErrorCode("malformed_state"), fblogin.WithError(err))
	case errors.Is(err, state.ErrStoreUnavailable):
		return fblogin.NewHTTPError(http.StatusServiceUnavailable, "login temporarily unavailable",
			fblogin.WithErrorCode("state_store_unavailable"), fblogin.WithError(err))
	default:
		return fblogin.ErrInternal("failed to verify state", fblogin.WithError(err))
	}
}

// parsePermissions accepts both repeated and comma-separated perms values.
// Blank entries are dropped and order is kept.
func parsePermissions(values []string) []string {
	var perms []string
	for _, v := range values {
		for p := range strings.SplitSeq(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				perms = append(perms, p)
			}
		}
	}
	return perms
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}
