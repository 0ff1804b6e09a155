// Package oauth implements the Facebook Login side of the OAuth2
// authorization code flow on top of golang.org/x/oauth2.
//
// # Usage
//
//	provider, err := oauth.NewFacebookProvider(oauth.FacebookConfig{
//	    AppID:       os.Getenv("FACEBOOK_APP_ID"),
//	    AppSecret:   os.Getenv("FACEBOOK_APP_SECRET"),
//	    RedirectURL: "https://example.com/api/facebook/oauth/callback",
//	})
//	if err != nil {
//	    return err
//	}
//
//	// Step 1: send the browser to the login dialog.
//	loginURL := provider.AuthCodeURL(signedState, []string{"email", "public_profile"})
//
//	// Step 2: on callback, trade the code for a token.
//	record, err := provider.Exchange(ctx, r.URL.Query().Get("code"))
//	if errors.Is(err, oauth.ErrExchangeFailed) {
//	    // provider rejected the code or was unreachable
//	}
//
// # Exchange Guarantees
//
// Exchange sends exactly one POST to the token endpoint with client_id,
// client_secret, redirect_uri and code in the form body. It is bounded by the
// exchange timeout (10s by default) and never retried. Non-2xx statuses, error
// payloads, undecodable bodies and responses without access_token all fail with
// [ErrExchangeFailed]; [ErrorCode] extracts the provider's error code for logs.
//
// # Logging
//
// [AccessTokenRecord] implements slog.LogValuer and redacts the access token,
// so records can be logged directly.
//
// # Configuration
//
// [FacebookConfig] carries env tags for github.com/caarlos0/env:
// FACEBOOK_APP_ID, FACEBOOK_APP_SECRET, FACEBOOK_REDIRECT_URL,
// FACEBOOK_DIALOG_URL, FACEBOOK_TOKEN_URL and FACEBOOK_EXCHANGE_TIMEOUT.
package oauth
