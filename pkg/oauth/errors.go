package oauth

import "errors"

var (
	// ErrMissingClientID is returned when the Facebook app ID is not provided.
	ErrMissingClientID = errors.New("oauth: missing client ID")

	// ErrMissingClientSecret is returned when the Facebook app secret is not provided.
	ErrMissingClientSecret = errors.New("oauth: missing client secret")

	// ErrMissingRedirectURL is returned when the callback URL is not provided.
	ErrMissingRedirectURL = errors.New("oauth: missing redirect URL")

	// ErrInvalidEndpoint is returned when a dialog or token URL is not an absolute http(s) URL.
	ErrInvalidEndpoint = errors.New("oauth: invalid endpoint URL")

	// ErrMissingCode is returned when Exchange is called without an authorization code.
	ErrMissingCode = errors.New("oauth: missing authorization code")

	// ErrExchangeFailed is returned when trading the code for a token fails for any
	// reason: transport error, timeout, non-2xx status, provider error payload,
	// undecodable body or a response without access_token.
	ErrExchangeFailed = errors.New("oauth: token exchange failed")
)
