package state

import "errors"

var (
	ErrSecretTooShort   = errors.New("state: secret must be at least 32 bytes")
	ErrMalformed        = errors.New("state: malformed value")
	ErrInvalidSignature = errors.New("state: invalid signature")
	ErrExpired          = errors.New("state: expired")
	ErrReused           = errors.New("state: already used")
	ErrStoreUnavailable = errors.New("state: replay store unavailable")
)
