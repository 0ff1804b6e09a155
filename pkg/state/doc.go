// Package state carries the caller's identity token and requested permissions
// through the Facebook login redirect.
//
// [Codec] turns a token and permission list into an opaque, signed value for
// the OAuth2 state parameter and verifies it when the provider calls back:
//
//	codec, err := state.NewCodec(cfg.StateSecret, state.WithMaxAge(10*time.Minute))
//	value, err := codec.Encode("abc123", []string{"email", "public_profile"})
//	// later, on callback
//	p, err := codec.Decode(value)
//	// p.Token == "abc123", p.Permissions == [email public_profile]
//
// The payload is JSON, so tokens may contain any character, including ";".
// An HMAC-SHA256 signature guards it against tampering and IssuedAt bounds
// its lifetime.
//
// [Guard] makes each value single-use by recording consumed values in a
// [cache.Cache] with an atomic set-if-absent:
//
//	guard := state.NewGuard(cache.NewMemory[int64](), codec.MaxAge())
//	if err := guard.Consume(ctx, value); errors.Is(err, state.ErrReused) {
//	    // replayed callback
//	}
//
// [IsInvalid] reports whether an error means the state must be rejected as a
// client error: [ErrMalformed], [ErrInvalidSignature], [ErrExpired] or [ErrReused].
package state
