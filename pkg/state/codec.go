package state

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Payload is the caller context carried through the provider redirect.
type Payload struct {
	Token       string   `json:"token"`
	Permissions []string `json:"perms"`
	IssuedAt    int64    `json:"iat"`
}

// Codec signs and verifies state values.
//
// Wire format: base64url(JSON payload) "." base64url(HMAC-SHA256(secret, first part)),
// both parts unpadded. The value is safe to put in a query string as is.
// Codec is immutable and safe for concurrent use.
type Codec struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewCodec creates a Codec. The secret must be at least MinSecretLength bytes.
func NewCodec(secret string, opts ...Option) (*Codec, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrSecretTooShort
	}

	c := &Codec{
		secret: []byte(secret),
		maxAge: DefaultMaxAge,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MaxAge returns how long an encoded state stays valid.
func (c *Codec) MaxAge() time.Duration {
	return c.maxAge
}

// Encode signs token and perms into a state value.
// The result depends only on the inputs and the current clock second.
func (c *Codec) Encode(token string, perms []string) (string, error) {
	if perms == nil {
		perms = []string{}
	}

	raw, err := json.Marshal(Payload{
		Token:       token,
		Permissions: perms,
		IssuedAt:    c.now().Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("state: encode payload: %w", err)
	}

	body := base64.RawURLEncoding.EncodeToString(raw)
	return body + "." + base64.RawURLEncoding.EncodeToString(c.sign(body)), nil
}

// Decode verifies the signature and age of value and returns its payload.
// Permissions is never nil on success.
func (c *Codec) Decode(value string) (Payload, error) {
	body, sigPart, ok := strings.Cut(value, ".")
	if !ok || body == "" || sigPart == "" || strings.Contains(sigPart, ".") {
		return Payload{}, ErrMalformed
	}

	sig, err := base64.RawURLEncoding.DecodeString(sigPart)
	if err != nil {
		return Payload{}, errors.Join(ErrMalformed, err)
	}
	if !hmac.Equal(sig, c.sign(body)) {
		return Payload{}, ErrInvalidSignature
	}

	raw, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return Payload{}, errors.Join(ErrMalformed, err)
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, errors.Join(ErrMalformed, err)
	}
	if p.IssuedAt <= 0 {
		return Payload{}, ErrMalformed
	}
	if c.now().Sub(time.Unix(p.IssuedAt, 0)) > c.maxAge {
		return Payload{}, ErrExpired
	}
	if p.Permissions == nil {
		p.Permissions = []string{}
	}
	return p, nil
}

func (c *Codec) sign(body string) []byte {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(body))
	return mac.Sum(nil)
}

// IsInvalid reports whether err means the state must be rejected as a client error.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrMalformed) ||
		errors.Is(err, ErrInvalidSignature) ||
		errors.Is(err, ErrExpired) ||
		errors.Is(err, ErrReused)
}
