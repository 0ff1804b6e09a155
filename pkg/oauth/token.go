package oauth

import (
	"log/slog"
	"strconv"

	"golang.org/x/oauth2"
)

// AccessTokenRecord is the result of a successful code exchange.
// It is never persisted.
type AccessTokenRecord struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   string `json:"expires_in"`
}

// LogValue keeps the access token out of logs.
func (r AccessTokenRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("access_token", redact(r.AccessToken)),
		slog.String("token_type", r.TokenType),
		slog.String("expires_in", r.ExpiresIn),
	)
}

func newAccessTokenRecord(tok *oauth2.Token) *AccessTokenRecord {
	return &AccessTokenRecord{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		ExpiresIn:   expiresIn(tok),
	}
}

// expiresIn reads the raw expires_in field, which Facebook has sent both as a
// JSON number and as a string, and normalizes it to a decimal string.
func expiresIn(tok *oauth2.Token) string {
	switch v := tok.Extra("expires_in").(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	if tok.ExpiresIn > 0 {
		return strconv.FormatInt(tok.ExpiresIn, 10)
	}
	return ""
}

func redact(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
