// Package signer implements tamper-evident, timestamped tokens for carrying
// small JSON documents in cookies.
//
// A token has three dot-separated fields:
//
//	base64url(payload).timestamp.base64url(signature)
//
// The payload is the canonical JSON encoding of a map[string]any, optionally
// zlib-compressed (in which case the field starts with "."). The signature is
// an HMAC over "payload.timestamp" keyed with a key derived from the secret
// and a salt. The scheme matches the itsdangerous URLSafeTimedSerializer
// used by Flask, and with TimestampCompact the tokens are interchangeable
// with Flask's session cookies (salt "cookie-session", HMAC key derivation, SHA-1).
//
// # Usage
//
//	import "github.com/dmitrymomot/cookiesession/pkg/signer"
//
//	s, err := signer.New(os.Getenv("SESSION_SECRET_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, _ := s.Sign(map[string]any{"user": "42"})
//
//	values, err := s.Unsign(token, 14*24*time.Hour)
//	if errors.Is(err, signer.ErrBadSignature) {
//	    // tampered, malformed or expired
//	}
//
// # Key rotation
//
// WithFallbackSecrets registers older secrets that are still accepted on
// verification. New tokens are always signed with the primary secret.
//
// # Error Handling
//
// Every verification failure satisfies errors.Is(err, ErrBadSignature).
// ErrMalformedToken and ErrExpired narrow the cause. Unsign never panics on
// untrusted input.
//
// The payload is signed, not encrypted. Do not store secrets in it.
package signer
