package signer

import (
	"crypto/sha1" //nolint:gosec // Flask's cookie signer uses HMAC-SHA1.
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"time"
)

// Digest selects the hash function used for key derivation and HMAC.
type Digest string

const (
	DigestSHA1   Digest = "sha1"
	DigestSHA256 Digest = "sha256"
	DigestSHA512 Digest = "sha512"
)

func (d Digest) hashFunc() (func() hash.Hash, error) {
	switch d {
	case DigestSHA1:
		return sha1.New, nil
	case DigestSHA256:
		return sha256.New, nil
	case DigestSHA512:
		return sha512.New, nil
	default:
		return nil, invalidOption("digest", string(d))
	}
}

// KeyDerivation selects how the signing key is derived from secret and salt.
type KeyDerivation string

const (
	// KeyDerivationHMAC derives HMAC(secret, salt). Flask's default.
	KeyDerivationHMAC KeyDerivation = "hmac"
	// KeyDerivationConcat derives H(salt || secret).
	KeyDerivationConcat KeyDerivation = "concat"
	// KeyDerivationDjangoConcat derives H(salt || "signer" || secret).
	KeyDerivationDjangoConcat KeyDerivation = "django-concat"
	// KeyDerivationNone signs with the raw secret; the salt is ignored.
	KeyDerivationNone KeyDerivation = "none"
	// KeyDerivationHKDF derives the key with HKDF (RFC 5869).
	KeyDerivationHKDF KeyDerivation = "hkdf"
)

// TimestampFormat selects how the signing time is written into the token.
type TimestampFormat string

const (
	// TimestampDecimal writes unix seconds in base 10.
	TimestampDecimal TimestampFormat = "decimal"
	// TimestampCompact writes unix seconds as base64url of the big-endian
	// bytes with leading zero bytes stripped. Tokens in this format are
	// interchangeable with Flask's session cookies.
	TimestampCompact TimestampFormat = "compact"
)

const (
	DefaultSalt           = "cookie-session"
	DefaultMaxPayloadSize = 1 << 20
)

type options struct {
	salt           string
	derivation     KeyDerivation
	digest         Digest
	tsFormat       TimestampFormat
	fallbacks      []string
	compress       bool
	maxPayloadSize int64
	now            func() time.Time
}

// defaultOptions returns a fresh value on every call so instances never
// share mutable defaults.
func defaultOptions() options {
	return options{
		salt:           DefaultSalt,
		derivation:     KeyDerivationHMAC,
		digest:         DigestSHA1,
		tsFormat:       TimestampDecimal,
		compress:       true,
		maxPayloadSize: DefaultMaxPayloadSize,
		now:            time.Now,
	}
}

// Option configures a Signer.
type Option func(*options)

// WithSalt namespaces the derived key. Tokens signed with one salt never
// verify under another, even with the same secret.
func WithSalt(salt string) Option {
	return func(o *options) { o.salt = salt }
}

func WithKeyDerivation(kd KeyDerivation) Option {
	return func(o *options) { o.derivation = kd }
}

func WithDigest(d Digest) Option {
	return func(o *options) { o.digest = d }
}

func WithTimestampFormat(f TimestampFormat) Option {
	return func(o *options) { o.tsFormat = f }
}

// WithFallbackSecrets adds secrets accepted during verification only.
// The primary secret passed to New always signs. Empty entries are skipped.
func WithFallbackSecrets(secrets ...string) Option {
	return func(o *options) {
		for _, s := range secrets {
			if s != "" {
				o.fallbacks = append(o.fallbacks, s)
			}
		}
	}
}

// WithCompression toggles zlib compression of payloads. Compressed output is
// only used when it is actually shorter. Compressed tokens are always
// accepted on verification.
func WithCompression(enabled bool) Option {
	return func(o *options) { o.compress = enabled }
}

// WithMaxPayloadSize bounds the decoded (and decompressed) payload size.
// Non-positive values are ignored.
func WithMaxPayloadSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxPayloadSize = n
		}
	}
}

// WithClock replaces time.Now. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
