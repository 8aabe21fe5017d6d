package signer

import (
	"crypto/hmac"
	"encoding/base64"
	"hash"
	"strings"
	"time"
)

const sep = "."

// b64 decodes strictly: non-zero padding bits are rejected so that every
// distinct field string maps to distinct bytes.
var b64 = base64.RawURLEncoding.Strict()

func decodeField(s string) ([]byte, bool) {
	// The decoder silently skips CR and LF; a token never contains them.
	if strings.ContainsAny(s, "\r\n") {
		return nil, false
	}
	b, err := b64.DecodeString(s)
	return b, err == nil
}

// Signer produces and verifies timestamped, signed tokens of the form
// payload.timestamp.signature. It is immutable after New and safe for
// concurrent use.
type Signer struct {
	opts    options
	newHash func() hash.Hash
	// keys[0] signs, every key verifies.
	keys [][]byte
}

// New builds a Signer from a primary secret. Derived keys are computed once.
func New(secret string, opts ...Option) (*Signer, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	newHash, err := o.digest.hashFunc()
	if err != nil {
		return nil, err
	}
	if !o.tsFormat.valid() {
		return nil, invalidOption("timestamp format", string(o.tsFormat))
	}

	secrets := append([]string{secret}, o.fallbacks...)
	keys := make([][]byte, 0, len(secrets))
	for _, sec := range secrets {
		key, err := deriveKey(o.derivation, newHash, []byte(sec), []byte(o.salt))
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return &Signer{opts: o, newHash: newHash, keys: keys}, nil
}

// Sign serializes values and returns a signed token stamped with the
// current time.
func (s *Signer) Sign(values map[string]any) (string, error) {
	payload, err := s.encodePayload(values)
	if err != nil {
		return "", err
	}
	value := payload + sep + s.opts.tsFormat.encode(s.opts.now())
	return value + sep + b64.EncodeToString(s.mac(s.keys[0], value)), nil
}

// Unsign verifies token and returns its values. A positive maxAge rejects
// tokens signed more than maxAge ago; zero disables the age check.
func (s *Signer) Unsign(token string, maxAge time.Duration) (map[string]any, error) {
	values, _, err := s.UnsignTimestamp(token, maxAge)
	return values, err
}

// UnsignTimestamp is Unsign that also reports when the token was signed.
//
// The signature is checked before anything else in the token is parsed.
// Every failure satisfies errors.Is(err, ErrBadSignature).
func (s *Signer) UnsignTimestamp(token string, maxAge time.Duration) (map[string]any, time.Time, error) {
	value, sig, ok := cutLast(token)
	if !ok {
		return nil, time.Time{}, malformed()
	}

	sigBytes, ok := decodeField(sig)
	if !ok {
		return nil, time.Time{}, malformed()
	}
	if !s.verify(value, sigBytes) {
		return nil, time.Time{}, ErrBadSignature
	}

	payload, ts, ok := cutLast(value)
	if !ok {
		return nil, time.Time{}, malformed()
	}
	sec, ok := s.opts.tsFormat.decode(ts)
	if !ok {
		return nil, time.Time{}, malformed()
	}
	signedAt := time.Unix(sec, 0)

	if maxAge > 0 {
		age := s.opts.now().Unix() - sec
		if age < 0 || age > int64(maxAge/time.Second) {
			return nil, signedAt, expired()
		}
	}

	values, err := s.decodePayload(payload)
	if err != nil {
		return nil, signedAt, err
	}
	return values, signedAt, nil
}

func (s *Signer) verify(value string, sig []byte) bool {
	ok := false
	// Check every key so the comparison count does not depend on which key matched.
	for _, key := range s.keys {
		if hmac.Equal(sig, s.mac(key, value)) {
			ok = true
		}
	}
	return ok
}

func (s *Signer) mac(key []byte, value string) []byte {
	m := hmac.New(s.newHash, key)
	m.Write([]byte(value))
	return m.Sum(nil)
}

// cutLast splits around the last separator. Both sides must be non-empty.
func cutLast(s string) (before, after string, ok bool) {
	i := strings.LastIndex(s, sep)
	if i <= 0 || i == len(s)-1 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}
