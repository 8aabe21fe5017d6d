package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ClearedValue is written as the value of an expired cookie.
const ClearedValue = "null"

const epochExpires = "expires=Thu, 01 Jan 1970 00:00:00 GMT"

// Source looks up inbound cookies by name. *http.Request satisfies it.
type Source interface {
	Cookie(name string) (*http.Cookie, error)
}

// HeaderSink receives response headers. http.Header satisfies it.
type HeaderSink interface {
	Add(key, value string)
}

// Manager reads and writes one named cookie with fixed attributes. It is
// immutable after New and safe for concurrent use.
type Manager struct {
	name     string
	defaults Options
}

// New validates name and attributes. Defaults are path "/", samesite lax,
// no Max-Age, no secure flag and no domain. httponly is always set.
func New(name string, opts ...Option) (*Manager, error) {
	if !isToken(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	defaults := applyOptions(Options{
		Path:     "/",
		SameSite: SameSiteLax,
	}, opts)

	if err := defaults.validate(); err != nil {
		return nil, err
	}
	defaults.SameSite, _ = ParseSameSite(string(defaults.SameSite))

	return &Manager{name: name, defaults: defaults}, nil
}

func (m *Manager) Name() string { return m.name }

func (m *Manager) Options() Options { return m.defaults }

// Get returns the raw cookie value or ErrCookieNotFound.
func (m *Manager) Get(src Source) (string, error) {
	c, err := src.Cookie(m.name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Format renders a Set-Cookie header value:
//
//	name=value; path=/; Max-Age=N; httponly; samesite=lax; secure; domain=example.com
//
// Max-Age, secure and domain appear only when configured.
func (m *Manager) Format(value string) string {
	var b strings.Builder
	b.WriteString(m.name)
	b.WriteByte('=')
	b.WriteString(value)
	b.WriteString("; path=")
	b.WriteString(m.defaults.Path)
	b.WriteString("; ")
	if m.defaults.MaxAge > 0 {
		b.WriteString("Max-Age=")
		b.WriteString(strconv.Itoa(m.defaults.MaxAge))
		b.WriteString("; ")
	}
	m.writeFlags(&b)
	return b.String()
}

// FormatExpired renders a Set-Cookie header value that makes the client
// drop the cookie.
func (m *Manager) FormatExpired() string {
	var b strings.Builder
	b.WriteString(m.name)
	b.WriteByte('=')
	b.WriteString(ClearedValue)
	b.WriteString("; path=")
	b.WriteString(m.defaults.Path)
	b.WriteString("; ")
	b.WriteString(epochExpires)
	b.WriteString("; ")
	m.writeFlags(&b)
	return b.String()
}

func (m *Manager) writeFlags(b *strings.Builder) {
	b.WriteString("httponly; samesite=")
	b.WriteString(string(m.defaults.SameSite))
	if m.defaults.Secure {
		b.WriteString("; secure")
	}
	if m.defaults.Domain != "" {
		b.WriteString("; domain=")
		b.WriteString(m.defaults.Domain)
	}
}

// Set appends a Set-Cookie header carrying value.
func (m *Manager) Set(h HeaderSink, value string) error {
	if !isCookieValue(value) {
		return ErrInvalidValue
	}
	h.Add("Set-Cookie", m.Format(value))
	return nil
}

// Delete appends a Set-Cookie header expiring the cookie.
func (m *Manager) Delete(h HeaderSink) {
	h.Add("Set-Cookie", m.FormatExpired())
}

// isToken reports whether s is a non-empty RFC 7230 token.
func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c >= 0x7f || strings.IndexByte(`()<>@,;:\"/[]?={}`, c) >= 0 {
			return false
		}
	}
	return true
}

// isCookieValue reports whether every byte is an RFC 6265 cookie-octet.
func isCookieValue(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c >= 0x7f || c == '"' || c == ',' || c == ';' || c == '\\' {
			return false
		}
	}
	return true
}

func isAttrValue(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < ' ' || c >= 0x7f || c == ';' {
			return false
		}
	}
	return true
}
