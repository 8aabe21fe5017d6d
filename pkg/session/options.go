package session

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/cookiesession/pkg/cookie"
	"github.com/dmitrymomot/cookiesession/pkg/signer"
)

// DefaultMaxAge is two weeks, matching Flask's permanent session lifetime.
const DefaultMaxAge = 14 * 24 * time.Hour

// DefaultCookieName is the cookie read and written when none is configured.
const DefaultCookieName = "session"

// Option is a functional option for configuring the Manager
type Option func(*settings)

type settings struct {
	cookieName string
	maxAge     time.Duration
	path       string
	domain     string
	sameSite   cookie.SameSite
	httpsOnly  bool
	signerOpts []signer.Option
	skipper    func(*http.Request) bool
	logger     *slog.Logger
}

func defaultSettings() *settings {
	return &settings{
		cookieName: DefaultCookieName,
		maxAge:     DefaultMaxAge,
		path:       "/",
		sameSite:   cookie.SameSiteLax,
	}
}

// WithCookieName sets the session cookie name
func WithCookieName(name string) Option {
	return func(s *settings) {
		s.cookieName = name
	}
}

// WithMaxAge sets both the token freshness limit enforced on every read and
// the cookie's Max-Age attribute. Zero disables both: tokens never expire
// and the cookie lives for the browser session.
func WithMaxAge(d time.Duration) Option {
	return func(s *settings) {
		s.maxAge = d
	}
}

func WithPath(path string) Option {
	return func(s *settings) {
		s.path = path
	}
}

func WithDomain(domain string) Option {
	return func(s *settings) {
		s.domain = domain
	}
}

func WithSameSite(sameSite cookie.SameSite) Option {
	return func(s *settings) {
		s.sameSite = sameSite
	}
}

// WithHTTPSOnly adds the secure attribute to the cookie.
func WithHTTPSOnly(httpsOnly bool) Option {
	return func(s *settings) {
		s.httpsOnly = httpsOnly
	}
}

// WithSalt namespaces the signing key. See signer.WithSalt.
func WithSalt(salt string) Option {
	return WithSignerOptions(signer.WithSalt(salt))
}

func WithKeyDerivation(kd signer.KeyDerivation) Option {
	return WithSignerOptions(signer.WithKeyDerivation(kd))
}

func WithDigest(d signer.Digest) Option {
	return WithSignerOptions(signer.WithDigest(d))
}

func WithTimestampFormat(f signer.TimestampFormat) Option {
	return WithSignerOptions(signer.WithTimestampFormat(f))
}

// WithFallbackSecrets keeps cookies signed with rotated-out secrets valid.
func WithFallbackSecrets(secrets ...string) Option {
	return WithSignerOptions(signer.WithFallbackSecrets(secrets...))
}

// WithSignerOptions passes options straight to the underlying signer.
func WithSignerOptions(opts ...signer.Option) Option {
	return func(s *settings) {
		s.signerOpts = append(s.signerOpts, opts...)
	}
}

// WithSkipper excludes requests from session handling. Skipped requests
// reach the next handler untouched and have no session in their context.
func WithSkipper(fn func(*http.Request) bool) Option {
	return func(s *settings) {
		s.skipper = fn
	}
}

// WithLogger sets the logger. Rejected cookies are reported at debug level
// and outbound decisions at logger.LevelTrace.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}
