package session

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/cookiesession/pkg/cookie"
	"github.com/dmitrymomot/cookiesession/pkg/signer"
)

// Config holds session configuration
type Config struct {
	// SecretKey signs every cookie. Required.
	SecretKey string `env:"SESSION_SECRET_KEY" yaml:"secret_key"`

	// FallbackKeys are previous secrets still accepted on read.
	FallbackKeys []string `env:"SESSION_FALLBACK_KEYS" envSeparator:"," yaml:"fallback_keys"`

	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session" yaml:"cookie_name"`

	// MaxAge of 0 disables both token expiry and the Max-Age attribute.
	MaxAge    time.Duration `env:"SESSION_MAX_AGE" envDefault:"336h" yaml:"max_age"`
	Path      string        `env:"SESSION_COOKIE_PATH" envDefault:"/" yaml:"path"`
	Domain    string        `env:"SESSION_COOKIE_DOMAIN" yaml:"domain"`
	SameSite  string        `env:"SESSION_SAME_SITE" envDefault:"lax" yaml:"same_site"`
	HTTPSOnly bool          `env:"SESSION_HTTPS_ONLY" envDefault:"false" yaml:"https_only"`

	Salt            string `env:"SESSION_SALT" envDefault:"cookie-session" yaml:"salt"`
	KeyDerivation   string `env:"SESSION_KEY_DERIVATION" envDefault:"hmac" yaml:"key_derivation"`
	Digest          string `env:"SESSION_DIGEST" envDefault:"sha1" yaml:"digest"`
	TimestampFormat string `env:"SESSION_TIMESTAMP_FORMAT" envDefault:"decimal" yaml:"timestamp_format"`
}

// DefaultConfig returns default session configuration. SecretKey is left
// empty and must be supplied.
func DefaultConfig() Config {
	return Config{
		CookieName:      DefaultCookieName,
		MaxAge:          DefaultMaxAge,
		Path:            "/",
		SameSite:        string(cookie.SameSiteLax),
		Salt:            signer.DefaultSalt,
		KeyDerivation:   string(signer.KeyDerivationHMAC),
		Digest:          string(signer.DigestSHA1),
		TimestampFormat: string(signer.TimestampDecimal),
	}
}

// NewFromConfig creates a Manager from cfg. Empty string fields keep the
// package defaults; opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	configOpts := []Option{
		WithMaxAge(cfg.MaxAge),
		WithHTTPSOnly(cfg.HTTPSOnly),
		WithDomain(cfg.Domain),
		WithFallbackSecrets(cfg.FallbackKeys...),
	}

	if cfg.CookieName != "" {
		configOpts = append(configOpts, WithCookieName(cfg.CookieName))
	}
	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.SameSite != "" {
		sameSite, err := cookie.ParseSameSite(cfg.SameSite)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		configOpts = append(configOpts, WithSameSite(sameSite))
	}
	if cfg.Salt != "" {
		configOpts = append(configOpts, WithSalt(cfg.Salt))
	}
	if cfg.KeyDerivation != "" {
		configOpts = append(configOpts, WithKeyDerivation(signer.KeyDerivation(cfg.KeyDerivation)))
	}
	if cfg.Digest != "" {
		configOpts = append(configOpts, WithDigest(signer.Digest(cfg.Digest)))
	}
	if cfg.TimestampFormat != "" {
		configOpts = append(configOpts, WithTimestampFormat(signer.TimestampFormat(cfg.TimestampFormat)))
	}

	configOpts = append(configOpts, opts...)

	return New(cfg.SecretKey, configOpts...)
}
