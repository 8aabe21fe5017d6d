package cookie

import (
	"fmt"
	"strings"
)

// SameSite is the lower-case samesite attribute value.
type SameSite string

const (
	SameSiteLax    SameSite = "lax"
	SameSiteStrict SameSite = "strict"
	SameSiteNone   SameSite = "none"
)

// ParseSameSite accepts lax, strict or none in any case.
func ParseSameSite(s string) (SameSite, error) {
	switch v := SameSite(strings.ToLower(strings.TrimSpace(s))); v {
	case SameSiteLax, SameSiteStrict, SameSiteNone:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSameSite, s)
	}
}

type Options struct {
	Path     string
	Domain   string
	MaxAge   int
	Secure   bool
	SameSite SameSite
}

type Option func(*Options)

func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

// WithMaxAge sets the Max-Age attribute in seconds. Zero or less omits it.
func WithMaxAge(seconds int) Option {
	return func(o *Options) {
		o.MaxAge = seconds
	}
}

func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

func WithSameSite(sameSite SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// applyOptions returns a copy of base with opts applied. base is not modified.
func applyOptions(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	return result
}

func (o Options) validate() error {
	if o.Path == "" || !isAttrValue(o.Path) {
		return fmt.Errorf("%w: path %q", ErrInvalidAttribute, o.Path)
	}
	if o.Domain != "" && !isAttrValue(o.Domain) {
		return fmt.Errorf("%w: domain %q", ErrInvalidAttribute, o.Domain)
	}
	if _, err := ParseSameSite(string(o.SameSite)); err != nil {
		return err
	}
	return nil
}
