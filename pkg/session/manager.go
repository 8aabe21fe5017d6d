package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/cookiesession/pkg/cookie"
	"github.com/dmitrymomot/cookiesession/pkg/logger"
	"github.com/dmitrymomot/cookiesession/pkg/signer"
)

// State is the outcome of the outbound decision for one request.
type State uint8

const (
	// StateEmpty: no session came in and none was created. No header.
	StateEmpty State = iota
	// StateUnchanged: the session holds exactly what it was loaded with. No header.
	StateUnchanged
	// StateChanged: the session differs from what was loaded. A fresh cookie is set.
	StateChanged
	// StateCleared: a loaded session ended up empty. The cookie is expired.
	StateCleared
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateUnchanged:
		return "unchanged"
	case StateChanged:
		return "changed"
	case StateCleared:
		return "cleared"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Manager loads sessions from signed cookies and writes them back. It is
// immutable after New and shared by all requests.
type Manager struct {
	signer  *signer.Signer
	cookies *cookie.Manager
	maxAge  time.Duration
	skipper func(*http.Request) bool
	logger  *slog.Logger
}

// New creates a Manager. secret is the root signing key; an empty secret or
// any invalid option fails with ErrInvalidConfig.
func New(secret string, opts ...Option) (*Manager, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Noop()
	}
	if s.maxAge < 0 || (s.maxAge > 0 && s.maxAge < time.Second) {
		return nil, fmt.Errorf("%w: max age must be zero or at least one second, got %s", ErrInvalidConfig, s.maxAge)
	}

	sgn, err := signer.New(secret, s.signerOpts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	cookieOpts := []cookie.Option{
		cookie.WithPath(s.path),
		cookie.WithDomain(s.domain),
		cookie.WithSameSite(s.sameSite),
		cookie.WithSecure(s.httpsOnly),
		cookie.WithMaxAge(int(s.maxAge / time.Second)),
	}
	cm, err := cookie.New(s.cookieName, cookieOpts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	if cm.Options().SameSite == cookie.SameSiteNone && !s.httpsOnly {
		s.logger.Warn("samesite=none without https-only; browsers will reject the session cookie",
			logger.Component("session"),
			logger.Cookie(cm.Name()),
		)
	}

	return &Manager{
		signer:  sgn,
		cookies: cm,
		maxAge:  s.maxAge,
		skipper: s.skipper,
		logger:  s.logger,
	}, nil
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string { return m.cookies.Name() }

// MaxAge returns the token freshness limit; zero means no limit.
func (m *Manager) MaxAge() time.Duration { return m.maxAge }

// Signer exposes the token signer, e.g. to mint cookies in tests.
func (m *Manager) Signer() *signer.Signer { return m.signer }

// Load reads and verifies the session cookie from src. A missing, tampered,
// malformed or expired cookie yields an empty session; the cause is only
// logged.
func (m *Manager) Load(ctx context.Context, src cookie.Source) *Session {
	raw, err := m.cookies.Get(src)
	if err != nil {
		return newSession(nil)
	}

	values, err := m.signer.Unsign(raw, m.maxAge)
	if err != nil {
		m.logger.DebugContext(ctx, "session cookie rejected",
			logger.Component("session"),
			logger.Event("session.rejected"),
			logger.Cookie(m.cookies.Name()),
			logger.Reason(rejectReason(err)),
		)
		return newSession(nil)
	}

	return newSession(values)
}

// Save compares sess with the state it was loaded in and writes at most one
// Set-Cookie header to dst. A nil session counts as empty.
func (m *Manager) Save(ctx context.Context, sess *Session, dst cookie.HeaderSink) (State, error) {
	state, token, err := m.decide(sess)
	if err != nil {
		return state, err
	}

	switch state {
	case StateChanged:
		if err := m.cookies.Set(dst, token); err != nil {
			return state, errors.Join(ErrEncodeSession, err)
		}
	case StateCleared:
		m.cookies.Delete(dst)
	}

	m.logger.Log(ctx, logger.LevelTrace, "session state",
		logger.Component("session"),
		logger.Event("session.state"),
		logger.SessionState(state.String()),
	)
	return state, nil
}

func (m *Manager) decide(sess *Session) (State, string, error) {
	if sess.IsEmpty() {
		if sess != nil && sess.hadData {
			return StateCleared, "", nil
		}
		return StateEmpty, "", nil
	}

	current, err := signer.CanonicalJSON(sess.data)
	if err != nil {
		return StateChanged, "", errors.Join(ErrEncodeSession, err)
	}
	if bytes.Equal(current, sess.snapshot) {
		return StateUnchanged, "", nil
	}

	token, err := m.signer.Sign(sess.data)
	if err != nil {
		return StateChanged, "", errors.Join(ErrEncodeSession, err)
	}
	return StateChanged, token, nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, signer.ErrExpired):
		return "expired"
	case errors.Is(err, signer.ErrMalformedToken):
		return "malformed"
	default:
		return "bad_signature"
	}
}
