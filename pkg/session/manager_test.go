package session_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiesession/pkg/logger"
	"github.com/dmitrymomot/cookiesession/pkg/session"
	"github.com/dmitrymomot/cookiesession/pkg/signer"
)

func requestWithCookie(name, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if value != "" {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		secret string
		opts   []session.Option
	}{
		{name: "missing secret", secret: ""},
		{name: "bad cookie name", secret: testSecret, opts: []session.Option{session.WithCookieName("bad name")}},
		{name: "bad same site", secret: testSecret, opts: []session.Option{session.WithSameSite("sometimes")}},
		{name: "bad path", secret: testSecret, opts: []session.Option{session.WithPath("")}},
		{name: "bad digest", secret: testSecret, opts: []session.Option{session.WithDigest("md5")}},
		{name: "bad derivation", secret: testSecret, opts: []session.Option{session.WithKeyDerivation("scrypt")}},
		{name: "negative max age", secret: testSecret, opts: []session.Option{session.WithMaxAge(-time.Second)}},
		{name: "sub-second max age", secret: testSecret, opts: []session.Option{session.WithMaxAge(time.Millisecond)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := session.New(tt.secret, tt.opts...)
			require.ErrorIs(t, err, session.ErrInvalidConfig)
			assert.Nil(t, m)
		})
	}

	t.Run("missing secret is a signer error", func(t *testing.T) {
		t.Parallel()
		_, err := session.New("")
		require.ErrorIs(t, err, signer.ErrNoSecret)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		m, err := session.New(testSecret)
		require.NoError(t, err)
		assert.Equal(t, "session", m.CookieName())
		assert.NotNil(t, m.Signer())
	})
}

func TestNew_WarnsOnInsecureSameSiteNone(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))

	_, err := session.New(testSecret, session.WithSameSite("none"), session.WithLogger(log))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "samesite=none without https-only")

	buf.Reset()
	_, err = session.New(testSecret, session.WithSameSite("none"), session.WithHTTPSOnly(true), session.WithLogger(log))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestManager_Load(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0)
	clock := func() time.Time { return now }
	m, err := session.New(testSecret,
		session.WithMaxAge(time.Hour),
		session.WithSignerOptions(signer.WithClock(clock)),
	)
	require.NoError(t, err)

	token, err := m.Signer().Sign(map[string]any{"application": "svc-a"})
	require.NoError(t, err)

	other, err := signer.New("another-secret")
	require.NoError(t, err)
	forged, err := other.Sign(map[string]any{"application": "evil"})
	require.NoError(t, err)

	tests := []struct {
		name string
		r    *http.Request
		want map[string]any
	}{
		{name: "no cookie", r: requestWithCookie("session", ""), want: map[string]any{}},
		{name: "other cookie name", r: requestWithCookie("sid", token), want: map[string]any{}},
		{name: "valid cookie", r: requestWithCookie("session", token), want: map[string]any{"application": "svc-a"}},
		{name: "forged cookie", r: requestWithCookie("session", forged), want: map[string]any{}},
		{name: "garbage cookie", r: requestWithCookie("session", "not-a-token"), want: map[string]any{}},
		{name: "truncated cookie", r: requestWithCookie("session", token[:len(token)-3]), want: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sess := m.Load(context.Background(), tt.r)
			require.NotNil(t, sess)
			assert.Equal(t, tt.want, sess.Values())
		})
	}
}

func TestManager_Load_Expired(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	now := time.Unix(1700000000, 0)
	m, err := session.New(testSecret,
		session.WithMaxAge(time.Hour),
		session.WithSignerOptions(signer.WithClock(func() time.Time { return now })),
		session.WithLogger(logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))),
	)
	require.NoError(t, err)

	token, err := m.Signer().Sign(map[string]any{"a": "1"})
	require.NoError(t, err)

	now = now.Add(time.Hour + time.Second)
	sess := m.Load(context.Background(), requestWithCookie("session", token))
	assert.True(t, sess.IsEmpty())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "session.rejected", entry["event"])
	assert.Equal(t, "expired", entry["reason"])
	assert.NotContains(t, buf.String(), token, "the raw cookie must never be logged")
}

func TestManager_Save(t *testing.T) {
	t.Parallel()

	m, err := session.New(testSecret, session.WithMaxAge(1209600*time.Second))
	require.NoError(t, err)

	token, err := m.Signer().Sign(map[string]any{"application": "svc-a", "n": 1})
	require.NoError(t, err)

	tests := []struct {
		name      string
		cookie    string
		mutate    func(*session.Session)
		wantState session.State
		wantValue map[string]any
	}{
		{
			name:      "no session, no change",
			mutate:    func(*session.Session) {},
			wantState: session.StateEmpty,
		},
		{
			name:      "no session, key added",
			mutate:    func(s *session.Session) { s.Set("application", "svc-a") },
			wantState: session.StateChanged,
			wantValue: map[string]any{"application": "svc-a"},
		},
		{
			name:      "no session, added then removed",
			mutate:    func(s *session.Session) { s.Set("a", "1"); s.Delete("a") },
			wantState: session.StateEmpty,
		},
		{
			name:      "session read only",
			cookie:    token,
			mutate:    func(s *session.Session) { _, _ = s.Get("application") },
			wantState: session.StateUnchanged,
		},
		{
			name:      "session rewritten with equal values",
			cookie:    token,
			mutate:    func(s *session.Session) { s.Set("n", 1); s.Set("application", "svc-a") },
			wantState: session.StateUnchanged,
		},
		{
			name:      "session modified",
			cookie:    token,
			mutate:    func(s *session.Session) { s.Set("application", "svc-b") },
			wantState: session.StateChanged,
			wantValue: map[string]any{"application": "svc-b", "n": float64(1)},
		},
		{
			name:      "session cleared",
			cookie:    token,
			mutate:    func(s *session.Session) { s.Clear() },
			wantState: session.StateCleared,
		},
		{
			name:      "session emptied key by key",
			cookie:    token,
			mutate:    func(s *session.Session) { s.Delete("application"); s.Delete("n") },
			wantState: session.StateCleared,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sess := m.Load(context.Background(), requestWithCookie("session", tt.cookie))
			tt.mutate(sess)

			h := http.Header{}
			state, err := m.Save(context.Background(), sess, h)
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, state)

			headers := h.Values("Set-Cookie")
			switch tt.wantState {
			case session.StateEmpty, session.StateUnchanged:
				assert.Empty(t, headers)
			case session.StateCleared:
				require.Len(t, headers, 1)
				assert.Equal(t, "session=null; path=/; expires=Thu, 01 Jan 1970 00:00:00 GMT; httponly; samesite=lax", headers[0])
			case session.StateChanged:
				require.Len(t, headers, 1)
				value, ok := strings.CutPrefix(headers[0], "session=")
				require.True(t, ok)
				token, ok := strings.CutSuffix(value, "; path=/; Max-Age=1209600; httponly; samesite=lax")
				require.True(t, ok, headers[0])
				got, err := m.Signer().Unsign(token, time.Hour)
				require.NoError(t, err)
				assert.Equal(t, tt.wantValue, got)
			}
		})
	}
}

func TestManager_Save_NilSession(t *testing.T) {
	t.Parallel()

	m, err := session.New(testSecret)
	require.NoError(t, err)

	h := http.Header{}
	state, err := m.Save(context.Background(), nil, h)
	require.NoError(t, err)
	assert.Equal(t, session.StateEmpty, state)
	assert.Empty(t, h)
}

func TestManager_Save_EncodeFailure(t *testing.T) {
	t.Parallel()

	m, err := session.New(testSecret)
	require.NoError(t, err)

	sess := m.Load(context.Background(), requestWithCookie("session", ""))
	sess.Set("fn", func() {})

	h := http.Header{}
	_, err = m.Save(context.Background(), sess, h)
	require.ErrorIs(t, err, session.ErrEncodeSession)
	assert.Empty(t, h.Values("Set-Cookie"))
}

func TestManager_Save_TraceLog(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	m, err := session.New(testSecret,
		session.WithLogger(logger.New(logger.WithOutput(buf), logger.WithLevel(logger.LevelTrace))),
	)
	require.NoError(t, err)

	sess := m.Load(context.Background(), requestWithCookie("session", ""))
	sess.Set("a", "1")
	_, err = m.Save(context.Background(), sess, http.Header{})
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "TRACE", entry["level"])
	assert.Equal(t, "session.state", entry["event"])
	assert.Equal(t, "changed", entry["state"])
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "empty", session.StateEmpty.String())
	assert.Equal(t, "unchanged", session.StateUnchanged.String())
	assert.Equal(t, "changed", session.StateChanged.String())
	assert.Equal(t, "cleared", session.StateCleared.String())
	assert.Equal(t, "state(9)", session.State(9).String())
}
