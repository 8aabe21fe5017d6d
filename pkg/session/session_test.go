package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiesession/pkg/session"
)

const testSecret = "super-secret"

func emptySession(t *testing.T) *session.Session {
	t.Helper()
	m, err := session.New(testSecret)
	require.NoError(t, err)
	return m.Load(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestSession_Accessors(t *testing.T) {
	t.Parallel()

	s := emptySession(t)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())

	s.Set("name", "alice")
	s.Set("count", 3)
	s.Set("ratio", 1.5)
	s.Set("admin", true)
	s.Update(map[string]any{"decoded": float64(7), "big": int64(9)})

	str, ok := s.GetString("name")
	assert.True(t, ok)
	assert.Equal(t, "alice", str)

	_, ok = s.GetString("count")
	assert.False(t, ok, "wrong type")

	n, ok := s.GetInt("count")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = s.GetInt("decoded")
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	n, ok = s.GetInt("big")
	assert.True(t, ok)
	assert.Equal(t, 9, n)

	f, ok := s.GetFloat("ratio")
	assert.True(t, ok)
	assert.InDelta(t, 1.5, f, 0)

	f, ok = s.GetFloat("count")
	assert.True(t, ok)
	assert.InDelta(t, 3, f, 0)

	b, ok := s.GetBool("admin")
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = s.GetBool("missing")
	assert.False(t, ok)

	assert.True(t, s.Has("name"))
	assert.Equal(t, []string{"admin", "big", "count", "decoded", "name", "ratio"}, s.Keys())
	assert.Equal(t, 6, s.Len())

	v, ok := s.Pop("name")
	assert.True(t, ok)
	assert.Equal(t, "alice", v)
	assert.False(t, s.Has("name"))

	_, ok = s.Pop("name")
	assert.False(t, ok)

	s.Delete("admin")
	assert.False(t, s.Has("admin"))

	copied := s.Values()
	copied["injected"] = "x"
	assert.False(t, s.Has("injected"), "Values must return a copy")

	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestSession_NilReceiver(t *testing.T) {
	t.Parallel()

	var s *session.Session
	assert.NotPanics(t, func() {
		s.Set("a", 1)
		s.Delete("a")
		s.Clear()
		_, _ = s.Get("a")
		_, _ = s.Pop("a")
	})
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Keys())
	assert.Empty(t, s.Values())
}

func TestContext(t *testing.T) {
	t.Parallel()

	_, ok := session.FromContext(context.Background())
	assert.False(t, ok)
	assert.Panics(t, func() { session.MustFromContext(context.Background()) })

	s := emptySession(t)
	ctx := session.WithSession(context.Background(), s)
	got, ok := session.FromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, s, got)
	assert.Same(t, s, session.MustFromContext(ctx))
}
