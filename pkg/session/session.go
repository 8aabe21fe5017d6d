package session

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/cookiesession/pkg/signer"
)

// Session is the per-request key/value mapping carried in the signed cookie.
// Values must be JSON-compatible. A Session belongs to a single request and
// is not safe for concurrent use.
type Session struct {
	data map[string]any
	// snapshot is the canonical encoding of data as it was loaded.
	snapshot []byte
	hadData  bool
}

// newSession returns a session holding values, snapshotted as its initial
// state. A nil map yields an empty session.
func newSession(values map[string]any) *Session {
	if values == nil {
		values = make(map[string]any)
	}
	// Decoded JSON always re-encodes; a nil snapshot would only force a re-sign.
	snapshot, _ := signer.CanonicalJSON(values)
	return &Session{
		data:     values,
		snapshot: snapshot,
		hadData:  len(values) > 0,
	}
}

// Get retrieves a value from session data
func (s *Session) Get(key string) (any, bool) {
	if s == nil || s.data == nil {
		return nil, false
	}
	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string value from session data
func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// GetInt retrieves an int value from session data. Decoded JSON numbers are
// float64; they are truncated.
func (s *Session) GetInt(key string) (int, bool) {
	val, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// GetFloat retrieves a numeric value as float64.
func (s *Session) GetFloat(key string) (float64, bool) {
	val, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetBool retrieves a bool value from session data
func (s *Session) GetBool(key string) (bool, bool) {
	val, ok := s.Get(key)
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

func (s *Session) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Set stores a value in session data
func (s *Session) Set(key string, value any) {
	if s == nil {
		return
	}
	if s.data == nil {
		s.data = make(map[string]any)
	}
	s.data[key] = value
}

// Update copies every entry of values into the session.
func (s *Session) Update(values map[string]any) {
	for k, v := range values {
		s.Set(k, v)
	}
}

// Delete removes a value from session data
func (s *Session) Delete(key string) {
	if s == nil || s.data == nil {
		return
	}
	delete(s.data, key)
}

// Pop removes key and returns its previous value.
func (s *Session) Pop(key string) (any, bool) {
	val, ok := s.Get(key)
	if ok {
		s.Delete(key)
	}
	return val, ok
}

// Clear removes all data. A cleared session that was loaded from a cookie
// expires that cookie on the response.
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.data = make(map[string]any)
}

func (s *Session) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

func (s *Session) IsEmpty() bool { return s.Len() == 0 }

// Keys returns the keys in sorted order.
func (s *Session) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.data))
}

// Values returns a shallow copy of the session data.
func (s *Session) Values() map[string]any {
	if s == nil || s.data == nil {
		return map[string]any{}
	}
	return maps.Clone(s.data)
}
