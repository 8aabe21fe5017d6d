package session

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/cookiesession/pkg/logger"
)

// Middleware loads the session before next runs and writes the cookie
// decision when the response headers are committed. A request whose context
// is cancelled before anything was written gets no cookie.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.skipper != nil && m.skipper(r) {
			next.ServeHTTP(w, r)
			return
		}

		sess := m.Load(r.Context(), r)
		ctx := WithSession(r.Context(), sess)

		rw := &responseWriter{
			ResponseWriter: w,
			onCommit:       func() { m.commit(ctx, sess, w.Header()) },
		}

		next.ServeHTTP(rw, r.WithContext(ctx))

		if !rw.committed {
			if r.Context().Err() != nil {
				rw.committed = true
				return
			}
			rw.commit()
		}
	})
}

func (m *Manager) commit(ctx context.Context, sess *Session, h http.Header) {
	if _, err := m.Save(ctx, sess, h); err != nil {
		m.logger.ErrorContext(ctx, "failed to save session",
			logger.Component("session"),
			logger.Event("session.save_failed"),
			logger.Error(err),
		)
	}
}
