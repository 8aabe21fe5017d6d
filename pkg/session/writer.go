package session

import (
	"bufio"
	"io"
	"net"
	"net/http"
)

// responseWriter runs onCommit once, right before the final header section
// is written. Optional interfaces are forwarded so that streaming and
// websocket upgrades keep working behind the middleware.
type responseWriter struct {
	http.ResponseWriter
	onCommit  func()
	committed bool
}

func (w *responseWriter) commit() {
	if w.committed {
		return
	}
	w.committed = true
	w.onCommit()
}

// WriteHeader commits on final status codes and on 101. Other 1xx codes are
// informational and leave the header section open.
func (w *responseWriter) WriteHeader(code int) {
	if code >= http.StatusOK || code == http.StatusSwitchingProtocols {
		w.commit()
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(p []byte) (int, error) {
	w.commit()
	return w.ResponseWriter.Write(p)
}

func (w *responseWriter) ReadFrom(r io.Reader) (int64, error) {
	w.commit()
	return io.Copy(w.ResponseWriter, r)
}

func (w *responseWriter) Flush() {
	w.commit()
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack hands the connection over without emitting a cookie: headers set
// afterwards would never reach the client.
func (w *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, http.ErrNotSupported
	}
	w.committed = true
	return hj.Hijack()
}

func (w *responseWriter) Push(target string, opts *http.PushOptions) error {
	if p, ok := w.ResponseWriter.(http.Pusher); ok {
		return p.Push(target, opts)
	}
	return http.ErrNotSupported
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
