package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// SessionState records an outbound session decision under "state".
func SessionState(state string) slog.Attr {
	return slog.String("state", state)
}

// Reason records why a cookie was rejected under "reason". Never pass the
// cookie value itself.
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// Cookie records the cookie name under "cookie".
func Cookie(name string) slog.Attr {
	return slog.String("cookie", name)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
