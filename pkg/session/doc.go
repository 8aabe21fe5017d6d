// Package session keeps per-request key/value state in a signed,
// timestamped cookie. Nothing is stored on the server: the cookie is the
// session.
//
// # Architecture
//
// A Manager combines a signer.Signer (token format and verification) with a
// cookie.Manager (cookie lookup and Set-Cookie rendering). Its Middleware
// runs in two phases around the next handler:
//
//	request ──► Load ──► context ──► handler ──► commit ──► Save ──► Set-Cookie?
//
// Load verifies the cookie and snapshots its contents. Anything wrong with
// the cookie (missing, tampered, malformed, expired) produces an empty
// session and is only logged; handlers cannot tell the difference.
//
// Save runs once, when the response headers are about to be written, and
// compares the session with its snapshot:
//
//   - unchanged data: no header
//   - changed data: a freshly signed cookie
//   - data that was loaded and is now empty: an expired cookie
//   - no data before or after: no header
//
// Load and Save only need a cookie.Source and a cookie.HeaderSink, so other
// frameworks can drive them directly.
//
// # Usage
//
//	manager, err := session.New(os.Getenv("SESSION_SECRET_KEY"),
//	    session.WithHTTPSOnly(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := chi.NewRouter()
//	r.Use(manager.Middleware)
//	r.Get("/login", func(w http.ResponseWriter, r *http.Request) {
//	    sess := session.MustFromContext(r.Context())
//	    sess.Set("user", "42")
//	})
//
// # Configuration
//
// Options cover every knob. Config mirrors them with env tags
// (SESSION_SECRET_KEY, SESSION_MAX_AGE, ...) for NewFromConfig.
//
// The default key setup (salt "cookie-session", HMAC derivation, SHA-1)
// matches Flask. Add WithTimestampFormat(signer.TimestampCompact) to share
// cookies with a Flask application using the same secret.
//
// # Error Handling
//
// Construction errors wrap ErrInvalidConfig. At request time the only
// possible failure is a session value that cannot be encoded as JSON; it is
// logged and no cookie is written.
package session
