// Package cookie reads a named HTTP cookie and renders its Set-Cookie header
// with a fixed, lower-case attribute layout.
//
// # Overview
//
// A Manager is created once with a cookie name and default attributes and
// is then shared by all requests. It produces two header shapes:
//
//	session=<value>; path=/; Max-Age=1209600; httponly; samesite=lax
//	session=null; path=/; expires=Thu, 01 Jan 1970 00:00:00 GMT; httponly; samesite=lax
//
// secure and domain are appended when configured. httponly is always set.
//
// Headers are written through HeaderSink and cookies are read through
// Source, so the package works with net/http (http.Header, *http.Request)
// and with any adapter exposing the same two methods.
//
// # Usage
//
//	man, err := cookie.New("session",
//	    cookie.WithMaxAge(14*24*60*60),
//	    cookie.WithSecure(true),
//	)
//	if err != nil { log.Fatal(err) }
//
//	value, err := man.Get(r)
//	_ = man.Set(w.Header(), token)
//	man.Delete(w.Header())
//
// # Error Handling
//
// New returns ErrInvalidName, ErrInvalidAttribute or ErrInvalidSameSite for a
// bad configuration. Get returns ErrCookieNotFound when the cookie is absent.
//
// SameSite "none" is only honoured by browsers together with the secure flag.
package cookie
