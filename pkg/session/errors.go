package session

import "errors"

var (
	// ErrInvalidConfig wraps every construction failure: missing secret,
	// bad cookie attributes or unknown signer settings.
	ErrInvalidConfig = errors.New("session.invalid_config")

	// ErrEncodeSession indicates the session values could not be signed at
	// commit time, e.g. because a handler stored a non-JSON value.
	ErrEncodeSession = errors.New("session.encode_failed")
)
