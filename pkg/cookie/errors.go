package cookie

import "errors"

var (
	ErrInvalidName      = errors.New("cookie.invalid_name")
	ErrInvalidValue     = errors.New("cookie.invalid_value")
	ErrInvalidAttribute = errors.New("cookie.invalid_attribute")
	ErrInvalidSameSite  = errors.New("cookie.invalid_same_site")
	ErrCookieNotFound   = errors.New("cookie.not_found")
)
