package signer

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSecret is returned by New when no usable secret key is supplied.
	ErrNoSecret = errors.New("signer.no_secret")

	// ErrInvalidOption is returned by New for an unknown digest, key
	// derivation or timestamp format.
	ErrInvalidOption = errors.New("signer.invalid_option")

	// ErrBadSignature is the root of every verification failure. Malformed
	// and expired tokens are joined with it, so errors.Is(err, ErrBadSignature)
	// holds for all of them.
	ErrBadSignature = errors.New("signer.bad_signature")

	// ErrMalformedToken indicates a structurally invalid token: wrong field
	// count, invalid base64, a broken timestamp or an undecodable payload.
	ErrMalformedToken = errors.New("signer.malformed_token")

	// ErrExpired indicates a valid signature whose timestamp is older than
	// the allowed max age, or lies in the future.
	ErrExpired = errors.New("signer.expired")

	// ErrEncodePayload is returned by Sign when the values cannot be
	// serialized to JSON.
	ErrEncodePayload = errors.New("signer.encode_payload")
)

func malformed() error { return errors.Join(ErrBadSignature, ErrMalformedToken) }

func expired() error { return errors.Join(ErrBadSignature, ErrExpired) }

func invalidOption(name, value string) error {
	return fmt.Errorf("%w: unknown %s %q", ErrInvalidOption, name, value)
}
