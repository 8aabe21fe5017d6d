package signer

import (
	"crypto/hmac"
	"errors"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
)

const hkdfInfo = "cookiesession.signer"

// deriveKey turns a secret into the HMAC key. Salt separates key spaces
// sharing one secret.
func deriveKey(kd KeyDerivation, newHash func() hash.Hash, secret, salt []byte) ([]byte, error) {
	switch kd {
	case KeyDerivationHMAC:
		mac := hmac.New(newHash, secret)
		mac.Write(salt)
		return mac.Sum(nil), nil
	case KeyDerivationConcat:
		h := newHash()
		h.Write(salt)
		h.Write(secret)
		return h.Sum(nil), nil
	case KeyDerivationDjangoConcat:
		h := newHash()
		h.Write(salt)
		h.Write([]byte("signer"))
		h.Write(secret)
		return h.Sum(nil), nil
	case KeyDerivationNone:
		key := make([]byte, len(secret))
		copy(key, secret)
		return key, nil
	case KeyDerivationHKDF:
		key := make([]byte, newHash().Size())
		if _, err := io.ReadFull(hkdf.New(newHash, secret, salt, []byte(hkdfInfo)), key); err != nil {
			return nil, errors.Join(ErrInvalidOption, err)
		}
		return key, nil
	default:
		return nil, invalidOption("key derivation", string(kd))
	}
}
