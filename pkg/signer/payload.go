package signer

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// compressedPrefix marks a zlib-compressed payload.
const compressedPrefix = "."

// CanonicalJSON encodes values as compact JSON with sorted keys and no HTML
// escaping. A nil map encodes as "{}". Two maps with the same canonical
// encoding are considered equal sessions.
func CanonicalJSON(values map[string]any) ([]byte, error) {
	if values == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(values); err != nil {
		return nil, errors.Join(ErrEncodePayload, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

func (s *Signer) encodePayload(values map[string]any) (string, error) {
	data, err := CanonicalJSON(values)
	if err != nil {
		return "", err
	}

	if s.opts.compress {
		var buf bytes.Buffer
		zw := zlib.NewWriter(&buf)
		if _, err := zw.Write(data); err == nil && zw.Close() == nil && buf.Len() < len(data)-1 {
			return compressedPrefix + b64.EncodeToString(buf.Bytes()), nil
		}
	}

	return b64.EncodeToString(data), nil
}

func (s *Signer) decodePayload(payload string) (map[string]any, error) {
	compressed := strings.HasPrefix(payload, compressedPrefix)
	if compressed {
		payload = payload[len(compressedPrefix):]
	}
	if payload == "" || int64(b64.DecodedLen(len(payload))) > s.opts.maxPayloadSize {
		return nil, malformed()
	}

	data, ok := decodeField(payload)
	if !ok {
		return nil, malformed()
	}

	if compressed {
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, malformed()
		}
		defer zr.Close()

		data, err = io.ReadAll(io.LimitReader(zr, s.opts.maxPayloadSize+1))
		if err != nil || int64(len(data)) > s.opts.maxPayloadSize {
			return nil, malformed()
		}
	}

	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil || values == nil {
		return nil, malformed()
	}
	return values, nil
}
