package signer

import (
	"encoding/binary"
	"strconv"
	"time"
)

func (f TimestampFormat) valid() bool {
	return f == TimestampDecimal || f == TimestampCompact
}

func (f TimestampFormat) encode(t time.Time) string {
	sec := t.Unix()
	if f == TimestampCompact {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], uint64(sec))
		i := 0
		for i < len(buf)-1 && buf[i] == 0 {
			i++
		}
		return b64.EncodeToString(buf[i:])
	}
	return strconv.FormatInt(sec, 10)
}

func (f TimestampFormat) decode(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	if f == TimestampCompact {
		raw, ok := decodeField(s)
		if !ok || len(raw) == 0 || len(raw) > 8 {
			return 0, false
		}
		var buf [8]byte
		copy(buf[8-len(raw):], raw)
		sec := binary.BigEndian.Uint64(buf[:])
		if sec > 1<<62 {
			return 0, false
		}
		return int64(sec), true
	}
	if len(s) > 18 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return sec, true
}
