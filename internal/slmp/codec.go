package slmp

// Byte-pair codecs for SLMP word payloads. All word values travel on the
// wire as two bytes, low byte first.

import "fmt"

// DecodeInt16 combines a little-endian byte pair into a signed 16-bit value
// (two's-complement interpretation).
func DecodeInt16(lo, hi byte) int16 {
	return int16(uint16(hi)<<8 | uint16(lo))
}

// DecodeUint16 combines a little-endian byte pair into an unsigned 16-bit value.
func DecodeUint16(lo, hi byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// EncodeUint16 splits the low 16 bits of v into a little-endian byte pair.
// Values outside [0, 65535] wrap modulo 65536; negative values take their
// two's-complement form. The wire format does not distinguish signed from
// unsigned, so the same encoding serves both.
func EncodeUint16(v int) (lo, hi byte) {
	u := uint16(v)
	return byte(u), byte(u >> 8)
}

// StringToBytes maps a string of up to two ASCII characters onto a word
// payload byte pair. Missing characters encode as zero.
func StringToBytes(s string) (lo, hi byte, err error) {
	if len(s) > 2 {
		return 0, 0, fmt.Errorf("%q is %d characters: %w", s, len(s), ErrValueTooLong)
	}
	if len(s) > 0 {
		lo = s[0]
	}
	if len(s) > 1 {
		hi = s[1]
	}
	return lo, hi, nil
}

// BytesToString is the inverse of StringToBytes. A zero byte contributes
// nothing, so BytesToString(0, 'B') is "B", not a two-character string with
// an embedded NUL.
func BytesToString(lo, hi byte) string {
	var buf [2]byte
	n := 0
	if lo != 0 {
		buf[n] = lo
		n++
	}
	if hi != 0 {
		buf[n] = hi
		n++
	}
	return string(buf[:n])
}
