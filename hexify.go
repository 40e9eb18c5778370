package wirehttp

import "strings"

const hexDigits = "0123456789ABCDEF"

// UnsafeNonPrintable marks every byte outside printable ASCII, plus the
// double quote. Hexifying with it makes arbitrary text safe to embed in
// quoted contexts.
func UnsafeNonPrintable(b byte) bool {
	return b < 0x20 || b > 0x7e || b == '"'
}

// UnsafeQueryByte marks every byte that is not unreserved in a URL query
// component. Used for encoding POST field names and values, so a space
// becomes %20.
func UnsafeQueryByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return false
	case b == '-' || b == '_' || b == '.' || b == '~':
		return false
	}
	return true
}

// Hexify escapes every byte matched by unsafe as %XX. The '%' byte is always
// escaped so that Unhexify can reverse the result unambiguously.
func Hexify(s string, unsafe func(byte) bool) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' || unsafe(c) {
			b.WriteByte('%')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0x0f])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Unhexify reverses %XX escapes. A '%' not followed by two hex digits is
// kept literally.
func Unhexify(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi, okHi := unhexDigit(s[i+1])
			lo, okLo := unhexDigit(s[i+2])
			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func unhexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
