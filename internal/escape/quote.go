// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles escape sequences in JSON string text.
//
// String text in this module is stored as it appears in the input, with any
// escape sequences left intact. Quote prepares such text for output without
// disturbing the escapes it already contains.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

// IsEscape reports whether ch may follow a backslash in a JSON string.
// The payload of a \u escape is not checked.
func IsEscape(ch byte) bool {
	switch ch {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
		return true
	}
	return false
}

func isHex(ch byte) bool {
	return ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'
}

// escapeLen returns the length of the escape sequence at the start of src,
// or 0 if src does not begin with a complete escape. A \u escape must have
// four hex digits.
func escapeLen(src mem.RO) int {
	if src.Len() < 2 || src.At(0) != '\\' || !IsEscape(src.At(1)) {
		return 0
	} else if src.At(1) != 'u' {
		return 2
	} else if src.Len() < 6 {
		return 0
	}
	for i := 2; i < 6; i++ {
		if !isHex(src.At(i)) {
			return 0
		}
	}
	return 6
}

// ValidEscapes reports whether every backslash in text begins a complete
// escape sequence.
func ValidEscapes(text mem.RO) bool {
	for i := 0; i < text.Len(); i++ {
		if text.At(i) == '\\' {
			n := escapeLen(text.SliceFrom(i))
			if n == 0 {
				return false
			}
			i += n - 1
		}
	}
	return true
}

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src for inclusion between the double quotes of a JSON string.
// Escape sequences already present in src are copied through unchanged.
// Control characters, unescaped double quotes, and backslashes that do not
// begin a complete escape are escaped.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	putByte := func(bs ...byte) { buf = append(buf, bs...) }

	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}
		if r < utf8.RuneSelf {
			switch {
			case r == '\\':
				if k := escapeLen(src); k > 0 {
					buf = mem.Append(buf, src.SliceTo(k))
					n = k
				} else {
					putByte('\\', '\\')
				}
			case r == '"':
				putByte('\\', '"')
			case r < ' ':
				if b := controlEsc[r]; b != 0 {
					putByte('\\', b)
				} else {
					putByte('\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
				}
			default:
				putByte(byte(r))
			}
			src = src.SliceFrom(n)
			continue
		}

		buf = mem.Append(buf, src.SliceTo(n))
		src = src.SliceFrom(n)
	}
	return buf
}

// QuoteString is a convenience wrapper for Quote on a string.
func QuoteString(s string) string { return string(Quote(mem.S(s))) }
