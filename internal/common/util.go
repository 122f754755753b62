package common

import "unicode/utf8"

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal once they have been sent. Nil-safe.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Excerpt returns at most n bytes of s, cut back to a rune boundary.
func Excerpt(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
