package util

import "unicode/utf8"

// CommonPrefixLength returns the number of leading runes x and y share.
func CommonPrefixLength(x string, y string) int {
	n, _ := commonPrefix(x, y)
	return n
}

// SuffixPair strips the common prefix of x and y and returns both remainders in argument order.
func SuffixPair(x string, y string) (string, string) {
	_, offset := commonPrefix(x, y)
	return x[offset:], y[offset:]
}

// commonPrefix returns the shared prefix length in runes and in bytes.
func commonPrefix(x string, y string) (int, int) {
	if x == "" || y == "" {
		return 0, 0
	}

	runes, offset := 0, 0
	for offset < len(x) && offset < len(y) {
		rx, sx := utf8.DecodeRuneInString(x[offset:])
		ry, sy := utf8.DecodeRuneInString(y[offset:])
		if rx != ry || sx != sy {
			break
		}
		if rx == utf8.RuneError && x[offset] != y[offset] {
			break
		}
		offset += sx
		runes++
	}

	return runes, offset
}

// RuneLength is the word length used by prefix thresholds.
func RuneLength(word string) int {
	return utf8.RuneCountInString(word)
}
