package bitvec

import (
	"fmt"
	"strings"
)

const hexOnlyDigits = "23456789abcdef"

// parseText reads a binary or hexadecimal literal into an unsigned value whose
// length is the number of digits times the bits per digit.
//
// For example:
//
//	"0b0101"    -> 0101
//	"0x1f"      -> 00011111
//	"1010 1010" -> 10101010 (no prefix, only 0 and 1 digits: binary)
//	"ff"        -> 11111111 (no prefix, hex digits present: hexadecimal)
func parseText(s string) (*Binary, error) {
	digits := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)

	bitsPerDigit := 1
	switch {
	case strings.HasPrefix(digits, "0b"), strings.HasPrefix(digits, "0B"):
		digits = digits[2:]
	case strings.HasPrefix(digits, "0x"), strings.HasPrefix(digits, "0X"):
		digits = digits[2:]
		bitsPerDigit = 4
	case strings.ContainsAny(strings.ToLower(digits), hexOnlyDigits):
		bitsPerDigit = 4
	}

	b := newBinary(len(digits)*bitsPerDigit, Unsigned)
	for i := range len(digits) {
		c := digits[len(digits)-1-i]
		v, ok := digitValue(c)
		if !ok || v >= 1<<bitsPerDigit {
			return nil, fmt.Errorf("invalid digit %q in %q: %w", c, s, ErrUnsupportedInput)
		}
		b.putBits(i*bitsPerDigit, bitsPerDigit, v)
	}
	return b, nil
}

func digitValue(c byte) (uint64, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint64(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint64(c-'a') + 10, true //nolint:mnd
	case 'A' <= c && c <= 'F':
		return uint64(c-'A') + 10, true //nolint:mnd
	default:
		return 0, false
	}
}
