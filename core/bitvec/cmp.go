package bitvec

import "slices"

// Equal reports whether a and b hold the same bits over the same length. The sign
// modes are not compared.
func (b *Binary) Equal(other *Binary) bool {
	return b.length == other.length && slices.Equal(b.words, other.words)
}

// Cmp returns -1, 0 or +1 depending on whether b is numerically smaller, equal
// or larger than other. Values with equal bits and length compare equal.
func (b *Binary) Cmp(other *Binary) int {
	if b.Equal(other) {
		return 0
	}
	return b.BigInt().Cmp(other.BigInt())
}
