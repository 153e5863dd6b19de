package bitvec

import (
	"fmt"
	"math/bits"
)

// HammingDistance counts the positions at which a and b differ. The shorter
// operand is zero-extended.
func HammingDistance(a, b *Binary) (int, error) {
	if a.sign != b.sign {
		return 0, fmt.Errorf("hamming distance of %s and %s: %w", a.sign, b.sign, ErrSignMismatch)
	}
	distance := 0
	for i := range max(len(a.words), len(b.words)) {
		distance += bits.OnesCount64(a.extendedWord(i, false) ^ b.extendedWord(i, false))
	}
	return distance, nil
}
