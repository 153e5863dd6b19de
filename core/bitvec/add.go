package bitvec

import (
	"fmt"
	"math/bits"
)

// AddWithCarry adds a, b and the carry in. b may be nil, in which case only the
// carry is added to a. Both operands must share a sign mode. The result is as
// long as the longer operand; a shorter operand is extended with its own
// sign-extension bit. Overflow is set when the sum does not fit that length.
func AddWithCarry(a, b *Binary, carry bool) (*Binary, Flags, error) {
	length := a.length
	if b != nil {
		if a.sign != b.sign {
			return nil, Flags{}, fmt.Errorf("add %s and %s: %w", a.sign, b.sign, ErrSignMismatch)
		}
		length = max(length, b.length)
	}

	res := newBinary(length, a.sign)
	extA := a.SignExtendingBit()
	var extB bool
	if b != nil {
		extB = b.SignExtendingBit()
	}

	var c uint64
	if carry {
		c = 1
	}
	for i := range res.words {
		mask := lowMask(length - i*wordBits)
		x := a.extendedWord(i, extA) & mask
		var y uint64
		if b != nil {
			y = b.extendedWord(i, extB) & mask
		}
		res.words[i], c = bits.Add64(x, y, c)
	}

	overflow := c == 1
	if rem := length % wordBits; rem != 0 {
		overflow = overflow || res.words[len(res.words)-1]>>uint(rem)&1 == 1
	}
	res.truncateToLength()
	return res, flagsOf(res, overflow), nil
}

// negateInPlace replaces the bits with their two's complement.
func (b *Binary) negateInPlace() {
	c := uint64(1)
	for i, w := range b.words {
		b.words[i], c = bits.Add64(^w, 0, c)
	}
	b.truncateToLength()
}

// Negate returns the two's complement of a, keeping its length and sign mode.
func Negate(a *Binary) *Binary {
	// a single operand cannot mismatch signs
	res, _, _ := AddWithCarry(Not(a), nil, true)
	return res
}

// OverflowingAdd returns a+b and whether the sum overflowed.
func OverflowingAdd(a, b *Binary) (*Binary, bool, error) {
	res, flags, err := AddWithCarry(a, b, false)
	if err != nil {
		return nil, false, err
	}
	return res, flags.Overflow, nil
}

// WrappingAdd returns a+b truncated to the operand length.
func WrappingAdd(a, b *Binary) (*Binary, error) {
	res, _, err := AddWithCarry(a, b, false)
	return res, err
}

// FlaggedAdd returns a+b with the full set of flags.
func FlaggedAdd(a, b *Binary) (*Binary, Flags, error) {
	return AddWithCarry(a, b, false)
}
