// Package bitvec implements an arbitrary-width two's-complement bit-vector value type.
//
// A Binary stores its bits little-endian in 64-bit words: bit 0 is the least
// significant bit of words[0]. Every value carries its own length and SignMode.
// Positions at or above the length conceptually read as the sign-extension bit,
// which is 0 for Unsigned values and the most significant stored bit for Signed ones.
package bitvec

// Binary is a fixed-length binary number. The zero value is an empty, unsigned
// vector of length 0 which denotes the number 0.
//
// A Binary is not safe for concurrent mutation. Every operation that does not
// mutate in place returns a new value that shares no storage with its inputs.
type Binary struct {
	words  []uint64 // little-endian: words[0] holds bits 0..63
	length int
	sign   SignMode
}

// Zeros returns a value of n zero bits.
func Zeros(n int, mode SignMode) *Binary {
	return newBinary(max(n, 0), mode)
}

// Ones returns a value of n one bits.
func Ones(n int, mode SignMode) *Binary {
	b := newBinary(max(n, 0), mode)
	setRange(b.words, 0, b.length)
	return b
}

// Len returns the number of bits of the value.
func (b *Binary) Len() int {
	return b.length
}

// Sign returns the sign mode of the value.
func (b *Binary) Sign() SignMode {
	return b.sign
}

// SignBit returns the most significant stored bit, or false for an empty value.
func (b *Binary) SignBit() bool {
	if b.length == 0 {
		return false
	}
	return b.bit(b.length - 1)
}

// SignExtendingBit returns the bit that conceptually fills every position at or
// above the length of the value.
func (b *Binary) SignExtendingBit() bool {
	if b.sign == Unsigned {
		return false
	}
	return b.SignBit()
}

// IsNegative reports whether the value is a negative signed number.
func (b *Binary) IsNegative() bool {
	return b.SignExtendingBit()
}

// Any reports whether at least one bit is set.
func (b *Binary) Any() bool {
	for _, w := range b.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the value.
func (b *Binary) Clone() *Binary {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &Binary{words: words, length: b.length, sign: b.sign}
}

// Cast reinterprets the bits under another sign mode.
func (b *Binary) Cast(mode SignMode) *Binary {
	res := b.Clone()
	res.sign = mode
	return res
}
