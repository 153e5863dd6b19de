package bitvec

import "math/bits"

// mulAddWWW returns hi, lo such that hi<<64 + lo = x*y + c.
func mulAddWWW(x, y, c uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	var cc uint64
	lo, cc = bits.Add64(lo, c, 0)
	return hi + cc, lo
}

// addMulVVW adds x*y to z and returns the carry out of the top word.
func addMulVVW(z, x []uint64, y uint64) (c uint64) {
	for i := range z {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		var cc uint64
		z[i], cc = bits.Add64(z0, c, 0)
		c = z1 + cc
	}
	return c
}

// extendedWords returns the words of b extended to length bits with its own
// sign-extension bit, bits past length being 0.
func (b *Binary) extendedWords(length int) []uint64 {
	ext := b.SignExtendingBit()
	words := make([]uint64, wordsFor(length))
	for i := range words {
		words[i] = b.extendedWord(i, ext) & lowMask(length-i*wordBits)
	}
	return words
}

// Multiply returns the full product of a and b, a.Len()+b.Len() bits wide. The
// product is signed when either operand is signed.
func Multiply(a, b *Binary) *Binary {
	width := a.length + b.length
	mode := Unsigned
	if a.sign == Signed || b.sign == Signed {
		mode = Signed
	}

	x, y := a.extendedWords(width), b.extendedWords(width)
	z := make([]uint64, len(x))
	for j, w := range y {
		if w == 0 {
			continue
		}
		// carries past the top word fall outside the product width
		addMulVVW(z[j:], x[:len(x)-j], w)
	}

	res := &Binary{words: z, length: width, sign: mode}
	res.truncateToLength()
	return res
}

// OverflowingMul splits the product of a and b into the low a.Len() bits and
// the remaining high bits. Both halves are unsigned.
func OverflowingMul(a, b *Binary) (low, high *Binary) {
	prod := Multiply(a, b)
	low = prod.window(0, a.length, false, Unsigned)
	high = prod.window(a.length, b.length, false, Unsigned)
	return low, high
}

// WrappingMul returns the low a.Len() bits of the product of a and b.
func WrappingMul(a, b *Binary) *Binary {
	low, _ := OverflowingMul(a, b)
	return low
}
