package bitvec

import "fmt"

// Resize changes the length of the value to n bits. Growing pads with the
// sign-extension bit. Shrinking discards the high bits; when checked is true it
// first verifies that the discarded bits all equal the sign-extension bit of the
// shrunk value and fails with ErrDoesNotFit otherwise, leaving the value unchanged.
func (b *Binary) Resize(n int, checked bool) error {
	if n < 0 {
		return fmt.Errorf("resize to %d bits: %w", n, ErrIndexOutOfRange)
	}
	if checked && !b.fitsIn(n) {
		return fmt.Errorf("value %s cannot fit in %d bits: %w", b, n, ErrDoesNotFit)
	}
	b.resizeTo(n, b.SignExtendingBit())
	return nil
}

// fitsIn reports whether shrinking to n bits preserves the numeric value.
func (b *Binary) fitsIn(n int) bool {
	if n >= b.length {
		return true
	}
	ext := false
	if b.sign == Signed && n > 0 {
		ext = b.bit(n - 1)
	}
	return b.rangeEquals(n, b.length, ext)
}

// rangeEquals reports whether every bit in [from, to) equals bit.
func (b *Binary) rangeEquals(from, to int, bit bool) bool {
	want := fillWord(bit)
	for pos := from; pos < to; pos += wordBits {
		mask := lowMask(to - pos)
		if (b.chunkAt(pos, false)^want)&mask != 0 {
			return false
		}
	}
	return true
}
