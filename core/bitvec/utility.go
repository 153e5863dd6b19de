package bitvec

import (
	"fmt"
	"math/big"
)

// Convert reinterprets the value under mode, failing with ErrDoesNotFit when the
// numeric value would change.
func (b *Binary) Convert(mode SignMode) (*Binary, error) {
	if mode != b.sign && b.SignBit() {
		return nil, fmt.Errorf("convert %s from %s to %s: %w", b, b.sign, mode, ErrDoesNotFit)
	}
	return b.Cast(mode), nil
}

// ExtendToSigned returns the value as signed, growing it by a 0 bit when an
// unsigned value has its most significant bit set.
func (b *Binary) ExtendToSigned() *Binary {
	res := b.Cast(Signed)
	if b.sign == Unsigned && b.SignBit() {
		res.resizeTo(b.length+1, false)
	}
	return res
}

// PadZeros resizes to n bits without checks, filling new high bits with 0.
func (b *Binary) PadZeros(n int) *Binary {
	return b.padded(n, false)
}

// PadOnes resizes to n bits without checks, filling new high bits with 1.
func (b *Binary) PadOnes(n int) *Binary {
	return b.padded(n, true)
}

// PadSignExtend resizes to n bits without checks, repeating the most significant bit.
func (b *Binary) PadSignExtend(n int) *Binary {
	return b.padded(n, b.SignBit())
}

func (b *Binary) padded(n int, fill bool) *Binary {
	res := b.Clone()
	res.resizeTo(max(n, 0), fill)
	return res
}

// MaxValue returns the largest number representable with the length and sign mode.
func (b *Binary) MaxValue() *big.Int {
	if b.length == 0 {
		return new(big.Int)
	}
	n := b.length
	if b.sign == Signed {
		n--
	}
	one := big.NewInt(1)
	return new(big.Int).Sub(new(big.Int).Lsh(one, uint(n)), one)
}

// MinValue returns the smallest number representable with the length and sign mode.
func (b *Binary) MinValue() *big.Int {
	if b.length == 0 || b.sign == Unsigned {
		return new(big.Int)
	}
	return new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(b.length-1)))
}

// LowByte returns bits [0, 8).
func (b *Binary) LowByte() *Binary {
	return b.byteWindow(0, 8) //nolint:mnd
}

// HighByte returns bits [8, 16).
func (b *Binary) HighByte() *Binary {
	return b.byteWindow(8, 8) //nolint:mnd
}

// ExtendedLow returns bits [0, 16).
func (b *Binary) ExtendedLow() *Binary {
	return b.byteWindow(0, 16) //nolint:mnd
}

// ExtendedHigh returns bits [16, 32).
func (b *Binary) ExtendedHigh() *Binary {
	return b.byteWindow(16, 16) //nolint:mnd
}

// Byte returns the i-th byte, bits [8i, 8i+8).
func (b *Binary) Byte(i int) (*Binary, error) {
	if i < 0 {
		return nil, fmt.Errorf("byte %d: %w", i, ErrIndexOutOfRange)
	}
	return b.byteWindow(i*8, 8), nil //nolint:mnd
}

// byteWindow reads like Slice: unsigned, padded with the sign-extension bit.
func (b *Binary) byteWindow(start, n int) *Binary {
	return b.window(start, n, b.SignExtendingBit(), Unsigned)
}
