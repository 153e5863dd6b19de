package bitvec

import (
	"fmt"
	"math"
)

func checkShift(n int) error {
	if n < 0 {
		return fmt.Errorf("shift by %d: %w", n, ErrNegativeShift)
	}
	return nil
}

// OverflowingLsh shifts a left by n bits, keeping its length. The carry holds the
// bits shifted out, n bits long; when n exceeds the length the carry is a
// preceded by n-len(a) low zero bits.
//
// For example:
//
//	1010 << 1 -> 0100, carry 1
//	1010 << 2 -> 1000, carry 10
//	1010 << 6 -> 0000, carry 101000
func OverflowingLsh(a *Binary, n int) (res, carry *Binary, err error) {
	if err = checkShift(n); err != nil {
		return nil, nil, err
	}
	clamped := min(n, a.length)

	res = newBinary(a.length, a.sign)
	res.copyInto(clamped, a, a.length-clamped)

	if n <= a.length {
		carry = a.window(a.length-n, n, false, Unsigned)
	} else {
		carry = newBinary(n, Unsigned)
		carry.copyInto(n-a.length, a, a.length)
	}
	return res, carry, nil
}

// UnderflowingLogicalRsh shifts a right by n bits filling the top with zeros. The
// carry holds the n lowest bits of a, padded with its sign-extension bit.
func UnderflowingLogicalRsh(a *Binary, n int) (res, carry *Binary, err error) {
	return rsh(a, n, false)
}

// UnderflowingArithmeticRsh shifts a right by n bits filling the top with the
// sign-extension bit.
func UnderflowingArithmeticRsh(a *Binary, n int) (res, carry *Binary, err error) {
	return rsh(a, n, a.SignExtendingBit())
}

func rsh(a *Binary, n int, fill bool) (res, carry *Binary, err error) {
	if err = checkShift(n); err != nil {
		return nil, nil, err
	}
	clamped := min(n, a.length)

	res = a.window(clamped, a.length-clamped, false, a.sign)
	res.resizeTo(a.length, fill)

	carry = a.window(0, n, a.SignExtendingBit(), Unsigned)
	return res, carry, nil
}

func WrappingLsh(a *Binary, n int) (*Binary, error) {
	res, _, err := OverflowingLsh(a, n)
	return res, err
}

func WrappingLogicalRsh(a *Binary, n int) (*Binary, error) {
	res, _, err := UnderflowingLogicalRsh(a, n)
	return res, err
}

func WrappingArithmeticRsh(a *Binary, n int) (*Binary, error) {
	res, _, err := UnderflowingArithmeticRsh(a, n)
	return res, err
}

// ShiftAmount reads a shift amount held as a value.
func ShiftAmount(b *Binary) (int, error) {
	if b.IsNegative() {
		return 0, fmt.Errorf("shift by %s: %w", b.BigInt(), ErrNegativeShift)
	}
	v := b.BigInt()
	if !v.IsInt64() || v.Int64() > math.MaxInt {
		return 0, fmt.Errorf("shift by %s: %w", v, ErrDoesNotFit)
	}
	return int(v.Int64()), nil
}
