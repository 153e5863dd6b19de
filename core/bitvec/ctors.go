package bitvec

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// finish applies the requested length, def when none was given, to a freshly built
// value. Lengths below minimal are rejected without looking at the bits.
func finish(b *Binary, o options, def, minimal int) (*Binary, error) {
	n := o.lengthOr(def)
	if n < 0 {
		return nil, fmt.Errorf("length %d: %w", n, ErrIndexOutOfRange)
	}
	if n < minimal {
		return nil, fmt.Errorf("value %s cannot fit in %d bits: %w", b, n, ErrDoesNotFit)
	}
	if err := b.Resize(n, true); err != nil {
		return nil, err
	}
	return b, nil
}

func (t Text) build(o options) (*Binary, error) {
	b, err := parseText(string(t))
	if err != nil {
		return nil, err
	}
	b.sign = o.signOr(Unsigned)
	n := o.lengthOr(b.length)
	if n < 0 {
		return nil, fmt.Errorf("length %d: %w", n, ErrIndexOutOfRange)
	}
	if err := b.Resize(n, true); err != nil {
		return nil, err
	}
	return b, nil
}

// intWidth returns the minimal number of bits holding v under mode.
func intWidth(v int64, mode SignMode) int {
	switch {
	case v == 0:
		return 0
	case v == math.MinInt64:
		return 64
	case v > 0:
		return uintWidth(uint64(v), mode)
	default:
		abs := uint64(-v)
		n := bits.Len64(abs)
		if abs&(abs-1) != 0 {
			n++
		}
		return n
	}
}

func uintWidth(v uint64, mode SignMode) int {
	n := bits.Len64(v)
	if mode == Signed && v != 0 {
		n++
	}
	return n
}

func (v Int) build(o options) (*Binary, error) {
	mode := Unsigned
	if v < 0 {
		mode = Signed
	}
	mode = o.signOr(mode)
	if v < 0 && mode == Unsigned {
		return nil, fmt.Errorf("negative value %d as unsigned: %w", v, ErrDoesNotFit)
	}
	b := &Binary{words: []uint64{uint64(v)}, length: wordBits, sign: mode}
	width := intWidth(int64(v), mode)
	return finish(b, o, width, width)
}

func (v Uint) build(o options) (*Binary, error) {
	mode := o.signOr(Unsigned)
	b := &Binary{words: []uint64{uint64(v)}, length: wordBits, sign: mode}
	width := uintWidth(uint64(v), mode)
	if width > wordBits {
		// the top bit of v is set, so the signed form needs a 0 above it
		b.resizeTo(width, false)
	}
	return finish(b, o, width, width)
}

func (v Big) build(o options) (*Binary, error) {
	if v.X == nil {
		return nil, fmt.Errorf("nil big.Int: %w", ErrUnsupportedInput)
	}
	neg := v.X.Sign() < 0
	mode := Unsigned
	if neg {
		mode = Signed
	}
	mode = o.signOr(mode)
	if neg && mode == Unsigned {
		return nil, fmt.Errorf("negative value %s as unsigned: %w", v.X, ErrDoesNotFit)
	}

	abs := new(big.Int).Abs(v.X)
	width := abs.BitLen()
	switch {
	case neg && abs.TrailingZeroBits() != uint(width-1):
		width++
	case !neg && mode == Signed && width > 0:
		width++
	}

	buf := abs.FillBytes(make([]byte, (width+7)/8))
	b := newBinary(width, mode)
	for i, c := range buf {
		pos := (len(buf) - 1 - i) * 8 //nolint:mnd
		b.words[pos/wordBits] |= uint64(c) << uint(pos%wordBits)
	}
	if neg {
		b.negateInPlace()
	}
	b.truncateToLength()
	return finish(b, o, width, width)
}

func (p Bytes) build(o options) (*Binary, error) {
	b := newBinary(len(p)*8, o.signOr(Unsigned)) //nolint:mnd
	for i, c := range p {
		pos := i * 8 //nolint:mnd
		b.words[pos/wordBits] |= uint64(c) << uint(pos%wordBits)
	}
	return finish(b, o, b.length, 0)
}

func (bs Bools) build(o options) (*Binary, error) {
	b := newBinary(len(bs), o.signOr(Unsigned))
	for i, v := range bs {
		if v {
			b.setBit(len(bs)-1-i, true)
		}
	}
	return finish(b, o, b.length, 0)
}

func (c Copy) build(o options) (*Binary, error) {
	if c.B == nil {
		return nil, fmt.Errorf("nil value: %w", ErrUnsupportedInput)
	}
	b := c.B.Clone()
	b.sign = o.signOr(b.sign)
	n := o.lengthOr(b.length)
	if n < 0 {
		return nil, fmt.Errorf("length %d: %w", n, ErrIndexOutOfRange)
	}
	b.resizeTo(n, b.SignExtendingBit())
	return b, nil
}

func (s BitSet) build(o options) (*Binary, error) {
	if s.S == nil {
		return nil, fmt.Errorf("nil bit set: %w", ErrUnsupportedInput)
	}
	n := int(s.S.Len())
	b := newBinary(n, o.signOr(Unsigned))
	copy(b.words, s.S.Bytes())
	b.truncateToLength()
	return finish(b, o, b.length, 0)
}

func (x Uint256) build(o options) (*Binary, error) {
	if x.X == nil {
		return nil, fmt.Errorf("nil uint256: %w", ErrUnsupportedInput)
	}
	mode := o.signOr(Unsigned)
	width := x.X.BitLen()
	if mode == Signed && width > 0 {
		width++
	}
	b := newBinary(max(width, 256), mode) //nolint:mnd
	copy(b.words, x.X[:])
	return finish(b, o, width, width)
}
