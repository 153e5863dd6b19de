package bitvec

import (
	"fmt"
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/holiman/uint256"
)

// Bytes returns the bits packed 8 per byte, byte 0 holding bits 0..7. Unused
// high bits of the last byte are 0.
func (b *Binary) Bytes() []byte {
	out := make([]byte, (b.length+7)/8) //nolint:mnd
	for i := range out {
		out[i] = byte(b.words[i/8] >> (uint(i%8) * 8)) //nolint:mnd
	}
	return out
}

// BigInt returns the numeric value, negative for signed values with the most
// significant bit set.
func (b *Binary) BigInt() *big.Int {
	buf := b.Bytes()
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	v := new(big.Int).SetBytes(buf)
	if b.IsNegative() {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(b.length)))
	}
	return v
}

func (b *Binary) Int64() (int64, error) {
	v := b.BigInt()
	if !v.IsInt64() {
		return 0, fmt.Errorf("%s as int64: %w", v, ErrDoesNotFit)
	}
	return v.Int64(), nil
}

func (b *Binary) Uint64() (uint64, error) {
	v := b.BigInt()
	if !v.IsUint64() {
		return 0, fmt.Errorf("%s as uint64: %w", v, ErrDoesNotFit)
	}
	return v.Uint64(), nil
}

func (b *Binary) Uint256() (*uint256.Int, error) {
	v := b.BigInt()
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%s as uint256: %w", v, ErrDoesNotFit)
	}
	res, overflow := uint256.FromBig(v)
	if overflow {
		return nil, fmt.Errorf("%s as uint256: %w", v, ErrDoesNotFit)
	}
	return res, nil
}

// BitSet returns a bit set of Len() bits whose bit i is bit i of the value.
func (b *Binary) BitSet() *bitset.BitSet {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return bitset.FromWithLength(uint(b.length), words)
}

// Bools lists the bits most significant first.
func (b *Binary) Bools() []bool {
	out := make([]bool, b.length)
	for i := range out {
		out[i] = b.bit(b.length - 1 - i)
	}
	return out
}
