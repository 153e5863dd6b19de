package bitvec

import (
	"fmt"
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/holiman/uint256"
)

// Option adjusts how a constructor builds a value.
type Option func(*options)

type options struct {
	length    int
	hasLength bool
	sign      SignMode
	hasSign   bool
}

// WithLength requests an explicit bit length instead of the inferred one.
func WithLength(n int) Option {
	return func(o *options) {
		o.length = n
		o.hasLength = true
	}
}

// WithSign requests an explicit sign mode.
func WithSign(m SignMode) Option {
	return func(o *options) {
		o.sign = m
		o.hasSign = true
	}
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) lengthOr(n int) int {
	if o.hasLength {
		return o.length
	}
	return n
}

func (o options) signOr(m SignMode) SignMode {
	if o.hasSign {
		return o.sign
	}
	return m
}

// Source is one of the inputs a Binary can be built from: Text, Int, Uint, Big,
// Bytes, Bools, Copy, BitSet or Uint256.
type Source interface {
	build(o options) (*Binary, error)
}

type (
	// Text is a binary or hexadecimal literal, see FromText.
	Text string
	// Int is a native signed integer.
	Int int64
	// Uint is a native unsigned integer.
	Uint uint64
	// Big is an unbounded integer.
	Big struct{ X *big.Int }
	// Bytes holds 8 bits per byte, byte 0 being the least significant.
	Bytes []byte
	// Bools lists bits with the most significant first.
	Bools []bool
	// Copy duplicates another value.
	Copy struct{ B *Binary }
	// BitSet reads bit i of the set as bit i of the value.
	BitSet struct{ S *bitset.BitSet }
	// Uint256 is a fixed 256-bit unsigned integer.
	Uint256 struct{ X *uint256.Int }
)

var (
	_ Source = Text("")
	_ Source = Int(0)
	_ Source = Uint(0)
	_ Source = Big{}
	_ Source = Bytes(nil)
	_ Source = Bools(nil)
	_ Source = Copy{}
	_ Source = BitSet{}
	_ Source = Uint256{}
)

// New builds a value from any Source.
func New(src Source, opts ...Option) (*Binary, error) {
	if src == nil {
		return nil, fmt.Errorf("nil source: %w", ErrUnsupportedInput)
	}
	return src.build(collect(opts))
}

// FromAny maps a Go value onto the matching Source and builds it.
func FromAny(v any, opts ...Option) (*Binary, error) {
	var src Source
	switch x := v.(type) {
	case Source:
		src = x
	case string:
		src = Text(x)
	case int:
		src = Int(x)
	case int8:
		src = Int(x)
	case int16:
		src = Int(x)
	case int32:
		src = Int(x)
	case int64:
		src = Int(x)
	case uint:
		src = Uint(x)
	case uint8:
		src = Uint(x)
	case uint16:
		src = Uint(x)
	case uint32:
		src = Uint(x)
	case uint64:
		src = Uint(x)
	case *big.Int:
		src = Big{x}
	case []byte:
		src = Bytes(x)
	case []bool:
		src = Bools(x)
	case *Binary:
		src = Copy{x}
	case *bitset.BitSet:
		src = BitSet{x}
	case *uint256.Int:
		src = Uint256{x}
	default:
		return nil, fmt.Errorf("%T: %w", v, ErrUnsupportedInput)
	}
	return New(src, opts...)
}

func FromText(s string, opts ...Option) (*Binary, error) {
	return New(Text(s), opts...)
}

func FromInt64(v int64, opts ...Option) (*Binary, error) {
	return New(Int(v), opts...)
}

func FromUint64(v uint64, opts ...Option) (*Binary, error) {
	return New(Uint(v), opts...)
}

func FromBigInt(v *big.Int, opts ...Option) (*Binary, error) {
	return New(Big{v}, opts...)
}

func FromBytes(p []byte, opts ...Option) (*Binary, error) {
	return New(Bytes(p), opts...)
}

func FromBools(bits []bool, opts ...Option) (*Binary, error) {
	return New(Bools(bits), opts...)
}

func FromCopy(b *Binary, opts ...Option) (*Binary, error) {
	return New(Copy{b}, opts...)
}

func FromBitSet(s *bitset.BitSet, opts ...Option) (*Binary, error) {
	return New(BitSet{s}, opts...)
}

func FromUint256(v *uint256.Int, opts ...Option) (*Binary, error) {
	return New(Uint256{v}, opts...)
}
