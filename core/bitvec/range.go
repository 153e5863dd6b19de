package bitvec

import (
	"fmt"
	"iter"
	"math"
)

// Sentinels standing for an omitted slice bound.
const (
	IndexEnd   = math.MaxInt
	IndexBegin = math.MinInt
)

// Range is a resolved slice over a value of a given length. Start and Stop are
// non-negative with Stop >= Start; Stop may exceed the length, in which case the
// positions past the length read as the sign-extension bit.
type Range struct {
	Start  int
	Stop   int
	Step   int
	length int
}

// FullRange returns the range covering every bit of the value with step 1.
func (b *Binary) FullRange() Range {
	return Range{Start: 0, Stop: b.length, Step: 1, length: b.length}
}

// ResolveRange turns Python-style slice bounds into a Range over length bits.
// Negative bounds count from the end and IndexBegin/IndexEnd denote omitted
// bounds. With a negative step the bounds are given in descending order, so that
// for example (IndexEnd, IndexBegin, -1) and (8, 0, -1) both cover [0, 8) of an
// 8-bit value.
func ResolveRange(start, stop, step, length int) (Range, error) {
	if step == 0 {
		return Range{}, ErrZeroStep
	}
	if step < 0 {
		start, stop = stop, start
	}
	start, stop = flattenIndex(start, length), flattenIndex(stop, length)
	if start < 0 || stop < 0 {
		return Range{}, fmt.Errorf("range [%d:%d] over %d bits: %w", start, stop, length, ErrIndexOutOfRange)
	}
	if stop < start {
		return Range{}, fmt.Errorf("%d < %d: %w", stop, start, ErrStopBeforeStart)
	}
	return Range{Start: start, Stop: stop, Step: step, length: length}, nil
}

func flattenIndex(i, length int) int {
	switch {
	case i == IndexEnd:
		return length
	case i == IndexBegin:
		return 0
	case i >= 0:
		return i
	default:
		return length + i
	}
}

// WrappedEnd returns the stop bound clamped to the length of the value.
func (r Range) WrappedEnd() int {
	return min(r.Stop, r.length)
}

// RealEnd returns the stop bound as requested, possibly past the length.
func (r Range) RealEnd() int {
	return r.Stop
}

// Len returns the number of positions selected by the range.
func (r Range) Len() int {
	step := r.Step
	if step < 0 {
		step = -step
	}
	return (r.Stop - r.Start + step - 1) / step
}

// stride yields the k-th selected position of [start, end) for each k. A
// positive step walks up from start, a negative one walks down from end-1.
func stride(start, end, step int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if step > 0 {
			for k, p := 0, start; p < end; k, p = k+1, p+step {
				if !yield(k, p) {
					return
				}
			}
			return
		}
		for k, p := 0, end-1; p >= start; k, p = k+1, p+step {
			if !yield(k, p) {
				return
			}
		}
	}
}
