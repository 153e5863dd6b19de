package bitvec

import (
	"fmt"
	"iter"
)

// Bits yields every bit, least significant first.
func (b *Binary) Bits() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := range b.length {
			if !yield(i, b.bit(i)) {
				return
			}
		}
	}
}

// Chunks yields successive unsigned slices of size bits starting from the least
// significant bit. The last chunk is shorter unless extendLast is set, in which
// case it is padded with the sign-extension bit.
func (b *Binary) Chunks(size int, extendLast bool) (iter.Seq[*Binary], error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size %d: %w", size, ErrInvalidChunkSize)
	}
	ext := b.SignExtendingBit()
	return func(yield func(*Binary) bool) {
		for start := 0; start < b.length; start += size {
			n := size
			if !extendLast {
				n = min(size, b.length-start)
			}
			if !yield(b.window(start, n, ext, Unsigned)) {
				return
			}
		}
	}, nil
}
