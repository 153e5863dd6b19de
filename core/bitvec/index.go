package bitvec

import "fmt"

// Bit returns the bit at index i. Negative indices count from the end. Any index
// outside the value returns the sign-extension bit.
func (b *Binary) Bit(i int) bool {
	if i < 0 && i != IndexBegin {
		i += b.length
	}
	if i < 0 || i >= b.length {
		return b.SignExtendingBit()
	}
	return b.bit(i)
}

// SetBit sets the bit at index i, counting from the end for negative indices.
func (b *Binary) SetBit(i int, v bool) error {
	pos := flattenIndex(i, b.length)
	if pos < 0 || pos >= b.length {
		return fmt.Errorf("bit %d of %d: %w", i, b.length, ErrIndexOutOfRange)
	}
	b.setBit(pos, v)
	return nil
}

// Slice returns the bits selected by Python-style bounds. See ResolveRange.
func (b *Binary) Slice(start, stop, step int) (*Binary, error) {
	r, err := ResolveRange(start, stop, step, b.length)
	if err != nil {
		return nil, err
	}
	return b.SliceRange(r), nil
}

// SliceRange extracts the bits of r. Positions past the length are filled with
// the sign-extension bit. The result is unsigned and holds r.Len() bits.
//
// For example:
//
//	00001101[::2]  -> 0011
//	00001101[::-1] -> 10110000
//	00001101[::-2] -> 0100
func (b *Binary) SliceRange(r Range) *Binary {
	win := b.window(r.Start, r.Stop-r.Start, b.SignExtendingBit(), Unsigned)
	if r.Step == 1 {
		return win
	}
	res := newBinary(r.Len(), Unsigned)
	for k, p := range stride(0, win.length, r.Step) {
		if win.bit(p) {
			res.setBit(k, true)
		}
	}
	return res
}

// SetSlice overwrites the bits selected by the bounds with the low bits of v.
// Positions past the length are skipped. Bits of v beyond the selected count are
// ignored, and v must hold at least that many bits.
func (b *Binary) SetSlice(start, stop, step int, v *Binary) error {
	r, err := ResolveRange(start, stop, step, b.length)
	if err != nil {
		return err
	}
	end := max(r.WrappedEnd(), r.Start)
	count := Range{Start: r.Start, Stop: end, Step: r.Step}.Len()
	if v.length < count {
		return fmt.Errorf("value and slice lengths differ: %d < %d: %w", v.length, count, ErrIndexOutOfRange)
	}
	if v == b {
		v = v.Clone()
	}
	if r.Step == 1 {
		b.copyInto(r.Start, v, count)
		return nil
	}
	for k, p := range stride(r.Start, end, r.Step) {
		b.setBit(p, v.bit(k))
	}
	return nil
}

// FillSlice sets every bit selected by the bounds to bit.
func (b *Binary) FillSlice(start, stop, step int, bit bool) error {
	r, err := ResolveRange(start, stop, step, b.length)
	if err != nil {
		return err
	}
	end := max(r.WrappedEnd(), r.Start)
	for _, p := range stride(r.Start, end, r.Step) {
		b.setBit(p, bit)
	}
	return nil
}
