package bitvec

// AppendBit adds bit above the most significant bit.
func (b *Binary) AppendBit(bit bool) {
	if b.length%wordBits == 0 {
		b.words = append(b.words, 0)
	}
	b.length++
	b.setBit(b.length-1, bit)
}

// Append adds the bits of v above the most significant bit.
func (b *Binary) Append(v *Binary) {
	if v == b {
		v = v.Clone()
	}
	old := b.length
	b.resizeTo(old+v.length, false)
	b.copyInto(old, v, v.length)
}

// PrependBit adds bit below the least significant bit.
func (b *Binary) PrependBit(bit bool) {
	v := newBinary(1, Unsigned)
	v.setBit(0, bit)
	b.Prepend(v)
}

// Prepend adds the bits of v below the least significant bit.
func (b *Binary) Prepend(v *Binary) {
	res := newBinary(v.length+b.length, b.sign)
	res.copyInto(0, v, v.length)
	res.copyInto(v.length, b, b.length)
	b.words, b.length = res.words, res.length
}

// Concat joins values into one unsigned value. The first value ends up as the
// most significant part.
//
// For example:
//
//	Concat(11, 0000, 01) -> 11000001
func Concat(values ...*Binary) *Binary {
	res := newBinary(0, Unsigned)
	for i := len(values) - 1; i >= 0; i-- {
		res.Append(values[i])
	}
	return res
}

// Join concatenates parts with sep between each pair, the first part being the
// most significant.
func Join(sep *Binary, parts ...*Binary) *Binary {
	values := make([]*Binary, 0, 2*len(parts))
	for i, p := range parts {
		if i > 0 {
			values = append(values, sep)
		}
		values = append(values, p)
	}
	return Concat(values...)
}
