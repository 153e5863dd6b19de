package bitvec

import "strings"

const hexDigits = "0123456789abcdef"

// String renders the bits most significant first, in groups of 8 counted from the
// least significant bit.
//
// For example:
//
//	100000000 (9 bits) -> "1 00000000"
func (b *Binary) String() string {
	return b.Grouped(8, " ") //nolint:mnd
}

// Bin renders the bits most significant first, optionally prefixed with 0b.
func (b *Binary) Bin(prefix bool) string {
	var sb strings.Builder
	if prefix {
		sb.WriteString("0b")
	}
	for i := b.length - 1; i >= 0; i-- {
		sb.WriteByte(bitChar(b.bit(i)))
	}
	return sb.String()
}

// Hex renders one digit per 4 bits, the most significant digit covering the
// remaining high bits when the length is not a multiple of 4.
func (b *Binary) Hex(prefix bool) string {
	digits := (b.length + 3) / 4 //nolint:mnd
	var sb strings.Builder
	if prefix {
		sb.WriteString("0x")
	}
	for d := digits - 1; d >= 0; d-- {
		pos := d * 4 //nolint:mnd
		nibble := b.chunkAt(pos, false) & lowMask(min(4, b.length-pos))
		sb.WriteByte(hexDigits[nibble])
	}
	return sb.String()
}

// Grouped renders the bits most significant first, inserting sep after every
// size bits counted from the least significant bit.
func (b *Binary) Grouped(size int, sep string) string {
	if size <= 0 {
		return b.Bin(false)
	}
	var sb strings.Builder
	for i := b.length - 1; i >= 0; i-- {
		sb.WriteByte(bitChar(b.bit(i)))
		if i > 0 && i%size == 0 {
			sb.WriteString(sep)
		}
	}
	return sb.String()
}

func bitChar(bit bool) byte {
	if bit {
		return '1'
	}
	return '0'
}
