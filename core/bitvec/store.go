package bitvec

import "math"

const (
	wordBits = 64
	maxWord  = math.MaxUint64
)

func wordsFor(n int) int {
	return (n + wordBits - 1) / wordBits
}

func newBinary(length int, mode SignMode) *Binary {
	return &Binary{words: make([]uint64, wordsFor(length)), length: length, sign: mode}
}

// fillWord returns a word with every bit equal to bit.
func fillWord(bit bool) uint64 {
	if bit {
		return maxWord
	}
	return 0
}

// lowMask returns a word with the n lowest bits set, n in [0, 64].
func lowMask(n int) uint64 {
	if n >= wordBits {
		return maxWord
	}
	return 1<<uint(n) - 1
}

func (b *Binary) bit(i int) bool {
	return b.words[i/wordBits]>>(uint(i)%wordBits)&1 == 1
}

func (b *Binary) setBit(i int, v bool) {
	if v {
		b.words[i/wordBits] |= 1 << (uint(i) % wordBits)
	} else {
		b.words[i/wordBits] &^= 1 << (uint(i) % wordBits)
	}
}

// truncateToLength clears the unused bits of the last word.
func (b *Binary) truncateToLength() {
	b.words = b.words[:wordsFor(b.length)]
	if rem := b.length % wordBits; rem != 0 {
		b.words[len(b.words)-1] &= lowMask(rem)
	}
}

// extendedWord returns the bits [64*i, 64*i+64) where positions at or above the
// length read as ext.
func (b *Binary) extendedWord(i int, ext bool) uint64 {
	fill := fillWord(ext)
	if i >= len(b.words) {
		return fill
	}
	w := b.words[i]
	if rem := b.length - i*wordBits; rem < wordBits {
		mask := lowMask(rem)
		w = w&mask | fill&^mask
	}
	return w
}

// chunkAt returns the 64 bits starting at pos, pos >= 0, where positions at or
// above the length read as ext.
func (b *Binary) chunkAt(pos int, ext bool) uint64 {
	w, off := pos/wordBits, uint(pos%wordBits)
	lo := b.extendedWord(w, ext)
	if off == 0 {
		return lo
	}
	hi := b.extendedWord(w+1, ext)
	return lo>>off | hi<<(wordBits-off)
}

// putBits writes the count lowest bits of val at pos. The caller guarantees
// pos+count <= length and count in [0, 64].
func (b *Binary) putBits(pos, count int, val uint64) {
	if count == 0 {
		return
	}
	mask := lowMask(count)
	val &= mask
	w, off := pos/wordBits, uint(pos%wordBits)
	b.words[w] = b.words[w]&^(mask<<off) | val<<off
	if off != 0 && int(off)+count > wordBits {
		b.words[w+1] = b.words[w+1]&^(mask>>(wordBits-off)) | val>>(wordBits-off)
	}
}

// window returns n bits starting at start, start >= 0, padded with ext past the
// length.
func (b *Binary) window(start, n int, ext bool, mode SignMode) *Binary {
	res := newBinary(n, mode)
	for k := range res.words {
		res.words[k] = b.chunkAt(start+k*wordBits, ext)
	}
	res.truncateToLength()
	return res
}

// copyInto writes the n lowest bits of src at pos of b.
func (b *Binary) copyInto(pos int, src *Binary, n int) {
	for k := 0; k < n; k += wordBits {
		b.putBits(pos+k, min(wordBits, n-k), src.chunkAt(k, false))
	}
}

// setRange sets bits [from, to) of words.
func setRange(words []uint64, from, to int) {
	for from < to {
		w, off := from/wordBits, from%wordBits
		n := min(wordBits-off, to-from)
		words[w] |= lowMask(n) << uint(off)
		from += n
	}
}

// resizeTo truncates or pads the value to n bits, filling new positions with fill.
func (b *Binary) resizeTo(n int, fill bool) {
	if n <= b.length {
		b.length = n
		b.truncateToLength()
		return
	}
	words := b.words
	if need := wordsFor(n); need > cap(words) {
		words = make([]uint64, need)
		copy(words, b.words)
	} else {
		words = words[:need]
		for i := len(b.words); i < need; i++ {
			words[i] = 0
		}
	}
	if fill {
		setRange(words, b.length, n)
	}
	b.words = words
	b.length = n
}
