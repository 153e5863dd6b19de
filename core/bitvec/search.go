package bitvec

import (
	"fmt"
	"math/bits"
)

// validBits returns how many bits of word i belong to the value.
func (b *Binary) validBits(i int) int {
	return min(wordBits, b.length-i*wordBits)
}

func (b *Binary) CountOnes() int {
	count := 0
	for _, w := range b.words {
		count += bits.OnesCount64(w)
	}
	return count
}

func (b *Binary) CountZeros() int {
	return b.length - b.CountOnes()
}

// TrailingZeros returns the index of the lowest set bit, or Len() if there is none.
func (b *Binary) TrailingZeros() int {
	return b.scanUp(false)
}

// TrailingOnes returns the index of the lowest clear bit, or Len() if there is none.
func (b *Binary) TrailingOnes() int {
	return b.scanUp(true)
}

// LeadingZeros counts the clear bits above the highest set bit.
func (b *Binary) LeadingZeros() int {
	return b.scanDown(false)
}

// LeadingOnes counts the set bits above the highest clear bit.
func (b *Binary) LeadingOnes() int {
	return b.scanDown(true)
}

// scanUp counts the bits equal to skip starting from the least significant one.
func (b *Binary) scanUp(skip bool) int {
	flip := fillWord(skip)
	for i, w := range b.words {
		if w = (w ^ flip) & lowMask(b.validBits(i)); w != 0 {
			return i*wordBits + bits.TrailingZeros64(w)
		}
	}
	return b.length
}

// scanDown counts the bits equal to skip starting from the most significant one.
func (b *Binary) scanDown(skip bool) int {
	flip := fillWord(skip)
	count := 0
	for i := len(b.words) - 1; i >= 0; i-- {
		valid := b.validBits(i)
		if w := (b.words[i] ^ flip) & lowMask(valid); w != 0 {
			return count + valid - bits.Len64(w)
		}
		count += valid
	}
	return count
}

// matchesAt reports whether the bits of b starting at pos equal pattern.
func (b *Binary) matchesAt(pos int, pattern *Binary) bool {
	for k := 0; k < pattern.length; k += wordBits {
		mask := lowMask(pattern.length - k)
		if (b.chunkAt(pos+k, false)^pattern.chunkAt(k, false))&mask != 0 {
			return false
		}
	}
	return true
}

// FindFirst returns the lowest position at which pattern occurs, or -1.
func (b *Binary) FindFirst(pattern *Binary) (int, error) {
	if pattern.length == 0 {
		return -1, fmt.Errorf("find in %s: %w", b, ErrEmptyPattern)
	}
	if pattern.length == 1 {
		pos := b.scanUp(!pattern.bit(0))
		if pos == b.length {
			return -1, nil
		}
		return pos, nil
	}
	for pos := 0; pos+pattern.length <= b.length; pos++ {
		if b.matchesAt(pos, pattern) {
			return pos, nil
		}
	}
	return -1, nil
}

// FindAll returns every position at which pattern occurs, overlapping matches
// included.
//
// For example:
//
//	FindAll(0b1111, 0b11) -> [0 1 2]
func (b *Binary) FindAll(pattern *Binary) ([]int, error) {
	switch pattern.length {
	case 0:
		return nil, fmt.Errorf("find all in %s: %w", b, ErrEmptyPattern)
	case 1:
		if pattern.bit(0) {
			return b.FindOnes(), nil
		}
		return b.FindZeros(), nil
	}
	var found []int
	for pos := 0; pos+pattern.length <= b.length; pos++ {
		if b.matchesAt(pos, pattern) {
			found = append(found, pos)
		}
	}
	return found, nil
}

// FindOnes returns the positions of the set bits in ascending order.
func (b *Binary) FindOnes() []int {
	return b.positionsOf(false)
}

// FindZeros returns the positions of the clear bits in ascending order.
func (b *Binary) FindZeros() []int {
	return b.positionsOf(true)
}

func (b *Binary) positionsOf(invert bool) []int {
	flip := fillWord(invert)
	var found []int
	for i, w := range b.words {
		w = (w ^ flip) & lowMask(b.validBits(i))
		for w != 0 {
			found = append(found, i*wordBits+bits.TrailingZeros64(w))
			w &= w - 1
		}
	}
	return found
}
