package bitvec

import "fmt"

const (
	maxMapOperands = 31
	maxTableSize   = 32
)

// Table is a truth table for BitwiseMap: either Minterms or TableBits.
type Table interface {
	// terms returns the table as a bit mask over minterm indices and its size.
	terms() (mask uint64, size int, err error)
}

// Minterms lists the minterm indices, in [0, 31], for which the function is true.
type Minterms map[int]bool

// TableBits holds the truth table as a value whose bit m is the output for minterm m.
type TableBits struct{ B *Binary }

func (m Minterms) terms() (uint64, int, error) {
	var mask uint64
	for idx, v := range m {
		if idx < 0 || idx >= maxTableSize {
			return 0, 0, fmt.Errorf("minterm %d not in [0, %d]: %w", idx, maxTableSize-1, ErrTableTooLarge)
		}
		if v {
			mask |= 1 << uint(idx)
		}
	}
	return mask, maxTableSize, nil
}

func (t TableBits) terms() (uint64, int, error) {
	if t.B == nil {
		return 0, 0, fmt.Errorf("nil truth table: %w", ErrUnsupportedInput)
	}
	if t.B.length > maxTableSize {
		return 0, 0, fmt.Errorf("%d terms, at most %d: %w", t.B.length, maxTableSize, ErrTableTooLarge)
	}
	return t.B.extendedWord(0, false), t.B.length, nil
}

// BitwiseMap evaluates an arbitrary boolean function of up to 31 operands, bit
// position by bit position. Bit i of a minterm index selects operand i itself
// when set and its complement when clear; the result is the OR of the true
// minterms. Operands are zero-extended to the longest one and the result is
// unsigned.
//
// For example, with operands [A, B] the table {3: true} computes A AND B, and
// {1: true, 2: true} computes A XOR B.
func BitwiseMap(operands []*Binary, table Table) (*Binary, error) {
	k := len(operands)
	if k > maxMapOperands {
		return nil, fmt.Errorf("%d operands, at most %d: %w", k, maxMapOperands, ErrTooManyOperands)
	}
	mask, size, err := table.terms()
	if err != nil {
		return nil, err
	}
	if size < 1<<uint(k) {
		return nil, fmt.Errorf("%d terms for %d operands: %w", size, k, ErrTableTooSmall)
	}
	if size > maxTableSize {
		return nil, fmt.Errorf("%d terms, at most %d: %w", size, maxTableSize, ErrTableTooLarge)
	}

	length := 0
	for _, op := range operands {
		length = max(length, op.length)
	}
	res := newBinary(length, Unsigned)
	for m := 0; m < 1<<uint(k); m++ {
		if mask>>uint(m)&1 == 0 {
			continue
		}
		for i := range res.words {
			term := uint64(maxWord)
			for j, op := range operands {
				w := op.extendedWord(i, false)
				if m>>uint(j)&1 == 0 {
					w = ^w
				}
				term &= w
			}
			res.words[i] |= term
		}
	}
	res.truncateToLength()
	return res, nil
}
