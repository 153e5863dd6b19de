package bitvec

type bitwiseOp uint8

const (
	opAnd bitwiseOp = iota
	opOr
	opXor
)

// bitwiseKind pairs a word operation with an optional complement of its result.
type bitwiseKind struct {
	op     bitwiseOp
	negate bool
}

var (
	kindAnd  = bitwiseKind{op: opAnd}
	kindOr   = bitwiseKind{op: opOr}
	kindXor  = bitwiseKind{op: opXor}
	kindNand = bitwiseKind{op: opAnd, negate: true}
	kindNor  = bitwiseKind{op: opOr, negate: true}
	kindXnor = bitwiseKind{op: opXor, negate: true}
)

func (k bitwiseKind) apply(x, y uint64) uint64 {
	var w uint64
	switch k.op {
	case opAnd:
		w = x & y
	case opOr:
		w = x | y
	case opXor:
		w = x ^ y
	}
	if k.negate {
		w = ^w
	}
	return w
}

// bitwise combines a and b word by word. The shorter operand is extended with its
// own sign-extension bit; the result has the longer length and a's sign mode.
func bitwise(a, b *Binary, k bitwiseKind) *Binary {
	res := newBinary(max(a.length, b.length), a.sign)
	extA, extB := a.SignExtendingBit(), b.SignExtendingBit()
	for i := range res.words {
		res.words[i] = k.apply(a.extendedWord(i, extA), b.extendedWord(i, extB))
	}
	res.truncateToLength()
	return res
}

// Not returns the complement of every bit of a.
func Not(a *Binary) *Binary {
	res := newBinary(a.length, a.sign)
	for i, w := range a.words {
		res.words[i] = ^w
	}
	res.truncateToLength()
	return res
}

func And(a, b *Binary) *Binary  { return bitwise(a, b, kindAnd) }
func Or(a, b *Binary) *Binary   { return bitwise(a, b, kindOr) }
func Xor(a, b *Binary) *Binary  { return bitwise(a, b, kindXor) }
func Nand(a, b *Binary) *Binary { return bitwise(a, b, kindNand) }
func Nor(a, b *Binary) *Binary  { return bitwise(a, b, kindNor) }
func Xnor(a, b *Binary) *Binary { return bitwise(a, b, kindXnor) }
