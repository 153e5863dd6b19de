package bitvec

// subtract computes a + ^b + 1 with both operands taken as signed.
func subtract(a, b *Binary) (*Binary, Flags, error) {
	return AddWithCarry(a.Cast(Signed), Not(b.Cast(Signed)), true)
}

// OverflowingSub returns a-b and whether the subtraction carried out. The result
// is signed.
func OverflowingSub(a, b *Binary) (*Binary, bool, error) {
	res, flags, err := subtract(a, b)
	if err != nil {
		return nil, false, err
	}
	return res, flags.Overflow, nil
}

// WrappingSub returns a-b truncated to the operand length.
func WrappingSub(a, b *Binary) (*Binary, error) {
	res, _, err := subtract(a, b)
	return res, err
}

// FlaggedSub returns a-b with the full set of flags.
func FlaggedSub(a, b *Binary) (*Binary, Flags, error) {
	return subtract(a, b)
}
