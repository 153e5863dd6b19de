package bitvec

import "fmt"

// Flags describe the result of an arithmetic operation.
type Flags struct {
	Overflow bool // carry or borrow out of the result width
	Zero     bool // every result bit is 0
	Sign     bool // most significant result bit
}

func flagsOf(res *Binary, overflow bool) Flags {
	return Flags{
		Overflow: overflow,
		Zero:     !res.Any(),
		Sign:     res.SignBit(),
	}
}

func (f Flags) String() string {
	return fmt.Sprintf("Flags(of=%t, zf=%t, sf=%t)", f.Overflow, f.Zero, f.Sign)
}
