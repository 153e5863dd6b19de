package bitvec

import "errors"

var (
	ErrSignMismatch     = errors.New("sign behavior mismatch, cast one of the values")
	ErrNegativeShift    = errors.New("negative shift value")
	ErrZeroStep         = errors.New("slice step cannot be zero")
	ErrStopBeforeStart  = errors.New("stop index is smaller than start index")
	ErrDoesNotFit       = errors.New("value does not fit")
	ErrInvalidSignMode  = errors.New("unknown sign mode (known: unsigned, signed)")
	ErrUnsupportedInput = errors.New("unsupported input")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrEmptyPattern     = errors.New("pattern is empty")
	ErrTooManyOperands  = errors.New("too many operands")
	ErrTableTooSmall    = errors.New("truth table is too small")
	ErrTableTooLarge    = errors.New("truth table is too large")
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
)
