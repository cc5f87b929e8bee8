package num

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned by Checked operations whose true result does
	// not fit in the width of the operands.
	ErrOverflow = errors.New("num: overflow")

	// ErrUnderflow is returned by Checked subtraction and decrement when the
	// true result would be negative.
	ErrUnderflow = errors.New("num: underflow")

	ErrDivisionByZero = errors.New("num: division by zero")

	// ErrWidthMismatch is returned when values of different widths are
	// compared or combined through the Uint interface.
	ErrWidthMismatch = errors.New("num: width mismatch")

	ErrLengthMismatch   = errors.New("num: length mismatch")
	ErrOddLength        = errors.New("num: odd length hex string")
	ErrInvalidHexDigit  = errors.New("num: invalid hex digit")
	ErrOverflowOnDecode = errors.New("num: decoded value exceeds width")
	ErrInvalidString    = errors.New("num: invalid string")
	ErrNilBigInt        = errors.New("num: nil big.Int")
)

// LengthError reports a byte sequence or hex string of the wrong size. It
// matches ErrLengthMismatch with errors.Is.
type LengthError struct {
	Type     string
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("num: %s invalid length: got %d, expected %d", e.Type, e.Actual, e.Expected)
}

func (e *LengthError) Is(target error) bool { return target == ErrLengthMismatch }

// HexDigitError reports the first character of a hex string that is not in
// [0-9a-fA-F]. It matches ErrInvalidHexDigit with errors.Is.
type HexDigitError struct {
	Type   string
	Offset int
	Char   byte
}

func (e *HexDigitError) Error() string {
	return fmt.Sprintf("num: %s invalid hex digit %q at offset %d", e.Type, e.Char, e.Offset)
}

func (e *HexDigitError) Is(target error) bool { return target == ErrInvalidHexDigit }

// WidthError reports an attempt to combine two values of different widths.
// It matches ErrWidthMismatch with errors.Is.
type WidthError struct {
	Left, Right uint
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("num: width mismatch: %d bits vs %d bits", e.Left, e.Right)
}

func (e *WidthError) Is(target error) bool { return target == ErrWidthMismatch }

func opError(typ, op string, err error) error {
	return fmt.Errorf("num: %s %s: %w", typ, op, err)
}
