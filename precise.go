package num

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"

	"golang.org/x/exp/constraints"
)

// The precise types hold a value narrower than their backing word. Every
// helper here computes in uint64, where no intermediate result of a 24-bit
// or narrower operand can overflow, and masks the result back to width.

func preciseMask(width uint) uint64 { return 1<<width - 1 }

func preciseFrom[T, V constraints.Unsigned](typ string, v V, width uint) (T, error) {
	if uint64(v) > preciseMask(width) {
		return 0, fmt.Errorf("num: %s value %d overflows max value %d: %w", typ, uint64(v), preciseMask(width), ErrOverflow)
	}
	return T(v), nil
}

func preciseFromBigInt[T constraints.Unsigned](v *big.Int, width uint) (T, bool) {
	if v == nil || v.Sign() < 0 {
		return 0, false
	}
	if !v.IsUint64() || v.Uint64() > preciseMask(width) {
		return T(preciseMask(width)), false
	}
	return T(v.Uint64()), true
}

func preciseFromString[T constraints.Unsigned](typ string, s string, width uint) (T, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("num: %s string %q: %w", typ, s, ErrOverflow)
		}
		return 0, fmt.Errorf("num: %s string %q: %w", typ, s, ErrInvalidString)
	}
	return preciseFrom[T](typ, v, width)
}

func preciseAdd[T constraints.Unsigned](x, y T, width uint) (T, bool) {
	s := uint64(x) + uint64(y)
	return T(s & preciseMask(width)), s > preciseMask(width)
}

func preciseSub[T constraints.Unsigned](x, y T, width uint) (T, bool) {
	d := uint64(x) - uint64(y)
	return T(d & preciseMask(width)), x < y
}

func preciseMul[T constraints.Unsigned](x, y T, width uint) (T, bool) {
	p := uint64(x) * uint64(y)
	return T(p & preciseMask(width)), p > preciseMask(width)
}

func preciseLsh[T constraints.Unsigned](x T, k, width uint) T {
	if k >= width {
		return 0
	}
	return T((uint64(x) << k) & preciseMask(width))
}

func preciseRsh[T constraints.Unsigned](x T, k, width uint) T {
	if k >= width {
		return 0
	}
	return x >> k
}

func preciseNot[T constraints.Unsigned](x T, width uint) T {
	return T(^uint64(x) & preciseMask(width))
}

func preciseLeadingZeros[T constraints.Unsigned](x T, width uint) uint {
	return width - uint(bits.Len64(uint64(x)))
}

func preciseTrailingZeros[T constraints.Unsigned](x T, width uint) uint {
	if x == 0 {
		return width
	}
	return uint(bits.TrailingZeros64(uint64(x)))
}

func preciseCmp[T constraints.Unsigned](x, y T) int {
	if x > y {
		return 1
	} else if x < y {
		return -1
	}
	return 0
}

func preciseBytes[T constraints.Unsigned](x T, width uint, order ByteOrder) []byte {
	b := make([]byte, byteLen(width))
	putWord(b, uint64(x), order)
	return b
}

// preciseFromBytes rejects encodings with any bit set above width, even when
// the width is smaller than the encoded byte length.
func preciseFromBytes[T constraints.Unsigned](typ string, b []byte, width uint, order ByteOrder) (T, error) {
	if len(b) != byteLen(width) {
		return 0, &LengthError{Type: typ, Expected: byteLen(width), Actual: len(b)}
	}
	v := wordFromBytes(b, order)
	if v > preciseMask(width) {
		return 0, fmt.Errorf("num: %s decode: %w", typ, ErrOverflowOnDecode)
	}
	return T(v), nil
}

func preciseFromHex[T constraints.Unsigned](typ string, s string, width uint) (T, error) {
	b, err := decodeHex(typ, s, byteLen(width))
	if err != nil {
		return 0, err
	}
	return preciseFromBytes[T](typ, b, width, BigEndian)
}

func preciseQuoRem[T constraints.Unsigned](typ string, x, y T) (q, r T, err error) {
	if y == 0 {
		return 0, 0, opError(typ, "quo", ErrDivisionByZero)
	}
	return x / y, x % y, nil
}

func preciseMarshalJSON[T constraints.Unsigned](x T) ([]byte, error) {
	return strconv.AppendUint(nil, uint64(x), 10), nil
}

func preciseUnmarshalJSON[T constraints.Unsigned](typ string, bts []byte, width uint) (T, error) {
	s, err := unquoteJSON(typ, bts)
	if err != nil {
		return 0, err
	}
	return preciseFromString[T](typ, string(s), width)
}
