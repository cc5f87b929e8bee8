package num

import (
	"fmt"
	"math/big"
)

// Uint is implemented by every fixed-width type in this package: U5, U6, U7,
// U24, U256, U512 and U1024.
//
// The package-level functions that accept a Uint let callers pick a width at
// runtime. Operands of different widths are never converted; combining them
// returns an error matching ErrWidthMismatch.
type Uint interface {
	Bits() uint
	IsZero() bool
	BitLen() int
	Bytes(order ByteOrder) []byte
	Hex() string
	String() string
	AsBigInt() *big.Int
}

// fixed is satisfied by the concrete types, with T being the type itself.
type fixed[T any] interface {
	Uint
	Cmp(n T) int
	Sub(n T) T
	AddWith(n T, p Policy) (T, error)
	SubWith(n T, p Policy) (T, error)
	MulWith(n T, p Policy) (T, error)
	QuoRem(by T) (q, r T, err error)
}

type engine interface {
	cmp(y Uint) (int, error)
	add(y Uint, p Policy) (Uint, error)
	sub(y Uint, p Policy) (Uint, error)
	mul(y Uint, p Policy) (Uint, error)
	quoRem(y Uint) (q, r Uint, err error)
}

type typed[T fixed[T]] struct{ x T }

func (e typed[T]) operand(y Uint) (T, error) {
	if v, ok := y.(T); ok {
		return v, nil
	}
	var zero T
	err := &WidthError{Left: e.x.Bits()}
	if y != nil {
		err.Right = y.Bits()
	}
	return zero, err
}

func (e typed[T]) cmp(y Uint) (int, error) {
	v, err := e.operand(y)
	if err != nil {
		return 0, err
	}
	return e.x.Cmp(v), nil
}

func (e typed[T]) add(y Uint, p Policy) (Uint, error) {
	v, err := e.operand(y)
	if err != nil {
		return nil, err
	}
	return result(e.x.AddWith(v, p))
}

func (e typed[T]) sub(y Uint, p Policy) (Uint, error) {
	v, err := e.operand(y)
	if err != nil {
		return nil, err
	}
	return result(e.x.SubWith(v, p))
}

func (e typed[T]) mul(y Uint, p Policy) (Uint, error) {
	v, err := e.operand(y)
	if err != nil {
		return nil, err
	}
	return result(e.x.MulWith(v, p))
}

func (e typed[T]) quoRem(y Uint) (q, r Uint, err error) {
	v, err := e.operand(y)
	if err != nil {
		return nil, nil, err
	}
	tq, tr, err := e.x.QuoRem(v)
	if err != nil {
		return nil, nil, err
	}
	return tq, tr, nil
}

// result keeps a failed operation from returning a non-nil Uint.
func result[T Uint](v T, err error) (Uint, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// value dereferences pointer operands. A nil interface or a nil pointer
// yields nil.
func value(v Uint) Uint {
	switch p := v.(type) {
	case *U5:
		if p != nil {
			return *p
		}
	case *U6:
		if p != nil {
			return *p
		}
	case *U7:
		if p != nil {
			return *p
		}
	case *U24:
		if p != nil {
			return *p
		}
	case *U256:
		if p != nil {
			return *p
		}
	case *U512:
		if p != nil {
			return *p
		}
	case *U1024:
		if p != nil {
			return *p
		}
	default:
		return v
	}
	return nil
}

func engineOf(x Uint) (engine, error) {
	switch x := x.(type) {
	case U5:
		return typed[U5]{x}, nil
	case U6:
		return typed[U6]{x}, nil
	case U7:
		return typed[U7]{x}, nil
	case U24:
		return typed[U24]{x}, nil
	case U256:
		return typed[U256]{x}, nil
	case U512:
		return typed[U512]{x}, nil
	case U1024:
		return typed[U1024]{x}, nil
	}
	return nil, fmt.Errorf("num: unsupported type %T", x)
}

// operands resolves the engine for x and the dereferenced y. A nil x is
// reported as a width mismatch, the same as a nil y.
func operands(x, y Uint) (engine, Uint, error) {
	x, y = value(x), value(y)
	if x == nil {
		err := &WidthError{}
		if y != nil {
			err.Right = y.Bits()
		}
		return nil, nil, err
	}
	e, err := engineOf(x)
	if err != nil {
		return nil, nil, err
	}
	return e, y, nil
}

// Compare returns -1, 0 or +1 if x is less than, equal to, or greater than y.
func Compare(x, y Uint) (int, error) {
	e, y, err := operands(x, y)
	if err != nil {
		return 0, err
	}
	return e.cmp(y)
}

func Add(x, y Uint, p Policy) (Uint, error) {
	e, y, err := operands(x, y)
	if err != nil {
		return nil, err
	}
	return e.add(y, p)
}

func Sub(x, y Uint, p Policy) (Uint, error) {
	e, y, err := operands(x, y)
	if err != nil {
		return nil, err
	}
	return e.sub(y, p)
}

func Mul(x, y Uint, p Policy) (Uint, error) {
	e, y, err := operands(x, y)
	if err != nil {
		return nil, err
	}
	return e.mul(y, p)
}

// QuoRem returns the quotient and remainder of x / y. It returns
// ErrDivisionByZero if y is zero.
func QuoRem(x, y Uint) (q, r Uint, err error) {
	e, y, err := operands(x, y)
	if err != nil {
		return nil, nil, err
	}
	return e.quoRem(y)
}

type family struct {
	zero, max  Uint
	fromBigInt func(v *big.Int) (Uint, bool)
	fromBytes  func(b []byte, order ByteOrder) (Uint, error)
	fromHex    func(s string) (Uint, error)
	fromString func(s string) (Uint, error)
}

func newFamily[T Uint](
	max T,
	fromBigInt func(*big.Int) (T, bool),
	fromBytes func([]byte, ByteOrder) (T, error),
	fromHex func(string) (T, error),
	fromString func(string) (T, error),
) *family {
	var zero T
	return &family{
		zero: zero,
		max:  max,
		fromBigInt: func(v *big.Int) (Uint, bool) {
			return fromBigInt(v)
		},
		fromBytes: func(b []byte, order ByteOrder) (Uint, error) {
			return result(fromBytes(b, order))
		},
		fromHex: func(s string) (Uint, error) {
			return result(fromHex(s))
		},
		fromString: func(s string) (Uint, error) {
			return result(fromString(s))
		},
	}
}

var families = map[uint]*family{
	U5Bits:    newFamily(MaxU5, U5FromBigInt, U5FromBytes, U5FromHex, U5FromString),
	U6Bits:    newFamily(MaxU6, U6FromBigInt, U6FromBytes, U6FromHex, U6FromString),
	U7Bits:    newFamily(MaxU7, U7FromBigInt, U7FromBytes, U7FromHex, U7FromString),
	U24Bits:   newFamily(MaxU24, U24FromBigInt, U24FromBytes, U24FromHex, U24FromString),
	U256Bits:  newFamily(MaxU256, U256FromBigInt, U256FromBytes, U256FromHex, U256FromString),
	U512Bits:  newFamily(MaxU512, U512FromBigInt, U512FromBytes, U512FromHex, U512FromString),
	U1024Bits: newFamily(MaxU1024, U1024FromBigInt, U1024FromBytes, U1024FromHex, U1024FromString),
}

func familyOf(width uint) (*family, error) {
	f := families[width]
	if f == nil {
		return nil, fmt.Errorf("num: unsupported width %d", width)
	}
	return f, nil
}

var widths = []uint{U5Bits, U6Bits, U7Bits, U24Bits, U256Bits, U512Bits, U1024Bits}

// Widths returns the supported bit widths in ascending order. The caller owns
// the returned slice.
func Widths() []uint {
	return append([]uint(nil), widths...)
}

func Zero(width uint) (Uint, error) {
	f, err := familyOf(width)
	if err != nil {
		return nil, err
	}
	return f.zero, nil
}

func Max(width uint) (Uint, error) {
	f, err := familyOf(width)
	if err != nil {
		return nil, err
	}
	return f.max, nil
}

// FromBigInt returns ErrOverflow if v does not fit in width bits,
// ErrUnderflow if v is negative and ErrNilBigInt if v is nil.
func FromBigInt(width uint, v *big.Int) (Uint, error) {
	f, err := familyOf(width)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("num: u%d from nil big.Int: %w", width, ErrNilBigInt)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("num: u%d from %s: %w", width, v, ErrUnderflow)
	}
	u, accurate := f.fromBigInt(v)
	if !accurate {
		return nil, fmt.Errorf("num: u%d from %s: %w", width, v, ErrOverflow)
	}
	return u, nil
}

func FromBytes(width uint, b []byte, order ByteOrder) (Uint, error) {
	f, err := familyOf(width)
	if err != nil {
		return nil, err
	}
	return f.fromBytes(b, order)
}

func FromHex(width uint, s string) (Uint, error) {
	f, err := familyOf(width)
	if err != nil {
		return nil, err
	}
	return f.fromHex(s)
}

// FromString parses a decimal string.
func FromString(width uint, s string) (Uint, error) {
	f, err := familyOf(width)
	if err != nil {
		return nil, err
	}
	return f.fromString(s)
}
