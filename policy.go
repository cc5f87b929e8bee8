package num

import "fmt"

// Policy selects what an arithmetic operation does when the true result
// cannot be represented in the width of its operands.
//
// The zero value is Checked.
type Policy int

const (
	// Checked operations return ErrOverflow or ErrUnderflow and a zero value.
	Checked Policy = iota

	// Wrapping operations truncate the result modulo 2^width.
	Wrapping

	// Saturating operations clamp the result to 0 or the maximum value.
	Saturating
)

func (p Policy) String() string {
	switch p {
	case Checked:
		return "checked"
	case Wrapping:
		return "wrapping"
	case Saturating:
		return "saturating"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts the names returned by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "checked", "":
		return Checked, nil
	case "wrapping":
		return Wrapping, nil
	case "saturating":
		return Saturating, nil
	}
	return Checked, fmt.Errorf("num: unknown policy %q", s)
}

// ByteOrder selects the byte order used by the byte codecs.
type ByteOrder int

const (
	// BigEndian puts the most significant byte first. It is the zero value
	// and the order used by Hex, MarshalText and MarshalBinary.
	BigEndian ByteOrder = iota

	LittleEndian
)

func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	default:
		return fmt.Sprintf("ByteOrder(%d)", int(o))
	}
}

// ParseByteOrder accepts "big", "little", "be" and "le".
func ParseByteOrder(s string) (ByteOrder, error) {
	switch s {
	case "big", "be", "":
		return BigEndian, nil
	case "little", "le":
		return LittleEndian, nil
	}
	return BigEndian, fmt.Errorf("num: unknown byte order %q", s)
}

// resolve applies a policy to a result computed with wrapping semantics.
// sat is the value a Saturating operation clamps to.
func resolve[T any](typ, op string, wrapped T, overflow bool, p Policy, sat T, err error) (T, error) {
	if !overflow {
		return wrapped, nil
	}
	switch p {
	case Wrapping:
		return wrapped, nil
	case Saturating:
		return sat, nil
	default:
		var zero T
		return zero, opError(typ, op, err)
	}
}
