package num

import (
	"fmt"
	"math/big"
	"strconv"
)

// U7 is a 7-bit unsigned integer in the range [0, 127], packed into a uint8.
//
// The zero value is 0. Values can only be created through the constructors
// below, so the bits above the width are always clear.
type U7 struct {
	v uint8
}

const (
	U7Bits  = 7
	U7Bytes = (U7Bits + 7) / 8
)

var MaxU7 = U7{v: 1<<U7Bits - 1}

// U7From8 returns ErrOverflow if v > 127.
func U7From8(v uint8) (U7, error) {
	w, err := preciseFrom[uint8]("u7", v, U7Bits)
	return U7{v: w}, err
}

// U7From64 returns ErrOverflow if v > 127.
func U7From64(v uint64) (U7, error) {
	w, err := preciseFrom[uint8]("u7", v, U7Bits)
	return U7{v: w}, err
}

// MustU7 is U7From8 for values known to be in range. It panics otherwise.
func MustU7(v uint8) U7 {
	u, err := U7From8(v)
	if err != nil {
		panic(err)
	}
	return u
}

// U7FromBigInt creates a U7 from a big.Int. Overflow truncates to MaxU7 and
// sets accurate to 'false'.
func U7FromBigInt(v *big.Int) (out U7, accurate bool) {
	w, accurate := preciseFromBigInt[uint8](v, U7Bits)
	return U7{v: w}, accurate
}

// U7FromString parses a decimal string.
func U7FromString(s string) (U7, error) {
	w, err := preciseFromString[uint8]("u7", s, U7Bits)
	return U7{v: w}, err
}

func U7FromBytes(b []byte, order ByteOrder) (U7, error) {
	w, err := preciseFromBytes[uint8]("u7", b, U7Bits, order)
	return U7{v: w}, err
}

func U7FromHex(s string) (U7, error) {
	w, err := preciseFromHex[uint8]("u7", s, U7Bits)
	return U7{v: w}, err
}

func (u U7) Uint8() uint8   { return u.v }
func (u U7) Uint64() uint64 { return uint64(u.v) }
func (u U7) Bits() uint     { return U7Bits }
func (u U7) IsZero() bool   { return u.v == 0 }

func (u U7) Bit(i uint) uint       { return uint(u.Rsh(i).v & 1) }
func (u U7) BitLen() int           { return int(U7Bits - u.LeadingZeros()) }
func (u U7) LeadingZeros() uint    { return preciseLeadingZeros(u.v, U7Bits) }
func (u U7) TrailingZeros() uint   { return preciseTrailingZeros(u.v, U7Bits) }
func (u U7) Cmp(n U7) int          { return preciseCmp(u.v, n.v) }
func (u U7) Equal(n U7) bool       { return u.v == n.v }
func (u U7) GreaterThan(n U7) bool { return u.v > n.v }
func (u U7) LessThan(n U7) bool    { return u.v < n.v }

func (u U7) GreaterOrEqualTo(n U7) bool { return u.v >= n.v }
func (u U7) LessOrEqualTo(n U7) bool    { return u.v <= n.v }

func (u U7) AddOverflow(n U7) (U7, bool) {
	v, overflow := preciseAdd(u.v, n.v, U7Bits)
	return U7{v: v}, overflow
}

func (u U7) Add(n U7) U7 {
	v, _ := u.AddOverflow(n)
	return v
}

func (u U7) AddWith(n U7, p Policy) (U7, error) {
	v, overflow := u.AddOverflow(n)
	return resolve("u7", "add", v, overflow, p, MaxU7, ErrOverflow)
}

func (u U7) SubOverflow(n U7) (U7, bool) {
	v, underflow := preciseSub(u.v, n.v, U7Bits)
	return U7{v: v}, underflow
}

func (u U7) Sub(n U7) U7 {
	v, _ := u.SubOverflow(n)
	return v
}

func (u U7) SubWith(n U7, p Policy) (U7, error) {
	v, underflow := u.SubOverflow(n)
	return resolve("u7", "sub", v, underflow, p, U7{}, ErrUnderflow)
}

func (u U7) MulOverflow(n U7) (U7, bool) {
	v, overflow := preciseMul(u.v, n.v, U7Bits)
	return U7{v: v}, overflow
}

func (u U7) Mul(n U7) U7 {
	v, _ := u.MulOverflow(n)
	return v
}

func (u U7) MulWith(n U7, p Policy) (U7, error) {
	v, overflow := u.MulOverflow(n)
	return resolve("u7", "mul", v, overflow, p, MaxU7, ErrOverflow)
}

func (u U7) Inc() U7                      { return u.Add(U7{v: 1}) }
func (u U7) IncOverflow() (U7, bool)      { return u.AddOverflow(U7{v: 1}) }
func (u U7) IncWith(p Policy) (U7, error) { return u.AddWith(U7{v: 1}, p) }
func (u U7) Dec() U7                      { return u.Sub(U7{v: 1}) }
func (u U7) DecOverflow() (U7, bool)      { return u.SubOverflow(U7{v: 1}) }
func (u U7) DecWith(p Policy) (U7, error) { return u.SubWith(U7{v: 1}, p) }

// QuoRem returns the quotient and remainder of u / by, or ErrDivisionByZero.
func (u U7) QuoRem(by U7) (q, r U7, err error) {
	qv, rv, err := preciseQuoRem("u7", u.v, by.v)
	return U7{v: qv}, U7{v: rv}, err
}

func (u U7) Quo(by U7) (U7, error) {
	q, _, err := u.QuoRem(by)
	return q, err
}

func (u U7) Rem(by U7) (U7, error) {
	_, r, err := u.QuoRem(by)
	return r, err
}

func (u U7) Lsh(n uint) U7 { return U7{v: preciseLsh(u.v, n, U7Bits)} }
func (u U7) Rsh(n uint) U7 { return U7{v: preciseRsh(u.v, n, U7Bits)} }

// LshChecked returns ErrOverflow instead of zero if n >= U7Bits.
func (u U7) LshChecked(n uint) (U7, error) {
	if n >= U7Bits {
		return U7{}, opError("u7", "lsh", ErrOverflow)
	}
	return u.Lsh(n), nil
}

func (u U7) RshChecked(n uint) (U7, error) {
	if n >= U7Bits {
		return U7{}, opError("u7", "rsh", ErrOverflow)
	}
	return u.Rsh(n), nil
}

func (u U7) And(n U7) U7    { return U7{v: u.v & n.v} }
func (u U7) AndNot(n U7) U7 { return U7{v: u.v &^ n.v} }
func (u U7) Or(n U7) U7     { return U7{v: u.v | n.v} }
func (u U7) Xor(n U7) U7    { return U7{v: u.v ^ n.v} }
func (u U7) Not() U7        { return U7{v: preciseNot(u.v, U7Bits)} }

// Bytes returns the value in U7Bytes bytes.
func (u U7) Bytes(order ByteOrder) []byte { return preciseBytes(u.v, U7Bits, order) }

func (u U7) Hex() string { return encodeHex(u.Bytes(BigEndian)) }

func (u U7) String() string { return strconv.FormatUint(uint64(u.v), 10) }

func (u U7) Format(s fmt.State, c rune) { u.AsBigInt().Format(s, c) }

func (u U7) AsBigInt() *big.Int { return new(big.Int).SetUint64(uint64(u.v)) }

func (u U7) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *U7) UnmarshalText(bts []byte) (err error) {
	v, err := U7FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U7) MarshalJSON() ([]byte, error) { return preciseMarshalJSON(u.v) }

func (u *U7) UnmarshalJSON(bts []byte) (err error) {
	v, err := preciseUnmarshalJSON[uint8]("u7", bts, U7Bits)
	if err != nil {
		return err
	}
	u.v = v
	return nil
}

func (u U7) MarshalBinary() ([]byte, error) { return u.Bytes(BigEndian), nil }

func (u *U7) UnmarshalBinary(data []byte) (err error) {
	v, err := U7FromBytes(data, BigEndian)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
