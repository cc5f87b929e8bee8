package num

import (
	"fmt"
	"math/big"
	"strconv"
)

// U5 is a 5-bit unsigned integer in the range [0, 31], packed into a uint8.
//
// The zero value is 0. Values can only be created through the constructors
// below, so the bits above the width are always clear.
type U5 struct {
	v uint8
}

const (
	U5Bits  = 5
	U5Bytes = (U5Bits + 7) / 8
)

var MaxU5 = U5{v: 1<<U5Bits - 1}

// U5From8 returns ErrOverflow if v > 31.
func U5From8(v uint8) (U5, error) {
	w, err := preciseFrom[uint8]("u5", v, U5Bits)
	return U5{v: w}, err
}

// U5From64 returns ErrOverflow if v > 31.
func U5From64(v uint64) (U5, error) {
	w, err := preciseFrom[uint8]("u5", v, U5Bits)
	return U5{v: w}, err
}

// MustU5 is U5From8 for values known to be in range. It panics otherwise.
func MustU5(v uint8) U5 {
	u, err := U5From8(v)
	if err != nil {
		panic(err)
	}
	return u
}

// U5FromBigInt creates a U5 from a big.Int. Overflow truncates to MaxU5 and
// sets accurate to 'false'.
func U5FromBigInt(v *big.Int) (out U5, accurate bool) {
	w, accurate := preciseFromBigInt[uint8](v, U5Bits)
	return U5{v: w}, accurate
}

// U5FromString parses a decimal string.
func U5FromString(s string) (U5, error) {
	w, err := preciseFromString[uint8]("u5", s, U5Bits)
	return U5{v: w}, err
}

func U5FromBytes(b []byte, order ByteOrder) (U5, error) {
	w, err := preciseFromBytes[uint8]("u5", b, U5Bits, order)
	return U5{v: w}, err
}

func U5FromHex(s string) (U5, error) {
	w, err := preciseFromHex[uint8]("u5", s, U5Bits)
	return U5{v: w}, err
}

func (u U5) Uint8() uint8   { return u.v }
func (u U5) Uint64() uint64 { return uint64(u.v) }
func (u U5) Bits() uint     { return U5Bits }
func (u U5) IsZero() bool   { return u.v == 0 }

func (u U5) Bit(i uint) uint       { return uint(u.Rsh(i).v & 1) }
func (u U5) BitLen() int           { return int(U5Bits - u.LeadingZeros()) }
func (u U5) LeadingZeros() uint    { return preciseLeadingZeros(u.v, U5Bits) }
func (u U5) TrailingZeros() uint   { return preciseTrailingZeros(u.v, U5Bits) }
func (u U5) Cmp(n U5) int          { return preciseCmp(u.v, n.v) }
func (u U5) Equal(n U5) bool       { return u.v == n.v }
func (u U5) GreaterThan(n U5) bool { return u.v > n.v }
func (u U5) LessThan(n U5) bool    { return u.v < n.v }

func (u U5) GreaterOrEqualTo(n U5) bool { return u.v >= n.v }
func (u U5) LessOrEqualTo(n U5) bool    { return u.v <= n.v }

func (u U5) AddOverflow(n U5) (U5, bool) {
	v, overflow := preciseAdd(u.v, n.v, U5Bits)
	return U5{v: v}, overflow
}

func (u U5) Add(n U5) U5 {
	v, _ := u.AddOverflow(n)
	return v
}

func (u U5) AddWith(n U5, p Policy) (U5, error) {
	v, overflow := u.AddOverflow(n)
	return resolve("u5", "add", v, overflow, p, MaxU5, ErrOverflow)
}

func (u U5) SubOverflow(n U5) (U5, bool) {
	v, underflow := preciseSub(u.v, n.v, U5Bits)
	return U5{v: v}, underflow
}

func (u U5) Sub(n U5) U5 {
	v, _ := u.SubOverflow(n)
	return v
}

func (u U5) SubWith(n U5, p Policy) (U5, error) {
	v, underflow := u.SubOverflow(n)
	return resolve("u5", "sub", v, underflow, p, U5{}, ErrUnderflow)
}

func (u U5) MulOverflow(n U5) (U5, bool) {
	v, overflow := preciseMul(u.v, n.v, U5Bits)
	return U5{v: v}, overflow
}

func (u U5) Mul(n U5) U5 {
	v, _ := u.MulOverflow(n)
	return v
}

func (u U5) MulWith(n U5, p Policy) (U5, error) {
	v, overflow := u.MulOverflow(n)
	return resolve("u5", "mul", v, overflow, p, MaxU5, ErrOverflow)
}

func (u U5) Inc() U5                      { return u.Add(U5{v: 1}) }
func (u U5) IncOverflow() (U5, bool)      { return u.AddOverflow(U5{v: 1}) }
func (u U5) IncWith(p Policy) (U5, error) { return u.AddWith(U5{v: 1}, p) }
func (u U5) Dec() U5                      { return u.Sub(U5{v: 1}) }
func (u U5) DecOverflow() (U5, bool)      { return u.SubOverflow(U5{v: 1}) }
func (u U5) DecWith(p Policy) (U5, error) { return u.SubWith(U5{v: 1}, p) }

// QuoRem returns the quotient and remainder of u / by, or ErrDivisionByZero.
func (u U5) QuoRem(by U5) (q, r U5, err error) {
	qv, rv, err := preciseQuoRem("u5", u.v, by.v)
	return U5{v: qv}, U5{v: rv}, err
}

func (u U5) Quo(by U5) (U5, error) {
	q, _, err := u.QuoRem(by)
	return q, err
}

func (u U5) Rem(by U5) (U5, error) {
	_, r, err := u.QuoRem(by)
	return r, err
}

func (u U5) Lsh(n uint) U5 { return U5{v: preciseLsh(u.v, n, U5Bits)} }
func (u U5) Rsh(n uint) U5 { return U5{v: preciseRsh(u.v, n, U5Bits)} }

// LshChecked returns ErrOverflow instead of zero if n >= U5Bits.
func (u U5) LshChecked(n uint) (U5, error) {
	if n >= U5Bits {
		return U5{}, opError("u5", "lsh", ErrOverflow)
	}
	return u.Lsh(n), nil
}

func (u U5) RshChecked(n uint) (U5, error) {
	if n >= U5Bits {
		return U5{}, opError("u5", "rsh", ErrOverflow)
	}
	return u.Rsh(n), nil
}

func (u U5) And(n U5) U5    { return U5{v: u.v & n.v} }
func (u U5) AndNot(n U5) U5 { return U5{v: u.v &^ n.v} }
func (u U5) Or(n U5) U5     { return U5{v: u.v | n.v} }
func (u U5) Xor(n U5) U5    { return U5{v: u.v ^ n.v} }
func (u U5) Not() U5        { return U5{v: preciseNot(u.v, U5Bits)} }

// Bytes returns the value in U5Bytes bytes.
func (u U5) Bytes(order ByteOrder) []byte { return preciseBytes(u.v, U5Bits, order) }

func (u U5) Hex() string { return encodeHex(u.Bytes(BigEndian)) }

func (u U5) String() string { return strconv.FormatUint(uint64(u.v), 10) }

func (u U5) Format(s fmt.State, c rune) { u.AsBigInt().Format(s, c) }

func (u U5) AsBigInt() *big.Int { return new(big.Int).SetUint64(uint64(u.v)) }

func (u U5) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *U5) UnmarshalText(bts []byte) (err error) {
	v, err := U5FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U5) MarshalJSON() ([]byte, error) { return preciseMarshalJSON(u.v) }

func (u *U5) UnmarshalJSON(bts []byte) (err error) {
	v, err := preciseUnmarshalJSON[uint8]("u5", bts, U5Bits)
	if err != nil {
		return err
	}
	u.v = v
	return nil
}

func (u U5) MarshalBinary() ([]byte, error) { return u.Bytes(BigEndian), nil }

func (u *U5) UnmarshalBinary(data []byte) (err error) {
	v, err := U5FromBytes(data, BigEndian)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
