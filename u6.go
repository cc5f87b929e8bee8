package num

import (
	"fmt"
	"math/big"
	"strconv"
)

// U6 is a 6-bit unsigned integer in the range [0, 63], packed into a uint8.
//
// The zero value is 0. Values can only be created through the constructors
// below, so the bits above the width are always clear.
type U6 struct {
	v uint8
}

const (
	U6Bits  = 6
	U6Bytes = (U6Bits + 7) / 8
)

var MaxU6 = U6{v: 1<<U6Bits - 1}

// U6From8 returns ErrOverflow if v > 63.
func U6From8(v uint8) (U6, error) {
	w, err := preciseFrom[uint8]("u6", v, U6Bits)
	return U6{v: w}, err
}

// U6From64 returns ErrOverflow if v > 63.
func U6From64(v uint64) (U6, error) {
	w, err := preciseFrom[uint8]("u6", v, U6Bits)
	return U6{v: w}, err
}

// MustU6 is U6From8 for values known to be in range. It panics otherwise.
func MustU6(v uint8) U6 {
	u, err := U6From8(v)
	if err != nil {
		panic(err)
	}
	return u
}

// U6FromBigInt creates a U6 from a big.Int. Overflow truncates to MaxU6 and
// sets accurate to 'false'.
func U6FromBigInt(v *big.Int) (out U6, accurate bool) {
	w, accurate := preciseFromBigInt[uint8](v, U6Bits)
	return U6{v: w}, accurate
}

// U6FromString parses a decimal string.
func U6FromString(s string) (U6, error) {
	w, err := preciseFromString[uint8]("u6", s, U6Bits)
	return U6{v: w}, err
}

func U6FromBytes(b []byte, order ByteOrder) (U6, error) {
	w, err := preciseFromBytes[uint8]("u6", b, U6Bits, order)
	return U6{v: w}, err
}

func U6FromHex(s string) (U6, error) {
	w, err := preciseFromHex[uint8]("u6", s, U6Bits)
	return U6{v: w}, err
}

func (u U6) Uint8() uint8   { return u.v }
func (u U6) Uint64() uint64 { return uint64(u.v) }
func (u U6) Bits() uint     { return U6Bits }
func (u U6) IsZero() bool   { return u.v == 0 }

func (u U6) Bit(i uint) uint       { return uint(u.Rsh(i).v & 1) }
func (u U6) BitLen() int           { return int(U6Bits - u.LeadingZeros()) }
func (u U6) LeadingZeros() uint    { return preciseLeadingZeros(u.v, U6Bits) }
func (u U6) TrailingZeros() uint   { return preciseTrailingZeros(u.v, U6Bits) }
func (u U6) Cmp(n U6) int          { return preciseCmp(u.v, n.v) }
func (u U6) Equal(n U6) bool       { return u.v == n.v }
func (u U6) GreaterThan(n U6) bool { return u.v > n.v }
func (u U6) LessThan(n U6) bool    { return u.v < n.v }

func (u U6) GreaterOrEqualTo(n U6) bool { return u.v >= n.v }
func (u U6) LessOrEqualTo(n U6) bool    { return u.v <= n.v }

func (u U6) AddOverflow(n U6) (U6, bool) {
	v, overflow := preciseAdd(u.v, n.v, U6Bits)
	return U6{v: v}, overflow
}

func (u U6) Add(n U6) U6 {
	v, _ := u.AddOverflow(n)
	return v
}

func (u U6) AddWith(n U6, p Policy) (U6, error) {
	v, overflow := u.AddOverflow(n)
	return resolve("u6", "add", v, overflow, p, MaxU6, ErrOverflow)
}

func (u U6) SubOverflow(n U6) (U6, bool) {
	v, underflow := preciseSub(u.v, n.v, U6Bits)
	return U6{v: v}, underflow
}

func (u U6) Sub(n U6) U6 {
	v, _ := u.SubOverflow(n)
	return v
}

func (u U6) SubWith(n U6, p Policy) (U6, error) {
	v, underflow := u.SubOverflow(n)
	return resolve("u6", "sub", v, underflow, p, U6{}, ErrUnderflow)
}

func (u U6) MulOverflow(n U6) (U6, bool) {
	v, overflow := preciseMul(u.v, n.v, U6Bits)
	return U6{v: v}, overflow
}

func (u U6) Mul(n U6) U6 {
	v, _ := u.MulOverflow(n)
	return v
}

func (u U6) MulWith(n U6, p Policy) (U6, error) {
	v, overflow := u.MulOverflow(n)
	return resolve("u6", "mul", v, overflow, p, MaxU6, ErrOverflow)
}

func (u U6) Inc() U6                      { return u.Add(U6{v: 1}) }
func (u U6) IncOverflow() (U6, bool)      { return u.AddOverflow(U6{v: 1}) }
func (u U6) IncWith(p Policy) (U6, error) { return u.AddWith(U6{v: 1}, p) }
func (u U6) Dec() U6                      { return u.Sub(U6{v: 1}) }
func (u U6) DecOverflow() (U6, bool)      { return u.SubOverflow(U6{v: 1}) }
func (u U6) DecWith(p Policy) (U6, error) { return u.SubWith(U6{v: 1}, p) }

// QuoRem returns the quotient and remainder of u / by, or ErrDivisionByZero.
func (u U6) QuoRem(by U6) (q, r U6, err error) {
	qv, rv, err := preciseQuoRem("u6", u.v, by.v)
	return U6{v: qv}, U6{v: rv}, err
}

func (u U6) Quo(by U6) (U6, error) {
	q, _, err := u.QuoRem(by)
	return q, err
}

func (u U6) Rem(by U6) (U6, error) {
	_, r, err := u.QuoRem(by)
	return r, err
}

func (u U6) Lsh(n uint) U6 { return U6{v: preciseLsh(u.v, n, U6Bits)} }
func (u U6) Rsh(n uint) U6 { return U6{v: preciseRsh(u.v, n, U6Bits)} }

// LshChecked returns ErrOverflow instead of zero if n >= U6Bits.
func (u U6) LshChecked(n uint) (U6, error) {
	if n >= U6Bits {
		return U6{}, opError("u6", "lsh", ErrOverflow)
	}
	return u.Lsh(n), nil
}

func (u U6) RshChecked(n uint) (U6, error) {
	if n >= U6Bits {
		return U6{}, opError("u6", "rsh", ErrOverflow)
	}
	return u.Rsh(n), nil
}

func (u U6) And(n U6) U6    { return U6{v: u.v & n.v} }
func (u U6) AndNot(n U6) U6 { return U6{v: u.v &^ n.v} }
func (u U6) Or(n U6) U6     { return U6{v: u.v | n.v} }
func (u U6) Xor(n U6) U6    { return U6{v: u.v ^ n.v} }
func (u U6) Not() U6        { return U6{v: preciseNot(u.v, U6Bits)} }

// Bytes returns the value in U6Bytes bytes.
func (u U6) Bytes(order ByteOrder) []byte { return preciseBytes(u.v, U6Bits, order) }

func (u U6) Hex() string { return encodeHex(u.Bytes(BigEndian)) }

func (u U6) String() string { return strconv.FormatUint(uint64(u.v), 10) }

func (u U6) Format(s fmt.State, c rune) { u.AsBigInt().Format(s, c) }

func (u U6) AsBigInt() *big.Int { return new(big.Int).SetUint64(uint64(u.v)) }

func (u U6) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *U6) UnmarshalText(bts []byte) (err error) {
	v, err := U6FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U6) MarshalJSON() ([]byte, error) { return preciseMarshalJSON(u.v) }

func (u *U6) UnmarshalJSON(bts []byte) (err error) {
	v, err := preciseUnmarshalJSON[uint8]("u6", bts, U6Bits)
	if err != nil {
		return err
	}
	u.v = v
	return nil
}

func (u U6) MarshalBinary() ([]byte, error) { return u.Bytes(BigEndian), nil }

func (u *U6) UnmarshalBinary(data []byte) (err error) {
	v, err := U6FromBytes(data, BigEndian)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
