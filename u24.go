package num

import (
	"fmt"
	"math/big"
	"strconv"
)

// U24 is a 24-bit unsigned integer in the range [0, 16777215], packed into
// a uint32.
//
// The zero value is 0. Values can only be created through the constructors
// below, so the bits above the width are always clear.
type U24 struct {
	v uint32
}

const (
	U24Bits  = 24
	U24Bytes = (U24Bits + 7) / 8
)

var MaxU24 = U24{v: 1<<U24Bits - 1}

// U24From32 returns ErrOverflow if v > 16777215.
func U24From32(v uint32) (U24, error) {
	w, err := preciseFrom[uint32]("u24", v, U24Bits)
	return U24{v: w}, err
}

// U24From64 returns ErrOverflow if v > 16777215.
func U24From64(v uint64) (U24, error) {
	w, err := preciseFrom[uint32]("u24", v, U24Bits)
	return U24{v: w}, err
}

// MustU24 is U24From32 for values known to be in range. It panics otherwise.
func MustU24(v uint32) U24 {
	u, err := U24From32(v)
	if err != nil {
		panic(err)
	}
	return u
}

// U24FromBigInt creates a U24 from a big.Int. Overflow truncates to MaxU24 and
// sets accurate to 'false'.
func U24FromBigInt(v *big.Int) (out U24, accurate bool) {
	w, accurate := preciseFromBigInt[uint32](v, U24Bits)
	return U24{v: w}, accurate
}

// U24FromString parses a decimal string.
func U24FromString(s string) (U24, error) {
	w, err := preciseFromString[uint32]("u24", s, U24Bits)
	return U24{v: w}, err
}

func U24FromBytes(b []byte, order ByteOrder) (U24, error) {
	w, err := preciseFromBytes[uint32]("u24", b, U24Bits, order)
	return U24{v: w}, err
}

func U24FromHex(s string) (U24, error) {
	w, err := preciseFromHex[uint32]("u24", s, U24Bits)
	return U24{v: w}, err
}

func (u U24) Uint32() uint32 { return u.v }
func (u U24) Uint64() uint64 { return uint64(u.v) }
func (u U24) Bits() uint     { return U24Bits }
func (u U24) IsZero() bool   { return u.v == 0 }

func (u U24) Bit(i uint) uint        { return uint(u.Rsh(i).v & 1) }
func (u U24) BitLen() int            { return int(U24Bits - u.LeadingZeros()) }
func (u U24) LeadingZeros() uint     { return preciseLeadingZeros(u.v, U24Bits) }
func (u U24) TrailingZeros() uint    { return preciseTrailingZeros(u.v, U24Bits) }
func (u U24) Cmp(n U24) int          { return preciseCmp(u.v, n.v) }
func (u U24) Equal(n U24) bool       { return u.v == n.v }
func (u U24) GreaterThan(n U24) bool { return u.v > n.v }
func (u U24) LessThan(n U24) bool    { return u.v < n.v }

func (u U24) GreaterOrEqualTo(n U24) bool { return u.v >= n.v }
func (u U24) LessOrEqualTo(n U24) bool    { return u.v <= n.v }

func (u U24) AddOverflow(n U24) (U24, bool) {
	v, overflow := preciseAdd(u.v, n.v, U24Bits)
	return U24{v: v}, overflow
}

func (u U24) Add(n U24) U24 {
	v, _ := u.AddOverflow(n)
	return v
}

func (u U24) AddWith(n U24, p Policy) (U24, error) {
	v, overflow := u.AddOverflow(n)
	return resolve("u24", "add", v, overflow, p, MaxU24, ErrOverflow)
}

func (u U24) SubOverflow(n U24) (U24, bool) {
	v, underflow := preciseSub(u.v, n.v, U24Bits)
	return U24{v: v}, underflow
}

func (u U24) Sub(n U24) U24 {
	v, _ := u.SubOverflow(n)
	return v
}

func (u U24) SubWith(n U24, p Policy) (U24, error) {
	v, underflow := u.SubOverflow(n)
	return resolve("u24", "sub", v, underflow, p, U24{}, ErrUnderflow)
}

func (u U24) MulOverflow(n U24) (U24, bool) {
	v, overflow := preciseMul(u.v, n.v, U24Bits)
	return U24{v: v}, overflow
}

func (u U24) Mul(n U24) U24 {
	v, _ := u.MulOverflow(n)
	return v
}

func (u U24) MulWith(n U24, p Policy) (U24, error) {
	v, overflow := u.MulOverflow(n)
	return resolve("u24", "mul", v, overflow, p, MaxU24, ErrOverflow)
}

func (u U24) Inc() U24                      { return u.Add(U24{v: 1}) }
func (u U24) IncOverflow() (U24, bool)      { return u.AddOverflow(U24{v: 1}) }
func (u U24) IncWith(p Policy) (U24, error) { return u.AddWith(U24{v: 1}, p) }
func (u U24) Dec() U24                      { return u.Sub(U24{v: 1}) }
func (u U24) DecOverflow() (U24, bool)      { return u.SubOverflow(U24{v: 1}) }
func (u U24) DecWith(p Policy) (U24, error) { return u.SubWith(U24{v: 1}, p) }

// QuoRem returns the quotient and remainder of u / by, or ErrDivisionByZero.
func (u U24) QuoRem(by U24) (q, r U24, err error) {
	qv, rv, err := preciseQuoRem("u24", u.v, by.v)
	return U24{v: qv}, U24{v: rv}, err
}

func (u U24) Quo(by U24) (U24, error) {
	q, _, err := u.QuoRem(by)
	return q, err
}

func (u U24) Rem(by U24) (U24, error) {
	_, r, err := u.QuoRem(by)
	return r, err
}

func (u U24) Lsh(n uint) U24 { return U24{v: preciseLsh(u.v, n, U24Bits)} }
func (u U24) Rsh(n uint) U24 { return U24{v: preciseRsh(u.v, n, U24Bits)} }

// LshChecked returns ErrOverflow instead of zero if n >= U24Bits.
func (u U24) LshChecked(n uint) (U24, error) {
	if n >= U24Bits {
		return U24{}, opError("u24", "lsh", ErrOverflow)
	}
	return u.Lsh(n), nil
}

func (u U24) RshChecked(n uint) (U24, error) {
	if n >= U24Bits {
		return U24{}, opError("u24", "rsh", ErrOverflow)
	}
	return u.Rsh(n), nil
}

func (u U24) And(n U24) U24    { return U24{v: u.v & n.v} }
func (u U24) AndNot(n U24) U24 { return U24{v: u.v &^ n.v} }
func (u U24) Or(n U24) U24     { return U24{v: u.v | n.v} }
func (u U24) Xor(n U24) U24    { return U24{v: u.v ^ n.v} }
func (u U24) Not() U24         { return U24{v: preciseNot(u.v, U24Bits)} }

// Bytes returns the value in U24Bytes bytes.
func (u U24) Bytes(order ByteOrder) []byte { return preciseBytes(u.v, U24Bits, order) }

func (u U24) Hex() string { return encodeHex(u.Bytes(BigEndian)) }

func (u U24) String() string { return strconv.FormatUint(uint64(u.v), 10) }

func (u U24) Format(s fmt.State, c rune) { u.AsBigInt().Format(s, c) }

func (u U24) AsBigInt() *big.Int { return new(big.Int).SetUint64(uint64(u.v)) }

func (u U24) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *U24) UnmarshalText(bts []byte) (err error) {
	v, err := U24FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U24) MarshalJSON() ([]byte, error) { return preciseMarshalJSON(u.v) }

func (u *U24) UnmarshalJSON(bts []byte) (err error) {
	v, err := preciseUnmarshalJSON[uint32]("u24", bts, U24Bits)
	if err != nil {
		return err
	}
	u.v = v
	return nil
}

func (u U24) MarshalBinary() ([]byte, error) { return u.Bytes(BigEndian), nil }

func (u *U24) UnmarshalBinary(data []byte) (err error) {
	v, err := U24FromBytes(data, BigEndian)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
