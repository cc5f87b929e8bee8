package num

import (
	"fmt"
	"math/big"
	"strconv"
)

// U1024 is an unsigned 1024-bit integer made of sixteen 64-bit limbs, least
// significant limb first.
//
// U1024 is a value type; all operations return new values.
type U1024 struct {
	n [u1024Limbs]uint64
}

const (
	U1024Bits  = 1024
	U1024Bytes = U1024Bits / 8
	u1024Limbs = U1024Bits / limbBits
)

var MaxU1024 = U1024{}.Not()

func U1024From64(v uint64) U1024 { return U1024{n: [u1024Limbs]uint64{v}} }

// U1024FromLimbs creates a U1024 from its limbs, least significant first.
func U1024FromLimbs(limbs [u1024Limbs]uint64) (out U1024) {
	out.n = limbs
	maskLimbs(out.n[:], U1024Bits)
	return out
}

// U1024FromLimbSlice creates a U1024 from exactly sixteen limbs, least significant
// first. Any other length returns a *LengthError.
func U1024FromLimbSlice(limbs []uint64) (out U1024, err error) {
	if len(limbs) != u1024Limbs {
		return out, &LengthError{Type: "u1024 limbs", Expected: u1024Limbs, Actual: len(limbs)}
	}
	copy(out.n[:], limbs)
	maskLimbs(out.n[:], U1024Bits)
	return out, nil
}

// U1024FromBigInt creates a U1024 from a big.Int. Overflow truncates to MaxU1024
// and sets accurate to 'false'. Negative and nil values return zero.
func U1024FromBigInt(v *big.Int) (out U1024, accurate bool) {
	if v == nil || v.Sign() < 0 {
		return out, false
	}
	if !limbsFromBigInt(out.n[:], v, U1024Bits) {
		return MaxU1024, false
	}
	return out, true
}

// U1024FromString parses a decimal string. Values larger than MaxU1024 return
// ErrOverflow.
func U1024FromString(s string) (out U1024, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok || b.Sign() < 0 {
		return out, fmt.Errorf("num: u1024 string %q: %w", s, ErrInvalidString)
	}
	out, accurate := U1024FromBigInt(b)
	if !accurate {
		return U1024{}, fmt.Errorf("num: u1024 string %q: %w", s, ErrOverflow)
	}
	return out, nil
}

// U1024FromBytes decodes exactly U1024Bytes bytes.
func U1024FromBytes(b []byte, order ByteOrder) (out U1024, err error) {
	err = decodeLimbs("u1024", out.n[:], b, order, U1024Bits)
	return out, err
}

// U1024FromHex decodes exactly 2*U1024Bytes hex digits, most significant first.
// The digits may be either case and may carry a 0x prefix.
func U1024FromHex(s string) (out U1024, err error) {
	b, err := decodeHex("u1024", s, U1024Bytes)
	if err != nil {
		return out, err
	}
	return U1024FromBytes(b, BigEndian)
}

// Limbs returns the limbs of u, least significant first.
func (u U1024) Limbs() [u1024Limbs]uint64 { return u.n }

func (u U1024) Bits() uint   { return U1024Bits }
func (u U1024) IsZero() bool { return u == U1024{} }

// Low64 returns the least significant 64 bits of u.
func (u U1024) Low64() uint64 { return u.n[0] }

// Low32 returns the least significant 32 bits of u.
func (u U1024) Low32() uint32 { return uint32(u.n[0]) }

// IsUint64 reports whether u can be represented as a uint64.
func (u U1024) IsUint64() bool { return isZeroLimbs(u.n[1:]) }

func (u U1024) Bit(i uint) uint     { return bitLimbs(u.n[:], i) }
func (u U1024) BitLen() int         { return bitLenLimbs(u.n[:]) }
func (u U1024) LeadingZeros() uint  { return U1024Bits - uint(u.BitLen()) }
func (u U1024) TrailingZeros() uint { return trailingZerosLimbs(u.n[:]) }

func (u U1024) Cmp(n U1024) int { return cmpLimbs(u.n[:], n.n[:]) }

func (u U1024) Equal(n U1024) bool            { return u == n }
func (u U1024) GreaterThan(n U1024) bool      { return u.Cmp(n) > 0 }
func (u U1024) GreaterOrEqualTo(n U1024) bool { return u.Cmp(n) >= 0 }
func (u U1024) LessThan(n U1024) bool         { return u.Cmp(n) < 0 }
func (u U1024) LessOrEqualTo(n U1024) bool    { return u.Cmp(n) <= 0 }

// AddOverflow returns u + n truncated to 1024 bits, and whether the true sum
// was larger.
func (u U1024) AddOverflow(n U1024) (v U1024, overflow bool) {
	carry := addLimbs(v.n[:], u.n[:], n.n[:])
	return v, settle(v.n[:], U1024Bits, carry)
}

// Add returns u + n modulo 2^1024.
func (u U1024) Add(n U1024) U1024 {
	v, _ := u.AddOverflow(n)
	return v
}

func (u U1024) AddWith(n U1024, p Policy) (U1024, error) {
	v, overflow := u.AddOverflow(n)
	return resolve("u1024", "add", v, overflow, p, MaxU1024, ErrOverflow)
}

func (u U1024) SubOverflow(n U1024) (v U1024, underflow bool) {
	borrow := subLimbs(v.n[:], u.n[:], n.n[:])
	maskLimbs(v.n[:], U1024Bits)
	return v, borrow != 0
}

// Sub returns u - n modulo 2^1024.
func (u U1024) Sub(n U1024) U1024 {
	v, _ := u.SubOverflow(n)
	return v
}

func (u U1024) SubWith(n U1024, p Policy) (U1024, error) {
	v, underflow := u.SubOverflow(n)
	return resolve("u1024", "sub", v, underflow, p, U1024{}, ErrUnderflow)
}

func (u U1024) IncOverflow() (v U1024, overflow bool) {
	carry := addLimb(v.n[:], u.n[:], 1)
	return v, settle(v.n[:], U1024Bits, carry)
}

func (u U1024) Inc() U1024 {
	v, _ := u.IncOverflow()
	return v
}

func (u U1024) IncWith(p Policy) (U1024, error) {
	v, overflow := u.IncOverflow()
	return resolve("u1024", "inc", v, overflow, p, MaxU1024, ErrOverflow)
}

func (u U1024) DecOverflow() (v U1024, underflow bool) {
	borrow := subLimb(v.n[:], u.n[:], 1)
	maskLimbs(v.n[:], U1024Bits)
	return v, borrow != 0
}

func (u U1024) Dec() U1024 {
	v, _ := u.DecOverflow()
	return v
}

func (u U1024) DecWith(p Policy) (U1024, error) {
	v, underflow := u.DecOverflow()
	return resolve("u1024", "dec", v, underflow, p, U1024{}, ErrUnderflow)
}

// MulOverflow returns u * n truncated to 1024 bits, and whether any set bits
// were truncated.
func (u U1024) MulOverflow(n U1024) (v U1024, overflow bool) {
	var full [2 * u1024Limbs]uint64
	mulLimbs(full[:], u.n[:], n.n[:])
	return v, truncateLimbs(v.n[:], full[:], U1024Bits)
}

func (u U1024) Mul(n U1024) U1024 {
	v, _ := u.MulOverflow(n)
	return v
}

func (u U1024) MulWith(n U1024, p Policy) (U1024, error) {
	v, overflow := u.MulOverflow(n)
	return resolve("u1024", "mul", v, overflow, p, MaxU1024, ErrOverflow)
}

// QuoRem returns the quotient q and remainder r of u / by, such that
// u == q*by + r and r < by. It returns ErrDivisionByZero if by is zero.
func (u U1024) QuoRem(by U1024) (q, r U1024, err error) {
	if by.IsZero() {
		return q, r, opError("u1024", "quo", ErrDivisionByZero)
	}
	quoRemLimbs(q.n[:], r.n[:], u.n[:], by.n[:])
	return q, r, nil
}

func (u U1024) Quo(by U1024) (q U1024, err error) {
	q, _, err = u.QuoRem(by)
	return q, err
}

func (u U1024) Rem(by U1024) (r U1024, err error) {
	_, r, err = u.QuoRem(by)
	return r, err
}

// Lsh returns u << n. Shifting by U1024Bits or more returns zero.
func (u U1024) Lsh(n uint) (v U1024) {
	if n >= U1024Bits {
		return v
	}
	lshLimbs(v.n[:], u.n[:], n)
	maskLimbs(v.n[:], U1024Bits)
	return v
}

// Rsh returns u >> n. Shifting by U1024Bits or more returns zero.
func (u U1024) Rsh(n uint) (v U1024) {
	if n >= U1024Bits {
		return v
	}
	rshLimbs(v.n[:], u.n[:], n)
	return v
}

// LshChecked returns ErrOverflow instead of zero if n >= U1024Bits.
func (u U1024) LshChecked(n uint) (U1024, error) {
	if n >= U1024Bits {
		return U1024{}, opError("u1024", "lsh", ErrOverflow)
	}
	return u.Lsh(n), nil
}

func (u U1024) RshChecked(n uint) (U1024, error) {
	if n >= U1024Bits {
		return U1024{}, opError("u1024", "rsh", ErrOverflow)
	}
	return u.Rsh(n), nil
}

func (u U1024) And(n U1024) (v U1024) {
	andLimbs(v.n[:], u.n[:], n.n[:])
	return v
}

func (u U1024) AndNot(n U1024) (v U1024) {
	andNotLimbs(v.n[:], u.n[:], n.n[:])
	return v
}

func (u U1024) Or(n U1024) (v U1024) {
	orLimbs(v.n[:], u.n[:], n.n[:])
	maskLimbs(v.n[:], U1024Bits)
	return v
}

func (u U1024) Xor(n U1024) (v U1024) {
	xorLimbs(v.n[:], u.n[:], n.n[:])
	maskLimbs(v.n[:], U1024Bits)
	return v
}

func (u U1024) Not() (v U1024) {
	notLimbs(v.n[:], u.n[:])
	maskLimbs(v.n[:], U1024Bits)
	return v
}

// Bytes returns the value in exactly U1024Bytes bytes.
func (u U1024) Bytes(order ByteOrder) []byte {
	b := make([]byte, U1024Bytes)
	putLimbs(b, u.n[:], order)
	return b
}

// Hex returns U1024Bytes*2 lowercase hex digits, most significant first,
// without a prefix.
func (u U1024) Hex() string { return encodeHex(u.Bytes(BigEndian)) }

func (u U1024) String() string {
	if u.IsUint64() {
		return strconv.FormatUint(u.n[0], 10)
	}
	return u.AsBigInt().String()
}

func (u U1024) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	u.AsBigInt().Format(s, c)
}

func (u U1024) IntoBigInt(b *big.Int) { limbsIntoBigInt(b, u.n[:]) }

func (u U1024) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsU256 narrows u to 256 bits. If u does not fit, the result is truncated
// and accurate is false.
func (u U1024) AsU256() (v U256, accurate bool) {
	copy(v.n[:], u.n[:])
	return v, isZeroLimbs(u.n[u256Limbs:])
}

// AsU512 narrows u to 512 bits; see AsU256.
func (u U1024) AsU512() (v U512, accurate bool) {
	copy(v.n[:], u.n[:])
	return v, isZeroLimbs(u.n[u512Limbs:])
}

// MarshalText encodes u as lowercase hex; see Hex.
func (u U1024) MarshalText() ([]byte, error) { return []byte(u.Hex()), nil }

func (u *U1024) UnmarshalText(bts []byte) (err error) {
	v, err := U1024FromHex(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U1024) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.Hex() + `"`), nil
}

func (u *U1024) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) == 0 || bts[0] != '"' {
		return fmt.Errorf("num: u1024 invalid JSON %q", string(bts))
	}
	s, err := unquoteJSON("u1024", bts)
	if err != nil {
		return err
	}
	return u.UnmarshalText(s)
}

// MarshalBinary encodes u as U1024Bytes big-endian bytes.
func (u U1024) MarshalBinary() ([]byte, error) { return u.Bytes(BigEndian), nil }

func (u *U1024) UnmarshalBinary(data []byte) (err error) {
	v, err := U1024FromBytes(data, BigEndian)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
