package num

import (
	"fmt"
	"math/big"
	"strconv"
)

// U512 is an unsigned 512-bit integer made of eight 64-bit limbs, least
// significant limb first.
//
// U512 is a value type; all operations return new values.
type U512 struct {
	n [u512Limbs]uint64
}

const (
	U512Bits  = 512
	U512Bytes = U512Bits / 8
	u512Limbs = U512Bits / limbBits
)

var MaxU512 = U512{}.Not()

func U512From64(v uint64) U512 { return U512{n: [u512Limbs]uint64{v}} }

// U512FromLimbs creates a U512 from its limbs, least significant first.
func U512FromLimbs(limbs [u512Limbs]uint64) (out U512) {
	out.n = limbs
	maskLimbs(out.n[:], U512Bits)
	return out
}

// U512FromLimbSlice creates a U512 from exactly eight limbs, least significant
// first. Any other length returns a *LengthError.
func U512FromLimbSlice(limbs []uint64) (out U512, err error) {
	if len(limbs) != u512Limbs {
		return out, &LengthError{Type: "u512 limbs", Expected: u512Limbs, Actual: len(limbs)}
	}
	copy(out.n[:], limbs)
	maskLimbs(out.n[:], U512Bits)
	return out, nil
}

// U512FromBigInt creates a U512 from a big.Int. Overflow truncates to MaxU512
// and sets accurate to 'false'. Negative and nil values return zero.
func U512FromBigInt(v *big.Int) (out U512, accurate bool) {
	if v == nil || v.Sign() < 0 {
		return out, false
	}
	if !limbsFromBigInt(out.n[:], v, U512Bits) {
		return MaxU512, false
	}
	return out, true
}

// U512FromString parses a decimal string. Values larger than MaxU512 return
// ErrOverflow.
func U512FromString(s string) (out U512, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok || b.Sign() < 0 {
		return out, fmt.Errorf("num: u512 string %q: %w", s, ErrInvalidString)
	}
	out, accurate := U512FromBigInt(b)
	if !accurate {
		return U512{}, fmt.Errorf("num: u512 string %q: %w", s, ErrOverflow)
	}
	return out, nil
}

// U512FromBytes decodes exactly U512Bytes bytes.
func U512FromBytes(b []byte, order ByteOrder) (out U512, err error) {
	err = decodeLimbs("u512", out.n[:], b, order, U512Bits)
	return out, err
}

// U512FromHex decodes exactly 2*U512Bytes hex digits, most significant first.
// The digits may be either case and may carry a 0x prefix.
func U512FromHex(s string) (out U512, err error) {
	b, err := decodeHex("u512", s, U512Bytes)
	if err != nil {
		return out, err
	}
	return U512FromBytes(b, BigEndian)
}

// Limbs returns the limbs of u, least significant first.
func (u U512) Limbs() [u512Limbs]uint64 { return u.n }

func (u U512) Bits() uint   { return U512Bits }
func (u U512) IsZero() bool { return u == U512{} }

// Low64 returns the least significant 64 bits of u.
func (u U512) Low64() uint64 { return u.n[0] }

// Low32 returns the least significant 32 bits of u.
func (u U512) Low32() uint32 { return uint32(u.n[0]) }

// IsUint64 reports whether u can be represented as a uint64.
func (u U512) IsUint64() bool { return isZeroLimbs(u.n[1:]) }

func (u U512) Bit(i uint) uint     { return bitLimbs(u.n[:], i) }
func (u U512) BitLen() int         { return bitLenLimbs(u.n[:]) }
func (u U512) LeadingZeros() uint  { return U512Bits - uint(u.BitLen()) }
func (u U512) TrailingZeros() uint { return trailingZerosLimbs(u.n[:]) }

func (u U512) Cmp(n U512) int { return cmpLimbs(u.n[:], n.n[:]) }

func (u U512) Equal(n U512) bool            { return u == n }
func (u U512) GreaterThan(n U512) bool      { return u.Cmp(n) > 0 }
func (u U512) GreaterOrEqualTo(n U512) bool { return u.Cmp(n) >= 0 }
func (u U512) LessThan(n U512) bool         { return u.Cmp(n) < 0 }
func (u U512) LessOrEqualTo(n U512) bool    { return u.Cmp(n) <= 0 }

// AddOverflow returns u + n truncated to 512 bits, and whether the true sum
// was larger.
func (u U512) AddOverflow(n U512) (v U512, overflow bool) {
	carry := addLimbs(v.n[:], u.n[:], n.n[:])
	return v, settle(v.n[:], U512Bits, carry)
}

// Add returns u + n modulo 2^512.
func (u U512) Add(n U512) U512 {
	v, _ := u.AddOverflow(n)
	return v
}

func (u U512) AddWith(n U512, p Policy) (U512, error) {
	v, overflow := u.AddOverflow(n)
	return resolve("u512", "add", v, overflow, p, MaxU512, ErrOverflow)
}

func (u U512) SubOverflow(n U512) (v U512, underflow bool) {
	borrow := subLimbs(v.n[:], u.n[:], n.n[:])
	maskLimbs(v.n[:], U512Bits)
	return v, borrow != 0
}

// Sub returns u - n modulo 2^512.
func (u U512) Sub(n U512) U512 {
	v, _ := u.SubOverflow(n)
	return v
}

func (u U512) SubWith(n U512, p Policy) (U512, error) {
	v, underflow := u.SubOverflow(n)
	return resolve("u512", "sub", v, underflow, p, U512{}, ErrUnderflow)
}

func (u U512) IncOverflow() (v U512, overflow bool) {
	carry := addLimb(v.n[:], u.n[:], 1)
	return v, settle(v.n[:], U512Bits, carry)
}

func (u U512) Inc() U512 {
	v, _ := u.IncOverflow()
	return v
}

func (u U512) IncWith(p Policy) (U512, error) {
	v, overflow := u.IncOverflow()
	return resolve("u512", "inc", v, overflow, p, MaxU512, ErrOverflow)
}

func (u U512) DecOverflow() (v U512, underflow bool) {
	borrow := subLimb(v.n[:], u.n[:], 1)
	maskLimbs(v.n[:], U512Bits)
	return v, borrow != 0
}

func (u U512) Dec() U512 {
	v, _ := u.DecOverflow()
	return v
}

func (u U512) DecWith(p Policy) (U512, error) {
	v, underflow := u.DecOverflow()
	return resolve("u512", "dec", v, underflow, p, U512{}, ErrUnderflow)
}

// MulOverflow returns u * n truncated to 512 bits, and whether any set bits
// were truncated.
func (u U512) MulOverflow(n U512) (v U512, overflow bool) {
	var full [2 * u512Limbs]uint64
	mulLimbs(full[:], u.n[:], n.n[:])
	return v, truncateLimbs(v.n[:], full[:], U512Bits)
}

func (u U512) Mul(n U512) U512 {
	v, _ := u.MulOverflow(n)
	return v
}

func (u U512) MulWith(n U512, p Policy) (U512, error) {
	v, overflow := u.MulOverflow(n)
	return resolve("u512", "mul", v, overflow, p, MaxU512, ErrOverflow)
}

// QuoRem returns the quotient q and remainder r of u / by, such that
// u == q*by + r and r < by. It returns ErrDivisionByZero if by is zero.
func (u U512) QuoRem(by U512) (q, r U512, err error) {
	if by.IsZero() {
		return q, r, opError("u512", "quo", ErrDivisionByZero)
	}
	quoRemLimbs(q.n[:], r.n[:], u.n[:], by.n[:])
	return q, r, nil
}

func (u U512) Quo(by U512) (q U512, err error) {
	q, _, err = u.QuoRem(by)
	return q, err
}

func (u U512) Rem(by U512) (r U512, err error) {
	_, r, err = u.QuoRem(by)
	return r, err
}

// Lsh returns u << n. Shifting by U512Bits or more returns zero.
func (u U512) Lsh(n uint) (v U512) {
	if n >= U512Bits {
		return v
	}
	lshLimbs(v.n[:], u.n[:], n)
	maskLimbs(v.n[:], U512Bits)
	return v
}

// Rsh returns u >> n. Shifting by U512Bits or more returns zero.
func (u U512) Rsh(n uint) (v U512) {
	if n >= U512Bits {
		return v
	}
	rshLimbs(v.n[:], u.n[:], n)
	return v
}

// LshChecked returns ErrOverflow instead of zero if n >= U512Bits.
func (u U512) LshChecked(n uint) (U512, error) {
	if n >= U512Bits {
		return U512{}, opError("u512", "lsh", ErrOverflow)
	}
	return u.Lsh(n), nil
}

func (u U512) RshChecked(n uint) (U512, error) {
	if n >= U512Bits {
		return U512{}, opError("u512", "rsh", ErrOverflow)
	}
	return u.Rsh(n), nil
}

func (u U512) And(n U512) (v U512) {
	andLimbs(v.n[:], u.n[:], n.n[:])
	return v
}

func (u U512) AndNot(n U512) (v U512) {
	andNotLimbs(v.n[:], u.n[:], n.n[:])
	return v
}

func (u U512) Or(n U512) (v U512) {
	orLimbs(v.n[:], u.n[:], n.n[:])
	maskLimbs(v.n[:], U512Bits)
	return v
}

func (u U512) Xor(n U512) (v U512) {
	xorLimbs(v.n[:], u.n[:], n.n[:])
	maskLimbs(v.n[:], U512Bits)
	return v
}

func (u U512) Not() (v U512) {
	notLimbs(v.n[:], u.n[:])
	maskLimbs(v.n[:], U512Bits)
	return v
}

// Bytes returns the value in exactly U512Bytes bytes.
func (u U512) Bytes(order ByteOrder) []byte {
	b := make([]byte, U512Bytes)
	putLimbs(b, u.n[:], order)
	return b
}

// Hex returns U512Bytes*2 lowercase hex digits, most significant first,
// without a prefix.
func (u U512) Hex() string { return encodeHex(u.Bytes(BigEndian)) }

func (u U512) String() string {
	if u.IsUint64() {
		return strconv.FormatUint(u.n[0], 10)
	}
	return u.AsBigInt().String()
}

func (u U512) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	u.AsBigInt().Format(s, c)
}

func (u U512) IntoBigInt(b *big.Int) { limbsIntoBigInt(b, u.n[:]) }

func (u U512) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsU256 narrows u to 256 bits. If u does not fit, the result is truncated
// and accurate is false.
func (u U512) AsU256() (v U256, accurate bool) {
	copy(v.n[:], u.n[:])
	return v, isZeroLimbs(u.n[u256Limbs:])
}

// AsU1024 widens u to 1024 bits.
func (u U512) AsU1024() (v U1024) {
	copy(v.n[:], u.n[:])
	return v
}

// MarshalText encodes u as lowercase hex; see Hex.
func (u U512) MarshalText() ([]byte, error) { return []byte(u.Hex()), nil }

func (u *U512) UnmarshalText(bts []byte) (err error) {
	v, err := U512FromHex(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U512) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.Hex() + `"`), nil
}

func (u *U512) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) == 0 || bts[0] != '"' {
		return fmt.Errorf("num: u512 invalid JSON %q", string(bts))
	}
	s, err := unquoteJSON("u512", bts)
	if err != nil {
		return err
	}
	return u.UnmarshalText(s)
}

// MarshalBinary encodes u as U512Bytes big-endian bytes.
func (u U512) MarshalBinary() ([]byte, error) { return u.Bytes(BigEndian), nil }

func (u *U512) UnmarshalBinary(data []byte) (err error) {
	v, err := U512FromBytes(data, BigEndian)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
