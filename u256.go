package num

import (
	"fmt"
	"math/big"
	"strconv"
)

// U256 is an unsigned 256-bit integer made of four 64-bit limbs, least
// significant limb first.
//
// U256 is a value type; all operations return new values.
type U256 struct {
	n [u256Limbs]uint64
}

const (
	U256Bits  = 256
	U256Bytes = U256Bits / 8
	u256Limbs = U256Bits / limbBits
)

var MaxU256 = U256{}.Not()

func U256From64(v uint64) U256 { return U256{n: [u256Limbs]uint64{v}} }

// U256FromLimbs creates a U256 from its limbs, least significant first.
func U256FromLimbs(limbs [u256Limbs]uint64) (out U256) {
	out.n = limbs
	maskLimbs(out.n[:], U256Bits)
	return out
}

// U256FromLimbSlice creates a U256 from exactly four limbs, least significant
// first. Any other length returns a *LengthError.
func U256FromLimbSlice(limbs []uint64) (out U256, err error) {
	if len(limbs) != u256Limbs {
		return out, &LengthError{Type: "u256 limbs", Expected: u256Limbs, Actual: len(limbs)}
	}
	copy(out.n[:], limbs)
	maskLimbs(out.n[:], U256Bits)
	return out, nil
}

// U256FromBigInt creates a U256 from a big.Int. Overflow truncates to MaxU256
// and sets accurate to 'false'. Negative and nil values return zero.
func U256FromBigInt(v *big.Int) (out U256, accurate bool) {
	if v == nil || v.Sign() < 0 {
		return out, false
	}
	if !limbsFromBigInt(out.n[:], v, U256Bits) {
		return MaxU256, false
	}
	return out, true
}

// U256FromString parses a decimal string. Values larger than MaxU256 return
// ErrOverflow.
func U256FromString(s string) (out U256, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok || b.Sign() < 0 {
		return out, fmt.Errorf("num: u256 string %q: %w", s, ErrInvalidString)
	}
	out, accurate := U256FromBigInt(b)
	if !accurate {
		return U256{}, fmt.Errorf("num: u256 string %q: %w", s, ErrOverflow)
	}
	return out, nil
}

// U256FromBytes decodes exactly U256Bytes bytes.
func U256FromBytes(b []byte, order ByteOrder) (out U256, err error) {
	err = decodeLimbs("u256", out.n[:], b, order, U256Bits)
	return out, err
}

// U256FromHex decodes exactly 2*U256Bytes hex digits, most significant first.
// The digits may be either case and may carry a 0x prefix.
func U256FromHex(s string) (out U256, err error) {
	b, err := decodeHex("u256", s, U256Bytes)
	if err != nil {
		return out, err
	}
	return U256FromBytes(b, BigEndian)
}

// Limbs returns the limbs of u, least significant first.
func (u U256) Limbs() [u256Limbs]uint64 { return u.n }

func (u U256) Bits() uint   { return U256Bits }
func (u U256) IsZero() bool { return u == U256{} }

// Low64 returns the least significant 64 bits of u.
func (u U256) Low64() uint64 { return u.n[0] }

// Low32 returns the least significant 32 bits of u.
func (u U256) Low32() uint32 { return uint32(u.n[0]) }

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return isZeroLimbs(u.n[1:]) }

func (u U256) Bit(i uint) uint     { return bitLimbs(u.n[:], i) }
func (u U256) BitLen() int         { return bitLenLimbs(u.n[:]) }
func (u U256) LeadingZeros() uint  { return U256Bits - uint(u.BitLen()) }
func (u U256) TrailingZeros() uint { return trailingZerosLimbs(u.n[:]) }

func (u U256) Cmp(n U256) int { return cmpLimbs(u.n[:], n.n[:]) }

func (u U256) Equal(n U256) bool            { return u == n }
func (u U256) GreaterThan(n U256) bool      { return u.Cmp(n) > 0 }
func (u U256) GreaterOrEqualTo(n U256) bool { return u.Cmp(n) >= 0 }
func (u U256) LessThan(n U256) bool         { return u.Cmp(n) < 0 }
func (u U256) LessOrEqualTo(n U256) bool    { return u.Cmp(n) <= 0 }

// AddOverflow returns u + n truncated to 256 bits, and whether the true sum
// was larger.
func (u U256) AddOverflow(n U256) (v U256, overflow bool) {
	carry := addLimbs(v.n[:], u.n[:], n.n[:])
	return v, settle(v.n[:], U256Bits, carry)
}

// Add returns u + n modulo 2^256.
func (u U256) Add(n U256) U256 {
	v, _ := u.AddOverflow(n)
	return v
}

func (u U256) AddWith(n U256, p Policy) (U256, error) {
	v, overflow := u.AddOverflow(n)
	return resolve("u256", "add", v, overflow, p, MaxU256, ErrOverflow)
}

func (u U256) SubOverflow(n U256) (v U256, underflow bool) {
	borrow := subLimbs(v.n[:], u.n[:], n.n[:])
	maskLimbs(v.n[:], U256Bits)
	return v, borrow != 0
}

// Sub returns u - n modulo 2^256.
func (u U256) Sub(n U256) U256 {
	v, _ := u.SubOverflow(n)
	return v
}

func (u U256) SubWith(n U256, p Policy) (U256, error) {
	v, underflow := u.SubOverflow(n)
	return resolve("u256", "sub", v, underflow, p, U256{}, ErrUnderflow)
}

func (u U256) IncOverflow() (v U256, overflow bool) {
	carry := addLimb(v.n[:], u.n[:], 1)
	return v, settle(v.n[:], U256Bits, carry)
}

func (u U256) Inc() U256 {
	v, _ := u.IncOverflow()
	return v
}

func (u U256) IncWith(p Policy) (U256, error) {
	v, overflow := u.IncOverflow()
	return resolve("u256", "inc", v, overflow, p, MaxU256, ErrOverflow)
}

func (u U256) DecOverflow() (v U256, underflow bool) {
	borrow := subLimb(v.n[:], u.n[:], 1)
	maskLimbs(v.n[:], U256Bits)
	return v, borrow != 0
}

func (u U256) Dec() U256 {
	v, _ := u.DecOverflow()
	return v
}

func (u U256) DecWith(p Policy) (U256, error) {
	v, underflow := u.DecOverflow()
	return resolve("u256", "dec", v, underflow, p, U256{}, ErrUnderflow)
}

// MulOverflow returns u * n truncated to 256 bits, and whether any set bits
// were truncated.
func (u U256) MulOverflow(n U256) (v U256, overflow bool) {
	var full [2 * u256Limbs]uint64
	mulLimbs(full[:], u.n[:], n.n[:])
	return v, truncateLimbs(v.n[:], full[:], U256Bits)
}

func (u U256) Mul(n U256) U256 {
	v, _ := u.MulOverflow(n)
	return v
}

func (u U256) MulWith(n U256, p Policy) (U256, error) {
	v, overflow := u.MulOverflow(n)
	return resolve("u256", "mul", v, overflow, p, MaxU256, ErrOverflow)
}

// QuoRem returns the quotient q and remainder r of u / by, such that
// u == q*by + r and r < by. It returns ErrDivisionByZero if by is zero.
func (u U256) QuoRem(by U256) (q, r U256, err error) {
	if by.IsZero() {
		return q, r, opError("u256", "quo", ErrDivisionByZero)
	}
	quoRemLimbs(q.n[:], r.n[:], u.n[:], by.n[:])
	return q, r, nil
}

func (u U256) Quo(by U256) (q U256, err error) {
	q, _, err = u.QuoRem(by)
	return q, err
}

func (u U256) Rem(by U256) (r U256, err error) {
	_, r, err = u.QuoRem(by)
	return r, err
}

// Lsh returns u << n. Shifting by U256Bits or more returns zero.
func (u U256) Lsh(n uint) (v U256) {
	if n >= U256Bits {
		return v
	}
	lshLimbs(v.n[:], u.n[:], n)
	maskLimbs(v.n[:], U256Bits)
	return v
}

// Rsh returns u >> n. Shifting by U256Bits or more returns zero.
func (u U256) Rsh(n uint) (v U256) {
	if n >= U256Bits {
		return v
	}
	rshLimbs(v.n[:], u.n[:], n)
	return v
}

// LshChecked returns ErrOverflow instead of zero if n >= U256Bits.
func (u U256) LshChecked(n uint) (U256, error) {
	if n >= U256Bits {
		return U256{}, opError("u256", "lsh", ErrOverflow)
	}
	return u.Lsh(n), nil
}

func (u U256) RshChecked(n uint) (U256, error) {
	if n >= U256Bits {
		return U256{}, opError("u256", "rsh", ErrOverflow)
	}
	return u.Rsh(n), nil
}

func (u U256) And(n U256) (v U256) {
	andLimbs(v.n[:], u.n[:], n.n[:])
	return v
}

func (u U256) AndNot(n U256) (v U256) {
	andNotLimbs(v.n[:], u.n[:], n.n[:])
	return v
}

func (u U256) Or(n U256) (v U256) {
	orLimbs(v.n[:], u.n[:], n.n[:])
	maskLimbs(v.n[:], U256Bits)
	return v
}

func (u U256) Xor(n U256) (v U256) {
	xorLimbs(v.n[:], u.n[:], n.n[:])
	maskLimbs(v.n[:], U256Bits)
	return v
}

func (u U256) Not() (v U256) {
	notLimbs(v.n[:], u.n[:])
	maskLimbs(v.n[:], U256Bits)
	return v
}

// Bytes returns the value in exactly U256Bytes bytes.
func (u U256) Bytes(order ByteOrder) []byte {
	b := make([]byte, U256Bytes)
	putLimbs(b, u.n[:], order)
	return b
}

// Hex returns U256Bytes*2 lowercase hex digits, most significant first,
// without a prefix.
func (u U256) Hex() string { return encodeHex(u.Bytes(BigEndian)) }

func (u U256) String() string {
	if u.IsUint64() {
		return strconv.FormatUint(u.n[0], 10)
	}
	return u.AsBigInt().String()
}

func (u U256) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	u.AsBigInt().Format(s, c)
}

func (u U256) IntoBigInt(b *big.Int) { limbsIntoBigInt(b, u.n[:]) }

func (u U256) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsU512 widens u to 512 bits.
func (u U256) AsU512() (v U512) {
	copy(v.n[:], u.n[:])
	return v
}

// AsU1024 widens u to 1024 bits.
func (u U256) AsU1024() (v U1024) {
	copy(v.n[:], u.n[:])
	return v
}

// MarshalText encodes u as lowercase hex; see Hex.
func (u U256) MarshalText() ([]byte, error) { return []byte(u.Hex()), nil }

func (u *U256) UnmarshalText(bts []byte) (err error) {
	v, err := U256FromHex(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.Hex() + `"`), nil
}

func (u *U256) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) == 0 || bts[0] != '"' {
		return fmt.Errorf("num: u256 invalid JSON %q", string(bts))
	}
	s, err := unquoteJSON("u256", bts)
	if err != nil {
		return err
	}
	return u.UnmarshalText(s)
}

// MarshalBinary encodes u as U256Bytes big-endian bytes.
func (u U256) MarshalBinary() ([]byte, error) { return u.Bytes(BigEndian), nil }

func (u *U256) UnmarshalBinary(data []byte) (err error) {
	v, err := U256FromBytes(data, BigEndian)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
