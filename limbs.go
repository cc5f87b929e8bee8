package num

import (
	"math/big"
	"math/bits"
)

// The wide types are arrays of 64-bit limbs, least significant limb first:
//
//	 -------------------------------------------------
//	|   n[len-1]   |  ...  |     n[1]     |   n[0]    |
//	| x 2^(64*(k)) |       | x 2^64       | x 1       |
//	 -------------------------------------------------
//
// The helpers in this file operate on slices of those arrays. Unless noted
// otherwise, all slices passed to a helper have the same length, and z may
// alias x or y.
const limbBits = 64

// maskLimbs clears every bit of z at or above width.
func maskLimbs(z []uint64, width uint) {
	full := width / limbBits
	if full >= uint(len(z)) {
		return
	}
	if rem := width % limbBits; rem != 0 {
		z[full] &= (1 << rem) - 1
		full++
	}
	for i := full; i < uint(len(z)); i++ {
		z[i] = 0
	}
}

// exceedsWidth reports whether any bit of x at or above width is set.
func exceedsWidth(x []uint64, width uint) bool {
	full := width / limbBits
	if full >= uint(len(x)) {
		return false
	}
	if rem := width % limbBits; rem != 0 {
		if x[full]>>rem != 0 {
			return true
		}
		full++
	}
	return !isZeroLimbs(x[full:])
}

// settle masks z to width and reports whether carry, or any bit it had to
// clear, was set.
func settle(z []uint64, width uint, carry uint64) (overflow bool) {
	overflow = carry != 0 || exceedsWidth(z, width)
	maskLimbs(z, width)
	return overflow
}

func isZeroLimbs(x []uint64) bool {
	for _, v := range x {
		if v != 0 {
			return false
		}
	}
	return true
}

func cmpLimbs(x, y []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] > y[i] {
			return 1
		} else if x[i] < y[i] {
			return -1
		}
	}
	return 0
}

func addLimbs(z, x, y []uint64) (carry uint64) {
	for i := range z {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return carry
}

func subLimbs(z, x, y []uint64) (borrow uint64) {
	for i := range z {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	return borrow
}

// addLimb adds a single word to x, rippling the carry upwards.
func addLimb(z, x []uint64, y uint64) (carry uint64) {
	carry = y
	for i := range z {
		z[i], carry = bits.Add64(x[i], carry, 0)
	}
	return carry
}

func subLimb(z, x []uint64, y uint64) (borrow uint64) {
	borrow = y
	for i := range z {
		z[i], borrow = bits.Sub64(x[i], borrow, 0)
	}
	return borrow
}

// mulLimbs writes the full product of x and y into z, which must hold
// len(x)+len(y) limbs and must not alias either operand.
func mulLimbs(z, x, y []uint64) {
	for i := range z {
		z[i] = 0
	}
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j, yj := range y {
			// xi*yj + z[i+j] + carry never exceeds 128 bits.
			hi, lo := bits.Mul64(xi, yj)
			var c uint64
			lo, c = bits.Add64(lo, z[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			z[i+j] = lo
			carry = hi
		}
		z[i+len(y)] = carry
	}
}

// truncateLimbs copies the low len(z) limbs of a full-width product into z,
// masks z to width and reports whether anything was discarded.
func truncateLimbs(z, full []uint64, width uint) (overflow bool) {
	overflow = !isZeroLimbs(full[len(z):])
	copy(z, full)
	return settle(z, width, 0) || overflow
}

// lshLimbs sets z = x << s. Bits shifted past the top limb are discarded; the
// caller is responsible for masking to the width.
func lshLimbs(z, x []uint64, s uint) {
	n := len(z)
	ws, bs := int(s/limbBits), s%limbBits
	if ws >= n {
		for i := range z {
			z[i] = 0
		}
		return
	}
	for i := n - 1; i >= ws; i-- {
		v := x[i-ws] << bs
		if bs != 0 && i-ws > 0 {
			v |= x[i-ws-1] >> (limbBits - bs)
		}
		z[i] = v
	}
	for i := 0; i < ws; i++ {
		z[i] = 0
	}
}

func rshLimbs(z, x []uint64, s uint) {
	n := len(z)
	ws, bs := int(s/limbBits), s%limbBits
	if ws >= n {
		for i := range z {
			z[i] = 0
		}
		return
	}
	for i := 0; i < n-ws; i++ {
		v := x[i+ws] >> bs
		if bs != 0 && i+ws+1 < n {
			v |= x[i+ws+1] << (limbBits - bs)
		}
		z[i] = v
	}
	for i := n - ws; i < n; i++ {
		z[i] = 0
	}
}

// lsh1Limbs shifts z left by one bit in place, shifting in the low bit of
// in, and returns the bit shifted out of the top.
func lsh1Limbs(z []uint64, in uint64) (out uint64) {
	for i := range z {
		next := z[i] >> (limbBits - 1)
		z[i] = z[i]<<1 | in
		in = next
	}
	return in
}

func andLimbs(z, x, y []uint64) {
	for i := range z {
		z[i] = x[i] & y[i]
	}
}

func andNotLimbs(z, x, y []uint64) {
	for i := range z {
		z[i] = x[i] &^ y[i]
	}
}

func orLimbs(z, x, y []uint64) {
	for i := range z {
		z[i] = x[i] | y[i]
	}
}

func xorLimbs(z, x, y []uint64) {
	for i := range z {
		z[i] = x[i] ^ y[i]
	}
}

func notLimbs(z, x []uint64) {
	for i := range z {
		z[i] = ^x[i]
	}
}

func bitLenLimbs(x []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*limbBits + bits.Len64(x[i])
		}
	}
	return 0
}

func trailingZerosLimbs(x []uint64) uint {
	for i, v := range x {
		if v != 0 {
			return uint(i*limbBits + bits.TrailingZeros64(v))
		}
	}
	return uint(len(x) * limbBits)
}

func bitLimbs(x []uint64, i uint) uint {
	if i >= uint(len(x)*limbBits) {
		return 0
	}
	return uint(x[i/limbBits]>>(i%limbBits)) & 1
}

func limbsIntoBigInt(b *big.Int, x []uint64) {
	if bits.UintSize == 64 {
		words := b.Bits()[:0]
		for _, v := range x {
			words = append(words, big.Word(v))
		}
		b.SetBits(words)
		return
	}
	buf := make([]byte, len(x)*8)
	putLimbs(buf, x, BigEndian)
	b.SetBytes(buf)
}

// limbsFromBigInt fills z from v. It reports false, leaving z untouched, if v
// is negative or needs more than width bits.
func limbsFromBigInt(z []uint64, v *big.Int, width uint) (accurate bool) {
	if v == nil || v.Sign() < 0 || uint(v.BitLen()) > width {
		return false
	}
	buf := make([]byte, len(z)*8)
	v.FillBytes(buf)
	limbsFromBytes(z, buf, BigEndian)
	return true
}
