package num

import "math/bits"

// quoRemLimbs sets q = u / by and r = u % by. by must not be zero. q and r
// must have the same length as u and must not alias u, by or each other.
func quoRemLimbs(q, r, u, by []uint64) {
	for i := range q {
		q[i], r[i] = 0, 0
	}

	if cmpLimbs(u, by) < 0 {
		copy(r, u) // it's 100% remainder
		return
	}

	byLen := bitLenLimbs(by)
	if byLen <= limbBits {
		r[0] = quoRemByLimb(q, u, by[0])
		return
	}

	if tz := trailingZerosLimbs(by); int(tz) == byLen-1 {
		// Power of two: the quotient is a shift and the remainder a mask.
		rshLimbs(q, u, tz)
		copy(r, u)
		maskLimbs(r, tz)
		return
	}

	quoRemBin(q, r, u, by)
}

// quoRemByLimb divides u by a single limb, writing the quotient to q and
// returning the remainder.
func quoRemByLimb(q, u []uint64, by uint64) (r uint64) {
	for i := len(u) - 1; i >= 0; i-- {
		// r < by on every iteration, so Div64 never panics.
		q[i], r = bits.Div64(r, u[i], by)
	}
	return r
}

// quoRemBin is schoolbook binary long division. Starting from the most
// significant set bit of u, the running remainder is shifted left by one, the
// next dividend bit is brought in, and by is subtracted whenever it fits.
func quoRemBin(q, r, u, by []uint64) {
	for i := bitLenLimbs(u) - 1; i >= 0; i-- {
		top := lsh1Limbs(r, uint64(bitLimbs(u, uint(i))))

		// If a bit fell off the top the true remainder is 2^w + r, which is
		// always >= by; the wrapping subtraction still yields the right value
		// because the result is < by.
		if top != 0 || cmpLimbs(r, by) >= 0 {
			subLimbs(r, r, by)
			q[i/limbBits] |= 1 << (uint(i) % limbBits)
		}
	}
}
