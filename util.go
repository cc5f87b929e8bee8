package num

type RandSource interface {
	Uint64() uint64
}

// Difference subtracts the smaller of a and b from the larger.
func Difference[T fixed[T]](a, b T) T {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger[T fixed[T]](a, b T) T {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func Smaller[T fixed[T]](a, b T) T {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// RandU256 returns a uniformly distributed U256. The same holds for the other
// Rand functions at their widths.
func RandU256(src RandSource) (out U256) {
	for i := range out.n {
		out.n[i] = src.Uint64()
	}
	return out
}

func RandU512(src RandSource) (out U512) {
	for i := range out.n {
		out.n[i] = src.Uint64()
	}
	return out
}

func RandU1024(src RandSource) (out U1024) {
	for i := range out.n {
		out.n[i] = src.Uint64()
	}
	return out
}

func RandU5(src RandSource) U5   { return U5{v: uint8(src.Uint64() & preciseMask(U5Bits))} }
func RandU6(src RandSource) U6   { return U6{v: uint8(src.Uint64() & preciseMask(U6Bits))} }
func RandU7(src RandSource) U7   { return U7{v: uint8(src.Uint64() & preciseMask(U7Bits))} }
func RandU24(src RandSource) U24 { return U24{v: uint32(src.Uint64() & preciseMask(U24Bits))} }
