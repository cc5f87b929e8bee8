package num

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchIntResult    int
	BenchStringResult string
	BenchU5Result     U5
	BenchU256Result   U256
	BenchU1024Result  U1024
	BenchUint64Result uint64
	BenchUintResult   Uint

	BenchUint641, BenchUint642 uint64 = 12093749018, 18927348917

	BenchU2561 = u256s("0x 1234567890abcdef 1234567890abcdef 1234567890abcdef 1234567890abcdef")
	BenchU2562 = u256s("0x fedcba0987654321 fedcba0987654321")
)

func BenchmarkUint64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 * BenchUint642
	}
}

func BenchmarkUint64Div(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 / BenchUint642
	}
}

func BenchmarkU5Add(b *testing.B) {
	x, y := MustU5(17), MustU5(19)
	for i := 0; i < b.N; i++ {
		BenchU5Result = x.Add(y)
	}
}

func BenchmarkU256Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result = BenchU2561.Add(BenchU2562)
	}
}

func BenchmarkU256Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result = BenchU2561.Mul(BenchU2562)
	}
}

func BenchmarkU256QuoRem(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result, _, _ = BenchU2561.QuoRem(BenchU2562)
	}
}

func BenchmarkU256QuoRemLimb(b *testing.B) {
	by := U256From64(121525124)
	for i := 0; i < b.N; i++ {
		BenchU256Result, _, _ = BenchU2561.QuoRem(by)
	}
}

func BenchmarkU256Cmp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchIntResult = BenchU2561.Cmp(BenchU2562)
	}
}

func BenchmarkU256Hex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchStringResult = BenchU2561.Hex()
	}
}

func BenchmarkU256String(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchStringResult = BenchU2561.String()
	}
}

func BenchmarkU1024Mul(b *testing.B) {
	x, y := MaxU1024.Rsh(1), MaxU1024.Rsh(600)
	for i := 0; i < b.N; i++ {
		BenchU1024Result = x.Mul(y)
	}
}

func BenchmarkUintAdd(b *testing.B) {
	var x, y Uint = BenchU2561, BenchU2562
	for i := 0; i < b.N; i++ {
		BenchUintResult, _ = Add(x, y, Wrapping)
	}
}

func BenchmarkUint256Mul(b *testing.B) {
	x, y := BenchU2561.AsUint256(), BenchU2562.AsUint256()
	var z uint256.Int
	for i := 0; i < b.N; i++ {
		z.Mul(x, y)
	}
	BenchU256Result = U256FromUint256(&z)
}

func BenchmarkBigIntMul(b *testing.B) {
	x, y := BenchU2561.AsBigInt(), BenchU2562.AsBigInt()
	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Mul(x, y)
		BenchBigIntResult = &dest
	}
}

func BenchmarkBigIntDiv(b *testing.B) {
	u := BenchU2561.AsBigInt()
	by := new(big.Int).SetUint64(121525124)
	for i := 0; i < b.N; i++ {
		var z big.Int
		z.Div(u, by)
	}
}

func BenchmarkBigIntCmpEqual(b *testing.B) {
	v1, v2 := BenchU2561.AsBigInt(), BenchU2561.AsBigInt()
	for i := 0; i < b.N; i++ {
		BenchIntResult = v1.Cmp(v2)
	}
}

func BenchmarkU256Equal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchBoolResult = BenchU2561.Equal(BenchU2562)
	}
}
