package num

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

type fuzzOp string
type fuzzType string

// This is the equivalent of passing -num.fuzziter=10000 to 'go test':
const fuzzDefaultIterations = 10000

// These ops are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-num.fuzzop=add -num.fuzzop=sub', or you can
// use the short form '-num.fuzzop=add,sub,mul'.
//
// If you add a new op, search for the string 'NEWOP' in this file for all the
// places you need to update.
const (
	fuzzAdd              fuzzOp = "add"
	fuzzAddWith          fuzzOp = "addwith"
	fuzzAnd              fuzzOp = "and"
	fuzzAndNot           fuzzOp = "andnot"
	fuzzBit              fuzzOp = "bit"
	fuzzBitLen           fuzzOp = "bitlen"
	fuzzBytes            fuzzOp = "bytes"
	fuzzCmp              fuzzOp = "cmp"
	fuzzDec              fuzzOp = "dec"
	fuzzEqual            fuzzOp = "equal"
	fuzzGreaterOrEqualTo fuzzOp = "gte"
	fuzzGreaterThan      fuzzOp = "gt"
	fuzzHex              fuzzOp = "hex"
	fuzzInc              fuzzOp = "inc"
	fuzzLessOrEqualTo    fuzzOp = "lte"
	fuzzLessThan         fuzzOp = "lt"
	fuzzLsh              fuzzOp = "lsh"
	fuzzMul              fuzzOp = "mul"
	fuzzMulWith          fuzzOp = "mulwith"
	fuzzNot              fuzzOp = "not"
	fuzzOr               fuzzOp = "or"
	fuzzQuo              fuzzOp = "quo"
	fuzzQuoRem           fuzzOp = "quorem"
	fuzzRem              fuzzOp = "rem"
	fuzzRsh              fuzzOp = "rsh"
	fuzzString           fuzzOp = "string"
	fuzzSub              fuzzOp = "sub"
	fuzzSubWith          fuzzOp = "subwith"
	fuzzXor              fuzzOp = "xor"
)

// These types are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-num.fuzztype=u5 -num.fuzztype=u256'
const (
	fuzzTypeU5    fuzzType = "u5"
	fuzzTypeU6    fuzzType = "u6"
	fuzzTypeU7    fuzzType = "u7"
	fuzzTypeU24   fuzzType = "u24"
	fuzzTypeU256  fuzzType = "u256"
	fuzzTypeU512  fuzzType = "u512"
	fuzzTypeU1024 fuzzType = "u1024"
)

var allFuzzTypes = []fuzzType{
	fuzzTypeU5, fuzzTypeU6, fuzzTypeU7, fuzzTypeU24,
	fuzzTypeU256, fuzzTypeU512, fuzzTypeU1024,
}

// allFuzzOps are active by default.
//
// NEWOP: Update this list if a NEW op is added otherwise it won't be
// enabled by default.
//
// Please keep this list alphabetised.
var allFuzzOps = []fuzzOp{
	fuzzAdd,
	fuzzAddWith,
	fuzzAnd,
	fuzzAndNot,
	fuzzBit,
	fuzzBitLen,
	fuzzBytes,
	fuzzCmp,
	fuzzDec,
	fuzzEqual,
	fuzzGreaterOrEqualTo,
	fuzzGreaterThan,
	fuzzHex,
	fuzzInc,
	fuzzLessOrEqualTo,
	fuzzLessThan,
	fuzzLsh,
	fuzzMul,
	fuzzMulWith,
	fuzzNot,
	fuzzOr,
	fuzzQuo,
	fuzzQuoRem,
	fuzzRem,
	fuzzRsh,
	fuzzString,
	fuzzSub,
	fuzzSubWith,
	fuzzXor,
}

// NEWOP: update this interface if a new op is added.
type fuzzOps interface {
	Name() string // Not an op

	Add() error
	AddWith() error
	And() error
	AndNot() error
	Bit() error
	BitLen() error
	Bytes() error
	Cmp() error
	Dec() error
	Equal() error
	GreaterOrEqualTo() error
	GreaterThan() error
	Hex() error
	Inc() error
	LessOrEqualTo() error
	LessThan() error
	Lsh() error
	Mul() error
	MulWith() error
	Not() error
	Or() error
	Quo() error
	QuoRem() error
	Rem() error
	Rsh() error
	String() error
	Sub() error
	SubWith() error
	Xor() error
}

// classic rando!
type rando struct {
	operands []*big.Int
	rng      *rand.Rand
}

func (r *rando) Operands() []*big.Int { return r.operands }

func (r *rando) Clear() {
	for i := range r.operands {
		r.operands[i] = nil
	}
	r.operands = r.operands[:0]
}

func (r *rando) Intn(n int) int {
	v := int(r.rng.Intn(n))
	r.operands = append(r.operands, new(big.Int).SetInt64(int64(v)))
	return v
}

func (r *rando) Uintn(n int) uint {
	v := uint(r.rng.Intn(n))
	r.operands = append(r.operands, new(big.Int).SetUint64(uint64(v)))
	return v
}

func (r *rando) Policy() Policy { return Policy(r.Intn(3)) }

// samesies returns the number of arguments up to n - 1 that should be the same
// for this request. Only used for randos that are 'x2', 'x3', etc.
//
// We need this because the chance of even two random 256-bit operands being
// the same is unfathomable.
func (r *rando) samesies(n int) int {
	const samesiesChance = 0.03
	if r.rng.Float64() < samesiesChance {
		return r.rng.Intn(n)
	}
	return 0
}

func (r *rando) BigNx2(width uint) (b1, b2 *big.Int) {
	b1 = r.BigN(width)
	if r.samesies(2) > 0 {
		b2 = new(big.Int).Set(b1)
		r.operands = append(r.operands, b2)
	} else {
		b2 = r.BigN(width)
	}
	return b1, b2
}

// BigN returns a random value of at most width bits. The bit length is chosen
// first so that small values turn up as often as large ones.
func (r *rando) BigN(width uint) *big.Int {
	v := randomBigN(r.rng, width)
	r.operands = append(r.operands, v)
	return v
}

func checkEqualInt(u int, b int) error {
	if u != b {
		return fmt.Errorf("fixed(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqualBool(u bool, b bool) error {
	if u != b {
		return fmt.Errorf("fixed(%v) != big(%v)", u, b)
	}
	return nil
}

var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true}

func checkEqualUint(u Uint, b *big.Int) error {
	if u.String() != b.String() {
		return fmt.Errorf("u%d(%s) != big(%s)\n%s", u.Bits(), u.String(), b.String(), dumper.Sdump(u))
	}
	return nil
}

func checkEqualString(u fmt.Stringer, b fmt.Stringer) error {
	if u.String() != b.String() {
		return fmt.Errorf("fixed(%s) != big(%s)", u.String(), b.String())
	}
	return nil
}

// checkPolicy compares the result of an operation performed under policy p
// against rb, the unbounded result. sat is the value Saturating clamps to,
// and sentinel the error Checked reports.
func checkPolicy(u Uint, err error, rb *big.Int, p Policy, sat *big.Int, sentinel error) error {
	wrap := wrapBig[u.Bits()]
	if rb.Sign() >= 0 && rb.Cmp(wrap) < 0 {
		if err != nil {
			return fmt.Errorf("unexpected error %v", err)
		}
		return checkEqualUint(u, rb)
	}

	switch p {
	case Wrapping:
		if err != nil {
			return fmt.Errorf("unexpected error %v", err)
		}
		return checkEqualUint(u, new(big.Int).Mod(rb, wrap))
	case Saturating:
		if err != nil {
			return fmt.Errorf("unexpected error %v", err)
		}
		return checkEqualUint(u, sat)
	default:
		if !errors.Is(err, sentinel) {
			return fmt.Errorf("expected %v, found %v", sentinel, err)
		}
		return checkEqualUint(u, big0)
	}
}

func TestFuzz(t *testing.T) {
	// fuzzOpsActive comes from the -num.fuzzop flag, in TestMain:
	var runFuzzOps = fuzzOpsActive

	// fuzzTypesActive comes from the -num.fuzztype flag, in TestMain:
	var runFuzzTypes = fuzzTypesActive

	var source = &rando{rng: globalRNG} // Classic rando!
	var totalFailures int

	var fuzzTypes []fuzzOps

	for _, fuzzType := range runFuzzTypes {
		switch fuzzType {
		case fuzzTypeU5:
			fuzzTypes = append(fuzzTypes, &fuzzFixed[U5]{source, U5Bits, U5FromBigInt, U5FromBytes, U5FromHex})
		case fuzzTypeU6:
			fuzzTypes = append(fuzzTypes, &fuzzFixed[U6]{source, U6Bits, U6FromBigInt, U6FromBytes, U6FromHex})
		case fuzzTypeU7:
			fuzzTypes = append(fuzzTypes, &fuzzFixed[U7]{source, U7Bits, U7FromBigInt, U7FromBytes, U7FromHex})
		case fuzzTypeU24:
			fuzzTypes = append(fuzzTypes, &fuzzFixed[U24]{source, U24Bits, U24FromBigInt, U24FromBytes, U24FromHex})
		case fuzzTypeU256:
			fuzzTypes = append(fuzzTypes, &fuzzFixed[U256]{source, U256Bits, U256FromBigInt, U256FromBytes, U256FromHex})
		case fuzzTypeU512:
			fuzzTypes = append(fuzzTypes, &fuzzFixed[U512]{source, U512Bits, U512FromBigInt, U512FromBytes, U512FromHex})
		case fuzzTypeU1024:
			fuzzTypes = append(fuzzTypes, &fuzzFixed[U1024]{source, U1024Bits, U1024FromBigInt, U1024FromBytes, U1024FromHex})
		default:
			panic("unknown fuzz type")
		}
	}

	for _, fuzzImpl := range fuzzTypes {
		var failures = make([]int, len(runFuzzOps))

		for opIdx, op := range runFuzzOps {
			for i := 0; i < fuzzIterations; i++ {
				source.Clear()

				var err error

				// NEWOP: add a new branch here in alphabetical order if a new
				// op is added.
				switch op {
				case fuzzAdd:
					err = fuzzImpl.Add()
				case fuzzAddWith:
					err = fuzzImpl.AddWith()
				case fuzzAnd:
					err = fuzzImpl.And()
				case fuzzAndNot:
					err = fuzzImpl.AndNot()
				case fuzzBit:
					err = fuzzImpl.Bit()
				case fuzzBitLen:
					err = fuzzImpl.BitLen()
				case fuzzBytes:
					err = fuzzImpl.Bytes()
				case fuzzCmp:
					err = fuzzImpl.Cmp()
				case fuzzDec:
					err = fuzzImpl.Dec()
				case fuzzEqual:
					err = fuzzImpl.Equal()
				case fuzzGreaterOrEqualTo:
					err = fuzzImpl.GreaterOrEqualTo()
				case fuzzGreaterThan:
					err = fuzzImpl.GreaterThan()
				case fuzzHex:
					err = fuzzImpl.Hex()
				case fuzzInc:
					err = fuzzImpl.Inc()
				case fuzzLessOrEqualTo:
					err = fuzzImpl.LessOrEqualTo()
				case fuzzLessThan:
					err = fuzzImpl.LessThan()
				case fuzzLsh:
					err = fuzzImpl.Lsh()
				case fuzzMul:
					err = fuzzImpl.Mul()
				case fuzzMulWith:
					err = fuzzImpl.MulWith()
				case fuzzNot:
					err = fuzzImpl.Not()
				case fuzzOr:
					err = fuzzImpl.Or()
				case fuzzQuo:
					err = fuzzImpl.Quo()
				case fuzzQuoRem:
					err = fuzzImpl.QuoRem()
				case fuzzRem:
					err = fuzzImpl.Rem()
				case fuzzRsh:
					err = fuzzImpl.Rsh()
				case fuzzString:
					err = fuzzImpl.String()
				case fuzzSub:
					err = fuzzImpl.Sub()
				case fuzzSubWith:
					err = fuzzImpl.SubWith()
				case fuzzXor:
					err = fuzzImpl.Xor()
				default:
					panic(fmt.Errorf("unsupported op %q", op))
				}

				if err != nil {
					failures[opIdx]++
					t.Logf("%s %s: %s\n", fuzzImpl.Name(), op.Print(source.Operands()...), err)
				}
			}
		}

		for opIdx, cnt := range failures {
			if cnt > 0 {
				totalFailures += cnt
				t.Logf("impl %s, op %s: %d/%d failed", fuzzImpl.Name(), string(runFuzzOps[opIdx]), cnt, fuzzIterations)
			}
		}
	}

	if totalFailures > 0 {
		t.Fail()
	}
}

func (op fuzzOp) Print(operands ...*big.Int) string {
	// NEWOP: please add a human-readale format for your op here; this is used
	// for reporting errors and should show the operation, i.e. "2 + 2".
	//
	// It should be safe to assume the appropriate number of operands are set
	// in 'operands'; if not, it's a bug to be fixed elsewhere.
	switch op {
	case fuzzBitLen,
		fuzzString:
		s := strings.TrimRight(op.String(), "()")
		return fmt.Sprintf("%s(%d)", s, operands[0])

	case fuzzBytes:
		return fmt.Sprintf("bytes(%d, order=%d)", operands[0], operands[1])

	case fuzzHex:
		return fmt.Sprintf("hex(%x)", operands[0])

	case fuzzBit:
		return fmt.Sprintf("(%b>>%d)&1", operands[0], operands[1])

	case fuzzInc, fuzzDec:
		return fmt.Sprintf("%d%s", operands[0], op.String())

	case fuzzNot:
		return fmt.Sprintf("%s%d", op.String(), operands[0])

	case fuzzAddWith, fuzzSubWith, fuzzMulWith:
		return fmt.Sprintf("%d %s %d (%s)", operands[0], op.String(), operands[1], Policy(operands[2].Int64()))

	case fuzzAdd,
		fuzzAnd,
		fuzzAndNot,
		fuzzLessOrEqualTo,
		fuzzLessThan,
		fuzzLsh,
		fuzzMul,
		fuzzOr,
		fuzzQuo,
		fuzzQuoRem,
		fuzzRem,
		fuzzRsh,
		fuzzXor,
		fuzzCmp,
		fuzzEqual,
		fuzzGreaterOrEqualTo,
		fuzzGreaterThan,
		fuzzSub:

		// simple binary case:
		return fmt.Sprintf("%d %s %d", operands[0], op.String(), operands[1])

	default:
		return string(op)
	}
}

func (op fuzzOp) String() string {
	// NEWOP: please add a short string representation of this op, as if
	// the operands were in a sum (if that's possible)
	switch op {
	case fuzzAdd, fuzzAddWith:
		return "+"
	case fuzzAnd:
		return "&"
	case fuzzAndNot:
		return "&^"
	case fuzzBit:
		return "bit()"
	case fuzzBitLen:
		return "bitlen()"
	case fuzzBytes:
		return "bytes()"
	case fuzzCmp:
		return "<=>"
	case fuzzDec:
		return "--"
	case fuzzEqual:
		return "=="
	case fuzzGreaterThan:
		return ">"
	case fuzzGreaterOrEqualTo:
		return ">="
	case fuzzHex:
		return "hex()"
	case fuzzInc:
		return "++"
	case fuzzLessThan:
		return "<"
	case fuzzLessOrEqualTo:
		return "<="
	case fuzzLsh:
		return "<<"
	case fuzzMul, fuzzMulWith:
		return "*"
	case fuzzNot:
		return "^"
	case fuzzOr:
		return "|"
	case fuzzQuo:
		return "/"
	case fuzzQuoRem:
		return "/%"
	case fuzzRem:
		return "%"
	case fuzzRsh:
		return ">>"
	case fuzzString:
		return "string()"
	case fuzzSub, fuzzSubWith:
		return "-"
	case fuzzXor:
		return "^"
	default:
		return string(op)
	}
}

// fuzzable is the full method set exercised by the fuzzer.
type fuzzable[T any] interface {
	fixed[T]
	Add(n T) T
	Mul(n T) T
	Inc() T
	Dec() T
	Quo(by T) (T, error)
	Rem(by T) (T, error)
	And(n T) T
	AndNot(n T) T
	Or(n T) T
	Xor(n T) T
	Not() T
	Lsh(n uint) T
	Rsh(n uint) T
	Bit(i uint) uint
	Equal(n T) bool
	GreaterThan(n T) bool
	GreaterOrEqualTo(n T) bool
	LessThan(n T) bool
	LessOrEqualTo(n T) bool
}

type fuzzFixed[T fuzzable[T]] struct {
	source    *rando
	width     uint
	fromBig   func(*big.Int) (T, bool)
	fromBytes func([]byte, ByteOrder) (T, error)
	fromHex   func(string) (T, error)
}

func (f *fuzzFixed[T]) Name() string { return fmt.Sprintf("u%d", f.width) }

func (f *fuzzFixed[T]) acc(b *big.Int) T {
	u, acc := f.fromBig(b)
	if !acc {
		panic(fmt.Errorf("num: inaccurate conversion to u%d in fuzz tester for %s", f.width, b))
	}
	return u
}

func (f *fuzzFixed[T]) args1() (*big.Int, T) {
	b1 := f.source.BigN(f.width)
	return b1, f.acc(b1)
}

func (f *fuzzFixed[T]) args2() (b1, b2 *big.Int, u1, u2 T) {
	b1, b2 = f.source.BigNx2(f.width)
	return b1, b2, f.acc(b1), f.acc(b2)
}

func (f *fuzzFixed[T]) wrap(rb *big.Int) *big.Int {
	return new(big.Int).Mod(rb, wrapBig[f.width]) // simulate over/underflow
}

func (f *fuzzFixed[T]) Inc() error {
	b1, u1 := f.args1()
	rb := f.wrap(new(big.Int).Add(b1, big1))
	return checkEqualUint(u1.Inc(), rb)
}

func (f *fuzzFixed[T]) Dec() error {
	b1, u1 := f.args1()
	rb := f.wrap(new(big.Int).Sub(b1, big1))
	return checkEqualUint(u1.Dec(), rb)
}

func (f *fuzzFixed[T]) Add() error {
	b1, b2, u1, u2 := f.args2()
	rb := f.wrap(new(big.Int).Add(b1, b2))
	return checkEqualUint(u1.Add(u2), rb)
}

func (f *fuzzFixed[T]) AddWith() error {
	b1, b2, u1, u2 := f.args2()
	p := f.source.Policy()
	ru, err := u1.AddWith(u2, p)
	return checkPolicy(ru, err, new(big.Int).Add(b1, b2), p, maxBig[f.width], ErrOverflow)
}

func (f *fuzzFixed[T]) Sub() error {
	b1, b2, u1, u2 := f.args2()
	rb := f.wrap(new(big.Int).Sub(b1, b2))
	return checkEqualUint(u1.Sub(u2), rb)
}

func (f *fuzzFixed[T]) SubWith() error {
	b1, b2, u1, u2 := f.args2()
	p := f.source.Policy()
	ru, err := u1.SubWith(u2, p)
	return checkPolicy(ru, err, new(big.Int).Sub(b1, b2), p, big0, ErrUnderflow)
}

func (f *fuzzFixed[T]) Mul() error {
	b1, b2, u1, u2 := f.args2()
	rb := f.wrap(new(big.Int).Mul(b1, b2))
	return checkEqualUint(u1.Mul(u2), rb)
}

func (f *fuzzFixed[T]) MulWith() error {
	b1, b2, u1, u2 := f.args2()
	p := f.source.Policy()
	ru, err := u1.MulWith(u2, p)
	return checkPolicy(ru, err, new(big.Int).Mul(b1, b2), p, maxBig[f.width], ErrOverflow)
}

func (f *fuzzFixed[T]) Quo() error {
	b1, b2, u1, u2 := f.args2()
	ru, err := u1.Quo(u2)
	if b2.Sign() == 0 {
		if !errors.Is(err, ErrDivisionByZero) {
			return fmt.Errorf("expected division by zero, found %v", err)
		}
		return nil
	}
	if err != nil {
		return err
	}
	return checkEqualUint(ru, new(big.Int).Quo(b1, b2))
}

func (f *fuzzFixed[T]) Rem() error {
	b1, b2, u1, u2 := f.args2()
	ru, err := u1.Rem(u2)
	if b2.Sign() == 0 {
		if !errors.Is(err, ErrDivisionByZero) {
			return fmt.Errorf("expected division by zero, found %v", err)
		}
		return nil
	}
	if err != nil {
		return err
	}
	return checkEqualUint(ru, new(big.Int).Rem(b1, b2))
}

func (f *fuzzFixed[T]) QuoRem() error {
	b1, b2, u1, u2 := f.args2()
	if b2.Sign() == 0 {
		return nil // Just skip this iteration, Quo and Rem cover it.
	}

	rbq, rbr := new(big.Int).QuoRem(b1, b2, new(big.Int))
	ruq, rur, err := u1.QuoRem(u2)
	if err != nil {
		return err
	}
	if err := checkEqualUint(ruq, rbq); err != nil {
		return err
	}
	if err := checkEqualUint(rur, rbr); err != nil {
		return err
	}

	// a == q*b + r, with r < b:
	if !rur.LessThan(u2) {
		return fmt.Errorf("remainder %s not < divisor %s", rur, u2)
	}
	if back := ruq.Mul(u2).Add(rur); !back.Equal(u1) {
		return fmt.Errorf("q*b + r = %s, expected %s", back, u1)
	}
	return nil
}

func (f *fuzzFixed[T]) Cmp() error {
	b1, b2, u1, u2 := f.args2()
	return checkEqualInt(b1.Cmp(b2), u1.Cmp(u2))
}

func (f *fuzzFixed[T]) Equal() error {
	b1, b2, u1, u2 := f.args2()
	return checkEqualBool(b1.Cmp(b2) == 0, u1.Equal(u2))
}

func (f *fuzzFixed[T]) GreaterThan() error {
	b1, b2, u1, u2 := f.args2()
	return checkEqualBool(b1.Cmp(b2) > 0, u1.GreaterThan(u2))
}

func (f *fuzzFixed[T]) GreaterOrEqualTo() error {
	b1, b2, u1, u2 := f.args2()
	return checkEqualBool(b1.Cmp(b2) >= 0, u1.GreaterOrEqualTo(u2))
}

func (f *fuzzFixed[T]) LessThan() error {
	b1, b2, u1, u2 := f.args2()
	return checkEqualBool(b1.Cmp(b2) < 0, u1.LessThan(u2))
}

func (f *fuzzFixed[T]) LessOrEqualTo() error {
	b1, b2, u1, u2 := f.args2()
	return checkEqualBool(b1.Cmp(b2) <= 0, u1.LessOrEqualTo(u2))
}

func (f *fuzzFixed[T]) And() error {
	b1, b2, u1, u2 := f.args2()
	return checkEqualUint(u1.And(u2), new(big.Int).And(b1, b2))
}

func (f *fuzzFixed[T]) AndNot() error {
	b1, b2, u1, u2 := f.args2()
	return checkEqualUint(u1.AndNot(u2), new(big.Int).AndNot(b1, b2))
}

func (f *fuzzFixed[T]) Or() error {
	b1, b2, u1, u2 := f.args2()
	return checkEqualUint(u1.Or(u2), new(big.Int).Or(b1, b2))
}

func (f *fuzzFixed[T]) Xor() error {
	b1, b2, u1, u2 := f.args2()
	return checkEqualUint(u1.Xor(u2), new(big.Int).Xor(b1, b2))
}

func (f *fuzzFixed[T]) Not() error {
	b1, u1 := f.args1()
	return checkEqualUint(u1.Not(), new(big.Int).Sub(maxBig[f.width], b1))
}

func (f *fuzzFixed[T]) Lsh() error {
	b1, u1 := f.args1()
	by := f.source.Uintn(int(f.width) + 8)
	rb := new(big.Int)
	if by < f.width {
		rb = f.wrap(rb.Lsh(b1, by))
	}
	return checkEqualUint(u1.Lsh(by), rb)
}

func (f *fuzzFixed[T]) Rsh() error {
	b1, u1 := f.args1()
	by := f.source.Uintn(int(f.width) + 8)
	rb := new(big.Int).Rsh(b1, by)
	return checkEqualUint(u1.Rsh(by), rb)
}

func (f *fuzzFixed[T]) Bit() error {
	b1, u1 := f.args1()
	bit := f.source.Uintn(int(f.width))
	return checkEqualInt(int(b1.Bit(int(bit))), int(u1.Bit(bit)))
}

func (f *fuzzFixed[T]) BitLen() error {
	b1, u1 := f.args1()
	return checkEqualInt(b1.BitLen(), u1.BitLen())
}

func (f *fuzzFixed[T]) String() error {
	b1, u1 := f.args1()
	return checkEqualString(u1, b1)
}

func (f *fuzzFixed[T]) Bytes() error {
	b1, u1 := f.args1()
	order := ByteOrder(f.source.Intn(2))

	expected := b1.FillBytes(make([]byte, byteLen(f.width)))
	if order == LittleEndian {
		for i, j := 0, len(expected)-1; i < j; i, j = i+1, j-1 {
			expected[i], expected[j] = expected[j], expected[i]
		}
	}
	found := u1.Bytes(order)
	if !bytes.Equal(expected, found) {
		return fmt.Errorf("bytes %x != big %x", found, expected)
	}

	back, err := f.fromBytes(found, order)
	if err != nil {
		return err
	}
	return checkEqualUint(back, b1)
}

func (f *fuzzFixed[T]) Hex() error {
	b1, u1 := f.args1()
	expected := fmt.Sprintf("%0*x", 2*byteLen(f.width), b1)
	if found := u1.Hex(); found != expected {
		return fmt.Errorf("hex %s != big %s", found, expected)
	}

	back, err := f.fromHex(strings.ToUpper(expected))
	if err != nil {
		return err
	}
	return checkEqualUint(back, b1)
}

// NEWOP: func (f *fuzzFixed[T]) ...() error {}
