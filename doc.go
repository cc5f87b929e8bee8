/*
Package num provides fixed-width unsigned integer types: the narrow U5, U6,
U7 and U24, and the wide U256, U512 and U1024.

All types are value types; all operations return new values. The narrow
types pack their value into a single machine word. The wide types are arrays
of 64-bit limbs, least significant first.

Simple example:

	u, _ := U256FromString("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	fmt.Println(u.Add(U256From64(1)))
	// Output: 0

Plain Add, Sub and Mul wrap modulo 2^width. The AddWith, SubWith and MulWith
variants take a Policy:

	Checked     return ErrOverflow or ErrUnderflow and a zero value
	Wrapping    truncate modulo 2^width
	Saturating  clamp to 0 or the maximum value

Division never wraps; Quo, Rem and QuoRem return ErrDivisionByZero for a zero
divisor.

U256 can be created from a variety of sources:

	U256From64(v uint64) U256
	U256FromLimbs(limbs [4]uint64) U256
	U256FromLimbSlice(limbs []uint64) (out U256, err error)
	U256FromString(s string) (out U256, err error)
	U256FromBigInt(v *big.Int) (out U256, accurate bool)
	U256FromBytes(b []byte, order ByteOrder) (out U256, err error)
	U256FromHex(s string) (out U256, err error)
	U256FromUint256(v *uint256.Int) U256

The other types follow the same pattern. Byte and hex decoding is strict:
the input must be exactly ceil(width/8) bytes, and a value with any bit set
above the width is rejected with ErrOverflowOnDecode.

Code that picks a width at runtime can use the Uint interface along with
Zero, Max, FromBigInt, FromBytes, FromHex, FromString, Compare, Add, Sub, Mul
and QuoRem. Mixing widths returns an error matching ErrWidthMismatch.

All types support the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler

The wide types marshal to hex text; the narrow types marshal to decimal.
*/
package num
