package num

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// putLimbs writes x into dst, which must hold exactly len(x)*8 bytes.
func putLimbs(dst []byte, x []uint64, order ByteOrder) {
	n := len(x)
	for i, v := range x {
		if order == LittleEndian {
			binary.LittleEndian.PutUint64(dst[i*8:], v)
		} else {
			binary.BigEndian.PutUint64(dst[(n-1-i)*8:], v)
		}
	}
}

func limbsFromBytes(z []uint64, src []byte, order ByteOrder) {
	n := len(z)
	for i := range z {
		if order == LittleEndian {
			z[i] = binary.LittleEndian.Uint64(src[i*8:])
		} else {
			z[i] = binary.BigEndian.Uint64(src[(n-1-i)*8:])
		}
	}
}

// decodeLimbs validates and decodes src into z. The width check catches
// encodings whose top bits are set even though the byte length is right.
func decodeLimbs(typ string, z []uint64, src []byte, order ByteOrder, width uint) error {
	if len(src) != len(z)*8 {
		return &LengthError{Type: typ, Expected: len(z) * 8, Actual: len(src)}
	}
	limbsFromBytes(z, src, order)
	if exceedsWidth(z, width) {
		for i := range z {
			z[i] = 0
		}
		return fmt.Errorf("num: %s decode: %w", typ, ErrOverflowOnDecode)
	}
	return nil
}

// byteLen is the size in bytes of the encoding of a width-bit value.
func byteLen(width uint) int { return int(width+7) / 8 }

// putWord writes the low len(dst) bytes of v into dst.
func putWord(dst []byte, v uint64, order ByteOrder) {
	n := len(dst)
	for i := 0; i < n; i++ {
		b := byte(v >> (8 * uint(i)))
		if order == LittleEndian {
			dst[i] = b
		} else {
			dst[n-1-i] = b
		}
	}
}

func wordFromBytes(src []byte, order ByteOrder) (v uint64) {
	n := len(src)
	for i := 0; i < n; i++ {
		var b byte
		if order == LittleEndian {
			b = src[i]
		} else {
			b = src[n-1-i]
		}
		v |= uint64(b) << (8 * uint(i))
	}
	return v
}

// encodeHex returns the lowercase hex form of the big-endian bytes in b.
func encodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// decodeHex decodes s, which may carry a 0x or 0X prefix, into exactly size
// big-endian bytes.
func decodeHex(typ string, s string, size int) ([]byte, error) {
	var prefix int
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		prefix = 2
	}
	digits := s[prefix:]

	b, err := hex.DecodeString(digits)
	if err != nil {
		var ib hex.InvalidByteError
		if errors.As(err, &ib) {
			return nil, &HexDigitError{Type: typ, Offset: prefix + strings.IndexByte(digits, byte(ib)), Char: byte(ib)}
		} else if errors.Is(err, hex.ErrLength) {
			return nil, fmt.Errorf("num: %s hex %q: %w", typ, s, ErrOddLength)
		}
		return nil, err
	}

	if len(b) != size {
		return nil, &LengthError{Type: typ, Expected: size * 2, Actual: len(digits)}
	}
	return b, nil
}

// unquoteJSON strips the quotes from a JSON string. Bare tokens are returned
// unchanged so numbers can be accepted too.
func unquoteJSON(typ string, bts []byte) ([]byte, error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return nil, fmt.Errorf("num: %s invalid JSON %q", typ, string(bts))
		}
		return bts[1 : ln-1], nil
	}
	return bts, nil
}
