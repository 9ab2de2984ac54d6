package bitio

import (
	"fmt"

	"github.com/arloliu/fano/errs"
)

// ByteLen returns the number of bytes needed to hold bitCount bits.
func ByteLen(bitCount int) int {
	return (bitCount + 7) >> 3
}

// Padding returns the number of zero bits (0-7) that fill the last byte of
// a packed sequence of bitCount bits.
func Padding(bitCount int) int {
	return (8 - bitCount&7) & 7
}

// Pack returns b packed into bytes, most significant bit first, with the
// final byte zero padded, along with the exact bit count.
//
// The returned slice is newly allocated and owned by the caller.
func Pack(b Bits) ([]byte, int) {
	if b.n == 0 {
		return nil, 0
	}
	data := make([]byte, ByteLen(b.n))
	copy(data, b.buf)

	return data, b.n
}

// Unpack reverses Pack. It fails with errs.ErrFormat when bitCount does not
// correspond to len(data) bytes. Padding bits in the last byte are ignored.
func Unpack(data []byte, bitCount int) (Bits, error) {
	if bitCount < 0 || ByteLen(bitCount) != len(data) {
		return Bits{}, fmt.Errorf("%w: %d bits do not fit %d bytes", errs.ErrFormat, bitCount, len(data))
	}
	if bitCount == 0 {
		return Bits{}, nil
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	if pad := Padding(bitCount); pad != 0 {
		buf[len(buf)-1] &^= byte(1<<uint(pad)) - 1
	}

	return Bits{buf: buf, n: bitCount}, nil
}

// PackWithPadding packs b behind a one-byte padding marker, making the
// result self-describing. An empty sequence packs to an empty slice.
func PackWithPadding(b Bits) []byte {
	if b.n == 0 {
		return nil
	}
	data := make([]byte, 1+ByteLen(b.n))
	data[0] = byte(Padding(b.n))
	copy(data[1:], b.buf)

	return data
}

// UnpackWithPadding reverses PackWithPadding.
func UnpackWithPadding(data []byte) (Bits, error) {
	if len(data) == 0 {
		return Bits{}, nil
	}

	pad := int(data[0])
	if pad > 7 {
		return Bits{}, fmt.Errorf("%w: padding marker %d out of range", errs.ErrFormat, pad)
	}
	if len(data) == 1 {
		return Bits{}, fmt.Errorf("%w: padding marker without data", errs.ErrFormat)
	}

	return Unpack(data[1:], (len(data)-1)*8-pad)
}
