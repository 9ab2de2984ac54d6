package bitio

import (
	"bytes"
	"fmt"
	"strings"
)

// Bits is an ordered sequence of bits, packed most significant bit first.
//
// The zero value is an empty sequence ready to use.
type Bits struct {
	buf []byte
	n   int
}

// ParseBits parses a string of '0' and '1' characters.
func ParseBits(s string) (Bits, error) {
	var b Bits
	b.grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			b.AppendBit(0)
		case '1':
			b.AppendBit(1)
		default:
			return Bits{}, fmt.Errorf("invalid bit character %q at offset %d", s[i], i)
		}
	}

	return b, nil
}

// MustParseBits is like ParseBits but panics on malformed input.
func MustParseBits(s string) Bits {
	b, err := ParseBits(s)
	if err != nil {
		panic(err)
	}

	return b
}

// Len returns the number of bits in the sequence.
func (b Bits) Len() int {
	return b.n
}

// At returns the bit at position i as 0 or 1.
// Panics if i is out of range.
func (b Bits) At(i int) uint8 {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("bitio: index %d out of range [0, %d)", i, b.n))
	}

	return (b.buf[i>>3] >> (7 - uint(i&7))) & 1
}

// AppendBit appends a single bit; any non-zero value is treated as 1.
func (b *Bits) AppendBit(bit uint8) {
	if b.n&7 == 0 {
		b.buf = append(b.buf, 0)
	}
	if bit != 0 {
		b.buf[b.n>>3] |= 0x80 >> uint(b.n&7)
	}
	b.n++
}

// Clone returns a copy of b that shares no memory with it.
func (b Bits) Clone() Bits {
	if b.n == 0 {
		return Bits{}
	}
	buf := make([]byte, len(b.buf), cap(b.buf))
	copy(buf, b.buf)

	return Bits{buf: buf, n: b.n}
}

// Equal reports whether b and o hold the same bits.
func (b Bits) Equal(o Bits) bool {
	return b.n == o.n && bytes.Equal(b.buf[:(b.n+7)>>3], o.buf[:(o.n+7)>>3])
}

// HasPrefix reports whether p is a prefix of b.
func (b Bits) HasPrefix(p Bits) bool {
	if p.n > b.n {
		return false
	}
	for i := 0; i < p.n; i++ {
		if b.At(i) != p.At(i) {
			return false
		}
	}

	return true
}

// String returns the sequence as '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		sb.WriteByte('0' + b.At(i))
	}

	return sb.String()
}

var _ fmt.Stringer = Bits{}

// grow makes room for n more bits, at least doubling the capacity when it
// has to reallocate.
func (b *Bits) grow(n int) {
	need := (b.n + n + 7) >> 3
	if need <= cap(b.buf) {
		return
	}
	buf := make([]byte, len(b.buf), max(need, 2*cap(b.buf)))
	copy(buf, b.buf)
	b.buf = buf
}
