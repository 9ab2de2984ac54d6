package bitio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"

	"github.com/arloliu/fano/internal/pool"
)

// Writer packs bits most significant bit first into a byte buffer, keeping
// the exact bit count so the padding of the last byte is known.
//
// Writes to the in-memory buffer cannot fail on their own; the first error
// reported by the underlying bit writer is kept and returned by Bits.
type Writer struct {
	buf *pool.ByteBuffer
	bw  *bitio.Writer
	n   int
	err error
}

// NewWriter returns a Writer with room for sizeHint bits.
func NewWriter(sizeHint int) *Writer {
	buf := pool.NewByteBuffer(ByteLen(max(sizeHint, 0)))

	return &Writer{buf: buf, bw: bitio.NewWriter(buf)}
}

// WriteBit appends one bit; any non-zero value is treated as 1.
func (w *Writer) WriteBit(bit uint8) {
	if w.err != nil {
		return
	}
	w.err = w.bw.WriteBool(bit != 0)
	w.n++
}

// WriteUint appends the n low-order bits of v, most significant first.
// Panics if n is not in [0, 64].
func (w *Writer) WriteUint(v uint64, n int) {
	if n < 0 || n > 64 {
		panic(fmt.Sprintf("bitio: invalid bit width %d", n))
	}
	if n == 0 || w.err != nil {
		return
	}
	if n < 64 {
		v &= 1<<uint(n) - 1
	}
	w.err = w.bw.WriteBits(v, uint8(n))
	w.n += n
}

// WriteCode appends a whole codeword.
func (w *Writer) WriteCode(code Bits) {
	full := code.n >> 3
	for _, b := range code.buf[:full] {
		w.WriteUint(uint64(b), 8)
	}
	if rem := code.n & 7; rem != 0 {
		w.WriteUint(uint64(code.buf[full]>>uint(8-rem)), rem)
	}
}

// Len returns the number of bits written so far.
func (w *Writer) Len() int {
	return w.n
}

// Bits flushes the pending bits, zero padding the last byte, and returns
// everything written. The writer must not be used afterwards.
func (w *Writer) Bits() (Bits, error) {
	if w.err != nil {
		return Bits{}, w.err
	}
	if err := w.bw.Close(); err != nil {
		return Bits{}, err
	}
	if w.n == 0 {
		return Bits{}, nil
	}

	assert.Assertf(w.buf.Len() == ByteLen(w.n), "bit writer flushed %d bytes for %d bits", w.buf.Len(), w.n)

	return Bits{buf: w.buf.Bytes(), n: w.n}, nil
}

// Reader reads bits sequentially from a Bits value.
type Reader struct {
	br  *bitio.Reader
	n   int
	pos int
}

// NewReader returns a Reader positioned at the first bit of b.
func NewReader(b Bits) *Reader {
	return &Reader{
		br: bitio.NewReader(bytes.NewReader(b.buf[:ByteLen(b.n)])),
		n:  b.n,
	}
}

// ReadBit returns the next bit, or io.EOF when the sequence is exhausted.
func (r *Reader) ReadBit() (uint8, error) {
	if r.pos >= r.n {
		return 0, io.EOF
	}

	set, err := r.br.ReadBool()
	if err != nil {
		return 0, err
	}
	r.pos++
	if set {
		return 1, nil
	}

	return 0, nil
}

// ReadUint reads n bits as an unsigned integer, most significant first.
// Fewer than n remaining bits yields io.ErrUnexpectedEOF without consuming them.
// Panics if n is not in [0, 64].
func (r *Reader) ReadUint(n int) (uint64, error) {
	if n < 0 || n > 64 {
		panic(fmt.Sprintf("bitio: invalid bit width %d", n))
	}
	if n > r.Remaining() {
		return 0, io.ErrUnexpectedEOF
	}
	if n == 0 {
		return 0, nil
	}

	v, err := r.br.ReadBits(uint8(n))
	if err != nil {
		return 0, err
	}
	r.pos += n

	return v, nil
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return r.n - r.pos
}
