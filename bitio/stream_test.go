package bitio

import (
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	w := NewWriter(16)
	w.WriteBit(1)
	w.WriteUint(0x5A, 8)
	w.WriteUint(0, 0)
	w.WriteCode(MustParseBits("110"))

	require.Equal(t, 12, w.Len())
	bits, err := w.Bits()
	require.NoError(t, err)
	require.Equal(t, "101011010110", bits.String())

	packed, n := Pack(bits)
	require.Equal(t, 12, n)
	require.Equal(t, []byte{0xAD, 0x60}, packed, "padding bits must be zero")
}

func TestWriter_Empty(t *testing.T) {
	bits, err := NewWriter(0).Bits()
	require.NoError(t, err)
	require.Equal(t, 0, bits.Len())
	require.True(t, bits.Equal(Bits{}))
}

func TestWriter_InvalidWidth(t *testing.T) {
	w := NewWriter(8)
	require.Panics(t, func() { w.WriteUint(1, 65) })
	require.Panics(t, func() { w.WriteUint(1, -1) })
}

func TestWriter_IgnoresHighBits(t *testing.T) {
	w := NewWriter(8)
	w.WriteUint(0x1F0, 4)
	w.WriteUint(0xFF, 3)
	w.WriteUint(^uint64(0), 1)

	bits, err := w.Bits()
	require.NoError(t, err)
	require.Equal(t, "00001111", bits.String())
}

func TestWriter_WriteCode(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		code   string
	}{
		{"empty code", "101", ""},
		{"aligned destination", "10110011", "111"},
		{"empty destination", "", "0110"},
		{"unaligned destination", "101", "1100110011"},
		{"long unaligned", "1", "1111000011110000111"},
		{"whole bytes", "0", "1111111100000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(0)
			w.WriteCode(MustParseBits(tt.prefix))
			w.WriteCode(MustParseBits(tt.code))

			bits, err := w.Bits()
			require.NoError(t, err)
			require.Equal(t, tt.prefix+tt.code, bits.String())
			require.True(t, bits.Equal(MustParseBits(tt.prefix+tt.code)))
		})
	}
}

func TestReader(t *testing.T) {
	r := NewReader(MustParseBits("101011010110"))

	bit, err := r.ReadBit()
	require.NoError(t, err)
	require.Equal(t, uint8(1), bit)

	v, err := r.ReadUint(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0x5A), v)
	require.Equal(t, 3, r.Remaining())

	_, err = r.ReadUint(4)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, 3, r.Remaining(), "short read must not consume bits")

	v, err = r.ReadUint(3)
	require.NoError(t, err)
	require.Equal(t, uint64(0b110), v)

	_, err = r.ReadBit()
	require.ErrorIs(t, err, io.EOF, "padding bits are not readable")
}

func TestReader_Empty(t *testing.T) {
	r := NewReader(Bits{})
	require.Equal(t, 0, r.Remaining())

	_, err := r.ReadBit()
	require.ErrorIs(t, err, io.EOF)

	v, err := r.ReadUint(0)
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)
}

func TestWriterReader_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	type field struct {
		v uint64
		n int
	}
	fields := make([]field, 500)
	w := NewWriter(0)
	for i := range fields {
		n := rng.Intn(65)
		v := rng.Uint64()
		if n < 64 {
			v &= 1<<uint(n) - 1
		}
		fields[i] = field{v, n}
		w.WriteUint(v, n)
	}

	bits, err := w.Bits()
	require.NoError(t, err)

	r := NewReader(bits)
	for i, f := range fields {
		got, err := r.ReadUint(f.n)
		require.NoError(t, err, "field %d", i)
		require.Equal(t, f.v, got, "field %d", i)
	}
	require.Equal(t, 0, r.Remaining())
}
