package compress

import (
	"bytes"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fano/errs"
	"github.com/arloliu/fano/format"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"Zstd": NewZstdCompressor(),
		"S2":   NewS2Compressor(),
		"LZ4":  NewLZ4Compressor(),
	}
}

// generatePayload returns bytes that look like packed code bits: a short
// repeating phrase when compressible, a pseudo-random mix otherwise.
func generatePayload(size int, compressible bool) []byte {
	data := make([]byte, size)
	if compressible {
		pattern := []byte{0xA5, 0x3C, 0x0F, 0xF0, 0x99}
		for i := range data {
			data[i] = pattern[i%len(pattern)]
		}

		return data
	}
	for i := range data {
		data[i] = byte((i*31 + i*i*7 + i*i*i*3) % 256)
	}

	return data
}

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		name     string
		cType    format.CompressionType
		expected string
	}{
		{"none compression", format.CompressionNone, "None"},
		{"zstd compression", format.CompressionZstd, "Zstd"},
		{"s2 compression", format.CompressionS2, "S2"},
		{"lz4 compression", format.CompressionLZ4, "LZ4"},
		{"unknown compression", format.CompressionType(0xFF), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.cType.String())
		})
	}
}

func TestCreateCodec(t *testing.T) {
	t.Run("builtin types", func(t *testing.T) {
		for _, ct := range []format.CompressionType{
			format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
		} {
			codec, err := CreateCodec(ct)
			require.NoError(t, err, ct.String())
			require.NotNil(t, codec)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		codec, err := CreateCodec(format.CompressionType(0x0F))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
		require.Nil(t, codec)
	})
}

func TestCodecs_RoundTrip(t *testing.T) {
	sizes := []int{1, 7, 64, 4096, 65536}

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			for _, size := range sizes {
				for _, compressible := range []bool{true, false} {
					t.Run(fmt.Sprintf("%dB_compressible=%v", size, compressible), func(t *testing.T) {
						data := generatePayload(size, compressible)

						compressed, err := codec.Compress(data)
						require.NoError(t, err)

						decompressed, err := codec.Decompress(compressed, len(data))
						require.NoError(t, err)
						require.True(t, bytes.Equal(data, decompressed), "round trip mismatch")
					})
				}
			}
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			decompressed, err := codec.Decompress(nil, 0)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCodecs_ShrinkCompressibleData(t *testing.T) {
	data := generatePayload(64*1024, true)

	for name, codec := range getAllCodecs() {
		if name == "NoOp" {
			continue
		}
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(data)/4)
		})
	}
}

func TestZstdCompressor_CorruptedInput(t *testing.T) {
	garbage := []byte{0xFF, 0xFE, 0xFD, 0xFC, 0x00, 0x01, 0x02, 0x03}

	_, err := NewZstdCompressor().Decompress(garbage, 64)
	require.Error(t, err)
}

func TestCodecs_SizeMismatch(t *testing.T) {
	data := generatePayload(1000, true)

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			_, err = codec.Decompress(compressed, len(data)+1)
			require.ErrorIs(t, err, errs.ErrPayloadSize)

			_, err = codec.Decompress(compressed, len(data)-1)
			require.Error(t, err)

			_, err = codec.Decompress(nil, 8)
			require.ErrorIs(t, err, errs.ErrPayloadSize)

			_, err = codec.Decompress(compressed, 0)
			require.ErrorIs(t, err, errs.ErrPayloadSize)
		})
	}
}

func TestCodecs_UnreachableSize(t *testing.T) {
	for _, codec := range []Codec{NewZstdCompressor(), NewLZ4Compressor()} {
		// No 16-byte input expands to 1GiB with either algorithm.
		_, err := codec.Decompress(make([]byte, 16), 1<<30)
		require.ErrorIs(t, err, errs.ErrPayloadSize)
	}
}

func TestZstdCompressor_OversizedFrameDoesNotAllocate(t *testing.T) {
	codec := NewZstdCompressor()
	large := make([]byte, 64<<20)
	compressed, err := codec.Compress(large)
	require.NoError(t, err)
	require.Less(t, len(compressed), 1<<20)

	// Warm up the decoder pool so its own setup is not counted.
	small, err := codec.Compress([]byte{1, 2, 3})
	require.NoError(t, err)
	_, err = codec.Decompress(small, 3)
	require.NoError(t, err)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, err = codec.Decompress(compressed, 1)
	runtime.ReadMemStats(&after)

	require.Error(t, err)
	require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(16<<20),
		"decoding must stop at the expected size")
}

func TestLZ4Compressor_LargePayload(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates several hundred MiB")
	}

	codec := NewLZ4Compressor()
	data := make([]byte, 130<<20)
	data[len(data)-1] = 0x80

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(data)/100)

	decompressed, err := codec.Decompress(compressed, len(data))
	require.NoError(t, err)
	require.True(t, bytes.Equal(data, decompressed))
}

func TestNoOpCompressor_SharesInput(t *testing.T) {
	data := []byte("packed bits")
	codec := NewNoOpCompressor()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.True(t, &data[0] == &compressed[0], "NoOp should not copy")

	decompressed, err := codec.Decompress(compressed, len(data))
	require.NoError(t, err)
	require.True(t, &data[0] == &decompressed[0], "NoOp should not copy")
}

func BenchmarkCodecs_Compress(b *testing.B) {
	data := generatePayload(64*1024, false)

	for name, codec := range getAllCodecs() {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))

			for b.Loop() {
				if _, err := codec.Compress(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCodecs_Decompress(b *testing.B) {
	data := generatePayload(64*1024, false)

	for name, codec := range getAllCodecs() {
		b.Run(name, func(b *testing.B) {
			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.SetBytes(int64(len(data)))

			for b.Loop() {
				if _, err := codec.Decompress(compressed, len(data)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
