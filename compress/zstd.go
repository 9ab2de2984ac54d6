package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/fano/errs"
)

// zstdMaxRatio bounds how far zstd data can expand: the densest block is a
// 4-byte RLE block standing for 128KiB of output.
const zstdMaxRatio = 1 << 15

// ZstdCompressor provides Zstandard compression of container payloads.
//
// Shannon–Fano output is already entropy coded per symbol, so Zstd mostly
// pays off on inputs with long repeated phrases, which a per-symbol code
// cannot exploit. It gives the best ratio of the supported envelopes, which
// suits archival use where files are written once and read rarely.
//
// Performance characteristics:
//   - Encoders and decoders are pooled and reused across calls
//   - Decoding never grows past the size recorded in the container header
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// zstdDecoderPool pools zstd decoders for reuse. The klauspost decoder is
// designed to run without allocations after a warmup.
//
// WithDecodeAllCapLimit makes DecodeAll stop at the capacity of its
// destination, which Decompress sets to the expected payload size.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
			zstd.WithDecodeAllCapLimit(true),
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Compress compresses the input data using a pooled Zstandard encoder.
//
// Parameters:
//   - data: Packed payload to compress
//
// Returns:
//   - []byte: Compressed frame (nil if input is empty)
//   - error: Always nil
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd data into exactly size bytes using a pooled
// decoder.
//
// Output is capped at size while decoding, so frames that claim or produce
// more data fail without allocating for it.
//
// Parameters:
//   - data: Compressed frames
//   - size: Exact decoded length
//
// Returns:
//   - []byte: Decompressed payload (nil if size is zero)
//   - error: errs.ErrPayloadSize on a length mismatch, or a decoding error
func (c ZstdCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if done, err := checkEmpty(data, size); done {
		return nil, err
	}
	if size/zstdMaxRatio > len(data) {
		return nil, fmt.Errorf("%w: %d zstd bytes cannot expand to %d", errs.ErrPayloadSize, len(data), size)
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, make([]byte, 0, size))
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(decompressed) != size {
		return nil, fmt.Errorf("%w: zstd data holds %d bytes, need %d", errs.ErrPayloadSize, len(decompressed), size)
	}

	return decompressed, nil
}
