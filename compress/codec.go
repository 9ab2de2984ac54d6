package compress

import (
	"fmt"

	"github.com/arloliu/fano/errs"
	"github.com/arloliu/fano/format"
)

// Compressor compresses the packed payload section of a fano container.
//
// The payload is a Shannon–Fano bit stream packed into bytes. Coding has
// already removed per-symbol redundancy, so a Compressor only helps when the
// input repeats whole phrases.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller, except for
	//     NoOpCompressor which returns its input
	//   - Input slice is not modified
	//   - Internal encoder state may be pooled and reused
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// The container header records the exact payload length, so every
// Decompressor is told the size it must produce. Implementations reject
// data that cannot expand to that size before allocating the output, which
// keeps a forged header from forcing large allocations.
//
// Example:
//
//	payload, err := codec.Decompress(section, bitio.ByteLen(bitCount))
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Thread Safety: all implementations in this package are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data into exactly size bytes.
	//
	// Error conditions:
	//   - errs.ErrPayloadSize if data does not expand to size bytes
	//   - an algorithm error if data is corrupted or was produced by a
	//     different algorithm
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller, except for
	//     NoOpCompressor which returns its input
	//   - Input slice is not modified
	Decompress(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// CreateCodec returns the Codec for the given compression type.
//
// Parameters:
//   - compressionType: Compression type from the container flags
//
// Returns:
//   - Codec: Shared, stateless codec instance
//   - error: errs.ErrInvalidCompression for an unknown type
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %d", errs.ErrInvalidCompression, uint8(compressionType))
}

// checkEmpty handles the zero-length cases shared by all codecs: empty data
// must decode to zero bytes and zero bytes must come from empty data.
func checkEmpty(data []byte, size int) (done bool, err error) {
	switch {
	case size < 0:
		return true, fmt.Errorf("%w: negative size %d", errs.ErrPayloadSize, size)
	case len(data) == 0 && size == 0:
		return true, nil
	case len(data) == 0 || size == 0:
		return true, fmt.Errorf("%w: %d input bytes for %d output bytes", errs.ErrPayloadSize, len(data), size)
	default:
		return false, nil
	}
}
