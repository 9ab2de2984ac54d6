package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/fano/errs"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor keeps a hash table that is expensive to allocate.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4MaxRatio bounds how far one LZ4 block can expand: a match sequence
// gains at most 255 output bytes per input byte.
const lz4MaxRatio = 255

// LZ4Compressor provides LZ4 block compression of container payloads.
//
// LZ4 has the fastest decompression of the supported envelopes. Blocks carry
// no length of their own; the container header supplies it.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 block compressor.
//
// Returns:
//   - LZ4Compressor: New LZ4 compressor instance
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data as a single LZ4 block.
//
// Uses a pooled lz4.Compressor for better performance.
//
// Parameters:
//   - data: Packed payload to compress
//
// Returns:
//   - []byte: Compressed block (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block into an exact-size buffer.
//
// Sizes that no block of len(data) bytes can reach are rejected before the
// buffer is allocated.
//
// Parameters:
//   - data: Compressed block
//   - size: Exact decoded length
//
// Returns:
//   - []byte: Decompressed payload (nil if size is zero)
//   - error: errs.ErrPayloadSize on a length mismatch, or a decoding error
func (c LZ4Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if done, err := checkEmpty(data, size); done {
		return nil, err
	}
	if size/lz4MaxRatio > len(data) {
		return nil, fmt.Errorf("%w: %d lz4 bytes cannot expand to %d", errs.ErrPayloadSize, len(data), size)
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if n != size {
		return nil, fmt.Errorf("%w: lz4 block holds %d bytes, need %d", errs.ErrPayloadSize, n, size)
	}

	return buf, nil
}
