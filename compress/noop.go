package compress

import (
	"fmt"

	"github.com/arloliu/fano/errs"
)

// NoOpCompressor stores the payload unchanged. It is the default: packed
// Shannon–Fano bits are usually close to incompressible.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
//
// Returns:
//   - NoOpCompressor: New no-operation compressor instance
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is, sharing its memory.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is, sharing its memory, after checking that it
// holds exactly size bytes.
func (c NoOpCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) != size {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", errs.ErrPayloadSize, len(data), size)
	}

	return data, nil
}
