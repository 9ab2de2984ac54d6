package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/fano/errs"
)

// S2Compressor provides S2 compression of container payloads.
//
// S2 is an extension of Snappy that trades a little ratio for very fast
// compression and decompression. It suits payloads that are written often
// and where the envelope should cost almost nothing.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
//
// Returns:
//   - S2Compressor: New S2 compressor instance
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 block compression.
//
// Parameters:
//   - data: Packed payload to compress
//
// Returns:
//   - []byte: Compressed block (nil if input is empty)
//   - error: Always nil
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses an S2 block into exactly size bytes.
//
// The decoded length stored in the block header is checked against size
// before the output buffer is allocated.
//
// Parameters:
//   - data: Compressed block
//   - size: Exact decoded length
//
// Returns:
//   - []byte: Decompressed payload (nil if size is zero)
//   - error: errs.ErrPayloadSize on a length mismatch, or a decoding error
func (c S2Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if done, err := checkEmpty(data, size); done {
		return nil, err
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n != size {
		return nil, fmt.Errorf("%w: s2 block holds %d bytes, need %d", errs.ErrPayloadSize, n, size)
	}

	out, err := s2.Decode(make([]byte, size), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
