// Package compress provides the optional envelope codecs applied to the
// payload section of a fano container.
//
// Shannon–Fano coding removes per-symbol redundancy only. An envelope codec
// runs after bit packing and can additionally remove repeated phrases. The
// codec in use is recorded in the container flags; the default is none.
//
// Supported algorithms:
//   - None: payload stored as packed bits
//   - Zstd: github.com/klauspost/compress/zstd, pooled encoders and decoders
//   - S2:   github.com/klauspost/compress/s2
//   - LZ4:  github.com/pierrec/lz4/v4 block format
//
// Usage:
//
//	codec, err := compress.CreateCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	wrapped, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(wrapped, len(payload))
//
// Decompression is always given the exact payload length from the container
// header and never allocates more than that.
//
// All codecs are stateless values and safe for concurrent use.
package compress
