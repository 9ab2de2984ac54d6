package container

import (
	"fmt"
	"math"

	"github.com/arloliu/fano/bitio"
	"github.com/arloliu/fano/compress"
	"github.com/arloliu/fano/errs"
	"github.com/arloliu/fano/internal/pool"
)

// Container is one encoded input: header, serialized tree and packed
// payload. Payload always holds the packed bits; compression is applied in
// Bytes and removed in Parse.
type Container struct {
	Header  Header
	Tree    []byte
	Payload []byte
}

// New assembles a container and fills in the length fields of its header.
func New(flag Flag, originalLength int, checksum uint64, tree []byte, payload []byte, bitCount int) (*Container, error) {
	if uint64(len(tree)) > math.MaxUint32 {
		return nil, fmt.Errorf("serialized tree of %d bytes exceeds the format limit", len(tree))
	}
	if bitio.ByteLen(bitCount) != len(payload) {
		return nil, fmt.Errorf("payload of %d bytes does not hold %d bits", len(payload), bitCount)
	}

	h := NewHeader(flag)
	h.OriginalLength = uint64(originalLength)
	h.BitCount = uint64(bitCount)
	h.Checksum = checksum
	h.TreeLength = uint32(len(tree))
	if err := h.Validate(); err != nil {
		return nil, err
	}

	return &Container{Header: h, Tree: tree, Payload: payload}, nil
}

// Bytes serializes the container, compressing the payload with the codec
// named in the header flags.
//
// The returned slice is newly allocated and owned by the caller.
func (c *Container) Bytes() ([]byte, error) {
	codec, err := compress.CreateCodec(c.Header.Flag.Compression())
	if err != nil {
		return nil, err
	}
	payload, err := codec.Compress(c.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	bb := pool.GetContainerBuffer()
	defer pool.PutContainerBuffer(bb)

	bb.Grow(HeaderSize + len(c.Tree) + len(payload))
	bb.B = c.Header.AppendTo(bb.B)
	bb.MustWrite(c.Tree)
	bb.MustWrite(payload)

	return bb.Clone(), nil
}

// Parse validates and splits a serialized container. Every failure wraps
// errs.ErrFormat and is reported before any decoding takes place.
//
// Tree may alias data; Payload aliases data when no compression is used.
func Parse(data []byte) (*Container, error) {
	c := &Container{}
	if err := c.Header.Parse(data); err != nil {
		return nil, err
	}

	rest := data[HeaderSize:]
	if uint64(c.Header.TreeLength) > uint64(len(rest)) {
		return nil, fmt.Errorf("%w: tree length %d exceeds remaining %d bytes",
			errs.ErrFormat, c.Header.TreeLength, len(rest))
	}
	c.Tree = rest[:c.Header.TreeLength]
	rest = rest[c.Header.TreeLength:]

	if c.Header.BitCount > math.MaxInt-7 {
		return nil, fmt.Errorf("%w: bit count %d too large", errs.ErrFormat, c.Header.BitCount)
	}
	want := bitio.ByteLen(int(c.Header.BitCount))

	codec, err := compress.CreateCodec(c.Header.Flag.Compression())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrFormat, err)
	}
	// The decompressor never produces, or allocates for, more than want bytes.
	payload, err := codec.Decompress(rest, want)
	if err != nil {
		return nil, fmt.Errorf("%w: payload for bit count %d: %w", errs.ErrFormat, c.Header.BitCount, err)
	}
	c.Payload = payload

	return c, nil
}

// PayloadBits unpacks the payload into exactly Header.BitCount bits.
func (c *Container) PayloadBits() (bitio.Bits, error) {
	return bitio.Unpack(c.Payload, int(c.Header.BitCount))
}
