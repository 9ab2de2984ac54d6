package container

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/fano/errs"
)

const (
	HeaderSize = 36 // fixed header size in bytes
	Version    = 1  // current format version
)

// Magic identifies a fano container.
var Magic = [4]byte{'S', 'F', 'N', 'O'}

// Header is the fixed-size section at the start of every container.
type Header struct {
	Magic    [4]byte // offset 0-3
	Version  uint8   // offset 4
	Flag     Flag    // offset 5
	Reserved [2]byte // offset 6-7, must be zero

	// OriginalLength is the number of symbols in the encoded input.
	OriginalLength uint64 // offset 8-15
	// BitCount is the exact number of payload bits; the last payload byte
	// carries Padding(BitCount) zero bits.
	BitCount uint64 // offset 16-23
	// Checksum is the xxHash64 of the original input bytes.
	Checksum uint64 // offset 24-31
	// TreeLength is the byte length of the serialized tree.
	TreeLength uint32 // offset 32-35
}

// NewHeader returns a header with the magic and version filled in.
func NewHeader(flag Flag) Header {
	return Header{
		Magic:   Magic,
		Version: Version,
		Flag:    flag,
	}
}

// Parse parses the header from the first HeaderSize bytes of data.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: need %d header bytes, have %d", errs.ErrFormat, HeaderSize, len(data))
	}

	copy(h.Magic[:], data[0:4])
	if h.Magic != Magic {
		return fmt.Errorf("%w: got %q", errs.ErrInvalidMagic, h.Magic[:])
	}

	h.Version = data[4]
	h.Flag = Flag(data[5])
	copy(h.Reserved[:], data[6:8])
	h.OriginalLength = binary.BigEndian.Uint64(data[8:16])
	h.BitCount = binary.BigEndian.Uint64(data[16:24])
	h.Checksum = binary.BigEndian.Uint64(data[24:32])
	h.TreeLength = binary.BigEndian.Uint32(data[32:36])

	return h.Validate()
}

// Validate checks the header fields for internal consistency.
func (h *Header) Validate() error {
	if h.Version != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}
	if h.Reserved != [2]byte{} {
		return fmt.Errorf("%w: reserved bytes must be zero", errs.ErrFormat)
	}
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	empty := h.OriginalLength == 0
	if empty != (h.TreeLength == 0) || empty != (h.BitCount == 0) {
		return fmt.Errorf("%w: inconsistent lengths (symbols=%d, tree=%d, bits=%d)",
			errs.ErrFormat, h.OriginalLength, h.TreeLength, h.BitCount)
	}
	// Every codeword is at least one bit long.
	if h.BitCount < h.OriginalLength {
		return fmt.Errorf("%w: %d bits cannot hold %d symbols", errs.ErrFormat, h.BitCount, h.OriginalLength)
	}

	return nil
}

// AppendTo appends the serialized header to b.
func (h *Header) AppendTo(b []byte) []byte {
	b = append(b, h.Magic[:]...)
	b = append(b, h.Version, byte(h.Flag))
	b = append(b, h.Reserved[:]...)
	b = binary.BigEndian.AppendUint64(b, h.OriginalLength)
	b = binary.BigEndian.AppendUint64(b, h.BitCount)
	b = binary.BigEndian.AppendUint64(b, h.Checksum)
	b = binary.BigEndian.AppendUint32(b, h.TreeLength)

	return b
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}
