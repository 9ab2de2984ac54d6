package format

import "fmt"

type (
	CompressionType uint8
	SymbolWidth     uint8
)

const (
	CompressionNone CompressionType = 0x0 // CompressionNone stores the payload as packed bits.
	CompressionZstd CompressionType = 0x1 // CompressionZstd wraps the payload with Zstandard.
	CompressionS2   CompressionType = 0x2 // CompressionS2 wraps the payload with S2.
	CompressionLZ4  CompressionType = 0x3 // CompressionLZ4 wraps the payload with LZ4 block compression.

	SymbolWidthByte SymbolWidth = 8  // SymbolWidthByte encodes every leaf symbol in 8 bits.
	SymbolWidthRune SymbolWidth = 21 // SymbolWidthRune encodes every leaf symbol as a 21-bit code point.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a case-sensitive lower-case name such as "zstd".
func ParseCompressionType(name string) (CompressionType, error) {
	switch name {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

// IsValid reports whether c is one of the defined compression types.
func (c CompressionType) IsValid() bool {
	return c <= CompressionLZ4
}

func (w SymbolWidth) String() string {
	switch w {
	case SymbolWidthByte:
		return "Byte"
	case SymbolWidthRune:
		return "Rune"
	default:
		return "Unknown"
	}
}

// Bits returns the number of bits a leaf symbol occupies in a serialized tree.
func (w SymbolWidth) Bits() int {
	return int(w)
}

// MaxSymbol returns the largest symbol value representable with this width.
func (w SymbolWidth) MaxSymbol() int32 {
	switch w {
	case SymbolWidthByte:
		return 0xFF
	case SymbolWidthRune:
		return 0x10FFFF
	default:
		return -1
	}
}
