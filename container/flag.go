package container

import (
	"fmt"

	"github.com/arloliu/fano/errs"
	"github.com/arloliu/fano/format"
)

const (
	compressionMask = 0x0F // bits 0-3
	runeSymbolsBit  = 0x10 // bit 4
	reservedMask    = 0xE0 // bits 5-7
)

// Flag packs the payload compression type and the symbol width into one byte.
type Flag uint8

// NewFlag returns the flag byte for the given settings.
func NewFlag(comp format.CompressionType, width format.SymbolWidth) Flag {
	f := Flag(comp) & compressionMask
	if width == format.SymbolWidthRune {
		f |= runeSymbolsBit
	}

	return f
}

// Compression returns the payload compression type.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f & compressionMask)
}

// SymbolWidth returns the width of leaf symbols in the serialized tree.
func (f Flag) SymbolWidth() format.SymbolWidth {
	if f&runeSymbolsBit != 0 {
		return format.SymbolWidthRune
	}

	return format.SymbolWidthByte
}

// Validate checks that reserved bits are clear and the compression type is known.
func (f Flag) Validate() error {
	if f&reservedMask != 0 {
		return fmt.Errorf("%w: reserved flag bits set (%#02x)", errs.ErrFormat, uint8(f))
	}
	if !f.Compression().IsValid() {
		return fmt.Errorf("%w: %w: %d", errs.ErrFormat, errs.ErrInvalidCompression, uint8(f.Compression()))
	}

	return nil
}
