package fano

import (
	"fmt"

	"github.com/arloliu/fano/format"
	"github.com/arloliu/fano/internal/options"
)

// config holds the encoder settings.
type config struct {
	width       format.SymbolWidth
	compression format.CompressionType
	workers     int
}

func defaultConfig() *config {
	return &config{
		width:       format.SymbolWidthByte,
		compression: format.CompressionNone,
		workers:     1,
	}
}

// Option is a functional option for Encode and Compress.
type Option = options.Option[*config]

// WithSymbolWidth selects how the input is split into symbols.
//
// format.SymbolWidthByte (default) treats every byte as a symbol and accepts
// any input. format.SymbolWidthRune treats every UTF-8 code point as a symbol
// and requires valid UTF-8.
func WithSymbolWidth(width format.SymbolWidth) Option {
	return options.New(func(c *config) error {
		switch width {
		case format.SymbolWidthByte, format.SymbolWidthRune:
			c.width = width
			return nil
		default:
			return fmt.Errorf("invalid symbol width: %d", width)
		}
	})
}

// WithCompression wraps the payload with a general-purpose codec.
// Default is format.CompressionNone.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(c *config) error {
		if !comp.IsValid() {
			return fmt.Errorf("invalid compression: %v", comp)
		}
		c.compression = comp

		return nil
	})
}

// WithParallelism counts symbol frequencies with up to n goroutines.
// Values below 1 are treated as 1. The output does not depend on n.
func WithParallelism(n int) Option {
	return options.NoError(func(c *config) {
		c.workers = max(n, 1)
	})
}
