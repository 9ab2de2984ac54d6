// Package fano is a lossless compressor built on Shannon–Fano coding.
//
// Compress derives a prefix-free code from the symbol frequencies of its
// input, encodes the input with it, and stores the code tree together with
// the packed payload in a self-describing binary container. Decompress
// reverses the process exactly.
//
// # Basic Usage
//
//	blob, err := fano.Compress([]byte("AAAAABBBBCCCDD"))
//	if err != nil {
//	    return err
//	}
//	data, err := fano.Decompress(blob)
//
// Inputs are split into byte symbols by default. For text with a large
// alphabet, code points can be used instead:
//
//	blob, err := fano.Compress(text, fano.WithSymbolWidth(format.SymbolWidthRune))
//
// # Package Structure
//
// This package wires together the building blocks, which can also be used
// directly:
//
//   - code: frequency counting, tree construction and code tables
//   - codec: symbol <-> bit sequence translation
//   - bitio: bit sequences and byte packing
//   - treefmt: code tree serialization
//   - container: the binary container format
//   - compress: optional payload compression
package fano

import (
	"fmt"

	"github.com/arloliu/fano/bitio"
	"github.com/arloliu/fano/code"
	"github.com/arloliu/fano/codec"
	"github.com/arloliu/fano/container"
	"github.com/arloliu/fano/errs"
	"github.com/arloliu/fano/format"
	"github.com/arloliu/fano/internal/hash"
	"github.com/arloliu/fano/internal/options"
	"github.com/arloliu/fano/treefmt"
)

// Encoded is the result of Encode, kept for inspection.
type Encoded struct {
	// Tree is the Shannon–Fano code tree, empty for an empty input.
	Tree *code.Tree
	// Table maps every input symbol to its codeword.
	Table *code.Table
	// Bits is the coded payload before packing.
	Bits bitio.Bits
	// Container is the assembled container.
	Container *container.Container
	// Width is how the input was split into symbols.
	Width format.SymbolWidth
}

// Bytes serializes the container.
func (e *Encoded) Bytes() ([]byte, error) {
	return e.Container.Bytes()
}

// Decoded is the result of Decode.
type Decoded struct {
	// Tree is the code tree read from the container, without weights.
	Tree *code.Tree
	// Data is the original input.
	Data []byte
	// Width is how the input was split into symbols.
	Width format.SymbolWidth
}

// Encode runs the whole encoding pipeline on data and returns every
// intermediate product. An empty input yields an empty tree and table and a
// valid, empty container.
func Encode(data []byte, opts ...Option) (*Encoded, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	symbols, err := toSymbols(data, cfg.width)
	if err != nil {
		return nil, err
	}

	freq := code.CountFrequenciesParallel(symbols, cfg.workers)
	tree := code.BuildTree(freq)
	table := code.NewTable(tree)

	bits, err := codec.Encode(symbols, table)
	if err != nil {
		return nil, err
	}

	treeBytes, err := treefmt.Marshal(tree, cfg.width)
	if err != nil {
		return nil, err
	}

	payload, bitCount := bitio.Pack(bits)
	flag := container.NewFlag(cfg.compression, cfg.width)
	c, err := container.New(flag, len(symbols), hash.Checksum(data), treeBytes, payload, bitCount)
	if err != nil {
		return nil, err
	}

	return &Encoded{Tree: tree, Table: table, Bits: bits, Container: c, Width: cfg.width}, nil
}

// Compress encodes data and returns the serialized container.
func Compress(data []byte, opts ...Option) ([]byte, error) {
	enc, err := Encode(data, opts...)
	if err != nil {
		return nil, err
	}

	return enc.Bytes()
}

// Decode parses a serialized container and decodes its payload.
//
// Container problems wrap errs.ErrFormat, a malformed tree wraps
// errs.ErrCorruptTree, a payload that does not split into whole codewords
// wraps errs.ErrTruncatedStream, and a decoded result that differs from the
// encoded input is errs.ErrChecksumMismatch. No partial output is returned.
func Decode(blob []byte) (*Decoded, error) {
	c, err := container.Parse(blob)
	if err != nil {
		return nil, err
	}

	width := c.Header.Flag.SymbolWidth()
	tree, err := treefmt.Unmarshal(c.Tree, width)
	if err != nil {
		return nil, err
	}

	bits, err := c.PayloadBits()
	if err != nil {
		return nil, err
	}

	symbols, err := codec.DecodeN(bits, tree, int(c.Header.OriginalLength))
	if err != nil {
		return nil, err
	}

	data, err := fromSymbols(symbols, width)
	if err != nil {
		return nil, err
	}
	if !hash.Verify(data, c.Header.Checksum) {
		return nil, fmt.Errorf("%w: expected %#016x", errs.ErrChecksumMismatch, c.Header.Checksum)
	}

	return &Decoded{Tree: tree, Data: data, Width: width}, nil
}

// Decompress decodes a serialized container back into the original bytes.
func Decompress(blob []byte) ([]byte, error) {
	dec, err := Decode(blob)
	if err != nil {
		return nil, err
	}

	return dec.Data, nil
}
