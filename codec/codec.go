// Package codec translates between symbol sequences and coded bit sequences.
//
// Encode concatenates the codeword of every symbol. Decode walks the code
// tree bit by bit and is strict: the bit sequence must split into whole
// codewords, and a partially consumed codeword is reported as
// errs.ErrTruncatedStream rather than silently dropped.
package codec

import (
	"fmt"

	"github.com/arloliu/fano/bitio"
	"github.com/arloliu/fano/code"
	"github.com/arloliu/fano/errs"
)

// Encode returns the concatenated codewords of symbols.
//
// A symbol missing from table fails with errs.ErrUnknownSymbol and no output.
func Encode(symbols []code.Symbol, table *code.Table) (bitio.Bits, error) {
	// Every codeword is at least one bit long.
	w := bitio.NewWriter(len(symbols))
	for i, sym := range symbols {
		cw, ok := table.Lookup(sym)
		if !ok {
			return bitio.Bits{}, fmt.Errorf("%w: symbol %#x at position %d", errs.ErrUnknownSymbol, sym, i)
		}
		w.WriteCode(cw)
	}

	return w.Bits()
}

// Decode returns the symbols coded by bits using tree.
func Decode(bits bitio.Bits, tree *code.Tree) ([]code.Symbol, error) {
	return decode(bits, tree, make([]code.Symbol, 0, bits.Len()/8+1))
}

// DecodeN is like Decode, but expects exactly n symbols. Any other count is
// an errs.ErrTruncatedStream.
func DecodeN(bits bitio.Bits, tree *code.Tree, n int) ([]code.Symbol, error) {
	if n < 0 || n > bits.Len() {
		// Every codeword is at least one bit long.
		return nil, fmt.Errorf("%w: %d symbols cannot be coded in %d bits", errs.ErrTruncatedStream, n, bits.Len())
	}

	out, err := decode(bits, tree, make([]code.Symbol, 0, n))
	if err != nil {
		return nil, err
	}
	if len(out) != n {
		return nil, fmt.Errorf("%w: decoded %d symbols, expected %d", errs.ErrTruncatedStream, len(out), n)
	}

	return out, nil
}

func decode(bits bitio.Bits, tree *code.Tree, out []code.Symbol) ([]code.Symbol, error) {
	if bits.Len() == 0 {
		return out, nil
	}
	if tree.Empty() {
		return nil, fmt.Errorf("%w: %d bits with an empty code tree", errs.ErrTruncatedStream, bits.Len())
	}

	rootID := tree.Root()
	root := tree.Node(rootID)
	r := bitio.NewReader(bits)

	// A single-leaf tree has the one codeword "0".
	if root.IsLeaf() {
		for r.Remaining() > 0 {
			pos := bits.Len() - r.Remaining()
			bit, err := r.ReadBit()
			if err != nil {
				return nil, err
			}
			if bit != 0 {
				return nil, fmt.Errorf("%w: bit %d is not a valid codeword", errs.ErrTruncatedStream, pos)
			}
			out = append(out, root.Symbol)
		}

		return out, nil
	}

	cursor := rootID
	for r.Remaining() > 0 {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, err
		}

		node := tree.Node(cursor)
		if bit == 0 {
			cursor = node.Left
		} else {
			cursor = node.Right
		}

		if next := tree.Node(cursor); next.IsLeaf() {
			out = append(out, next.Symbol)
			cursor = rootID
		}
	}

	if cursor != rootID {
		return nil, fmt.Errorf("%w: stream ends inside a codeword", errs.ErrTruncatedStream)
	}

	return out, nil
}
