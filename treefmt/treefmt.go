// Package treefmt serializes code trees into a compact preorder bit format.
//
// Each node is written in preorder. An internal node is the single tag bit 0
// and is followed by its left and then its right subtree. A leaf is the tag
// bit 1 followed by its symbol in a fixed number of bits set by
// format.SymbolWidth (8 bits for byte alphabets, 21 bits for Unicode code
// points). The bits are packed with bitio.PackWithPadding, so the first byte
// records how many padding bits end the stream.
//
// An empty tree serializes to zero bytes.
package treefmt

import (
	"fmt"

	"github.com/arloliu/fano/bitio"
	"github.com/arloliu/fano/code"
	"github.com/arloliu/fano/errs"
	"github.com/arloliu/fano/format"
)

// Marshal serializes tree. Leaf symbols must fit width, otherwise it fails
// with errs.ErrSymbolOutOfRange.
func Marshal(tree *code.Tree, width format.SymbolWidth) ([]byte, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	if tree.Empty() {
		return nil, nil
	}

	maxSym := code.Symbol(width.MaxSymbol())
	w := bitio.NewWriter(tree.Len() + tree.Leaves()*width.Bits())

	stack := []code.NodeID{tree.Root()}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := tree.Node(id)
		if node.IsLeaf() {
			if node.Symbol < 0 || node.Symbol > maxSym {
				return nil, fmt.Errorf("%w: symbol %d does not fit %d bits", errs.ErrSymbolOutOfRange, node.Symbol, width.Bits())
			}
			w.WriteBit(1)
			w.WriteUint(uint64(node.Symbol), width.Bits())

			continue
		}

		w.WriteBit(0)
		// Right first so that the left subtree is written first.
		stack = append(stack, node.Right, node.Left)
	}

	bits, err := w.Bits()
	if err != nil {
		return nil, err
	}

	return bitio.PackWithPadding(bits), nil
}

// Unmarshal reverses Marshal. Malformed input fails with errs.ErrCorruptTree.
func Unmarshal(data []byte, width format.SymbolWidth) (*code.Tree, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}

	bits, err := bitio.UnpackWithPadding(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCorruptTree, err)
	}

	maxSym := uint64(width.MaxSymbol())
	asm := code.NewAssembler()
	r := bitio.NewReader(bits)
	for r.Remaining() > 0 {
		if asm.Complete() {
			return nil, fmt.Errorf("%w: %d trailing bits after tree", errs.ErrCorruptTree, r.Remaining())
		}

		tag, _ := r.ReadBit()
		if tag == 0 {
			if err := asm.Internal(); err != nil {
				return nil, err
			}

			continue
		}

		v, err := r.ReadUint(width.Bits())
		if err != nil {
			return nil, fmt.Errorf("%w: leaf symbol truncated", errs.ErrCorruptTree)
		}
		if v > maxSym {
			return nil, fmt.Errorf("%w: leaf symbol %#x exceeds %#x", errs.ErrCorruptTree, v, maxSym)
		}
		if err := asm.Leaf(code.Symbol(v)); err != nil {
			return nil, err
		}
	}

	return asm.Tree()
}

func checkWidth(width format.SymbolWidth) error {
	switch width {
	case format.SymbolWidthByte, format.SymbolWidthRune:
		return nil
	default:
		return fmt.Errorf("unsupported symbol width %d", width)
	}
}
