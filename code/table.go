package code

import (
	"slices"

	"github.com/arloliu/fano/bitio"
)

// Table maps each symbol of a code tree to its codeword.
type Table struct {
	codes  map[Symbol]bitio.Bits
	maxLen int
}

// NewTable walks tree and assigns every leaf its codeword: 0 for each left
// edge and 1 for each right edge from the root. A tree consisting of a single
// leaf has no edges, so its only symbol gets the codeword "0".
func NewTable(tree *Tree) *Table {
	tbl := &Table{codes: make(map[Symbol]bitio.Bits, tree.Leaves())}
	if tree.Empty() {
		return tbl
	}

	root := tree.Node(tree.Root())
	if root.IsLeaf() {
		tbl.set(root.Symbol, bitio.MustParseBits("0"))
		return tbl
	}

	type stackItem struct {
		id     NodeID
		prefix bitio.Bits
	}

	stack := []stackItem{{id: tree.Root()}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := tree.Node(top.id)
		if node.IsLeaf() {
			tbl.set(node.Symbol, top.prefix)
			continue
		}

		left := top.prefix.Clone()
		left.AppendBit(0)
		right := top.prefix
		right.AppendBit(1)
		stack = append(stack, stackItem{node.Right, right}, stackItem{node.Left, left})
	}

	return tbl
}

func (t *Table) set(sym Symbol, code bitio.Bits) {
	t.codes[sym] = code
	t.maxLen = max(t.maxLen, code.Len())
}

// Lookup returns the codeword for sym.
func (t *Table) Lookup(sym Symbol) (bitio.Bits, bool) {
	code, ok := t.codes[sym]
	return code, ok
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return len(t.codes)
}

// MaxLen is the bit length of the longest codeword.
func (t *Table) MaxLen() int {
	return t.maxLen
}

// Symbols returns the table's symbols in ascending order.
func (t *Table) Symbols() []Symbol {
	syms := make([]Symbol, 0, len(t.codes))
	for sym := range t.codes {
		syms = append(syms, sym)
	}
	slices.Sort(syms)

	return syms
}

// EncodedBits returns the payload size in bits for an input with the given
// frequencies, or false if freq has a symbol the table lacks.
func (t *Table) EncodedBits(freq FrequencyTable) (uint64, bool) {
	var n uint64
	for sym, count := range freq {
		code, ok := t.codes[sym]
		if !ok {
			return 0, false
		}
		n += count * uint64(code.Len())
	}

	return n, true
}
