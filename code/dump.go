package code

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/arloliu/fano/format"
)

// Dump writes the tree structure to w, one node per line in preorder. Each
// line is prefixed by the edge labels leading to the node. Leaf symbols are
// labeled according to width.
func (t *Tree) Dump(w io.Writer, width format.SymbolWidth) (int64, error) {
	var buf bytes.Buffer
	if t.Empty() {
		buf.WriteString("(empty)\n")
		return buf.WriteTo(w)
	}

	type stackItem struct {
		id     NodeID
		prefix string
	}

	stack := []stackItem{{id: t.root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := t.nodes[top.id]
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "%sLeaf: %s\n", top.prefix, SymbolLabel(node.Symbol, width))
			continue
		}
		fmt.Fprintf(&buf, "%sNode:\n", top.prefix)
		stack = append(stack,
			stackItem{node.Right, top.prefix + " 1-"},
			stackItem{node.Left, top.prefix + " 0-"},
		)
	}

	return buf.WriteTo(w)
}

// Dump writes one "symbol: codeword" line per symbol to w, in ascending
// symbol order.
func (t *Table) Dump(w io.Writer, width format.SymbolWidth) (int64, error) {
	var buf bytes.Buffer
	for _, sym := range t.Symbols() {
		fmt.Fprintf(&buf, "%s: %s\n", SymbolLabel(sym, width), t.codes[sym])
	}

	return buf.WriteTo(w)
}

// SymbolLabel returns a quoted, printable form of sym such as 'A' or '\n'.
// Byte symbols outside ASCII are raw bytes, not code points, and are shown
// as '\xc3'.
func SymbolLabel(sym Symbol, width format.SymbolWidth) string {
	if width == format.SymbolWidthByte && sym >= utf8.RuneSelf {
		return fmt.Sprintf(`'\x%02x'`, uint8(sym))
	}

	return strconv.QuoteRune(rune(sym))
}
