package code

import (
	"fmt"

	"github.com/arloliu/fano/errs"
)

// Assembler rebuilds a Tree from a preorder sequence of nodes, as read from
// a serialized tree. Internal nodes wait on a stack until both of their
// children have been placed.
type Assembler struct {
	tree    *Tree
	pending []NodeID
	seen    map[Symbol]struct{}
	done    bool
}

// NewAssembler returns an Assembler for an empty tree.
func NewAssembler() *Assembler {
	return &Assembler{
		tree: newTree(16),
		seen: make(map[Symbol]struct{}),
	}
}

// Leaf places a leaf holding sym at the next open position.
func (a *Assembler) Leaf(sym Symbol) error {
	if sym < 0 {
		return fmt.Errorf("%w: negative symbol %d", errs.ErrCorruptTree, sym)
	}
	if _, dup := a.seen[sym]; dup {
		return fmt.Errorf("%w: duplicate leaf symbol %d", errs.ErrCorruptTree, sym)
	}
	if a.done {
		return fmt.Errorf("%w: node after complete tree", errs.ErrCorruptTree)
	}
	a.seen[sym] = struct{}{}

	a.place(a.tree.addLeaf(sym, 0))
	if len(a.pending) == 0 {
		a.done = true
	}

	return nil
}

// Internal places an internal node at the next open position; its children
// are the nodes placed after it.
func (a *Assembler) Internal() error {
	if a.done {
		return fmt.Errorf("%w: node after complete tree", errs.ErrCorruptTree)
	}

	id := a.tree.addInternal(0)
	a.place(id)
	a.pending = append(a.pending, id)

	return nil
}

// Complete reports whether every internal node has both children.
func (a *Assembler) Complete() bool {
	return a.done
}

// Tree returns the assembled tree. Nothing placed yields an empty tree; any
// internal node still missing a child is an errs.ErrCorruptTree.
func (a *Assembler) Tree() (*Tree, error) {
	if len(a.pending) > 0 {
		return nil, fmt.Errorf("%w: %d incomplete internal nodes", errs.ErrCorruptTree, len(a.pending))
	}

	return a.tree, nil
}

func (a *Assembler) place(id NodeID) {
	if len(a.pending) == 0 {
		a.tree.root = id
		return
	}

	top := len(a.pending) - 1
	parent := a.pending[top]
	if a.tree.nodes[parent].Left == NoNode {
		a.tree.nodes[parent].Left = id
		return
	}
	a.tree.nodes[parent].Right = id
	a.pending = a.pending[:top]
}
