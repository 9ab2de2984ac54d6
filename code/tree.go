package code

// NodeID indexes a node within its Tree.
type NodeID int32

// NoNode marks an absent child or an empty tree's root.
const NoNode = NodeID(-1)

// Node is either a leaf holding a Symbol, or an internal node holding
// exactly two children. Weight is the sum of the leaf weights below it;
// trees read back from a container carry zero weights.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   NodeID
	Right  NodeID
}

// IsLeaf reports whether n is a leaf.
func (n Node) IsLeaf() bool {
	return n.Left == NoNode
}

// Tree is a full binary code tree stored in an arena. Nodes are referenced by
// index only, so a Tree has no cycles or parent pointers.
type Tree struct {
	nodes []Node
	root  NodeID
}

func newTree(capacity int) *Tree {
	return &Tree{
		nodes: make([]Node, 0, capacity),
		root:  NoNode,
	}
}

// Root returns the root node ID, or NoNode for an empty tree.
func (t *Tree) Root() NodeID {
	return t.root
}

// Empty reports whether the tree has no nodes.
func (t *Tree) Empty() bool {
	return t.root == NoNode
}

// Node returns the node with the given ID.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Leaves returns the number of leaves, i.e. the alphabet size.
func (t *Tree) Leaves() int {
	if t.Empty() {
		return 0
	}

	// A full binary tree with k leaves has 2k-1 nodes.
	return (len(t.nodes) + 1) / 2
}

// Weight returns the root weight, which is the total symbol count for a
// freshly built tree.
func (t *Tree) Weight() uint64 {
	if t.Empty() {
		return 0
	}

	return t.nodes[t.root].Weight
}

// Equal reports whether t and o have the same shape and leaf symbols.
// Weights and node numbering are not compared.
func (t *Tree) Equal(o *Tree) bool {
	if t.Empty() || o.Empty() {
		return t.Empty() == o.Empty()
	}

	type pair struct{ a, b NodeID }
	stack := []pair{{t.root, o.root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		na, nb := t.nodes[top.a], o.nodes[top.b]
		if na.IsLeaf() != nb.IsLeaf() {
			return false
		}
		if na.IsLeaf() {
			if na.Symbol != nb.Symbol {
				return false
			}

			continue
		}
		stack = append(stack, pair{na.Right, nb.Right}, pair{na.Left, nb.Left})
	}

	return true
}

func (t *Tree) addLeaf(sym Symbol, weight uint64) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{Symbol: sym, Weight: weight, Left: NoNode, Right: NoNode})

	return id
}

// addInternal appends an internal node whose children are filled in later.
func (t *Tree) addInternal(weight uint64) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{Symbol: InvalidSymbol, Weight: weight, Left: NoNode, Right: NoNode})

	return id
}
