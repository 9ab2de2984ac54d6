package code

import (
	"github.com/chronos-tachyon/assert"
)

// BuildTree builds the Shannon–Fano code tree for freq.
//
// The symbols are sorted by descending weight (ties by ascending symbol) and
// each span of the sorted list is split at the index i minimizing
// |total/2 - weight(span[:i])|. When several indices are equally balanced the
// leftmost one wins; this choice fixes the resulting code lengths and must
// not change between versions.
//
// An empty table yields an empty tree.
func BuildTree(freq FrequencyTable) *Tree {
	pairs := freq.Sorted()
	if len(pairs) == 0 {
		return newTree(0)
	}

	// cum[i] is the total weight of pairs[:i], so any span weight is one subtraction.
	cum := make([]uint64, len(pairs)+1)
	for i, p := range pairs {
		cum[i+1] = cum[i] + p.Weight
	}

	t := newTree(2*len(pairs) - 1)

	// Each work item is a span of pairs still to be turned into a subtree,
	// plus the slot in its parent that the subtree fills. Pushing the right
	// span before the left one numbers nodes in preorder.
	type span struct {
		lo, hi int
		parent NodeID
		right  bool
	}

	work := make([]span, 0, 64)
	work = append(work, span{lo: 0, hi: len(pairs), parent: NoNode})
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]

		var id NodeID
		if s.hi-s.lo == 1 {
			id = t.addLeaf(pairs[s.lo].Symbol, pairs[s.lo].Weight)
		} else {
			id = t.addInternal(cum[s.hi] - cum[s.lo])
			mid := splitIndex(cum, s.lo, s.hi)
			work = append(work,
				span{lo: mid, hi: s.hi, parent: id, right: true},
				span{lo: s.lo, hi: mid, parent: id, right: false},
			)
		}
		t.attach(s.parent, s.right, id)
	}

	assert.Assertf(len(t.nodes) == 2*len(pairs)-1, "tree has %d nodes for %d symbols", len(t.nodes), len(pairs))

	return t
}

// splitIndex returns the split point of the span cum[lo:hi+1] that best
// balances the weights on either side. The result is in [lo+1, hi-1].
func splitIndex(cum []uint64, lo, hi int) int {
	assert.Assertf(hi-lo >= 2, "cannot split span [%d, %d)", lo, hi)

	total := cum[hi] - cum[lo]
	best := lo + 1
	bestDiff := imbalance(total, cum[best]-cum[lo])
	for i := lo + 2; i < hi; i++ {
		if running := cum[i-1] - cum[lo]; running >= total-running {
			// Weights are positive, so the imbalance only grows from here.
			break
		}
		diff := imbalance(total, cum[i]-cum[lo])
		if diff < bestDiff {
			best, bestDiff = i, diff
		}
	}

	return best
}

// imbalance returns |(total-running) - running|, twice the distance of
// running from total/2, without doubling anything that could overflow.
func imbalance(total, running uint64) uint64 {
	rest := total - running
	if rest > running {
		return rest - running
	}

	return running - rest
}

// attach stores child in the given slot of parent, or makes it the root.
func (t *Tree) attach(parent NodeID, right bool, child NodeID) {
	if parent == NoNode {
		t.root = child
		return
	}
	if right {
		t.nodes[parent].Right = child
	} else {
		t.nodes[parent].Left = child
	}
}
