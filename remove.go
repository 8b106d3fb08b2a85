package intervaltree

import "cmp"

// remove deletes name from every node holding a fragment of its
// decomposition, compacts redundant structure bottom-up, and returns the
// rebalanced subtree root. [start,end] are the registered bounds of name.
//
// The descent guards (boundary >= start, boundary <= end) are broader than
// the insertion guards and may visit nodes that hold no fragment; that
// costs traversal time, never correctness.
func (n *node[E]) remove(start, end Bound[E], name string) *node[E] {
	if _, ok := n.covering[name]; ok {
		// Canonical decomposition stores a name at most once per root-leaf
		// path, so nothing beneath can hold it.
		delete(n.covering, name)
	} else if !n.isLeaf() {
		if n.boundary.Compare(start) >= 0 {
			n.left = n.left.remove(start, end, name)
		}
		if n.boundary.Compare(end) <= 0 {
			n.right = n.right.remove(start, end, name)
		}
	}

	n = n.compact()

	if !n.isLeaf() {
		n.left.height = n.left.updateHeight()
		n.right.height = n.right.updateHeight()
	}
	n.height = n.updateHeight()

	return n.rebalance()
}

// compact collapses structure the removal made redundant. Highest priority:
// if neither child subtree stores an interval, the split carries no
// information and n reverts to a leaf over its whole span (keeping its own
// covering set, which still exactly covers that span). Otherwise, a node
// whose own set is empty and whose structure repeats a child's rightmost or
// leftmost split adopts that child's identity, merging the two equal-covering
// leaves at the seam into one.
func (n *node[E]) compact() *node[E] {
	if n.isLeaf() {
		return n
	}

	if n.left.empty() && n.right.empty() {
		n.left, n.right = nil, nil
		n.boundary = Bound[E]{}
		n.height = 0
		return n
	}

	if len(n.covering) != 0 {
		return n
	}

	// The seam merge is only sound when both nodes being fused into one
	// span are leaves (an internal grandchild still partitions its span and
	// cannot be widened without breaking the tiling of its own children)
	// and when the adopted child stores nothing itself: a set covering the
	// child's span must not be re-labelled as covering the wider span.
	if l := n.left; !l.isLeaf() && len(l.covering) == 0 && n.right.isLeaf() &&
		l.right.isLeaf() && coveringEqual(l.right, n.right) {
		n.boundary = l.boundary
		n.right = l.right
		n.right.max = n.max
		n.left = l.left
		return n
	}

	if r := n.right; !r.isLeaf() && len(r.covering) == 0 && n.left.isLeaf() &&
		r.left.isLeaf() && coveringEqual(r.left, n.left) {
		n.boundary = r.boundary
		n.left = r.left
		n.left.min = n.min
		n.right = r.right
		return n
	}

	return n
}

func coveringEqual[E cmp.Ordered](a, b *node[E]) bool {
	if len(a.covering) != len(b.covering) {
		return false
	}
	for name := range a.covering {
		if _, ok := b.covering[name]; !ok {
			return false
		}
	}
	return true
}
