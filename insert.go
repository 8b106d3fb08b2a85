package intervaltree

// add decomposes [start,end] across the subtree rooted at n, splitting leaves
// where the interval ends strictly inside them, and returns the rebalanced
// subtree root for the caller to re-attach.
func (n *node[E]) add(start, end Bound[E], name string) *node[E] {
	switch {
	case start.Compare(n.min) <= 0 && end.Compare(n.max) >= 0:
		// The interval covers this whole span: record it here and stop.
		// Nothing below may hold it again.
		n.covering[name] = struct{}{}

	case n.isLeaf():
		n.split(start, end, name)

	default:
		// The interval ends strictly inside the span, so at least one side
		// holds a fragment. An interval straddling the boundary descends
		// into both.
		if start.Compare(n.boundary) < 0 || end.Compare(n.boundary) <= 0 {
			n.left = n.left.add(start, end, name)
		}
		if start.Compare(n.boundary) >= 0 || end.Compare(n.boundary) > 0 {
			n.right = n.right.add(start, end, name)
		}
	}

	if !n.isLeaf() {
		n.left.height = n.left.updateHeight()
		n.right.height = n.right.updateHeight()
	}
	n.height = n.updateHeight()

	return n.rebalance()
}

// split turns the leaf n into an internal node. The new boundary is whichever
// of start/end lies strictly inside (min,max), preferring start; the side
// fully covered by the interval receives the name, the other side recurses.
func (n *node[E]) split(start, end Bound[E], name string) {
	if start.Compare(n.min) > 0 {
		n.boundary = start
		n.left = newLeaf(n.min, n.boundary)
		if end.Compare(n.max) < 0 {
			// Interval lies strictly inside: the right side splits again
			// at end.
			n.right = newLeaf(n.boundary, n.max).add(start, end, name)
		} else {
			n.right = newLeaf(n.boundary, n.max)
			n.right.covering[name] = struct{}{}
		}
	} else if end.Compare(n.max) < 0 {
		n.boundary = end
		n.left = newLeaf(n.min, n.boundary)
		n.left.covering[name] = struct{}{}
		n.right = newLeaf(n.boundary, n.max)
	}
}
