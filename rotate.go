package intervaltree

// The rotations below do more than the textbook pointer rewrite: the promoted
// child takes over the old root's span and the demoted node's span shrinks to
// one side of the promoted boundary. Every covering set whose node changed
// span must be reassigned so that no interval is left uncovered and none is
// duplicated across siblings. Both sets are snapshotted before any of them is
// rewritten.

// rotateRight promotes the left child and returns it as the subtree root.
func (n *node[E]) rotateRight() *node[E] {
	if n.left.isLeaf() {
		panic("intervaltree: rotate right into leaf child")
	}

	// nodeCov covered the full span [min,max]; childCov covered the old
	// left span [min, left.boundary].
	nodeCov := n.covering
	childCov := n.left.covering

	root := n.left
	n.left = root.right
	root.right = n

	root.min = n.min
	root.max = n.max
	n.min = root.boundary

	// root now owns the full span, so it inherits the old root's set. The
	// old left span is now tiled by root.left and n.left, so the old left
	// child's set lands on both.
	root.covering = nodeCov
	n.covering = make(map[string]struct{})
	for name := range childCov {
		root.left.covering[name] = struct{}{}
		n.left.covering[name] = struct{}{}
	}

	n.mergeChildren()

	n.height = n.updateHeight()
	root.height = root.updateHeight()
	return root
}

// rotateLeft promotes the right child; mirror of rotateRight.
func (n *node[E]) rotateLeft() *node[E] {
	if n.right.isLeaf() {
		panic("intervaltree: rotate left into leaf child")
	}

	nodeCov := n.covering
	childCov := n.right.covering

	root := n.right
	n.right = root.left
	root.left = n

	root.min = n.min
	root.max = n.max
	n.max = root.boundary

	root.covering = nodeCov
	n.covering = make(map[string]struct{})
	for name := range childCov {
		root.right.covering[name] = struct{}{}
		n.right.covering[name] = struct{}{}
	}

	n.mergeChildren()

	n.height = n.updateHeight()
	root.height = root.updateHeight()
	return root
}

// mergeChildren re-canonicalizes after redistribution: a name held by both
// children covers the whole span and belongs at n, exactly once.
func (n *node[E]) mergeChildren() {
	for name := range n.left.covering {
		if _, ok := n.right.covering[name]; ok {
			n.covering[name] = struct{}{}
			delete(n.left.covering, name)
			delete(n.right.covering, name)
		}
	}
}

// rebalance restores the AVL property at n after a height change, applying a
// double rotation when the heavy child leans the other way, and returns the
// subtree root.
func (n *node[E]) rebalance() *node[E] {
	var root *node[E]
	switch bal := n.balance(); {
	case bal < -1:
		if n.left.balance() > 0 && !n.left.right.isLeaf() {
			n.left = n.left.rotateLeft()
		}
		root = n.rotateRight()
	case bal > 1:
		if n.right.balance() < 0 && !n.right.left.isLeaf() {
			n.right = n.right.rotateRight()
		}
		root = n.rotateLeft()
	default:
		return n
	}

	root.left.height = root.left.updateHeight()
	root.right.height = root.right.updateHeight()
	root.height = root.updateHeight()
	return root
}
