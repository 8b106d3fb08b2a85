package intervaltree

import (
	"cmp"
	"fmt"
	"sort"
	"strings"
)

// node represents one contiguous span [min,max] of the domain. A leaf has no
// boundary and no children; an internal node splits its span at boundary into
// left = [min,boundary] and right = [boundary,max]. The two child spans share
// the boundary point, so point queries at the boundary visit both sides.
//
// covering holds the names whose interval fully contains [min,max] and whose
// decomposition placed them at this node rather than an ancestor.
type node[E cmp.Ordered] struct {
	min      Bound[E]
	max      Bound[E]
	boundary Bound[E] // meaningful only when internal
	covering map[string]struct{}
	left     *node[E]
	right    *node[E]
	height   int
}

func newLeaf[E cmp.Ordered](min, max Bound[E]) *node[E] {
	return &node[E]{
		min:      min,
		max:      max,
		covering: make(map[string]struct{}),
	}
}

func (n *node[E]) isLeaf() bool {
	return n.left == nil
}

// updateHeight computes the height of n from its children. A leaf is height
// 0; a leaf child contributes -1, so an internal node with two leaf children
// is also height 0. The balance factor below compares stored child heights
// directly (where a leaf reads as 0), and the rebalancing decisions depend on
// this exact pairing of conventions.
func (n *node[E]) updateHeight() int {
	if n.isLeaf() {
		return 0
	}
	lh, rh := -1, -1
	if !n.left.isLeaf() {
		lh = n.left.height
	}
	if !n.right.isLeaf() {
		rh = n.right.height
	}
	return 1 + max(lh, rh)
}

// balance is height(right) - height(left) using stored heights, 0 for a leaf.
func (n *node[E]) balance() int {
	var lh, rh int
	if n.left != nil {
		lh = n.left.height
	}
	if n.right != nil {
		rh = n.right.height
	}
	return rh - lh
}

// empty reports whether no interval is stored at n or anywhere beneath it.
func (n *node[E]) empty() bool {
	if len(n.covering) > 0 {
		return false
	}
	if n.isLeaf() {
		return true
	}
	return n.left.empty() && n.right.empty()
}

// dump renders the subtree for debugging, one node per line, children
// indented beneath their parent.
func (n *node[E]) dump(sb *strings.Builder, depth int) {
	names := make([]string, 0, len(n.covering))
	for name := range n.covering {
		names = append(names, name)
	}
	sort.Strings(names)

	if n.isLeaf() {
		fmt.Fprintf(sb, "L [%s,%s] : %v\n", n.min, n.max, names)
		return
	}
	fmt.Fprintf(sb, "B %s [%s,%s] : %v\n", n.boundary, n.min, n.max, names)
	indent := strings.Repeat("  ", depth+1)
	sb.WriteString(indent + "< ")
	n.left.dump(sb, depth+1)
	sb.WriteString(indent + "> ")
	n.right.dump(sb, depth+1)
}
