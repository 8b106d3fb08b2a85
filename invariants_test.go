package intervaltree

import (
	"cmp"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkStructure walks the whole tree and fails the test if any structural
// invariant is broken: child spans must tile the parent span at the boundary,
// stored heights must match the height formula, a name may appear at most
// once on any root-leaf path, and the fragments holding each name must
// exactly tile the interval registered for it.
func checkStructure[E cmp.Ordered](t *testing.T, tr *Tree[E]) {
	t.Helper()

	fragments := make(map[string][]Endpoints[E])
	onPath := make(map[string]bool)

	var walk func(n *node[E], min, max Bound[E])
	walk = func(n *node[E], min, max Bound[E]) {
		require.Zero(t, n.min.Compare(min), "span min %s, expected %s", n.min, min)
		require.Zero(t, n.max.Compare(max), "span max %s, expected %s", n.max, max)
		require.Equal(t, n.updateHeight(), n.height, "stale height at [%s,%s]", n.min, n.max)

		for name := range n.covering {
			require.False(t, onPath[name], "%q stored twice on one root-leaf path", name)
			fragments[name] = append(fragments[name], Endpoints[E]{Start: n.min, End: n.max})
		}

		if n.isLeaf() {
			require.Nil(t, n.right, "leaf with a right child at [%s,%s]", n.min, n.max)
			return
		}
		require.NotNil(t, n.right, "internal node missing right child at [%s,%s]", n.min, n.max)
		require.Negative(t, min.Compare(n.boundary), "boundary %s not above span min %s", n.boundary, min)
		require.Negative(t, n.boundary.Compare(max), "boundary %s not below span max %s", n.boundary, max)

		for name := range n.covering {
			onPath[name] = true
		}
		walk(n.left, min, n.boundary)
		walk(n.right, n.boundary, max)
		for name := range n.covering {
			delete(onPath, name)
		}
	}
	walk(tr.root, NegInf[E](), PosInf[E]())

	for name, ep := range tr.bounds {
		fr := fragments[name]
		require.NotEmpty(t, fr, "registered interval %q has no fragments in the tree", name)
		sort.Slice(fr, func(i, j int) bool { return fr[i].Start.Compare(fr[j].Start) < 0 })
		require.Zero(t, fr[0].Start.Compare(ep.Start),
			"%q: first fragment starts at %s, interval starts at %s", name, fr[0].Start, ep.Start)
		for i := 1; i < len(fr); i++ {
			require.Zero(t, fr[i].Start.Compare(fr[i-1].End),
				"%q: fragments do not tile (gap or overlap at %s)", name, fr[i].Start)
		}
		require.Zero(t, fr[len(fr)-1].End.Compare(ep.End),
			"%q: last fragment ends at %s, interval ends at %s", name, fr[len(fr)-1].End, ep.End)
	}
	for name := range fragments {
		_, ok := tr.bounds[name]
		require.True(t, ok, "tree holds %q but the registry does not", name)
	}
}

// checkBalance asserts the AVL property at every internal node. Only valid
// after insert-only workloads: a removal-driven collapse can shrink a subtree
// by more than one level, which a single rebalancing pass does not fully
// repair.
func checkBalance[E cmp.Ordered](t *testing.T, tr *Tree[E]) {
	t.Helper()

	var walk func(n *node[E])
	walk = func(n *node[E]) {
		if n.isLeaf() {
			return
		}
		bal := n.balance()
		require.LessOrEqual(t, bal, 1, "right-heavy node at [%s,%s]", n.min, n.max)
		require.GreaterOrEqual(t, bal, -1, "left-heavy node at [%s,%s]", n.min, n.max)
		walk(n.left)
		walk(n.right)
	}
	walk(tr.root)
}
