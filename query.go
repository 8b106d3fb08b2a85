package intervaltree

// stab unions into out the covering sets of every node whose span contains p.
// Both children are visited when p sits exactly on a boundary.
func (n *node[E]) stab(p Bound[E], out map[string]struct{}) {
	if n.min.Compare(p) <= 0 && p.Compare(n.max) <= 0 {
		for name := range n.covering {
			out[name] = struct{}{}
		}
	}
	if n.isLeaf() {
		return
	}
	if p.Compare(n.boundary) <= 0 {
		n.left.stab(p, out)
	}
	if p.Compare(n.boundary) >= 0 {
		n.right.stab(p, out)
	}
}

// overlap unions into out the covering sets of every node whose span
// intersects [start,end].
func (n *node[E]) overlap(start, end Bound[E], out map[string]struct{}) {
	if n.max.Compare(start) >= 0 && n.min.Compare(end) <= 0 {
		for name := range n.covering {
			out[name] = struct{}{}
		}
	}
	if n.isLeaf() {
		return
	}
	if start.Compare(n.boundary) <= 0 {
		n.left.overlap(start, end, out)
	}
	if n.boundary.Compare(end) <= 0 {
		n.right.overlap(start, end, out)
	}
}
