// Package intervaltree provides a dynamic, self-balancing index over closed
// intervals on an ordered line. It answers point-stabbing ("which intervals
// contain p?") and range-overlap ("which intervals intersect [s,e]?") queries
// in O(log n + k), and supports insertion and removal of named intervals with
// AVL height guarantees.
//
// Internally each interval is decomposed into the minimal set of node spans
// that exactly tile it, and each tiling node records the interval's name
// once. Rotations repair the decomposition as they rewrite structure, and
// removal compacts nodes the deleted interval leaves redundant, so the tree
// stays O(live intervals) in size across any add/remove workload.
//
// A Tree is not safe for concurrent use. Queries are pure reads and may run
// concurrently with each other, but never with Add, Remove, or Clear; callers
// needing that must wrap the tree in their own lock.
package intervaltree

import (
	"cmp"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrInvalidInterval rejects an interval or query range whose start is
	// not strictly below its end.
	ErrInvalidInterval = errors.New("interval start must be below its end")

	// ErrDuplicateName rejects adding a name that is already indexed.
	ErrDuplicateName = errors.New("interval name already present")

	// ErrNotFound reports a name that is not indexed.
	ErrNotFound = errors.New("interval not found")
)

// Endpoints are the registered bounds of a live interval.
type Endpoints[E cmp.Ordered] struct {
	Start Bound[E]
	End   Bound[E]
}

// Tree is the interval index facade. It owns the root node and a
// name->endpoints registry for O(1) bounds lookup; all validation happens
// here before any mutation, so a failed call never changes the tree.
//
// The zero value is not usable; construct with New.
type Tree[E cmp.Ordered] struct {
	root   *node[E]
	bounds map[string]Endpoints[E]
	logger *zap.Logger
}

// New returns an empty tree spanning (-inf,+inf).
func New[E cmp.Ordered]() *Tree[E] {
	return &Tree[E]{
		root:   newLeaf(NegInf[E](), PosInf[E]()),
		bounds: make(map[string]Endpoints[E]),
		logger: zap.NewNop(),
	}
}

// SetLogger installs a logger for mutation diagnostics. By default the tree
// does not log.
func (t *Tree[E]) SetLogger(l *zap.Logger) {
	t.logger = l
}

// Add indexes the closed interval [start,end] under name. start must be
// strictly below end (sentinel bounds are allowed), and name must not already
// be present.
func (t *Tree[E]) Add(start, end Bound[E], name string) error {
	if start.Compare(end) >= 0 {
		return fmt.Errorf("%w: add %q [%s,%s]", ErrInvalidInterval, name, start, end)
	}
	if _, ok := t.bounds[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	t.root = t.root.add(start, end, name)
	t.bounds[name] = Endpoints[E]{Start: start, End: end}

	t.logger.Debug("added interval",
		zap.String("name", name),
		zap.Stringer("start", start),
		zap.Stringer("end", end),
		zap.Int("height", t.root.height))
	return nil
}

// Remove deletes the named interval from the index.
func (t *Tree[E]) Remove(name string) error {
	ep, ok := t.bounds[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	t.root = t.root.remove(ep.Start, ep.End, name)
	delete(t.bounds, name)

	t.logger.Debug("removed interval",
		zap.String("name", name),
		zap.Int("height", t.root.height))
	return nil
}

// TestPoint returns the names of all intervals containing p, sorted.
func (t *Tree[E]) TestPoint(p Bound[E]) []string {
	out := make(map[string]struct{})
	t.root.stab(p, out)
	return sortedNames(out)
}

// TestRange returns the names of all intervals overlapping [start,end],
// sorted. start must be strictly below end.
func (t *Tree[E]) TestRange(start, end Bound[E]) ([]string, error) {
	if start.Compare(end) >= 0 {
		return nil, fmt.Errorf("%w: range [%s,%s]", ErrInvalidInterval, start, end)
	}
	out := make(map[string]struct{})
	t.root.overlap(start, end, out)
	return sortedNames(out), nil
}

// Endpoints returns the registered bounds of name.
func (t *Tree[E]) Endpoints(name string) (Endpoints[E], error) {
	ep, ok := t.bounds[name]
	if !ok {
		return Endpoints[E]{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return ep, nil
}

// Clear resets the tree to empty.
func (t *Tree[E]) Clear() {
	t.root = newLeaf(NegInf[E](), PosInf[E]())
	t.bounds = make(map[string]Endpoints[E])
}

// Len returns the number of live intervals.
func (t *Tree[E]) Len() int {
	return len(t.bounds)
}

// Names returns the live interval names, sorted.
func (t *Tree[E]) Names() []string {
	names := make([]string, 0, len(t.bounds))
	for name := range t.bounds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Height returns the height of the root node.
func (t *Tree[E]) Height() int {
	return t.root.height
}

// String renders the tree structure for debugging.
func (t *Tree[E]) String() string {
	var sb strings.Builder
	t.root.dump(&sb, 0)
	return strings.TrimRight(sb.String(), "\n")
}

func sortedNames(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
