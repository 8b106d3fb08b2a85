package intervaltree

import (
	"cmp"
	"fmt"
)

type boundKind int8

const (
	kindNegInf boundKind = iota - 1
	kindValue
	kindPosInf
)

// Bound is a point on the ordered domain E, extended with two sentinel
// values below and above every finite E. Using explicit sentinels instead of
// floating-point infinities lets the tree index integers, strings, or any
// other cmp.Ordered type.
type Bound[E cmp.Ordered] struct {
	value E
	kind  boundKind
}

// Value returns the finite bound at v.
func Value[E cmp.Ordered](v E) Bound[E] {
	return Bound[E]{value: v}
}

// NegInf returns the bound below every finite value.
func NegInf[E cmp.Ordered]() Bound[E] {
	return Bound[E]{kind: kindNegInf}
}

// PosInf returns the bound above every finite value.
func PosInf[E cmp.Ordered]() Bound[E] {
	return Bound[E]{kind: kindPosInf}
}

// Compare orders b against other: -1 if b is smaller, 0 if equal, 1 if
// larger. Equal sentinels compare equal.
func (b Bound[E]) Compare(other Bound[E]) int {
	if b.kind != other.kind {
		return cmp.Compare(b.kind, other.kind)
	}
	if b.kind != kindValue {
		return 0
	}
	return cmp.Compare(b.value, other.value)
}

// Finite reports the finite value of b, or false for a sentinel.
func (b Bound[E]) Finite() (E, bool) {
	return b.value, b.kind == kindValue
}

func (b Bound[E]) String() string {
	switch b.kind {
	case kindNegInf:
		return "-inf"
	case kindPosInf:
		return "+inf"
	default:
		return fmt.Sprintf("%v", b.value)
	}
}
