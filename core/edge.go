// Package core: the Edge value type.
//
// An Edge is an immutable (parent, child, label) triple. Fields are
// unexported, so the only non-zero Edge values a caller can hold are
// the ones produced by NewEdge, which validates all three fields. The
// zero Edge value means "no edge" and is rejected by Graph mutators.

package core

import "hash/maphash"

// edgeHashSeed is the process-wide seed for Edge.Hash. A single seed
// keeps hashes of equal edges equal within one process run.
var edgeHashSeed = maphash.MakeSeed()

// Edge is an immutable labeled connection from a parent node to a child
// node. Parent and child may be equal (self-loop). The label is opaque
// to the graph and only required to be unique among edges sharing the
// same (parent, child) pair, which the Graph enforces by storing edges
// as set members.
//
// Edge is a comparable value type: == is structural equality over all
// three fields, consistent with Equal and Hash.
type Edge[N, L comparable] struct {
	parent N
	child  N
	label  L
}

// NewEdge constructs an Edge from parent to child carrying label.
// All three fields are mandatory: the zero value of N or L means
// "absent" and yields ErrMissingNode or ErrMissingLabel. The returned
// Edge is immutable; no revalidation is ever needed after creation.
// Complexity: O(1).
func NewEdge[N, L comparable](parent, child N, label L) (Edge[N, L], error) {
	if isZero(parent) || isZero(child) {
		return Edge[N, L]{}, ErrMissingNode
	}
	if isZero(label) {
		return Edge[N, L]{}, ErrMissingLabel
	}

	return Edge[N, L]{parent: parent, child: child, label: label}, nil
}

// Parent returns the node this edge points from.
func (e Edge[N, L]) Parent() N { return e.parent }

// Child returns the node this edge points to.
func (e Edge[N, L]) Child() N { return e.child }

// Label returns the value attached to this edge.
func (e Edge[N, L]) Label() L { return e.label }

// Equal reports structural equality over parent, child and label.
// Comparing against the zero ("absent") Edge reports false; it is
// never an error.
func (e Edge[N, L]) Equal(other Edge[N, L]) bool {
	return e == other
}

// Hash returns a hash consistent with Equal: equal edges hash equal
// within a single process. It is the XOR of the hashes of the three
// fields.
// Complexity: O(1).
func (e Edge[N, L]) Hash() uint64 {
	return maphash.Comparable(edgeHashSeed, e.parent) ^
		maphash.Comparable(edgeHashSeed, e.child) ^
		maphash.Comparable(edgeHashSeed, e.label)
}

// mirror returns the reverse triple (child, parent, label), used by
// undirected graphs to store symmetric connectivity.
func (e Edge[N, L]) mirror() Edge[N, L] {
	return Edge[N, L]{parent: e.child, child: e.parent, label: e.label}
}

// isAbsent reports whether e is the zero Edge value.
func (e Edge[N, L]) isAbsent() bool {
	return e == Edge[N, L]{}
}
