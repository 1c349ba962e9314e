package intervaltree

import "github.com/akabanov57/IntervalTree/pkg/interval"

// color is a red-black tree node color.
type color bool

// Red-black tree color constants.
const (
	red   color = false
	black color = true
)

// node is an augmented red-black tree node. Besides the usual BST/red-black
// fields it carries max and min: the maximum End and minimum Start over its
// own subtree, used to prune overlap queries.
//
// Every Tree owns exactly one shared nil sentinel (see [Tree.nilNode]); it
// stands in for every absent child and for an empty root. Its color is
// always black and its key/max/min are never read — code that reaches them
// is a bug, not a degenerate case to special-case. Its parent field is
// transient scratch written only by Remove, for fixDelete to read.
type node[T interval.Coord] struct {
	key    interval.Interval[T]
	parent *node[T]
	left   *node[T]
	right  *node[T]
	max    T
	min    T
	color  color
}

// isNil reports whether n is the tree's nil sentinel.
func (t *Tree[T]) isNil(n *node[T]) bool {
	return n == t.nilNode
}

// recalcAug recomputes n's max/min augmentation from its own key and its
// two children's cached augmentation. The sentinel contributes nothing:
// callers must never invoke this on the sentinel itself.
func (t *Tree[T]) recalcAug(n *node[T]) {
	n.max = n.key.End
	n.min = n.key.Start

	if !t.isNil(n.left) {
		if n.left.max > n.max {
			n.max = n.left.max
		}

		if n.left.min < n.min {
			n.min = n.left.min
		}
	}

	if !t.isNil(n.right) {
		if n.right.max > n.max {
			n.max = n.right.max
		}

		if n.right.min < n.min {
			n.min = n.right.min
		}
	}
}

// propagateAug walks from n up to the root, recomputing max/min at every
// ancestor. It must run to a fixed point; implementations may short-circuit
// once a recomputation yields an unchanged value, but correctness must
// never depend on doing so, so this one doesn't bother.
func (t *Tree[T]) propagateAug(n *node[T]) {
	for n != nil && !t.isNil(n) {
		t.recalcAug(n)
		n = n.parent
	}
}
