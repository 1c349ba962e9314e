package intervaltree

import "github.com/akabanov57/IntervalTree/pkg/interval"

// NodeView is a read-only snapshot of one tree node. It exists so that
// external rendering collaborators (see package render) can walk the
// tree's structure without reaching into its internal node/sentinel
// representation. Absent children are nil, including on the snapshot of a
// leaf.
type NodeView[T interval.Coord] struct {
	Key   interval.Interval[T]
	Max   T
	Min   T
	Red   bool
	Left  *NodeView[T]
	Right *NodeView[T]
}

// View returns a snapshot of the tree's current structure, or nil for an
// empty tree. The snapshot is a deep copy and is never invalidated by later
// mutation of the tree.
func (t *Tree[T]) View() *NodeView[T] {
	return t.view(t.root)
}

func (t *Tree[T]) view(n *node[T]) *NodeView[T] {
	if t.isNil(n) {
		return nil
	}

	return &NodeView[T]{
		Key:   n.key,
		Max:   n.max,
		Min:   n.min,
		Red:   n.color == red,
		Left:  t.view(n.left),
		Right: t.view(n.right),
	}
}
