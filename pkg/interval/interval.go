// Package interval provides the half-open interval value type consumed by
// [github.com/akabanov57/IntervalTree/pkg/intervaltree]. It is a leaf
// collaborator: immutable, comparison-only, with no knowledge of trees,
// nodes, or balancing.
package interval

import (
	"errors"
	"fmt"
)

// ErrInvalidInterval is returned by [New] when the requested bounds cannot
// form a valid half-open interval.
var ErrInvalidInterval = errors.New("interval: invalid bounds")

// Coord is the set of coordinate types an Interval may be built from.
// The tree only ever compares and subtracts coordinates, so any of the
// built-in integer or floating-point kinds qualifies; [New] rejects
// negative bounds.
type Coord interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Interval is a half-open range [Start, End) over an ordered coordinate
// type T. The zero value [0,0) is the invalid sentinel returned by
// not-found lookups; see [Interval.Valid].
type Interval[T Coord] struct {
	Start T
	End   T
}

// New builds an [Interval] from start and end, rejecting start > end or
// negative bounds. Callers that already know their bounds are sane (e.g.
// a value copied out of the tree) may build the struct literal directly.
func New[T Coord](start, end T) (Interval[T], error) {
	var zero T

	if start < zero || end < zero {
		return Interval[T]{}, fmt.Errorf("%w: negative bound [%v,%v)", ErrInvalidInterval, start, end)
	}

	if start > end {
		return Interval[T]{}, fmt.Errorf("%w: start %v after end %v", ErrInvalidInterval, start, end)
	}

	return Interval[T]{Start: start, End: end}, nil
}

// Length returns End - Start.
func (i Interval[T]) Length() T {
	return i.End - i.Start
}

// Valid reports whether the interval is non-empty. The zero-valued
// sentinel [0,0) is invalid, matching the "not found" contract of Search.
func (i Interval[T]) Valid() bool {
	return i.End > i.Start
}

// Contains reports whether point falls within the half-open range.
func (i Interval[T]) Contains(point T) bool {
	return point >= i.Start && point < i.End
}

// Less orders intervals by Start only; two intervals sharing a Start are
// considered equal keys regardless of End. This is a deliberate property
// of the tree's key space: at most one interval may be stored per Start.
func (i Interval[T]) Less(other Interval[T]) bool {
	return i.Start < other.Start
}

// Equal reports key equality, i.e. equal Start. End is ignored.
func (i Interval[T]) Equal(other Interval[T]) bool {
	return i.Start == other.Start
}

// String renders the interval using the half-open notation "[start,end[".
func (i Interval[T]) String() string {
	return fmt.Sprintf("[%v,%v[", i.Start, i.End)
}

// Overlap reports whether a and b share any point: ¬(a.Start ≥ b.End ∨
// a.End ≤ b.Start). Because both bounds are half-open, an interval ending
// exactly where another begins does not overlap it.
func Overlap[T Coord](a, b Interval[T]) bool {
	return !(a.Start >= b.End || a.End <= b.Start)
}

// Difference returns up to two residual intervals of a \ b. The left
// residual covers [a.Start, b.Start) when a starts before b; the right
// residual covers [b.End, a.End) when a ends after b. Either or both
// residuals are the invalid zero value when the corresponding piece is
// empty. Non-overlapping inputs and fully-covered inputs both yield two
// invalid residuals; callers cannot distinguish the two cases from the
// result alone.
func Difference[T Coord](a, b Interval[T]) (Interval[T], Interval[T]) {
	if !Overlap(a, b) {
		return Interval[T]{}, Interval[T]{}
	}

	var left, right Interval[T]

	if a.Start < b.Start {
		left = Interval[T]{Start: a.Start, End: b.Start}
	}

	if a.End > b.End {
		right = Interval[T]{Start: b.End, End: a.End}
	}

	return left, right
}

// Intersect returns [max(a.Start,b.Start), min(a.End,b.End)) when a and b
// overlap, or the invalid zero value otherwise.
func Intersect[T Coord](a, b Interval[T]) Interval[T] {
	if !Overlap(a, b) {
		return Interval[T]{}
	}

	return Interval[T]{Start: max(a.Start, b.Start), End: min(a.End, b.End)}
}

// Union returns [min(a.Start,b.Start), max(a.End,b.End)) when a and b
// overlap, or the invalid zero value otherwise. The union of disjoint
// intervals is deliberately left undefined rather than represented as a
// span that would falsely claim coverage of the gap between them.
func Union[T Coord](a, b Interval[T]) Interval[T] {
	if !Overlap(a, b) {
		return Interval[T]{}
	}

	return Interval[T]{Start: min(a.Start, b.Start), End: max(a.End, b.End)}
}
