// Package render provides presentation-layer adapters over an
// [intervaltree.Tree] snapshot: a preorder hierarchy dump, an in-order key
// sequence, and a tabular listing. None of them touch tree internals; they
// walk the [intervaltree.NodeView] snapshot exposed by [intervaltree.Tree.View].
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/akabanov57/IntervalTree/pkg/interval"
	"github.com/akabanov57/IntervalTree/pkg/intervaltree"
)

const (
	branchLast   = "R----"
	branchInner  = "L----"
	indentOpen   = "|    "
	indentClosed = "     "
)

// Options configures the writers in this package.
type Options struct {
	// Color colorizes RED/BLACK node labels (red in red, black in the
	// terminal's default bold) instead of printing them plain.
	Color bool
}

func colorize(opts Options, red bool, label string) string {
	if !opts.Color {
		return label
	}

	if red {
		return color.RedString(label)
	}

	return color.New(color.Bold).Sprint(label)
}

// WriteHierarchy writes a preorder dump of root: each node rendered as
// "{key:...,max:...,min:...}(RED|BLACK)", prefixed by "R----" or "L----" and
// indented by a running "|    "/"     " continuation per ancestor, the way a
// textbook red-black tree hierarchy dump does. A nil root writes nothing.
func WriteHierarchy[T interval.Coord](w io.Writer, root *intervaltree.NodeView[T], opts Options) error {
	if root == nil {
		return nil
	}

	return writeHierarchyNode(w, root, "", true, opts)
}

func writeHierarchyNode[T interval.Coord](w io.Writer, n *intervaltree.NodeView[T], indent string, last bool, opts Options) error {
	branch := branchInner
	nextIndent := indent + indentOpen

	if last {
		branch = branchLast
		nextIndent = indent + indentClosed
	}

	label := "BLACK"
	if n.Red {
		label = "RED"
	}

	line := fmt.Sprintf("%s%s{key:%s,max:%v,min:%v}(%s)\n",
		indent, branch, n.Key, n.Max, n.Min, colorize(opts, n.Red, label))

	if _, err := io.WriteString(w, line); err != nil {
		return fmt.Errorf("render: write hierarchy line: %w", err)
	}

	if n.Left != nil {
		if err := writeHierarchyNode(w, n.Left, nextIndent, false, opts); err != nil {
			return err
		}
	}

	if n.Right != nil {
		if err := writeHierarchyNode(w, n.Right, nextIndent, true, opts); err != nil {
			return err
		}
	}

	return nil
}

// WriteSequence writes the in-order key sequence of root, each key's
// textual form followed by a trailing space. A nil root writes nothing.
func WriteSequence[T interval.Coord](w io.Writer, root *intervaltree.NodeView[T]) error {
	return writeSequenceNode(w, root)
}

func writeSequenceNode[T interval.Coord](w io.Writer, n *intervaltree.NodeView[T]) error {
	if n == nil {
		return nil
	}

	if err := writeSequenceNode(w, n.Left); err != nil {
		return err
	}

	if _, err := io.WriteString(w, n.Key.String()+" "); err != nil {
		return fmt.Errorf("render: write sequence token: %w", err)
	}

	if err := writeSequenceNode(w, n.Right); err != nil {
		return err
	}

	return nil
}

// WriteTable writes root's in-order intervals as a table with Start, End,
// Length and Color columns. Length is rendered with thousands separators via
// go-humanize so wide coordinate ranges stay readable.
func WriteTable[T interval.Coord](w io.Writer, root *intervaltree.NodeView[T], opts Options) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Start", "End", "Length", "Color"})

	var walk func(n *intervaltree.NodeView[T])

	walk = func(n *intervaltree.NodeView[T]) {
		if n == nil {
			return
		}

		walk(n.Left)

		label := "BLACK"
		if n.Red {
			label = "RED"
		}

		length := interval.Interval[T]{Start: n.Key.Start, End: n.Key.End}.Length()
		lengthText := fmt.Sprint(length)
		if n, ok := parseCoordInt(length); ok {
			lengthText = humanize.Comma(n)
		}

		tw.AppendRow(table.Row{
			fmt.Sprint(n.Key.Start),
			fmt.Sprint(n.Key.End),
			lengthText,
			colorize(opts, n.Red, label),
		})

		walk(n.Right)
	}

	walk(root)
	tw.Render()

	return nil
}

// parseCoordInt converts a coordinate to an int64 for humanize formatting
// by round-tripping through the value's default string form. It reports
// false when that form is not a base-10 int64 (a fractional float, or an
// unsigned value above math.MaxInt64); WriteTable then prints the plain value.
func parseCoordInt[T interval.Coord](v T) (int64, bool) {
	n, err := strconv.ParseInt(fmt.Sprint(v), 10, 64)

	return n, err == nil
}
