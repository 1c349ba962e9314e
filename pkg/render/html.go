package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/akabanov57/IntervalTree/pkg/interval"
	"github.com/akabanov57/IntervalTree/pkg/intervaltree"
)

// WriteHTML renders root as an interactive go-echarts tree chart and writes
// the resulting standalone HTML page to w. This is a richer alternative to
// [WriteHierarchy] for trees too large to read comfortably as indented text.
func WriteHTML[T interval.Coord](w io.Writer, root *intervaltree.NodeView[T]) error {
	tree := charts.NewTree()
	tree.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Interval Tree"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "white"}),
	)

	tree.AddSeries("tree", []opts.TreeData{*toTreeData(root)},
		charts.WithTreeOpts(opts.TreeChart{
			Layout:           "orthogonal",
			Orient:           "LR",
			InitialTreeDepth: -1,
		}),
	)

	if err := tree.Render(w); err != nil {
		return fmt.Errorf("render: write html tree: %w", err)
	}

	return nil
}

func toTreeData[T interval.Coord](n *intervaltree.NodeView[T]) *opts.TreeData {
	if n == nil {
		return &opts.TreeData{Name: "nil"}
	}

	label := "BLACK"
	if n.Red {
		label = "RED"
	}

	data := &opts.TreeData{
		Name: fmt.Sprintf("%s (%s) max=%v min=%v", n.Key, label, n.Max, n.Min),
	}

	if n.Left != nil {
		data.Children = append(data.Children, toTreeData(n.Left))
	}

	if n.Right != nil {
		data.Children = append(data.Children, toTreeData(n.Right))
	}

	return data
}
