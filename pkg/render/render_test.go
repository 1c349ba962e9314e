package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akabanov57/IntervalTree/pkg/interval"
	"github.com/akabanov57/IntervalTree/pkg/intervaltree"
)

func buildTree(t *testing.T) *intervaltree.Tree[int] {
	t.Helper()

	tree := intervaltree.New[int]()
	for _, start := range []int{10, 5, 15} {
		require.True(t, tree.Insert(interval.Interval[int]{Start: start, End: start + 5}))
	}

	return tree
}

func TestWriteHierarchy_EmptyTreeWritesNothing(t *testing.T) {
	t.Parallel()

	tree := intervaltree.New[int]()

	var buf bytes.Buffer
	err := WriteHierarchy(&buf, tree.View(), Options{})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestWriteHierarchy_RootHasNoBranchIndent(t *testing.T) {
	t.Parallel()

	tree := buildTree(t)

	var buf bytes.Buffer
	require.NoError(t, WriteHierarchy(&buf, tree.View(), Options{}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "R----{key:[10,15["))
	assert.Contains(t, out, "(BLACK)")
}

func TestWriteSequence_TrailingSpacePerKey(t *testing.T) {
	t.Parallel()

	tree := buildTree(t)

	var buf bytes.Buffer
	require.NoError(t, WriteSequence(&buf, tree.View()))

	assert.Equal(t, "[5,10[ [10,15[ [15,20[ ", buf.String())
}

func TestWriteSequence_EmptyTreeWritesNothing(t *testing.T) {
	t.Parallel()

	tree := intervaltree.New[int]()

	var buf bytes.Buffer
	require.NoError(t, WriteSequence(&buf, tree.View()))
	assert.Empty(t, buf.String())
}

func TestWriteTable_ListsEveryIntervalInOrder(t *testing.T) {
	t.Parallel()

	tree := buildTree(t)

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, tree.View(), Options{}))

	out := buf.String()
	assert.Contains(t, out, "START")
	assert.Contains(t, out, "LENGTH")
}
