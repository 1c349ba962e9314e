package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// TreeMetrics instruments the four tree operations the demo CLI exposes:
// insert, remove, search and overlap search. Op counters are labeled by
// outcome (hit/miss, inserted/rejected) so a dashboard can distinguish
// no-op calls from ones that mutated the tree.
type TreeMetrics struct {
	ops      metric.Int64Counter
	matches  metric.Int64Histogram
	treeSize metric.Int64UpDownCounter
}

// NewTreeMetrics creates the instrument set on meter.
func NewTreeMetrics(meter metric.Meter) (*TreeMetrics, error) {
	ops, err := meter.Int64Counter(
		"intervaltree_operations_total",
		metric.WithDescription("Count of tree operations by kind and outcome."),
	)
	if err != nil {
		return nil, fmt.Errorf("create operations counter: %w", err)
	}

	matches, err := meter.Int64Histogram(
		"intervaltree_overlap_matches",
		metric.WithDescription("Number of intervals returned per overlap search."),
	)
	if err != nil {
		return nil, fmt.Errorf("create overlap histogram: %w", err)
	}

	treeSize, err := meter.Int64UpDownCounter(
		"intervaltree_size",
		metric.WithDescription("Current number of intervals stored."),
	)
	if err != nil {
		return nil, fmt.Errorf("create size gauge: %w", err)
	}

	return &TreeMetrics{ops: ops, matches: matches, treeSize: treeSize}, nil
}

// RecordInsert records an insert attempt, distinguishing an accepted insert
// from one rejected as a duplicate start.
func (m *TreeMetrics) RecordInsert(ctx context.Context, accepted bool) {
	m.ops.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", "insert"),
		attribute.Bool("accepted", accepted),
	))

	if accepted {
		m.treeSize.Add(ctx, 1)
	}
}

// RecordRemove records a remove attempt, distinguishing a hit from a miss.
func (m *TreeMetrics) RecordRemove(ctx context.Context, removed bool) {
	m.ops.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", "remove"),
		attribute.Bool("removed", removed),
	))

	if removed {
		m.treeSize.Add(ctx, -1)
	}
}

// RecordSearch records a point/start lookup, distinguishing a hit from a miss.
func (m *TreeMetrics) RecordSearch(ctx context.Context, hit bool) {
	m.ops.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", "search"),
		attribute.Bool("hit", hit),
	))
}

// RecordOverlapSearch records an overlap query and the number of matches it
// produced.
func (m *TreeMetrics) RecordOverlapSearch(ctx context.Context, matchCount int) {
	m.ops.Add(ctx, 1, metric.WithAttributes(attribute.String("op", "overlap_search")))
	m.matches.Record(ctx, int64(matchCount))
}
