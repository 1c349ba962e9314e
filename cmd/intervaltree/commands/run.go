// Package commands implements the intervaltree demo CLI's subcommands.
package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akabanov57/IntervalTree/internal/observability"
	"github.com/akabanov57/IntervalTree/pkg/config"
	"github.com/akabanov57/IntervalTree/pkg/interval"
	"github.com/akabanov57/IntervalTree/pkg/intervaltree"
	"github.com/akabanov57/IntervalTree/pkg/render"
)

// Sentinel errors for malformed run scripts.
var (
	ErrUnknownCommand = errors.New("run: unknown command")
	ErrMalformedLine  = errors.New("run: malformed line")
)

const (
	cmdInsert      = "insert"
	cmdRemove      = "remove"
	cmdSearch      = "search"
	cmdOverlap     = "overlap"
	cmdSuccessor   = "successor"
	cmdPredecessor = "predecessor"
	cmdExtremes    = "extremes"
	cmdHierarchy   = "hierarchy"
	cmdSequence    = "sequence"
	cmdTable       = "table"
	cmdHTML        = "html"
)

// runOptions holds flags for NewRunCommand.
type runOptions struct {
	scriptPath  string
	configPath  string
	color       bool
	metricsAddr string
}

// NewRunCommand builds the "run" subcommand: it executes a line-oriented
// script of tree operations against a single in-memory tree and prints each
// operation's result, one line at a time, in the order it ran.
//
// Script grammar, one command per line, blank lines and "#" comments ignored:
//
//	insert START END
//	remove START
//	search START
//	overlap START END
//	successor START
//	predecessor START
//	extremes
//	hierarchy
//	sequence
//	table
//	html PATH
func NewRunCommand() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a script of insert/remove/search/overlap operations against one tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScript(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.scriptPath, "script", "f", "", "path to a script file (default: stdin)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a config file (default: search local/etc paths, then built-in defaults)")
	cmd.Flags().BoolVar(&opts.color, "color", false, "colorize RED/BLACK node labels in hierarchy/table output")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address after the script runs, until interrupted (overrides config)")

	return cmd
}

func runScript(ctx context.Context, out io.Writer, opts *runOptions) error {
	in := os.Stdin

	if opts.scriptPath != "" {
		f, err := os.Open(opts.scriptPath)
		if err != nil {
			return fmt.Errorf("run: open script: %w", err)
		}
		defer f.Close()

		in = f
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("run: load config: %w", err)
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.Environment = cfg.Logging.Environment
	obsCfg.LogLevel = observability.LevelFromString(cfg.Logging.Level)
	obsCfg.LogJSON = cfg.Logging.Format == "json"

	handlerOpts := &slog.HandlerOptions{Level: obsCfg.LogLevel}

	var inner slog.Handler
	if obsCfg.LogJSON {
		inner = slog.NewJSONHandler(out, handlerOpts)
	} else {
		inner = slog.NewTextHandler(out, handlerOpts)
	}

	logger := slog.New(observability.NewTracingHandler(inner, obsCfg))

	metricsAddr := opts.metricsAddr
	if metricsAddr == "" && cfg.Metrics.Enabled {
		metricsAddr = fmt.Sprintf(":%d", cfg.Metrics.Port)
	}

	var metrics *observability.TreeMetrics

	var exporter *observability.PrometheusExporter

	if metricsAddr != "" {
		exporter, err = observability.NewPrometheusExporter()
		if err != nil {
			return fmt.Errorf("run: create metrics exporter: %w", err)
		}

		metrics, err = observability.NewTreeMetrics(exporter.Meter)
		if err != nil {
			return fmt.Errorf("run: create tree metrics: %w", err)
		}
	}

	tree := intervaltree.New[int]()
	renderOpts := render.Options{Color: opts.color}

	scanner := bufio.NewScanner(in)

	lineNum := 0
	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := execLine(ctx, out, tree, metrics, renderOpts, line); err != nil {
			return fmt.Errorf("run: line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("run: read script: %w", err)
	}

	logger.InfoContext(ctx, "script complete", "size", tree.Len())

	if exporter != nil {
		fmt.Fprintf(out, "serving metrics on %s until interrupted\n", metricsAddr)

		if err := http.ListenAndServe(metricsAddr, exporter.Handler); err != nil { //nolint:gosec // demo CLI, not a production listener
			return fmt.Errorf("run: serve metrics: %w", err)
		}
	}

	return nil
}

func execLine(
	ctx context.Context,
	out io.Writer,
	tree *intervaltree.Tree[int],
	metrics *observability.TreeMetrics,
	renderOpts render.Options,
	line string,
) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case cmdInsert:
		start, end, err := parseTwoInts(fields[1:])
		if err != nil {
			return err
		}

		iv, err := interval.New(start, end)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		accepted := tree.Insert(iv)
		if metrics != nil {
			metrics.RecordInsert(ctx, accepted)
		}

		fmt.Fprintf(out, "insert %s -> %v\n", iv, accepted)

	case cmdRemove:
		start, err := parseOneInt(fields[1:])
		if err != nil {
			return err
		}

		removed := tree.Remove(interval.Interval[int]{Start: start})
		if metrics != nil {
			metrics.RecordRemove(ctx, removed)
		}

		fmt.Fprintf(out, "remove %d -> %v\n", start, removed)

	case cmdSearch:
		start, err := parseOneInt(fields[1:])
		if err != nil {
			return err
		}

		got := tree.SearchStart(start)
		if metrics != nil {
			metrics.RecordSearch(ctx, got.Valid())
		}

		fmt.Fprintf(out, "search %d -> %s\n", start, formatSearchResult(got))

	case cmdOverlap:
		start, end, err := parseTwoInts(fields[1:])
		if err != nil {
			return err
		}

		query := interval.Interval[int]{Start: start, End: end}
		results := intervaltree.NewResultSet[int]()
		tree.OverlapSearch(query, results)

		if metrics != nil {
			metrics.RecordOverlapSearch(ctx, len(results.Slice()))
		}

		fmt.Fprintf(out, "overlap %s -> %s\n", query, formatResults(results.Slice()))

	case cmdSuccessor:
		start, err := parseOneInt(fields[1:])
		if err != nil {
			return err
		}

		got := tree.Successor(interval.Interval[int]{Start: start})
		fmt.Fprintf(out, "successor %d -> %s\n", start, formatSearchResult(got))

	case cmdPredecessor:
		start, err := parseOneInt(fields[1:])
		if err != nil {
			return err
		}

		got := tree.Predecessor(interval.Interval[int]{Start: start})
		fmt.Fprintf(out, "predecessor %d -> %s\n", start, formatSearchResult(got))

	case cmdExtremes:
		fmt.Fprintf(out, "extremes min=%s max=%s\n", formatSearchResult(tree.Min()), formatSearchResult(tree.Max()))

	case cmdHierarchy:
		return render.WriteHierarchy(out, tree.View(), renderOpts)

	case cmdSequence:
		if err := render.WriteSequence(out, tree.View()); err != nil {
			return err
		}

		fmt.Fprintln(out)

	case cmdTable:
		return render.WriteTable(out, tree.View(), renderOpts)

	case cmdHTML:
		if len(fields) != 2 {
			return fmt.Errorf("%w: expected 1 argument, got %d", ErrMalformedLine, len(fields)-1)
		}

		f, err := os.Create(fields[1])
		if err != nil {
			return fmt.Errorf("run: create html output: %w", err)
		}
		defer f.Close()

		return render.WriteHTML(f, tree.View())

	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	return nil
}

func formatSearchResult(got interval.Interval[int]) string {
	if !got.Valid() {
		return "not found"
	}

	return got.String()
}

func formatResults(results []interval.Interval[int]) string {
	if len(results) == 0 {
		return "(none)"
	}

	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = r.String()
	}

	return strings.Join(parts, " ")
}

func parseOneInt(fields []string) (int, error) {
	if len(fields) != 1 {
		return 0, fmt.Errorf("%w: expected 1 argument, got %d", ErrMalformedLine, len(fields))
	}

	v, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}

	return v, nil
}

func parseTwoInts(fields []string) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected 2 arguments, got %d", ErrMalformedLine, len(fields))
	}

	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}

	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}

	return a, b, nil
}
