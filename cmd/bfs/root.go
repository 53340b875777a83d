package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/hybridbfs/hybrid"
	"github.com/katalvlaran/hybridbfs/loaders"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "bfs <source_node> <graph_path> <num_threads> <bfs_method>",
	Short: "Run a direction-optimizing parallel BFS over a CSR graph",
	Args:  cobra.ExactArgs(4),
	RunE:  runBFS,
	// SilenceUsage keeps a bad run from dumping the full usage block on top
	// of the one-line diagnostic spec.md §7 asks for.
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-iteration diagnostics to stderr")
}

func runBFS(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)

	source, err := strconv.Atoi(args[0])
	if err != nil || source < 0 {
		return fmt.Errorf("source_node must be a non-negative integer, got %q", args[0])
	}

	graphPath := args[1]

	numThreads, err := strconv.Atoi(args[2])
	if err != nil || numThreads <= 0 {
		return fmt.Errorf("num_threads must be a positive integer, got %q", args[2])
	}

	method, err := parseMethod(args[3])
	if err != nil {
		return err
	}

	g, err := loaders.Load(graphPath, logger)
	if err != nil {
		return fmt.Errorf("loading %s: %w", graphPath, err)
	}

	opts := hybrid.Options{
		NumWorkers: numThreads,
		Method:     method,
	}
	if verbose {
		opts.OnStep = func(info hybrid.StepInfo) {
			logger.Debug("step",
				slog.Int("iteration", info.Iteration),
				slog.String("direction", info.Direction.String()),
				slog.Int("frontier_size", info.FrontierSize),
				slog.Int64("edges_examined", info.EdgesExamined),
				slog.Duration("elapsed", info.Elapsed),
			)
		}
	}

	start := time.Now()
	_, _, err = hybrid.Run(g, int32(source), opts)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("traversal: %w", err)
	}

	elapsedMS := float64(elapsed) / float64(time.Millisecond)
	numUndirectedEdges := float64(g.NumEdges()) / 2
	var mteps float64
	if elapsedMS > 0 {
		mteps = numUndirectedEdges / (elapsedMS * 1000)
	}
	fmt.Printf("%.4f %.4f\n", elapsedMS, mteps)

	return nil
}

func parseMethod(s string) (hybrid.Method, error) {
	switch s {
	case "0":
		return hybrid.MethodTopDown, nil
	case "1":
		return hybrid.MethodBottomUp, nil
	case "2":
		return hybrid.MethodHybrid, nil
	default:
		return 0, fmt.Errorf("bfs_method must be 0, 1, or 2, got %q", s)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
