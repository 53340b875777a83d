// Command bfs runs a single direction-optimizing breadth-first search over
// a graph loaded from disk and reports its throughput.
//
// Usage:
//
//	bfs <source_node> <graph_path> <num_threads> <bfs_method>
//
// bfs_method is 0 (top-down only), 1 (bottom-up only), or 2 (hybrid,
// recommended). graph_path must end in ".mm" or ".txt". On success, exactly
// one line is printed to stdout: "<elapsed_ms> <mteps>".
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
