// Package hybridbfs is a shared-memory, direction-optimizing breadth-first
// search engine over large static undirected graphs.
//
// Given a graph G=(V,E) and a source vertex s, it computes, for every
// vertex reachable from s, its BFS distance and a BFS parent (some neighbor
// one level closer to s). Unreachable vertices keep the sentinel
// solution.NotVisited.
//
// The engine implements the Beamer et al. (SC'12) direction-optimizing
// traversal: a parallel top-down step (frontier vertices claim unvisited
// neighbors via atomic CAS), a parallel bottom-up step (unvisited vertices
// probe their neighbors for the current layer), and a hybrid driver that
// switches between them based on frontier edge-mass.
//
// Subpackages:
//
//	csr/       — immutable compressed-sparse-row graph storage
//	frontier/  — append-only per-worker frontier buffers and their merge
//	solution/  — the atomic distance/parent arrays mutated during a traversal
//	hybrid/    — the top-down step, bottom-up step, and adaptive driver
//	loaders/   — MatrixMarket and edge-list graph file readers
//	graphgen/  — small named-topology CSR generators, used by tests
//	cmd/bfs/   — the command-line entry point
//
// The core (csr, frontier, solution, hybrid) performs no I/O and only
// synchronizes at step boundaries and on the atomic distance word; loading,
// CLI argument handling, and logging are external collaborators.
package hybridbfs
