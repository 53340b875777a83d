// Package hybrid implements the direction-optimizing BFS traversal: the
// parallel top-down step, the parallel bottom-up step, and the adaptive
// driver that switches between them (Beamer et al., SC'12).
//
// What
//
//   - TopDownStep: work-parallel over the current frontier; each vertex
//     claims its unvisited neighbors via atomic CAS on distance.
//   - BottomUpStep: work-parallel over all still-unvisited vertices; each
//     probes its own neighbors for the current layer and, on finding one,
//     adopts it as parent under index-partitioned exclusivity (no CAS
//     needed — each vertex is owned by exactly one worker this step).
//   - Run: the driver, a two-state machine (TopDown / BottomUp) that chooses a
//     direction each iteration from frontier edge-mass, runs the
//     corresponding step, and swaps frontiers until the next one is empty.
//
// Why
//
//   - Top-down wastes work probing already-visited destinations once most
//     of the graph is discovered; bottom-up inverts the scan so cost
//     follows the unvisited set instead of the frontier's out-degree.
//     Switching between them when each stops paying for itself keeps BFS
//     close to the cheaper direction at every level.
//
// Determinism
//
//	Distances are identical across MethodTopDown, MethodBottomUp, and
//	MethodHybrid runs, and independent of worker count. Parents are not:
//	when multiple equidistant neighbors race to claim a vertex in a
//	top-down step, the winner is resolved by goroutine scheduling. A
//	bottom-up step takes the first current-layer neighbor in the vertex's
//	adjacency order.
//
// Concurrency
//
//	Steps synchronize only at their own entry/exit (a full barrier) and on
//	the atomic distance word during top-down's CAS. No locks, no I/O, no
//	blocking waits appear anywhere on the step hot path.
package hybrid
