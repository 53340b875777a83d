// Package csr provides an immutable compressed-sparse-row graph, the single
// concrete adjacency representation used by the traversal hot path.
//
// A Graph is built once, via Builder, from a stream of undirected edges over
// vertex IDs in [0, N). Builder.AddEdge symmetrizes the edge set (storing
// both (u,v) and (v,u)) and Builder.Finalize flattens it into two arrays:
//
//	offsets[0..N]   — monotonically non-decreasing; offsets[N] == M
//	neighbors[0..M] — the concatenation, in vertex order, of each vertex's
//	                  adjacency list
//
// After Finalize, a Graph is safe for unsynchronized concurrent reads from
// any number of goroutines: nothing about it ever changes again.
//
// Degree and Neighbors are both O(1) slice operations into the flattened
// arrays, which is what makes them cheap enough to call once per edge
// examined during a BFS step.
package csr
