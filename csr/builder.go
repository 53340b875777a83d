package csr

import "fmt"

// Builder accumulates undirected edges over a fixed vertex count and
// flattens them into a Graph. It mirrors the two-phase shape of the
// original implementation's LocalGraph::post_processing: grow a
// vector-of-vectors while edges are added, then concatenate into flat
// offsets/neighbors arrays exactly once, at Finalize.
//
// A Builder is not safe for concurrent use; it is expected to be driven
// single-threaded by a loader before any traversal begins.
type Builder struct {
	n    int
	adj  [][]int32
	errs error
}

// NewBuilder returns a Builder for a graph with n vertices, IDs in
// [0, n). It returns ErrNegativeNodeCount if n < 0.
func NewBuilder(n int) (*Builder, error) {
	if n < 0 {
		return nil, fmt.Errorf("csr: NewBuilder(%d): %w", n, ErrNegativeNodeCount)
	}

	return &Builder{n: n, adj: make([][]int32, n)}, nil
}

// AddEdge records an undirected edge (u,v), storing both directions. Out-of-
// range endpoints are recorded and surfaced by Finalize rather than
// panicking mid-load, so a loader can report one diagnostic for a malformed
// file instead of crashing on the first bad line.
//
// Self-loops and duplicate edges are accepted; per spec.md §3 they are
// benign at traversal time (extra CAS attempts that fail).
func (b *Builder) AddEdge(u, v int32) {
	if b.errs != nil {
		return
	}
	if int(u) < 0 || int(u) >= b.n || int(v) < 0 || int(v) >= b.n {
		b.errs = fmt.Errorf("csr: edge (%d,%d) out of range [0,%d): %w", u, v, b.n, ErrVertexOutOfRange)
		return
	}
	b.adj[u] = append(b.adj[u], v)
	if u != v {
		b.adj[v] = append(b.adj[v], u)
	}
}

// Finalize flattens the accumulated adjacency lists into a Graph. It
// returns ErrEmptyGraph for n == 0, or the first error recorded by AddEdge.
func (b *Builder) Finalize() (*Graph, error) {
	if b.errs != nil {
		return nil, b.errs
	}
	if b.n == 0 {
		return nil, ErrEmptyGraph
	}

	offsets := make([]int32, b.n+1)
	for v := 0; v < b.n; v++ {
		offsets[v+1] = offsets[v] + int32(len(b.adj[v]))
	}

	neighbors := make([]int32, offsets[b.n])
	for v := 0; v < b.n; v++ {
		copy(neighbors[offsets[v]:offsets[v+1]], b.adj[v])
	}

	return &Graph{n: b.n, offsets: offsets, neighbors: neighbors}, nil
}
