package csr

// Graph is an immutable compressed-sparse-row adjacency structure over
// vertex IDs in [0, N). It is produced by Builder.Finalize and never
// mutated afterward.
type Graph struct {
	n         int
	offsets   []int32
	neighbors []int32
}

// NumNodes returns N, the vertex count.
func (g *Graph) NumNodes() int { return g.n }

// NumEdges returns M, the total directed-edge count. Since every undirected
// edge is stored in both directions, num_undirected_edges == NumEdges()/2.
func (g *Graph) NumEdges() int { return len(g.neighbors) }

// Degree returns the number of neighbors of v. It panics if v is out of
// [0, N); callers on the hot path are expected to have already validated
// vertex IDs against NumNodes, per spec.md §7's treatment of out-of-range
// vertex access as a programmer invariant, not a recoverable error.
func (g *Graph) Degree(v int32) int {
	return int(g.offsets[v+1] - g.offsets[v])
}

// Neighbors returns the contiguous, read-only adjacency slice of v. The
// returned slice aliases the graph's internal storage and must not be
// mutated or retained past the graph's lifetime assumptions.
func (g *Graph) Neighbors(v int32) []int32 {
	return g.neighbors[g.offsets[v]:g.offsets[v+1]]
}
