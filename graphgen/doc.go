// Package graphgen builds small, named CSR topologies directly — the test
// and benchmark fixtures for spec.md §8's concrete scenarios (path,
// triangle, star, 4-cycle, disconnected components, barbell), plus a
// randomized sparse generator for equivalence-law tests at scale.
//
// Each constructor here ports the corresponding named topology from a
// string-keyed, mutable adjacency-map model to csr.Builder's int-keyed,
// symmetrize-then-flatten model. IDs are always the contiguous range
// [0, n).
package graphgen
