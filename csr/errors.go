package csr

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrNegativeNodeCount is returned when a Builder is created with N < 0.
	ErrNegativeNodeCount = errors.New("csr: negative node count")

	// ErrEmptyGraph is returned when a Builder with N == 0 is finalized;
	// spec.md treats an empty graph as rejected input, not a degenerate
	// success.
	ErrEmptyGraph = errors.New("csr: empty graph (N=0) is not a valid input")

	// ErrVertexOutOfRange is returned when an edge endpoint lies outside
	// [0, N).
	ErrVertexOutOfRange = errors.New("csr: vertex id out of range")
)
