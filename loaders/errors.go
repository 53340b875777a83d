package loaders

import "errors"

// Sentinel errors for graph file loading. All are input errors per
// spec.md §7: reported and fatal, never a programmer-bug panic.
var (
	// ErrUnknownSuffix is returned when a path's extension is neither
	// ".mm" nor ".txt".
	ErrUnknownSuffix = errors.New("loaders: unrecognized file suffix (want .mm or .txt)")

	// ErrMalformedHeader is returned when a MatrixMarket file's banner or
	// dimension line cannot be parsed.
	ErrMalformedHeader = errors.New("loaders: malformed MatrixMarket header")

	// ErrNonSquareMatrix is returned when a MatrixMarket file declares
	// M != N; the engine only traverses square (graph) matrices.
	ErrNonSquareMatrix = errors.New("loaders: MatrixMarket matrix is not square")

	// ErrMalformedLine is returned when a data line in either format does
	// not parse as the expected number of integer fields.
	ErrMalformedLine = errors.New("loaders: malformed data line")

	// ErrEmptyEdgeList is returned when an edge-list file contributes no
	// edges at all, so N cannot be inferred from max(id)+1.
	ErrEmptyEdgeList = errors.New("loaders: edge-list file has no data lines")
)
