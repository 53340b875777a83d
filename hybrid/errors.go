package hybrid

import "errors"

// Sentinel errors for traversal setup. Step functions themselves never
// return errors (spec.md §4.D/§7): an in-step failure is a programmer
// invariant violation, not a recoverable condition.
var (
	// ErrNilGraph is returned when Run is called with a nil *csr.Graph.
	ErrNilGraph = errors.New("hybrid: graph is nil")

	// ErrSourceOutOfRange is returned when the source vertex is not in
	// [0, NumNodes()).
	ErrSourceOutOfRange = errors.New("hybrid: source vertex out of range")

	// ErrUnknownMethod is returned for a Method value other than
	// MethodTopDown, MethodBottomUp, or MethodHybrid.
	ErrUnknownMethod = errors.New("hybrid: unknown bfs method")
)
