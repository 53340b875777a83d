package hybrid

import "time"

// Method selects which traversal strategy Run uses.
type Method int

const (
	// MethodTopDown always runs the top-down step.
	MethodTopDown Method = iota
	// MethodBottomUp always runs the bottom-up step.
	MethodBottomUp
	// MethodHybrid runs the adaptive Beamer driver (recommended).
	MethodHybrid
)

// String returns the Method's name: "top-down", "bottom-up", or "hybrid".
func (m Method) String() string {
	switch m {
	case MethodTopDown:
		return "top-down"
	case MethodBottomUp:
		return "bottom-up"
	case MethodHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// Direction is which step actually ran during a given iteration. For
// MethodTopDown/MethodBottomUp it never changes; for MethodHybrid it is the
// hybrid driver's current state.
type Direction int

const (
	// TopDown is the state in which TopDownStep runs; the driver's initial
	// state.
	TopDown Direction = iota
	// BottomUp is the state in which BottomUpStep runs.
	BottomUp
)

func (d Direction) String() string {
	if d == BottomUp {
		return "bottom-up"
	}
	return "top-down"
}

// StepInfo describes one completed BFS iteration, for optional verbose
// diagnostics (spec.md §6: per-step progress lines go to a diagnostic
// stream, never stdout).
type StepInfo struct {
	Iteration     int
	Direction     Direction
	FrontierSize  int
	EdgesExamined int64
	Elapsed       time.Duration
}

// Options configures a Run call.
type Options struct {
	// NumWorkers sizes the persistent worker pool. <= 0 selects
	// runtime.NumCPU().
	NumWorkers int

	// Method selects top-down-only, bottom-up-only, or the adaptive
	// hybrid driver.
	Method Method

	// OnStep, if non-nil, is invoked synchronously after each completed
	// iteration. It must not retain slices handed to it.
	OnStep func(StepInfo)
}

// Stats summarizes a completed traversal.
type Stats struct {
	Iterations    int
	EdgesExamined int64
}
