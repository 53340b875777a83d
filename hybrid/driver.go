package hybrid

import (
	"time"

	"github.com/katalvlaran/hybridbfs/csr"
	"github.com/katalvlaran/hybridbfs/frontier"
	"github.com/katalvlaran/hybridbfs/solution"
)

// Beamer et al.'s direction-optimizing thresholds (SC'12), unchanged from
// spec.md §4.F.
const (
	alpha = 14
	beta  = 24
)

// Run performs a full BFS traversal of g from source, selecting the
// strategy named by opts.Method. It returns the completed Solution (valid
// and read-only once Run returns) along with iteration/edge-count
// statistics.
func Run(g *csr.Graph, source int32, opts Options) (*solution.Solution, Stats, error) {
	if g == nil {
		return nil, Stats{}, ErrNilGraph
	}
	n := g.NumNodes()
	if source < 0 || int(source) >= n {
		return nil, Stats{}, ErrSourceOutOfRange
	}
	switch opts.Method {
	case MethodTopDown, MethodBottomUp, MethodHybrid:
	default:
		return nil, Stats{}, ErrUnknownMethod
	}

	pool := NewPool(opts.NumWorkers)
	sol := solution.New(n)
	sol.TryClaim(source, 0) // always succeeds: sol is freshly allocated

	cur := frontier.New(n)
	next := frontier.New(n)
	cur.Push(source)

	nextShards := frontier.NewShards(pool.Workers, n)
	gatherShards := frontier.NewShards(pool.Workers, n)
	unvisited := frontier.New(n)

	totalEdges := int64(g.NumEdges())
	var examined int64
	state := TopDown
	iteration := 0

	for !cur.IsEmpty() {
		start := time.Now()
		next.Clear()
		unvisited.Clear()

		if opts.Method == MethodHybrid {
			state = nextState(state, pool, g, cur, n, totalEdges, examined)
		}
		dir := directionFor(opts.Method, state)

		var stepEdges int64
		var err error
		if dir == TopDown {
			stepEdges, err = TopDownStep(pool, g, cur, nextShards, next, sol, int32(iteration))
		} else {
			stepEdges, err = BottomUpStep(pool, g, n, sol, int32(iteration), gatherShards, unvisited, nextShards, next)
		}
		if err != nil {
			return nil, Stats{}, err
		}

		examined += stepEdges

		if opts.OnStep != nil {
			opts.OnStep(StepInfo{
				Iteration:     iteration,
				Direction:     dir,
				FrontierSize:  cur.Len(),
				EdgesExamined: stepEdges,
				Elapsed:       time.Since(start),
			})
		}

		cur, next = next, cur
		iteration++
	}

	return sol, Stats{Iterations: iteration, EdgesExamined: examined}, nil
}

// directionFor maps a fixed Method to its Direction; for MethodHybrid it
// returns state, the driver's current state.
func directionFor(m Method, state Direction) Direction {
	if m == MethodBottomUp {
		return BottomUp
	}
	if m == MethodTopDown {
		return TopDown
	}
	return state
}

// nextState applies spec.md §4.F's transitions, computed before this
// iteration's step runs:
//
//	TopDown  -> BottomUp when m_f > m_u/alpha
//	BottomUp -> TopDown  when n_f < N/beta
//
// m_f is the sum of degrees over the current frontier; m_u is the total
// directed-edge count minus the cumulative edges examined so far.
func nextState(state Direction, pool *Pool, g *csr.Graph, cur *frontier.Frontier, n int, totalEdges, examined int64) Direction {
	nf := cur.Len()

	switch state {
	case TopDown:
		mf := sumDegrees(pool, g, cur)
		mu := totalEdges - examined
		if mf > mu/alpha {
			return BottomUp
		}
		return TopDown
	default: // BottomUp
		if int64(nf)*beta < int64(n) {
			return TopDown
		}
		return BottomUp
	}
}

// sumDegrees reduces degree(u) over every u in f, in parallel across pool's
// workers.
func sumDegrees(pool *Pool, g *csr.Graph, f *frontier.Frontier) int64 {
	verts := f.AsSlice()
	partials := make([]int64, pool.Workers)
	_ = pool.ParallelFor(len(verts), func(workerID, lo, hi int) error {
		var local int64
		for i := lo; i < hi; i++ {
			local += int64(g.Degree(verts[i]))
		}
		partials[workerID] = local
		return nil
	})

	var total int64
	for _, p := range partials {
		total += p
	}
	return total
}
