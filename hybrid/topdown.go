package hybrid

import (
	"github.com/katalvlaran/hybridbfs/csr"
	"github.com/katalvlaran/hybridbfs/frontier"
	"github.com/katalvlaran/hybridbfs/solution"
)

// TopDownStep runs one top-down BFS step (spec.md §4.D): work-parallel over
// cur (layer level), each vertex's unvisited neighbors are claimed via CAS
// on distance; winners write parent and append to their worker's shard.
// Shards are merged into next, which must already be Clear()'d.
//
// Returns the sum of degree(u) over u in cur — the edge-mass examined this
// step, used both for reporting and by the hybrid driver's m_f/m_u
// bookkeeping.
func TopDownStep(
	pool *Pool,
	g *csr.Graph,
	cur *frontier.Frontier,
	shards *frontier.Shards,
	next *frontier.Frontier,
	sol *solution.Solution,
	level int32,
) (edgesExamined int64, err error) {
	frontierVerts := cur.AsSlice()
	partials := make([]int64, pool.Workers)

	err = pool.ParallelFor(len(frontierVerts), func(workerID, lo, hi int) error {
		shard := shards.Of(workerID)
		var local int64
		for i := lo; i < hi; i++ {
			u := frontierVerts[i]
			neighbors := g.Neighbors(u)
			local += int64(len(neighbors))

			for _, v := range neighbors {
				// Quick check: relaxed load, false negatives only cost an
				// extra failed CAS, never correctness (spec.md §4.D.1).
				if sol.IsVisited(v) {
					continue
				}
				if sol.TryClaim(v, level+1) {
					sol.Parent[v].Store(u)
					shard.Push(v)
				}
			}
		}
		partials[workerID] = local
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := frontier.Merge(next, shards); err != nil {
		return 0, err
	}
	shards.ClearAll()

	for _, p := range partials {
		edgesExamined += p
	}
	return edgesExamined, nil
}
