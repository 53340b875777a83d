package hybrid

import (
	"github.com/katalvlaran/hybridbfs/csr"
	"github.com/katalvlaran/hybridbfs/frontier"
	"github.com/katalvlaran/hybridbfs/solution"
)

// BottomUpStep runs one bottom-up BFS step (spec.md §4.E) in three phases:
//
//  1. Mark+gather: in parallel over [0,n), each worker collects the still-
//     unvisited vertices in its range into its own shard; the shards are
//     merged into unvisited, the compact list U. This is the same
//     exclusive-scan compaction frontier.Merge already implements for
//     next-frontier materialization — §4.E's mark/gather phases are just
//     that primitive applied to "is this vertex unvisited" instead of
//     "did this vertex just get visited".
//  2. Probe: in parallel over U (now index-partitioned, one worker per
//     vertex), each v scans its own neighbors for the first one at the
//     current layer. Because each v in U is owned by exactly one worker
//     this step, distance[v]/parent[v] need no CAS — plain stores suffice
//     (spec.md §4.E's race discipline).
//  3. Materialize: workers that found a layer neighbor push v into their
//     shard; those shards are merged into next — the same primitive again.
//
// unvisited is caller-owned scratch space (reused across levels, like cur
// and next) and must already be Clear()'d on entry.
//
// Returns the number of neighbor slots actually inspected across all of U
// (bounded by, but usually well under, the sum of their degrees, since a
// probe stops at the first layer-L neighbor found).
func BottomUpStep(
	pool *Pool,
	g *csr.Graph,
	n int,
	sol *solution.Solution,
	level int32,
	gatherShards *frontier.Shards,
	unvisited *frontier.Frontier,
	nextShards *frontier.Shards,
	next *frontier.Frontier,
) (edgesExamined int64, err error) {
	// Phase 1: mark + gather.
	if err := pool.ParallelFor(n, func(workerID, lo, hi int) error {
		shard := gatherShards.Of(workerID)
		for v := lo; v < hi; v++ {
			if !sol.IsVisited(int32(v)) {
				shard.Push(int32(v))
			}
		}
		return nil
	}); err != nil {
		return 0, err
	}
	if err := frontier.Merge(unvisited, gatherShards); err != nil {
		return 0, err
	}
	gatherShards.ClearAll()

	// Phase 2+3: probe each v in U (index-partitioned, one worker per v)
	// and materialize newly-visited vertices into nextShards.
	candidates := unvisited.AsSlice()
	partials := make([]int64, pool.Workers)

	if err := pool.ParallelFor(len(candidates), func(workerID, lo, hi int) error {
		shard := nextShards.Of(workerID)
		var local int64
		for i := lo; i < hi; i++ {
			v := candidates[i]
			for _, u := range g.Neighbors(v) {
				local++
				if sol.DistanceAt(u) == level {
					sol.Distance[v].Store(level + 1)
					sol.Parent[v].Store(u)
					shard.Push(v)
					break
				}
			}
		}
		partials[workerID] = local
		return nil
	}); err != nil {
		return 0, err
	}

	if err := frontier.Merge(next, nextShards); err != nil {
		return 0, err
	}
	nextShards.ClearAll()

	for _, p := range partials {
		edgesExamined += p
	}
	return edgesExamined, nil
}
