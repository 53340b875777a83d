package graphgen

import (
	"fmt"

	"github.com/katalvlaran/hybridbfs/csr"
)

const minStarNodes = 2

// centerVertex is the fixed hub ID for Star topologies, vertex 0 — leaves
// are 1..n-1, matching spec.md §8 scenario 3's layout.
const centerVertex = int32(0)

// Star builds a hub-and-spoke topology: hub vertex 0, leaves 1..n-1, each
// leaf connected only to the hub.
//
// Contract:
//   - n >= 2, else ErrTooFewVertices.
//   - Spokes 0—i are added in ascending leaf index i, 1..n-1.
func Star(n int) (*csr.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("graphgen.Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}

	b, err := csr.NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		b.AddEdge(centerVertex, int32(i))
	}

	return b.Finalize()
}
