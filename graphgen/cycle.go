package graphgen

import (
	"fmt"

	"github.com/katalvlaran/hybridbfs/csr"
)

const minCycleNodes = 3

// Cycle builds the n-vertex simple cycle C_n (spec.md §8 scenario 5 uses
// Cycle(4)).
//
// Contract:
//   - n >= 3, else ErrTooFewVertices.
//   - Edges i -> (i+1)%n are added in ascending i, 0..n-1.
func Cycle(n int) (*csr.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("graphgen.Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}

	b, err := csr.NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		b.AddEdge(int32(i), int32((i+1)%n))
	}

	return b.Finalize()
}
